package data

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func createTables(db *sql.DB) error {
	schema := []string{
		`CREATE SEQUENCE IF NOT EXISTS coin_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS match_id_seq`,
		`CREATE TABLE IF NOT EXISTS coin (
			id           BIGINT PRIMARY KEY DEFAULT nextval('coin_id_seq'),
			country      TEXT NOT NULL DEFAULT '',
			issuer       TEXT NOT NULL,
			year         TEXT NOT NULL,
			denomination TEXT NOT NULL,
			km_number    INTEGER NOT NULL DEFAULT 0,
			mintmark     TEXT NOT NULL DEFAULT '',
			subject      TEXT NOT NULL DEFAULT '',
			grade        TEXT NOT NULL DEFAULT '',
			composition  TEXT NOT NULL DEFAULT '',
			value        TEXT NOT NULL DEFAULT '',
			obverse_url  TEXT NOT NULL DEFAULT '',
			reverse_url  TEXT NOT NULL DEFAULT '',
			occurrences  INTEGER NOT NULL DEFAULT 1,
			UNIQUE (issuer, year, denomination, km_number, mintmark, subject)
		)`,
		`CREATE TABLE IF NOT EXISTS match (
			id         BIGINT PRIMARY KEY DEFAULT nextval('match_id_seq'),
			coin_id    BIGINT NOT NULL REFERENCES coin(id),
			numista_id INTEGER NOT NULL,
			verified   BOOLEAN NOT NULL DEFAULT false,
			km_number  INTEGER NOT NULL DEFAULT 0,
			category   TEXT NOT NULL DEFAULT '',
			title      TEXT NOT NULL DEFAULT '',
			UNIQUE (coin_id, numista_id)
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UpsertCoins inserts deduplicated coins from an export run. Occurrences
// are counted within the run; on re-runs the stored count is only updated
// when the fresh export saw a different number of duplicates.
func (r *Repository) UpsertCoins(coins []Coin) (inserted, updated int, err error) {
	counts := make(map[string]int)
	order := make([]string, 0, len(coins))
	first := make(map[string]Coin)
	for _, c := range coins {
		k := c.Key()
		if _, seen := counts[k]; !seen {
			order = append(order, k)
			first[k] = c
		}
		counts[k]++
	}

	for _, k := range order {
		c := first[k]
		occ := counts[k]

		var id int64
		var oldOcc int
		row := r.db.QueryRow(
			`SELECT id, occurrences FROM coin
			 WHERE issuer=? AND year=? AND denomination=?
			   AND km_number=? AND mintmark=? AND subject=?`,
			c.Issuer, c.Year, c.Denomination, c.KMNumber, c.Mintmark, c.Subject)
		switch scanErr := row.Scan(&id, &oldOcc); scanErr {
		case sql.ErrNoRows:
			_, err = r.db.Exec(
				`INSERT INTO coin (country, issuer, year, denomination, km_number,
				                   mintmark, subject, grade, composition, value,
				                   obverse_url, reverse_url, occurrences)
				 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
				c.Country, c.Issuer, c.Year, c.Denomination, c.KMNumber,
				c.Mintmark, c.Subject, c.Grade, c.Composition, c.Value,
				c.ObverseURL, c.ReverseURL, occ)
			if err != nil {
				return inserted, updated, fmt.Errorf("failed to insert coin %q: %w", c.Denomination, err)
			}
			inserted++
		case nil:
			if occ != oldOcc {
				if _, err = r.db.Exec(`UPDATE coin SET occurrences=? WHERE id=?`, occ, id); err != nil {
					return inserted, updated, fmt.Errorf("failed to update coin %d: %w", id, err)
				}
				updated++
			}
		default:
			return inserted, updated, fmt.Errorf("failed to look up coin: %w", scanErr)
		}
	}
	return inserted, updated, nil
}

func (r *Repository) ListCoins() ([]*Coin, error) {
	rows, err := r.db.Query(
		`SELECT id, country, issuer, year, denomination, km_number, mintmark,
		        subject, grade, composition, value, obverse_url, reverse_url, occurrences
		 FROM coin ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coins []*Coin
	for rows.Next() {
		c := &Coin{}
		if err := rows.Scan(&c.ID, &c.Country, &c.Issuer, &c.Year, &c.Denomination,
			&c.KMNumber, &c.Mintmark, &c.Subject, &c.Grade, &c.Composition,
			&c.Value, &c.ObverseURL, &c.ReverseURL, &c.Occurrences); err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, rows.Err()
}

// CoinsNeedingMatches returns coins that have fewer than min candidate
// matches, in insertion order.
func (r *Repository) CoinsNeedingMatches(min int) ([]*Coin, error) {
	rows, err := r.db.Query(
		`SELECT c.id, c.country, c.issuer, c.year, c.denomination, c.km_number,
		        c.mintmark, c.subject, c.grade, c.composition, c.value,
		        c.obverse_url, c.reverse_url, c.occurrences
		 FROM coin c
		 LEFT JOIN match m ON m.coin_id = c.id
		 GROUP BY c.id, c.country, c.issuer, c.year, c.denomination, c.km_number,
		          c.mintmark, c.subject, c.grade, c.composition, c.value,
		          c.obverse_url, c.reverse_url, c.occurrences
		 HAVING COUNT(m.id) < ?
		 ORDER BY c.id`, min)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coins []*Coin
	for rows.Next() {
		c := &Coin{}
		if err := rows.Scan(&c.ID, &c.Country, &c.Issuer, &c.Year, &c.Denomination,
			&c.KMNumber, &c.Mintmark, &c.Subject, &c.Grade, &c.Composition,
			&c.Value, &c.ObverseURL, &c.ReverseURL, &c.Occurrences); err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, rows.Err()
}

// SaveMatches stores Numista candidates for a coin, ignoring candidates
// already recorded for it.
func (r *Repository) SaveMatches(coinID int64, matches []Match) error {
	for _, m := range matches {
		var existing int
		err := r.db.QueryRow(
			`SELECT COUNT(*) FROM match WHERE coin_id=? AND numista_id=?`,
			coinID, m.NumistaID).Scan(&existing)
		if err != nil {
			return fmt.Errorf("failed to look up match: %w", err)
		}
		if existing > 0 {
			continue
		}
		_, err = r.db.Exec(
			`INSERT INTO match (coin_id, numista_id, verified, km_number, category, title)
			 VALUES (?,?,false,?,?,?)`,
			coinID, m.NumistaID, m.KMNumber, m.Category, m.Title)
		if err != nil {
			return fmt.Errorf("failed to insert match %d: %w", m.NumistaID, err)
		}
	}
	return nil
}

func (r *Repository) GetMatches(coinID int64) ([]*Match, error) {
	rows, err := r.db.Query(
		`SELECT id, coin_id, numista_id, verified, km_number, category, title
		 FROM match WHERE coin_id=? ORDER BY id`, coinID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		m := &Match{}
		if err := rows.Scan(&m.ID, &m.CoinID, &m.NumistaID, &m.Verified,
			&m.KMNumber, &m.Category, &m.Title); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *Repository) CountCoins() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM coin`).Scan(&n)
	return n, err
}

func (r *Repository) CountMatches() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM match`).Scan(&n)
	return n, err
}
