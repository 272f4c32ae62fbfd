package sources

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benckx/coinfolio/pkg/data"
)

// DefaultExportFile is the input filename used when none is given.
const DefaultExportFile = "snap-export.csv"

// RowError reports an export row that could not be mapped onto the header.
type RowError struct {
	Line   int
	Fields int
	Want   int
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d has %d fields, header has %d", e.Line, e.Fields, e.Want)
}

// header wraps the export's column row and resolves attribute names the
// way CoinSnap labels drift between app versions: case-insensitive
// substring match against the cleaned column titles.
type header struct {
	columns []string
	lower   []string
}

func newHeader(columns []string) *header {
	h := &header{columns: make([]string, len(columns)), lower: make([]string, len(columns))}
	for i, col := range columns {
		clean := strings.TrimSpace(strings.ReplaceAll(col, `"`, ""))
		h.columns[i] = clean
		h.lower[i] = strings.ToLower(clean)
	}
	return h
}

// get returns the field of row under the first column containing any of
// the given names. Tried in order, so more specific names go first.
func (h *header) get(row []string, names ...string) string {
	for _, name := range names {
		for i, col := range h.lower {
			if strings.Contains(col, name) {
				if i < len(row) {
					return strings.TrimSpace(row[i])
				}
				return ""
			}
		}
	}
	return ""
}

// ReadExport parses a CoinSnap CSV export into coin records.
//
// A missing or unreadable file is a fatal error naming the path. An
// export with a header but no data rows returns an empty slice. Rows
// with more fields than the header cannot be mapped and are skipped,
// returned as RowErrors for the caller to warn about; rows with fewer
// fields are padded with blanks, which is how CoinSnap trims trailing
// empty columns.
func ReadExport(path string) ([]data.Coin, []RowError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open export %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	columns, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read export header from %s: %w", path, err)
	}
	h := newHeader(columns)

	var coins []data.Coin
	var skipped []RowError
	line := 1
	for {
		row, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read export row %d: %w", line, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) > len(columns) {
			skipped = append(skipped, RowError{Line: line, Fields: len(row), Want: len(columns)})
			continue
		}
		for len(row) < len(columns) {
			row = append(row, "")
		}
		coins = append(coins, coinFromRow(h, row))
	}

	return coins, skipped, nil
}

func coinFromRow(h *header, row []string) data.Coin {
	return data.Coin{
		Country:       h.get(row, "country"),
		Issuer:        h.get(row, "issuer"),
		Year:          h.get(row, "year"),
		Denomination:  h.get(row, "denomination"),
		Grade:         h.get(row, "grade"),
		Composition:   h.get(row, "composition"),
		Value:         h.get(row, "value (my)", "value"),
		CoinSnapValue: h.get(row, "value, usd (coinsnap)"),
		MetalWeight:   h.get(row, "precious metal weight"),
		MeltValue:     h.get(row, "melt value"),
		KMNumber:      data.ParseKMNumber(h.get(row, "krause")),
		Mintmark:      h.get(row, "mintmark"),
		Subject:       h.get(row, "subject"),
		ObverseURL:    h.get(row, "obverse"),
		ReverseURL:    h.get(row, "reverse"),
		Occurrences:   1,
	}
}
