package services

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/benckx/coinfolio/pkg/data"
	"github.com/benckx/coinfolio/pkg/render"
	"github.com/benckx/coinfolio/pkg/sources"
)

// MinMatches is how many Numista candidates a coin needs before the
// matcher stops looking it up.
const MinMatches = 1

// Repository is the store interface the controller needs.
type Repository interface {
	UpsertCoins(coins []data.Coin) (inserted, updated int, err error)
	ListCoins() ([]*data.Coin, error)
	CoinsNeedingMatches(min int) ([]*data.Coin, error)
	SaveMatches(coinID int64, matches []data.Match) error
	CountCoins() (int, error)
	CountMatches() (int, error)
}

// MatchSource finds catalogue candidates for a coin.
type MatchSource interface {
	Search(issuer, denomination, year, km string) ([]data.Match, error)
}

// Controller orchestrates the flows that combine the store, the
// catalogue source and the artifact builders.
type Controller struct {
	repo        Repository
	source      MatchSource
	client      *http.Client
	rateLimiter *time.Ticker
}

func NewController(repo Repository, source MatchSource) *Controller {
	return &Controller{
		repo:        repo,
		source:      source,
		client:      http.DefaultClient,
		rateLimiter: time.NewTicker(2 * time.Second), // polite delay between catalogue requests
	}
}

// ImportStats summarizes one export import run.
type ImportStats struct {
	Rows     int
	Skipped  []sources.RowError
	Inserted int
	Updated  int
	Total    int
}

// ImportExport reads a CoinSnap export and merges it into the store.
func (c *Controller) ImportExport(path string) (ImportStats, error) {
	coins, skipped, err := sources.ReadExport(path)
	if err != nil {
		return ImportStats{}, err
	}

	stats := ImportStats{Rows: len(coins), Skipped: skipped}
	stats.Inserted, stats.Updated, err = c.repo.UpsertCoins(coins)
	if err != nil {
		return stats, fmt.Errorf("failed to store coins: %w", err)
	}
	stats.Total, err = c.repo.CountCoins()
	if err != nil {
		return stats, err
	}
	return stats, nil
}

// FetchStats summarizes one matcher run.
type FetchStats struct {
	Looked       int
	Found        int
	TotalMatches int
	Stopped      bool
}

// FetchMatches queries the catalogue for every stored coin that has
// fewer than min candidates. A fetch failure stops the run instead of
// hammering on; a re-run resumes where it left off because matched
// coins no longer show up in the query.
func (c *Controller) FetchMatches(min int) (FetchStats, error) {
	coins, err := c.repo.CoinsNeedingMatches(min)
	if err != nil {
		return FetchStats{}, fmt.Errorf("failed to find coins needing matches: %w", err)
	}

	var stats FetchStats
	for _, coin := range coins {
		km := ""
		if coin.KMNumber > 0 {
			km = fmt.Sprintf("KM# %d", coin.KMNumber)
		}
		fmt.Printf("  [%d] %s – %s (%s) %s\n", coin.ID, coin.Issuer, coin.Denomination, coin.Year, km)

		found, err := c.source.Search(coin.Issuer, coin.Denomination, coin.Year, km)
		if err != nil {
			fmt.Printf("  ❌  %v\n", err)
			stats.Stopped = true
			break
		}

		// The KM filter is precise but brittle; when it comes back
		// empty, retry the loose query.
		if len(found) == 0 && km != "" {
			fmt.Println("       No results with KM – retrying without KM …")
			<-c.rateLimiter.C
			found, err = c.source.Search(coin.Issuer, coin.Denomination, coin.Year, "")
			if err != nil {
				fmt.Printf("  ❌  %v\n", err)
				stats.Stopped = true
				break
			}
		}

		stats.Looked++
		if len(found) > 0 {
			fmt.Printf("       Found %d candidate(s)\n", len(found))
			if err := c.repo.SaveMatches(coin.ID, found); err != nil {
				return stats, err
			}
			stats.Found++
		} else {
			fmt.Println("       No candidates found for this search.")
		}

		<-c.rateLimiter.C
	}

	stats.TotalMatches, err = c.repo.CountMatches()
	if err != nil {
		return stats, err
	}
	return stats, nil
}

// BuildCatalogue compiles the coins into an EPUB, downloading photos
// through the controller's rate-limited client.
func (c *Controller) BuildCatalogue(coins []data.Coin, outputPath string) error {
	builder, err := render.NewCatalogueBuilder()
	if err != nil {
		return err
	}
	return builder.Build(coins, c.downloadPhoto, outputPath)
}

func (c *Controller) downloadPhoto(url string) ([]byte, error) {
	<-c.rateLimiter.C

	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
