package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"

	"github.com/benckx/coinfolio/pkg/data"
)

// DefaultCatalogueFile is the EPUB output filename used when none is given.
const DefaultCatalogueFile = "coins.epub"

// Fetcher downloads a coin photo. Injected so the caller controls rate
// limiting and so tests never touch the network.
type Fetcher func(url string) ([]byte, error)

// CatalogueBuilder compiles a collection into an offline EPUB catalogue,
// one section per coin with the photos embedded.
type CatalogueBuilder struct {
	thumb   *Thumbnailer
	tempDir string
}

func NewCatalogueBuilder() (*CatalogueBuilder, error) {
	tempDir, err := os.MkdirTemp("", "coinfolio-epub-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	return &CatalogueBuilder{thumb: NewThumbnailer(), tempDir: tempDir}, nil
}

// Build writes the catalogue to outputPath. Photo downloads that fail
// are non-fatal: the coin's section is still written, without the image.
func (b *CatalogueBuilder) Build(coins []data.Coin, fetch Fetcher, outputPath string) error {
	if len(coins) == 0 {
		return fmt.Errorf("no coins to compile")
	}

	e, err := epub.NewEpub("Coin Collection")
	if err != nil {
		return fmt.Errorf("failed to create EPUB: %w", err)
	}
	e.SetAuthor("coinfolio")
	e.SetDescription(fmt.Sprintf("Catalogue of %d coins", len(coins)))
	e.SetLang("en")

	for i, coin := range coins {
		if err := b.addCoin(e, i, coin, fetch); err != nil {
			return fmt.Errorf("failed to add coin %q: %w", coin.Denomination, err)
		}
	}

	if err := e.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write EPUB: %w", err)
	}
	return os.RemoveAll(b.tempDir)
}

func (b *CatalogueBuilder) addCoin(e *epub.Epub, index int, coin data.Coin, fetch Fetcher) error {
	title := coin.Denomination
	if coin.Year != "" {
		title = fmt.Sprintf("%s (%s)", coin.Denomination, coin.Year)
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(title)))

	for _, photo := range []struct{ side, url string }{
		{"Obverse", coin.ObverseURL},
		{"Reverse", coin.ReverseURL},
	} {
		side, url := photo.side, photo.url
		if fetch == nil || !isImageURL(url) {
			continue
		}
		internal, err := b.embedPhoto(e, index, side, url, fetch)
		if err != nil {
			// a missing photo should not sink the whole catalogue
			fmt.Fprintf(os.Stderr, "⚠️  %s photo for %s: %v\n", side, title, err)
			continue
		}
		body.WriteString(fmt.Sprintf(
			`<div class="photo"><img src="%s" alt="%s" style="max-width:100%%;height:auto;"/></div>%s`,
			internal, side, "\n"))
	}

	body.WriteString("<dl>\n")
	for _, detail := range []struct{ label, value string }{
		{"Country", coin.Country},
		{"Issuer", coin.Issuer},
		{"Grade", coin.Grade},
		{"Composition", coin.Composition},
		{"Mintmark", coin.Mintmark},
		{"Subject", coin.Subject},
		{"Value", coin.Value},
		{"Precious metal weight", coin.MetalWeight},
		{"Melt value", coin.MeltValue},
	} {
		if detail.value == "" {
			continue
		}
		body.WriteString(fmt.Sprintf("<dt>%s</dt><dd>%s</dd>\n",
			detail.label, html.EscapeString(detail.value)))
	}
	body.WriteString("</dl>\n")

	if _, err := e.AddSection(body.String(), title, "", ""); err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	return nil
}

func (b *CatalogueBuilder) embedPhoto(e *epub.Epub, index int, side, url string, fetch Fetcher) (string, error) {
	raw, err := fetch(url)
	if err != nil {
		return "", err
	}
	thumb, err := b.thumb.Process(raw)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("coin-%d-%s.jpg", index, strings.ToLower(side))
	path := filepath.Join(b.tempDir, name)
	if err := os.WriteFile(path, thumb, 0644); err != nil {
		return "", err
	}
	return e.AddImage(path, name)
}
