package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/benckx/coinfolio/pkg/data"
)

// DefaultPageFile is the output filename used when none is given.
const DefaultPageFile = "coins.html"

type pageData struct {
	Title  string
	Coins  []data.Coin
	Style  template.CSS
	Script template.JS
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"cell":     cell,
	"imageURL": isImageURL,
}).Parse(pageTemplate))

// cell renders a table cell value, with an em dash standing in for
// blanks so empty attributes stay visible as such.
func cell(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// isImageURL reports whether a field holds a direct image link worth
// rendering as an <img> rather than as text.
func isImageURL(s string) bool {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http") {
		return false
	}
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// Page renders the self-contained collection page for a set of coins.
// Rendering is a pure function of the records: styling and the view
// controller are inlined, text values are escaped by the template.
func Page(coins []data.Coin) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, pageData{
		Title:  "Coin Collection",
		Coins:  coins,
		Style:  template.CSS(pageStyle),
		Script: template.JS(pageScript),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePage renders the page and writes it to path in one shot. A write
// failure is fatal to the run; there is nothing to retry.
func WritePage(coins []data.Coin, path string) error {
	page, err := Page(coins)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, page, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
