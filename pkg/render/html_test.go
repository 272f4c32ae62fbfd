package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benckx/coinfolio/pkg/data"
)

func sampleCoins() []data.Coin {
	return []data.Coin{
		{
			Country:      "Italy",
			Issuer:       "Papal States",
			Year:         "2020",
			Denomination: "10 soldi",
			Grade:        "VF",
			Composition:  "Silver",
			Value:        "1.50",
			ObverseURL:   "https://img.example/a-obv.jpg",
			ReverseURL:   "https://img.example/a-rev.jpg",
		},
		{
			Country:      "Russia",
			Issuer:       "Russian Empire",
			Year:         "1999",
			Denomination: "1 kopek",
			Grade:        "F",
			Composition:  "Copper",
			Value:        "0.99",
		},
		{
			Country:      "Belgium",
			Issuer:       "Belgium",
			Year:         "1999",
			Denomination: "1 franc",
			Value:        "5.00",
		},
	}
}

func renderString(t *testing.T, coins []data.Coin) string {
	t.Helper()
	page, err := Page(coins)
	require.NoError(t, err)
	return string(page)
}

func TestPageRendersBothViewsForEveryCoin(t *testing.T) {
	page := renderString(t, sampleCoins())

	assert.Equal(t, 3, strings.Count(page, "<tr data-country="))
	assert.Equal(t, 3, strings.Count(page, `<div class="coin-card" data-country=`))
	assert.Contains(t, page, "Total: 3 coins")
}

func TestPageAttributesIdenticalAcrossViews(t *testing.T) {
	page := renderString(t, sampleCoins())

	// The attribute block is emitted once per view per coin, byte-identical
	attrs := `data-country="Italy" data-issuer="Papal States" data-denomination="10 soldi" data-year="2020" data-grade="VF" data-composition="Silver" data-value="1.5"`
	assert.Equal(t, 2, strings.Count(page, attrs))
}

func TestPageNumericSentinels(t *testing.T) {
	coins := []data.Coin{{
		Issuer:       "Unknown",
		Year:         "ND",
		Denomination: "1 thaler",
		Value:        "priceless",
	}}
	page := renderString(t, coins)

	assert.Equal(t, 2, strings.Count(page, `data-year="0"`))
	assert.Equal(t, 2, strings.Count(page, `data-value="0"`))
}

func TestPageEscapesMarkupOnce(t *testing.T) {
	coins := []data.Coin{{
		Issuer:       `D&G <Mint> "special"`,
		Denomination: "1 <crown>",
	}}
	page := renderString(t, coins)

	assert.Contains(t, page, "D&amp;G &lt;Mint&gt;")
	assert.NotContains(t, page, "<Mint>")
	assert.NotContains(t, page, "&amp;amp;", "values must not be double-escaped")
	assert.NotContains(t, page, "&amp;lt;")
}

func TestPageIsSelfContained(t *testing.T) {
	page := renderString(t, sampleCoins())

	assert.Contains(t, page, "<style>")
	assert.Contains(t, page, "<script>")
	assert.Contains(t, page, "MOBILE_THRESHOLD")
	assert.NotContains(t, page, `<link rel="stylesheet"`)
	assert.NotContains(t, page, `<script src=`)
}

func TestPageImageHandling(t *testing.T) {
	page := renderString(t, sampleCoins())

	assert.Contains(t, page, `<img src="https://img.example/a-obv.jpg" alt="Obverse" class="coin-image" loading="lazy">`)
	// coins without photo URLs get a placeholder cell, not a broken image
	assert.NotContains(t, page, `src=""`)
}

func TestPageEmptyCollection(t *testing.T) {
	page := renderString(t, nil)

	assert.Contains(t, page, "Total: 0 coins")
	assert.Contains(t, page, `id="tableBody"`)
	assert.Contains(t, page, `id="gridContainer"`)
	assert.NotContains(t, page, "<tr data-country=")
}

func TestWritePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins.html")
	require.NoError(t, WritePage(sampleCoins(), path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "<!DOCTYPE html>")
}

func TestWritePageUnwritableDirectory(t *testing.T) {
	err := WritePage(sampleCoins(), filepath.Join(t.TempDir(), "missing", "coins.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coins.html")
}

func TestIsImageURL(t *testing.T) {
	assert.True(t, isImageURL("https://img.example/coin.jpg"))
	assert.True(t, isImageURL("http://img.example/coin.PNG?size=big"))
	assert.False(t, isImageURL("coin.jpg"))
	assert.False(t, isImageURL("https://example.com/page"))
	assert.False(t, isImageURL(""))
}
