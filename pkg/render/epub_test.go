package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benckx/coinfolio/pkg/data"
)

func testPhoto(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnailerScalesDown(t *testing.T) {
	thumb := NewThumbnailer()
	out, err := thumb.Process(testPhoto(t, 1200, 900))
	require.NoError(t, err)

	scaled, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 600, scaled.Bounds().Dx())
	assert.Equal(t, 450, scaled.Bounds().Dy())
}

func TestThumbnailerKeepsSmallImages(t *testing.T) {
	thumb := NewThumbnailer()
	out, err := thumb.Process(testPhoto(t, 200, 150))
	require.NoError(t, err)

	scaled, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, scaled.Bounds().Dx())
	assert.Equal(t, 150, scaled.Bounds().Dy())
}

func TestThumbnailerRejectsGarbage(t *testing.T) {
	thumb := NewThumbnailer()
	_, err := thumb.Process([]byte("not an image"))
	require.Error(t, err)
}

func TestBuildCatalogue(t *testing.T) {
	coins := []data.Coin{
		{
			Issuer:       "Papal States",
			Year:         "1867",
			Denomination: "10 soldi",
			Composition:  "Silver",
			Value:        "12.50",
			ObverseURL:   "https://img.example/obv.jpg",
		},
		{Issuer: "Belgium", Denomination: "1 franc"},
	}

	fetched := 0
	fetch := func(url string) ([]byte, error) {
		fetched++
		return testPhoto(t, 400, 400), nil
	}

	builder, err := NewCatalogueBuilder()
	require.NoError(t, err)

	outputPath := filepath.Join(t.TempDir(), "coins.epub")
	require.NoError(t, builder.Build(coins, fetch, outputPath))

	assert.Equal(t, 1, fetched, "only coins with photo URLs should be fetched")

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBuildCatalogueEmpty(t *testing.T) {
	builder, err := NewCatalogueBuilder()
	require.NoError(t, err)

	err = builder.Build(nil, nil, filepath.Join(t.TempDir(), "coins.epub"))
	require.Error(t, err)
}
