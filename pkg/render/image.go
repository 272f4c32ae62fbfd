package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Thumbnailer scales coin photos down to catalogue size so an embedded
// collection stays a reasonable file.
type Thumbnailer struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

func NewThumbnailer() *Thumbnailer {
	return &Thumbnailer{MaxWidth: 600, MaxHeight: 600, Quality: 85}
}

// Process decodes a photo, scales it to fit the bounds while keeping
// the aspect ratio, and re-encodes it as JPEG.
func (t *Thumbnailer) Process(input []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := t.fit(bounds.Dx(), bounds.Dy())
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: t.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return out.Bytes(), nil
}

func (t *Thumbnailer) fit(width, height int) (int, int) {
	if width <= t.MaxWidth && height <= t.MaxHeight {
		return width, height
	}

	scale := float64(t.MaxWidth) / float64(width)
	if heightScale := float64(t.MaxHeight) / float64(height); heightScale < scale {
		scale = heightScale
	}

	return int(float64(width) * scale), int(float64(height) * scale)
}
