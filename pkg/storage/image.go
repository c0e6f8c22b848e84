package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	MaxImageDimension = 1200
	JPEGQuality       = 80

	// decode limits, checked on the header before any pixel is allocated
	MaxSourceSide   = 8000
	MaxSourcePixels = 40_000_000
)

var ErrImageTooLarge = errors.New("image dimensions exceed limit")

// CompressImage decodes any registered format, fits it inside maxDimension
// keeping the aspect ratio, and re-encodes it as JPEG.
func CompressImage(data []byte, maxDimension, quality int) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width > MaxSourceSide || cfg.Height > MaxSourceSide || cfg.Width*cfg.Height > MaxSourcePixels {
		return nil, fmt.Errorf("%w: %dx%d %s", ErrImageTooLarge, cfg.Width, cfg.Height, format)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	newWidth, newHeight := fit(bounds.Dx(), bounds.Dy(), maxDimension)

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	// JPEG has no alpha; paint transparent areas white first
	draw.Draw(resized, resized.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(width, height, maxDimension int) (int, int) {
	if width <= maxDimension && height <= maxDimension {
		return width, height
	}
	if width > height {
		h := int(float64(height) * float64(maxDimension) / float64(width))
		if h < 1 {
			h = 1
		}
		return maxDimension, h
	}
	w := int(float64(width) * float64(maxDimension) / float64(height))
	if w < 1 {
		w = 1
	}
	return w, maxDimension
}
