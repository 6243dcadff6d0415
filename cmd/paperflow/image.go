package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	// Raster formats accepted for scanned pages.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// loadImage reads a raster file, validates it, and returns bytes suitable
// for the recognition engine along with the pixel dimensions. PNG, JPEG,
// TIFF and BMP pass through untouched; anything else that decodes is
// re-encoded as PNG.
func loadImage(path string) (data []byte, width, height int, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	switch format {
	case "png", "jpeg", "tiff", "bmp":
		return data, cfg.Width, cfg.Height, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, 0, 0, fmt.Errorf("converting %s to png: %w", path, err)
	}

	return buf.Bytes(), cfg.Width, cfg.Height, nil
}
