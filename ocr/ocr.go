//go:build ocr

// Package ocr adapts the Tesseract recognition engine (via gosseract) to
// the paperflow data model. Recognize runs Tesseract over raw image bytes
// and converts its hOCR output into a model.PageResult ready for layout
// analysis.
//
// This implementation requires Tesseract to be installed and the "ocr"
// build tag to be set:
//
//	go build -tags ocr
//
// On macOS, install Tesseract via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/danielsimonjr/paperflow/model"
)

// Client wraps Tesseract for recognition.
type Client struct {
	client   *gosseract.Client
	language string
}

// New creates a new recognition client. The client should be closed when
// no longer needed to release Tesseract resources.
func New() (*Client, error) {
	return &Client{
		client:   gosseract.NewClient(),
		language: "eng",
	}, nil
}

// Close releases recognition resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) used for recognition. Multiple
// languages can be specified as a "+" separated string (e.g. "eng+fra").
// Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	if err := c.client.SetLanguage(lang); err != nil {
		return err
	}
	c.language = lang
	return nil
}

// Recognize runs recognition on image data (PNG, TIFF, JPEG, etc.) and
// returns the structured page result, including block/line/word geometry
// parsed from Tesseract's hOCR output.
func (c *Client) Recognize(imageData []byte) (*model.PageResult, error) {
	start := time.Now()

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("setting image: %w", err)
	}

	hocrText, err := c.client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	page, err := ParseHOCR(strings.NewReader(hocrText))
	if err != nil {
		return nil, err
	}

	page.ProcessingTime = time.Since(start)
	page.Language = CanonicalLanguage(c.language)

	return page, nil
}
