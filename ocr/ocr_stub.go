//go:build !ocr

// Package ocr adapts the Tesseract recognition engine to the paperflow
// data model.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. Client methods return ErrOCRNotEnabled; the hOCR parser
// (ParseHOCR) works in every build and does not require Tesseract.
//
// To enable recognition, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "github.com/danielsimonjr/paperflow/model"

// Client is the recognition client. In this build it is a stub whose
// methods return ErrOCRNotEnabled.
type Client struct{}

// New returns ErrOCRNotEnabled; recognition requires the ocr build tag.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op in the stub build.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// Recognize returns ErrOCRNotEnabled.
func (c *Client) Recognize(imageData []byte) (*model.PageResult, error) {
	return nil, ErrOCRNotEnabled
}
