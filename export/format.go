package export

import (
	"path/filepath"
	"strings"
)

// Format represents a supported export format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates plain UTF-8 text output.
	Text
	// HTML indicates a standalone styled HTML document.
	HTML
	// HOCR indicates hOCR-compatible XHTML output.
	HOCR
	// JSON indicates structured JSON output.
	JSON
	// CSV indicates per-table CSV output.
	CSV
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case HTML:
		return "html"
	case HOCR:
		return "hocr"
	case JSON:
		return "json"
	case CSV:
		return "csv"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	case HOCR:
		return ".hocr"
	case JSON:
		return ".json"
	case CSV:
		return ".csv"
	default:
		return ""
	}
}

// DetectFormat determines the export format from a file path's extension.
// Returns Unknown for unrecognized extensions.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return Text
	case ".html", ".htm":
		return HTML
	case ".hocr":
		return HOCR
	case ".json":
		return JSON
	case ".csv":
		return CSV
	default:
		return Unknown
	}
}

// ParseFormat parses a format name such as "text" or "hocr". Returns
// Unknown for unrecognized names.
func ParseFormat(name string) Format {
	switch strings.ToLower(name) {
	case "text", "txt", "plain":
		return Text
	case "html":
		return HTML
	case "hocr":
		return HOCR
	case "json":
		return JSON
	case "csv":
		return CSV
	default:
		return Unknown
	}
}
