package model

import "time"

// BlockType classifies a recognized block as reported by the recognition
// engine. The tag is advisory only: the layout engine re-derives table
// regions from line geometry rather than trusting it.
type BlockType int

const (
	// BlockText is a regular paragraph-style text block.
	BlockText BlockType = iota
	// BlockTable is a block the recognizer believed to be tabular.
	BlockTable
	// BlockImage is a non-text image region.
	BlockImage
	// BlockHorizontalLine is a horizontal rule.
	BlockHorizontalLine
	// BlockVerticalLine is a vertical rule.
	BlockVerticalLine
	// BlockUnknown is anything the recognizer could not classify.
	BlockUnknown
)

// String returns the string representation of the block type
func (t BlockType) String() string {
	switch t {
	case BlockText:
		return "text"
	case BlockTable:
		return "table"
	case BlockImage:
		return "image"
	case BlockHorizontalLine:
		return "horizontal_line"
	case BlockVerticalLine:
		return "vertical_line"
	default:
		return "unknown"
	}
}

// Baseline describes the text baseline of a line as a linear function of
// the horizontal position, matching the hOCR "baseline slope offset" form.
// The offset is measured in pixels from the bottom of the line's bounding box.
type Baseline struct {
	Slope  float64
	Offset float64
}

// Word is the leaf unit of recognized text. Each word is owned by exactly
// one Line.
type Word struct {
	// Text is the recognized text of the word
	Text string

	// Confidence is the recognition confidence (0-100)
	Confidence float64

	// BBox is the bounding box of the word
	BBox BBox

	// Baseline is the word's baseline, if the engine reported one
	Baseline *Baseline

	// Style flags as reported by the recognition engine
	Bold       bool
	Italic     bool
	Underlined bool
	Monospace  bool

	// FontSize is the estimated font size in pixels (0 if unknown)
	FontSize float64

	// FontName is the font name reported by the engine (may be empty)
	FontName string
}

// Line is an ordered sequence of words sharing a baseline.
type Line struct {
	// Text is the space-joined concatenation of the word texts,
	// in recognition order
	Text string

	// Confidence is the engine-provided aggregate confidence (0-100)
	Confidence float64

	// BBox is the union of the word bounding boxes
	BBox BBox

	// Words in recognition order
	Words []Word

	// Baseline is the line baseline, if available
	Baseline *Baseline
}

// Block is an ordered sequence of lines grouped by the recognition engine.
type Block struct {
	// Text is the text content of the block
	Text string

	// Confidence is the engine-provided aggregate confidence (0-100)
	Confidence float64

	// BBox is the union of the line bounding boxes
	BBox BBox

	// Lines in recognition order
	Lines []Line

	// Type is the advisory block classification from the recognizer
	Type BlockType
}

// PageResult is the complete recognition output for a single page, as
// produced by the recognition engine. It is the sole input to layout
// analysis. Blocks, Lines and Words are consistent flattenings of one
// another: every line is reachable via its parent block, and the flattened
// Lines and Words slices are supplied separately for direct consumption by
// the table and script detectors.
type PageResult struct {
	// Text is the full recognized text of the page
	Text string

	// Confidence is the overall recognition confidence (0-100)
	Confidence float64

	// Blocks in recognition order
	Blocks []Block

	// Lines is the flattened list of all lines on the page
	Lines []Line

	// Words is the flattened list of all words on the page
	Words []Word

	// ProcessingTime is how long recognition took
	ProcessingTime time.Duration

	// Language is the recognition language code (e.g. "en")
	Language string

	// Page is the 0-based page index
	Page int

	// ImageWidth and ImageHeight are the dimensions of the source raster,
	// in pixels. Zero when the engine did not report them.
	ImageWidth  int
	ImageHeight int
}

// Dimensions returns the page dimensions in pixels. When the recognition
// engine did not report the raster size, the union of the block bounding
// boxes is used as a fallback.
func (p *PageResult) Dimensions() (width, height int) {
	if p.ImageWidth > 0 && p.ImageHeight > 0 {
		return p.ImageWidth, p.ImageHeight
	}

	for _, b := range p.Blocks {
		if b.BBox.X1 > width {
			width = b.BBox.X1
		}
		if b.BBox.Y1 > height {
			height = b.BBox.Y1
		}
	}

	return width, height
}
