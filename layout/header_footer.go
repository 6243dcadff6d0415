package layout

import (
	"github.com/danielsimonjr/paperflow/model"
)

// RegionType classifies a detected text region
type RegionType int

const (
	// RegionHeader is page-header content near the top edge
	RegionHeader RegionType = iota
	// RegionFooter is page-footer content near the bottom edge
	RegionFooter
	// RegionParagraph is regular body text
	RegionParagraph
	// RegionHeading is a section heading
	RegionHeading
	// RegionCaption is a figure or table caption
	RegionCaption
)

// String returns a string representation of the region type
func (t RegionType) String() string {
	switch t {
	case RegionHeader:
		return "header"
	case RegionFooter:
		return "footer"
	case RegionHeading:
		return "heading"
	case RegionCaption:
		return "caption"
	default:
		return "paragraph"
	}
}

// TextRegion represents a classified text region such as a header or footer
type TextRegion struct {
	// ID is the 0-based region index within its list
	ID int

	// BBox is the bounding box of the region
	BBox model.BBox

	// Text is the text content of the region
	Text string

	// Type classifies the region
	Type RegionType

	// Confidence is the aggregate recognition confidence (0-100)
	Confidence float64
}

// HeaderFooterClassifier partitions top-level blocks into header, footer,
// and body content by vertical position.
type HeaderFooterClassifier struct {
	// Threshold is the fraction of the page height considered the header
	// band at the top and the footer band at the bottom.
	// Default: 0.10
	Threshold float64
}

// NewHeaderFooterClassifier creates a classifier with the default threshold
func NewHeaderFooterClassifier() *HeaderFooterClassifier {
	return &HeaderFooterClassifier{Threshold: 0.10}
}

// Classify splits blocks into headers, footers, and body content. A block
// whose vertical center falls within Threshold of the top edge is a
// header; within Threshold of the bottom edge, a footer; everything else is
// body content destined for column detection. The ordering of headers and
// footers preserves the input block order.
func (c *HeaderFooterClassifier) Classify(blocks []model.Block, pageHeight int) (headers, footers []TextRegion, body []model.Block) {
	headerLimit := float64(pageHeight) * c.Threshold
	footerLimit := float64(pageHeight) * (1 - c.Threshold)

	for _, block := range blocks {
		center := float64(block.BBox.Y0+block.BBox.Y1) / 2

		switch {
		case center < headerLimit:
			headers = append(headers, TextRegion{
				ID:         len(headers),
				BBox:       block.BBox,
				Text:       block.Text,
				Type:       RegionHeader,
				Confidence: block.Confidence,
			})
		case center > footerLimit:
			footers = append(footers, TextRegion{
				ID:         len(footers),
				BBox:       block.BBox,
				Text:       block.Text,
				Type:       RegionFooter,
				Confidence: block.Confidence,
			})
		default:
			body = append(body, block)
		}
	}

	return headers, footers, body
}
