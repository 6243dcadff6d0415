package layout

import (
	"sort"

	"github.com/danielsimonjr/paperflow/model"
)

// RegionKind classifies an entry in the reconstructed reading order
type RegionKind int

const (
	// KindColumn is a detected text column
	KindColumn RegionKind = iota
	// KindTable is a detected table
	KindTable
	// KindImage is an image region
	KindImage
	// KindHeader is a page header
	KindHeader
	// KindFooter is a page footer
	KindFooter
	// KindParagraph is a standalone paragraph region
	KindParagraph
)

// String returns a string representation of the region kind
func (k RegionKind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindTable:
		return "table"
	case KindImage:
		return "image"
	case KindHeader:
		return "header"
	case KindFooter:
		return "footer"
	default:
		return "paragraph"
	}
}

// Region is a lightweight summary entry in the reading order. It carries
// the id and bounding box of the underlying column, table, image or text
// region, which remains owned by its own list in the Analysis.
type Region struct {
	// ID is the id of the summarized entity within its own list
	ID int

	// Type is the kind of entity this region summarizes
	Type RegionKind

	// BBox is the bounding box of the entity
	BBox model.BBox

	// Order is the definitive linear position in the reconstructed
	// document flow. Across all regions of a page the order values form
	// the contiguous range [0, N) with no gaps or duplicates.
	Order int
}

// ImageRegion represents a non-text image area on the page
type ImageRegion struct {
	// ID is the 0-based image index
	ID int

	// BBox is the bounding box of the image
	BBox model.BBox
}

// rowTolerance is the vertical distance in pixels within which two regions
// are considered to sit on the same row for ordering purposes.
const rowTolerance = 20

// BuildReadingOrder merges headers, body content (columns, tables, images)
// and footers into a single direction-aware linear order. Headers come
// first in their detection order, footers last in theirs; the pooled body
// content is sorted by the page's reading direction:
//
//   - LeftToRight: top-to-bottom rows, left to right within a row
//   - RightToLeft: top-to-bottom rows, right to left within a row
//   - TopToBottom: right-to-left vertical bands, top to bottom within a band
//
// Every region receives a sequential Order value starting at 0.
func BuildReadingOrder(headers, footers []TextRegion, columns []Column, tables []model.Table, images []ImageRegion, dir Direction) []Region {
	regions := make([]Region, 0, len(headers)+len(columns)+len(tables)+len(images)+len(footers))

	for _, h := range headers {
		regions = append(regions, Region{ID: h.ID, Type: KindHeader, BBox: h.BBox, Order: len(regions)})
	}

	content := make([]Region, 0, len(columns)+len(tables)+len(images))
	for _, c := range columns {
		content = append(content, Region{ID: c.ID, Type: KindColumn, BBox: c.BBox})
	}
	for _, t := range tables {
		content = append(content, Region{ID: t.ID, Type: KindTable, BBox: t.BBox})
	}
	for _, img := range images {
		content = append(content, Region{ID: img.ID, Type: KindImage, BBox: img.BBox})
	}

	sortContent(content, dir)

	for _, c := range content {
		c.Order = len(regions)
		regions = append(regions, c)
	}

	for _, f := range footers {
		regions = append(regions, Region{ID: f.ID, Type: KindFooter, BBox: f.BBox, Order: len(regions)})
	}

	return regions
}

// sortContent orders pooled body regions according to the reading direction
func sortContent(content []Region, dir Direction) {
	switch dir {
	case TopToBottom:
		// Vertical text flows in right-to-left columns, top to bottom
		// within each column.
		sort.SliceStable(content, func(i, j int) bool {
			a, b := content[i].BBox, content[j].BBox
			if abs(a.X0-b.X0) > rowTolerance {
				return a.X0 > b.X0
			}
			return a.Y0 < b.Y0
		})
	case RightToLeft:
		sort.SliceStable(content, func(i, j int) bool {
			a, b := content[i].BBox, content[j].BBox
			if abs(a.Y0-b.Y0) > rowTolerance {
				return a.Y0 < b.Y0
			}
			return a.X0 > b.X0
		})
	default:
		sort.SliceStable(content, func(i, j int) bool {
			a, b := content[i].BBox, content[j].BBox
			if abs(a.Y0-b.Y0) > rowTolerance {
				return a.Y0 < b.Y0
			}
			return a.X0 < b.X0
		})
	}
}

// abs returns the absolute value of an int
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
