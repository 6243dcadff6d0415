package layout

import (
	"sort"

	"github.com/danielsimonjr/paperflow/model"
)

// Column represents a detected text column on a page
type Column struct {
	// ID is the 0-based column index
	ID int

	// BBox is the union of the member block bounding boxes
	BBox model.BBox

	// Blocks contained in this column, in input order
	Blocks []model.Block

	// Order is the column's position in the left-to-right sequence (0-based)
	Order int
}

// ColumnDetector partitions body content into column bands using
// horizontal gap analysis.
type ColumnDetector struct {
	// GapRatio is the minimum horizontal gap between adjacent blocks,
	// as a fraction of the page width, to count as a column boundary.
	// Default: 0.03
	GapRatio float64
}

// NewColumnDetector creates a column detector with the default gap ratio
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{GapRatio: 0.03}
}

// Detect partitions blocks into columns. Blocks are scanned left to right;
// any horizontal gap between adjacent blocks exceeding pageWidth*GapRatio
// becomes a column boundary at its midpoint. With no boundary the result is
// a single column holding every block.
//
// This is 1-D interval-gap clustering: it detects column separation, not
// membership by reading flow. A block whose [X0, X1] span straddles a
// boundary fits in no bin and is returned in dropped rather than assigned
// to a column.
func (d *ColumnDetector) Detect(blocks []model.Block, pageWidth int) (columns []Column, dropped []model.Block) {
	if len(blocks) == 0 {
		return nil, nil
	}

	sorted := make([]model.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	boundaries := d.findBoundaries(sorted, pageWidth)

	if len(boundaries) == 0 {
		return []Column{singleColumn(blocks)}, nil
	}

	return binBlocks(blocks, boundaries)
}

// findBoundaries locates split coordinates between blocks sorted by left
// edge. Each qualifying gap contributes its midpoint.
func (d *ColumnDetector) findBoundaries(sorted []model.Block, pageWidth int) []int {
	minGap := float64(pageWidth) * d.GapRatio

	var boundaries []int
	for i := 0; i < len(sorted)-1; i++ {
		prev := sorted[i].BBox
		next := sorted[i+1].BBox

		gap := next.X0 - prev.X1
		if float64(gap) > minGap {
			boundaries = append(boundaries, (prev.X1+next.X0)/2)
		}
	}

	return boundaries
}

// singleColumn wraps all blocks into one column preserving input order
func singleColumn(blocks []model.Block) Column {
	boxes := make([]model.BBox, len(blocks))
	for i, b := range blocks {
		boxes[i] = b.BBox
	}

	return Column{
		ID:     0,
		BBox:   model.UnionAll(boxes),
		Blocks: blocks,
		Order:  0,
	}
}

// binBlocks assigns each block to the bin that fully contains its
// horizontal span. Bins are the half-open intervals between consecutive
// boundaries, extended to the page edges on either side. Blocks straddling
// a boundary are dropped.
func binBlocks(blocks []model.Block, boundaries []int) (columns []Column, dropped []model.Block) {
	bins := make([][]model.Block, len(boundaries)+1)

	for _, block := range blocks {
		idx := binFor(block.BBox, boundaries)
		if idx < 0 {
			dropped = append(dropped, block)
			continue
		}
		bins[idx] = append(bins[idx], block)
	}

	for _, bin := range bins {
		if len(bin) == 0 {
			continue
		}

		col := singleColumn(bin)
		col.ID = len(columns)
		col.Order = len(columns)
		columns = append(columns, col)
	}

	return columns, dropped
}

// binFor returns the index of the bin fully containing [bbox.X0, bbox.X1],
// or -1 if the box straddles a boundary.
func binFor(bbox model.BBox, boundaries []int) int {
	left := -1 << 31
	for i, b := range boundaries {
		if bbox.X0 >= left && bbox.X1 < b {
			return i
		}
		left = b
	}

	if bbox.X0 >= left {
		return len(boundaries)
	}
	return -1
}
