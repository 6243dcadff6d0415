package tables

import (
	"sort"

	"github.com/danielsimonjr/paperflow/model"
)

// Config holds table detector configuration
type Config struct {
	// MinTableCells is the minimum number of lines a candidate region
	// must accumulate before it is committed as a table.
	// Default: 4
	MinTableCells int

	// LineOverlapThreshold is the minimum vertical overlap, as a fraction
	// of the shorter line's height, for two lines to share a row.
	// Default: 0.5
	LineOverlapThreshold float64

	// ColumnProximity is the clustering distance in pixels for grouping
	// line left edges into column boundaries.
	// Default: 20
	ColumnProximity int

	// HeaderHeightRatio is how much taller the first row's lines must be,
	// relative to the second row's, to infer a header row.
	// Default: 1.1 (10% taller)
	HeaderHeightRatio float64
}

// DefaultConfig returns the default detector configuration
func DefaultConfig() Config {
	return Config{
		MinTableCells:        4,
		LineOverlapThreshold: 0.5,
		ColumnProximity:      20,
		HeaderHeightRatio:    1.1,
	}
}

// Detector identifies row-aligned groups of lines that form a grid and
// emits cell grids with header-row inference.
type Detector struct {
	config Config
}

// NewDetector creates a table detector with default configuration
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a table detector with custom configuration
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect finds tables in the page's flattened lines. Lines are grouped
// into rows by vertical overlap; consecutive rows holding two or more
// lines accumulate into a candidate region, which is committed once its
// line count reaches MinTableCells. Candidates that never reach the
// threshold are silently discarded.
func (d *Detector) Detect(lines []model.Line) []model.Table {
	if len(lines) == 0 {
		return nil
	}

	rows := d.groupRows(lines)

	var tables []model.Table
	var candidate []model.Line

	commit := func() {
		if len(candidate) >= d.config.MinTableCells {
			if table := d.buildTable(candidate); table != nil {
				table.ID = len(tables)
				tables = append(tables, *table)
			}
		}
		candidate = nil
	}

	for _, row := range rows {
		if len(row) >= 2 {
			candidate = append(candidate, row...)
		} else {
			commit()
		}
	}
	commit()

	return tables
}

// groupRows sorts lines by top edge and groups consecutive lines into the
// same row when their vertical extents overlap by more than the configured
// fraction of the shorter line's height.
func (d *Detector) groupRows(lines []model.Line) [][]model.Line {
	sorted := make([]model.Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
	})

	var rows [][]model.Line
	current := []model.Line{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		prev := current[len(current)-1].BBox
		next := sorted[i].BBox

		shorter := prev.Height()
		if next.Height() < shorter {
			shorter = next.Height()
		}

		overlap := prev.VerticalOverlap(next)
		if shorter > 0 && float64(overlap) > d.config.LineOverlapThreshold*float64(shorter) {
			current = append(current, sorted[i])
		} else {
			rows = append(rows, current)
			current = []model.Line{sorted[i]}
		}
	}
	rows = append(rows, current)

	return rows
}

// buildTable constructs a cell grid from a committed candidate region.
// Returns nil when the candidate has fewer than 2 lines.
func (d *Detector) buildTable(lines []model.Line) *model.Table {
	if len(lines) < 2 {
		return nil
	}

	rows := d.groupRows(lines)
	boundaries := d.columnBoundaries(lines)
	if len(boundaries) == 0 {
		return nil
	}

	table := &model.Table{
		Rows: len(rows),
		Cols: len(boundaries),
	}

	boxes := make([]model.BBox, 0, len(lines))

	for rowIdx, row := range rows {
		for _, line := range row {
			col := columnFor(line.BBox.X0, boundaries)
			appendCell(table, rowIdx, col, line)
			boxes = append(boxes, line.BBox)
		}
	}

	table.BBox = model.UnionAll(boxes)
	table.HasHeader = d.detectHeaderRow(rows)

	return table
}

// columnBoundaries clusters the distinct line left edges into column
// boundary positions. Each cluster is represented by its leftmost member so
// that every member edge sits at or right of its boundary.
func (d *Detector) columnBoundaries(lines []model.Line) []int {
	xs := make([]int, 0, len(lines))
	for _, line := range lines {
		xs = append(xs, line.BBox.X0)
	}
	sort.Ints(xs)

	var boundaries []int
	for _, x := range xs {
		if len(boundaries) == 0 || x-boundaries[len(boundaries)-1] > d.config.ColumnProximity {
			boundaries = append(boundaries, x)
		}
	}

	return boundaries
}

// columnFor returns the index of the nearest boundary at or left of x
func columnFor(x int, boundaries []int) int {
	col := 0
	for i, b := range boundaries {
		if b <= x {
			col = i
		}
	}
	return col
}

// appendCell adds a line's content to the cell at (row, col), merging with
// any content already mapped there.
func appendCell(table *model.Table, row, col int, line model.Line) {
	if cell := table.Cell(row, col); cell != nil {
		if cell.Text != "" && line.Text != "" {
			cell.Text += " "
		}
		cell.Text += line.Text
		cell.BBox = cell.BBox.Union(line.BBox)
		return
	}

	table.Cells = append(table.Cells, model.TableCell{
		Row:        row,
		Col:        col,
		RowSpan:    1,
		ColSpan:    1,
		BBox:       line.BBox,
		Text:       line.Text,
		Confidence: line.Confidence,
	})
}

// detectHeaderRow compares the average line height of the first two rows.
// A first row more than HeaderHeightRatio times taller suggests a styled
// header row.
func (d *Detector) detectHeaderRow(rows [][]model.Line) bool {
	if len(rows) < 2 {
		return false
	}

	first := averageHeight(rows[0])
	second := averageHeight(rows[1])

	return second > 0 && first > second*d.config.HeaderHeightRatio
}

// averageHeight returns the mean bounding-box height of a row's lines
func averageHeight(row []model.Line) float64 {
	if len(row) == 0 {
		return 0
	}

	total := 0
	for _, line := range row {
		total += line.BBox.Height()
	}

	return float64(total) / float64(len(row))
}
