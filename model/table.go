package model

// TableCell represents a single cell in a detected table grid.
type TableCell struct {
	// Row and Col are the 0-based grid coordinates of the cell
	Row int
	Col int

	// RowSpan and ColSpan are the number of grid rows/columns the cell
	// covers. The detector currently always emits 1/1; merged cells are
	// a known gap.
	RowSpan int
	ColSpan int

	// BBox is the bounding box of the cell content
	BBox BBox

	// Text is the text content of the cell
	Text string

	// Confidence is the aggregate recognition confidence (0-100)
	Confidence float64
}

// Table represents a table detected from line geometry.
type Table struct {
	// ID is the 0-based table index on the page
	ID int

	// BBox is the bounding box of the table
	BBox BBox

	// Rows and Cols are the grid dimensions
	Rows int
	Cols int

	// Cells holds the detected cells in row-major order. Grid positions
	// with no recognized content have no entry.
	Cells []TableCell

	// HasHeader indicates the first row appears to be a header row
	HasHeader bool
}

// Cell returns the cell at the given grid position, or nil if no content
// was detected there.
func (t *Table) Cell(row, col int) *TableCell {
	for i := range t.Cells {
		if t.Cells[i].Row == row && t.Cells[i].Col == col {
			return &t.Cells[i]
		}
	}
	return nil
}

// CellText returns the text of the cell at the given grid position, or the
// empty string if no content was detected there.
func (t *Table) CellText(row, col int) string {
	if c := t.Cell(row, col); c != nil {
		return c.Text
	}
	return ""
}
