package tables

import (
	"testing"

	"github.com/danielsimonjr/paperflow/model"
)

// makeLine creates a line with a single word covering the same box
func makeLine(x0, y0, x1, y1 int, text string) model.Line {
	bbox := model.NewBBox(x0, y0, x1, y1)
	return model.Line{
		Text:       text,
		Confidence: 90,
		BBox:       bbox,
		Words: []model.Word{
			{Text: text, Confidence: 90, BBox: bbox},
		},
	}
}

// gridLines builds rows*cols aligned lines forming a regular grid.
// Rows start at y=100 with rowHeight tall lines and a 20px row gap;
// columns start at x=100 spaced 200px apart.
func gridLines(rows, cols, rowHeight int, texts []string) []model.Line {
	var lines []model.Line
	i := 0
	for r := 0; r < rows; r++ {
		y0 := 100 + r*(rowHeight+20)
		for c := 0; c < cols; c++ {
			x0 := 100 + c*200
			text := ""
			if i < len(texts) {
				text = texts[i]
			}
			lines = append(lines, makeLine(x0, y0, x0+150, y0+rowHeight, text))
			i++
		}
	}
	return lines
}

func TestDetector_EmptyInput(t *testing.T) {
	detector := NewDetector()

	if tables := detector.Detect(nil); len(tables) != 0 {
		t.Errorf("expected no tables for empty input, got %d", len(tables))
	}
}

func TestDetector_ProseIsNotATable(t *testing.T) {
	detector := NewDetector()

	// One line per row: nothing ever looks tabular
	lines := []model.Line{
		makeLine(50, 100, 550, 120, "The first paragraph line."),
		makeLine(50, 140, 540, 160, "The second paragraph line."),
		makeLine(50, 180, 530, 200, "The third paragraph line."),
	}

	if tables := detector.Detect(lines); len(tables) != 0 {
		t.Errorf("expected no tables for prose, got %d", len(tables))
	}
}

func TestDetector_TwoByThreeGrid(t *testing.T) {
	detector := NewDetector()

	lines := gridLines(2, 3, 20, []string{"Name", "Qty", "Price", "Bolt", "12", "0.40"})

	tables := detector.Detect(lines)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if table.Rows != 2 || table.Cols != 3 {
		t.Fatalf("expected 2x3 grid, got %dx%d", table.Rows, table.Cols)
	}
	if table.ID != 0 {
		t.Errorf("expected table ID 0, got %d", table.ID)
	}

	want := [][]string{
		{"Name", "Qty", "Price"},
		{"Bolt", "12", "0.40"},
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if got := table.CellText(r, c); got != want[r][c] {
				t.Errorf("cell (%d,%d): expected %q, got %q", r, c, want[r][c], got)
			}
		}
	}
}

func TestDetector_CellSpansAlwaysOne(t *testing.T) {
	detector := NewDetector()

	tables := detector.Detect(gridLines(2, 2, 20, []string{"a", "b", "c", "d"}))
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	for _, cell := range tables[0].Cells {
		if cell.RowSpan != 1 || cell.ColSpan != 1 {
			t.Errorf("cell (%d,%d): expected spans 1/1, got %d/%d",
				cell.Row, cell.Col, cell.RowSpan, cell.ColSpan)
		}
	}
}

func TestDetector_BelowMinCellsDiscarded(t *testing.T) {
	detector := NewDetector()

	// A single two-line row accumulates only 2 lines, under the default
	// minimum of 4, so the candidate is silently dropped.
	lines := []model.Line{
		makeLine(100, 100, 250, 120, "left"),
		makeLine(400, 100, 550, 120, "right"),
		makeLine(50, 200, 550, 220, "following paragraph text"),
	}

	if tables := detector.Detect(lines); len(tables) != 0 {
		t.Errorf("expected candidate below MinTableCells dropped, got %d tables", len(tables))
	}
}

func TestDetector_MinCellsConfigurable(t *testing.T) {
	config := DefaultConfig()
	config.MinTableCells = 2
	detector := NewDetectorWithConfig(config)

	lines := []model.Line{
		makeLine(100, 100, 250, 120, "left"),
		makeLine(400, 100, 550, 120, "right"),
	}

	if tables := detector.Detect(lines); len(tables) != 1 {
		t.Errorf("expected 1 table with MinTableCells=2, got %d", len(tables))
	}
}

func TestDetector_HeaderRowDetected(t *testing.T) {
	detector := NewDetector()

	// First row lines are 30px tall, second row 20px: more than 10%
	// taller, so the first row reads as a header.
	var lines []model.Line
	for c := 0; c < 2; c++ {
		x0 := 100 + c*200
		lines = append(lines, makeLine(x0, 100, x0+150, 130, "head"))
	}
	for c := 0; c < 2; c++ {
		x0 := 100 + c*200
		lines = append(lines, makeLine(x0, 150, x0+150, 170, "body"))
	}

	tables := detector.Detect(lines)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if !tables[0].HasHeader {
		t.Error("expected HasHeader true for taller first row")
	}
}

func TestDetector_UniformRowsHaveNoHeader(t *testing.T) {
	detector := NewDetector()

	tables := detector.Detect(gridLines(2, 2, 20, []string{"a", "b", "c", "d"}))
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if tables[0].HasHeader {
		t.Error("expected HasHeader false for uniform row heights")
	}
}

func TestDetector_TableBBoxCoversAllCells(t *testing.T) {
	detector := NewDetector()

	tables := detector.Detect(gridLines(2, 2, 20, []string{"a", "b", "c", "d"}))
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	want := model.BBox{X0: 100, Y0: 100, X1: 450, Y1: 160}
	if tables[0].BBox != want {
		t.Errorf("expected table bbox %v, got %v", want, tables[0].BBox)
	}
}

func TestDetector_SeparateRegionsYieldSeparateTables(t *testing.T) {
	detector := NewDetector()

	first := gridLines(2, 2, 20, []string{"a", "b", "c", "d"})

	// A second grid far below, split from the first by a prose line
	var second []model.Line
	for r := 0; r < 2; r++ {
		y0 := 600 + r*40
		for c := 0; c < 2; c++ {
			x0 := 100 + c*200
			second = append(second, makeLine(x0, y0, x0+150, y0+20, "x"))
		}
	}

	lines := append([]model.Line{}, first...)
	lines = append(lines, makeLine(50, 400, 550, 420, "interleaved paragraph"))
	lines = append(lines, second...)

	tables := detector.Detect(lines)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[0].ID != 0 || tables[1].ID != 1 {
		t.Errorf("expected sequential table IDs, got %d and %d", tables[0].ID, tables[1].ID)
	}
}

func TestDetector_RowGroupingByOverlap(t *testing.T) {
	detector := NewDetector()

	// Slightly offset lines still share a row when overlap exceeds half
	// the shorter line's height.
	lines := []model.Line{
		makeLine(100, 100, 250, 120, "a"),
		makeLine(400, 104, 550, 124, "b"), // 16px overlap of 20px height
		makeLine(100, 150, 250, 170, "c"),
		makeLine(400, 154, 550, 174, "d"),
	}

	tables := detector.Detect(lines)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if tables[0].Rows != 2 {
		t.Errorf("expected 2 rows from overlap grouping, got %d", tables[0].Rows)
	}
}
