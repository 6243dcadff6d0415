package export

import (
	"testing"

	"github.com/danielsimonjr/paperflow/model"
)

func TestTableToCSV_Grid(t *testing.T) {
	got := TableToCSV(sampleTable())
	want := "\"Name\",\"Qty\",\"Price\"\n\"Bolt\",\"12\",\"0.40\""
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTableToCSV_QuotesDoubled(t *testing.T) {
	table := &model.Table{
		Rows: 1,
		Cols: 1,
		Cells: []model.TableCell{
			{Row: 0, Col: 0, Text: `3" bolt`},
		},
	}

	got := TableToCSV(table)
	want := `"3"" bolt"`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTableToCSV_MissingCellsEmpty(t *testing.T) {
	// Grid position (1,1) has no detected cell
	table := &model.Table{
		Rows: 2,
		Cols: 2,
		Cells: []model.TableCell{
			{Row: 0, Col: 0, Text: "a"},
			{Row: 0, Col: 1, Text: "b"},
			{Row: 1, Col: 0, Text: "c"},
		},
	}

	got := TableToCSV(table)
	want := "\"a\",\"b\"\n\"c\",\"\""
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTableToCSV_Empty(t *testing.T) {
	if got := TableToCSV(nil); got != "" {
		t.Errorf("expected empty output for nil table, got %q", got)
	}
	if got := TableToCSV(&model.Table{}); got != "" {
		t.Errorf("expected empty output for zero-size table, got %q", got)
	}
}

func TestTableToCSV_EmbeddedNewlinesAndCommas(t *testing.T) {
	table := &model.Table{
		Rows: 1,
		Cols: 2,
		Cells: []model.TableCell{
			{Row: 0, Col: 0, Text: "a,b"},
			{Row: 0, Col: 1, Text: "c\nd"},
		},
	}

	got := TableToCSV(table)
	want := "\"a,b\",\"c\nd\""
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
