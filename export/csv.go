package export

import (
	"strings"

	"github.com/danielsimonjr/paperflow/model"
)

// TableToCSV renders a table's cell grid as CSV with RFC-4180-style
// quoting: every field is quoted, embedded quotes are doubled, and grid
// positions with no detected content render as empty quoted strings. Rows
// are emitted in row-major order, one line per table row.
func TableToCSV(table *model.Table) string {
	if table == nil || table.Rows == 0 || table.Cols == 0 {
		return ""
	}

	rows := make([]string, table.Rows)
	for r := 0; r < table.Rows; r++ {
		fields := make([]string, table.Cols)
		for c := 0; c < table.Cols; c++ {
			fields[c] = quoteCSV(table.CellText(r, c))
		}
		rows[r] = strings.Join(fields, ",")
	}

	return strings.Join(rows, "\n")
}

// quoteCSV wraps a field in double quotes, doubling embedded quotes
func quoteCSV(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
