package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/danielsimonjr/paperflow/layout"
	"github.com/danielsimonjr/paperflow/model"
)

const htmlStyle = `<style>
body { font-family: Georgia, serif; margin: 2em auto; max-width: 52em; color: #222; }
.page { border: 1px solid #ddd; padding: 2em; margin-bottom: 2em; }
.page-number { color: #888; font-size: 0.8em; text-align: right; }
p { line-height: 1.5; }
table { border-collapse: collapse; margin: 1em 0; }
td, th { border: 1px solid #999; padding: 0.3em 0.6em; }
th { background: #f0f0f0; }
.conf-high { color: #222; }
.conf-medium { color: #a67c00; }
.conf-low { color: #b00; }
</style>`

// HTMLDocument renders pages as a complete standalone HTML document with
// inline styling. When opts.IncludeConfidence is set, words are wrapped in
// spans colored by recognition confidence. Tables from the supplied layout
// analyses (keyed by page index) are rendered as <table> elements, with
// <th> cells for inferred header rows.
func HTMLDocument(pages map[int]*model.PageResult, analyses map[int]*layout.Analysis, opts Options) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(`<meta charset="utf-8">` + "\n")
	sb.WriteString("<title>Recognized Document</title>\n")
	sb.WriteString(htmlStyle + "\n")
	sb.WriteString("</head>\n<body>\n")

	for _, idx := range selectPages(pages, opts) {
		var analysis *layout.Analysis
		if analyses != nil {
			analysis = analyses[idx]
		}
		writeHTMLPage(&sb, pages[idx], analysis, idx+1, opts)
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// writeHTMLPage emits one page division
func writeHTMLPage(sb *strings.Builder, page *model.PageResult, analysis *layout.Analysis, number int, opts Options) {
	fmt.Fprintf(sb, "<div class=\"page\">\n<div class=\"page-number\">Page %d</div>\n", number)

	for _, block := range page.Blocks {
		sb.WriteString("<p>")
		if opts.IncludeConfidence {
			writeConfidenceWords(sb, block)
		} else {
			sb.WriteString(html.EscapeString(block.Text))
		}
		sb.WriteString("</p>\n")
	}

	if analysis != nil {
		for i := range analysis.Tables {
			writeHTMLTable(sb, &analysis.Tables[i])
		}
	}

	sb.WriteString("</div>\n")
}

// writeConfidenceWords emits a block's words wrapped in confidence-colored
// spans.
func writeConfidenceWords(sb *strings.Builder, block model.Block) {
	first := true
	for _, line := range block.Lines {
		for _, word := range line.Words {
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(sb, "<span class=\"%s\" title=\"%.1f%%\">%s</span>",
				confidenceClass(word.Confidence), word.Confidence, html.EscapeString(word.Text))
		}
	}
}

// confidenceClass maps a confidence score to a styling class
func confidenceClass(confidence float64) string {
	switch {
	case confidence >= 80:
		return "conf-high"
	case confidence >= 60:
		return "conf-medium"
	default:
		return "conf-low"
	}
}

// writeHTMLTable renders a detected table as an HTML table element
func writeHTMLTable(sb *strings.Builder, table *model.Table) {
	sb.WriteString("<table>\n")

	for r := 0; r < table.Rows; r++ {
		tag := "td"
		if table.HasHeader && r == 0 {
			tag = "th"
		}

		sb.WriteString("<tr>")
		for c := 0; c < table.Cols; c++ {
			fmt.Fprintf(sb, "<%s>%s</%s>", tag, html.EscapeString(table.CellText(r, c)), tag)
		}
		sb.WriteString("</tr>\n")
	}

	sb.WriteString("</table>\n")
}
