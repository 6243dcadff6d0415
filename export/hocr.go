package export

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/danielsimonjr/paperflow/model"
)

// HOCRDocument renders pages as hOCR-compatible XHTML. The element hierarchy is
// ocr_page > ocr_carea > ocr_line > ocrx_word, each carrying a title
// attribute with its bounding box; words additionally carry the rounded
// recognition confidence as x_wconf and lines encode their baseline when
// the engine reported one. Consumers depend on the exact attribute syntax
// ("bbox x0 y0 x1 y1; x_wconf N"), so it must not be reformatted.
func HOCRDocument(pages map[int]*model.PageResult, opts Options) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">` + "\n")
	sb.WriteString(`<html xmlns="http://www.w3.org/1999/xhtml">` + "\n")
	sb.WriteString("<head>\n")
	sb.WriteString("<title></title>\n")
	sb.WriteString(`<meta http-equiv="Content-Type" content="text/html;charset=utf-8" />` + "\n")
	sb.WriteString(`<meta name="ocr-system" content="paperflow" />` + "\n")
	sb.WriteString(`<meta name="ocr-capabilities" content="ocr_page ocr_carea ocr_line ocrx_word" />` + "\n")
	sb.WriteString("</head>\n<body>\n")

	for _, idx := range selectPages(pages, opts) {
		writeHOCRPage(&sb, pages[idx], idx+1)
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// writeHOCRPage emits one ocr_page element with its nested content
func writeHOCRPage(sb *strings.Builder, page *model.PageResult, number int) {
	width, height := page.Dimensions()

	fmt.Fprintf(sb, "<div class=\"ocr_page\" id=\"page_%d\" title=\"image unknown; bbox 0 0 %d %d; ppageno %d\">\n",
		number, width, height, number-1)

	wordID := 0
	for bi, block := range page.Blocks {
		fmt.Fprintf(sb, " <div class=\"ocr_carea\" id=\"block_%d_%d\" title=\"%s\">\n",
			number, bi+1, bboxTitle(block.BBox))

		for li, line := range block.Lines {
			fmt.Fprintf(sb, "  <span class=\"ocr_line\" id=\"line_%d_%d_%d\" title=\"%s\">",
				number, bi+1, li+1, lineTitle(line))

			for _, word := range line.Words {
				wordID++
				fmt.Fprintf(sb, "<span class=\"ocrx_word\" id=\"word_%d_%d\" title=\"%s; x_wconf %d\">%s</span> ",
					number, wordID, bboxTitle(word.BBox),
					int(math.Round(word.Confidence)), html.EscapeString(word.Text))
			}

			sb.WriteString("</span>\n")
		}

		sb.WriteString(" </div>\n")
	}

	sb.WriteString("</div>\n")
}

// bboxTitle encodes a bounding box in hOCR title syntax
func bboxTitle(b model.BBox) string {
	return fmt.Sprintf("bbox %d %d %d %d", b.X0, b.Y0, b.X1, b.Y1)
}

// lineTitle encodes a line's bounding box plus its baseline when available
func lineTitle(line model.Line) string {
	title := bboxTitle(line.BBox)
	if line.Baseline != nil {
		title += "; baseline " +
			strconv.FormatFloat(line.Baseline.Slope, 'g', -1, 64) + " " +
			strconv.FormatFloat(line.Baseline.Offset, 'g', -1, 64)
	}
	return title
}
