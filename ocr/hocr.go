package ocr

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/danielsimonjr/paperflow/model"
)

// ErrOCRNotEnabled is returned by Client methods when OCR support was not
// compiled in. Rebuild with -tags ocr to enable recognition.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ParseHOCR parses hOCR output from a recognition engine into a
// model.PageResult. It understands the standard hOCR hierarchy
// (ocr_page > ocr_carea > ocr_line > ocrx_word, with ocr_par passed
// through transparently) and the title-attribute syntax for bounding
// boxes, word confidence (x_wconf) and line baselines.
//
// The resulting PageResult carries consistent flattened Lines and Words
// slices alongside the block tree, aggregate confidences averaged up from
// the word level, and the page raster dimensions from the ocr_page bbox.
func ParseHOCR(r io.Reader) (*model.PageResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	page := &model.PageResult{}
	walkHOCR(doc, page)
	finalizePage(page)

	return page, nil
}

// walkHOCR recursively visits HTML nodes, collecting recognized content
func walkHOCR(n *html.Node, page *model.PageResult) {
	if n.Type == html.ElementNode {
		switch nodeClass(n) {
		case "ocr_page":
			if bbox, ok := titleBBox(nodeTitle(n)); ok {
				page.ImageWidth = bbox.Width()
				page.ImageHeight = bbox.Height()
			}
		case "ocr_carea":
			block := parseBlock(n)
			if len(block.Lines) > 0 {
				page.Blocks = append(page.Blocks, block)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHOCR(c, page)
	}
}

// parseBlock collects the lines nested under a content area
func parseBlock(n *html.Node) model.Block {
	block := model.Block{Type: model.BlockText}
	collectLines(n, &block)

	boxes := make([]model.BBox, len(block.Lines))
	texts := make([]string, len(block.Lines))
	total := 0.0
	for i, line := range block.Lines {
		boxes[i] = line.BBox
		texts[i] = line.Text
		total += line.Confidence
	}

	block.BBox = model.UnionAll(boxes)
	block.Text = strings.Join(texts, "\n")
	if len(block.Lines) > 0 {
		block.Confidence = total / float64(len(block.Lines))
	}

	return block
}

// collectLines descends through paragraph wrappers gathering ocr_line spans
func collectLines(n *html.Node, block *model.Block) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.HasPrefix(nodeClass(c), "ocr_line") {
			if line, ok := parseLine(c); ok {
				block.Lines = append(block.Lines, line)
			}
			continue
		}
		collectLines(c, block)
	}
}

// parseLine builds a Line from an ocr_line element and its word spans
func parseLine(n *html.Node) (model.Line, bool) {
	title := nodeTitle(n)

	line := model.Line{}
	if bbox, ok := titleBBox(title); ok {
		line.BBox = bbox
	}
	line.Baseline = titleBaseline(title)

	var texts []string
	total := 0.0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || nodeClass(c) != "ocrx_word" {
			continue
		}
		word := parseWord(c)
		if word.Text == "" {
			continue
		}
		line.Words = append(line.Words, word)
		texts = append(texts, word.Text)
		total += word.Confidence
	}

	if len(line.Words) == 0 {
		return model.Line{}, false
	}

	line.Text = strings.Join(texts, " ")
	line.Confidence = total / float64(len(line.Words))

	return line, true
}

// parseWord builds a Word from an ocrx_word element
func parseWord(n *html.Node) model.Word {
	title := nodeTitle(n)

	word := model.Word{Text: strings.TrimSpace(nodeText(n))}
	if bbox, ok := titleBBox(title); ok {
		word.BBox = bbox
	}
	if conf, ok := titleField(title, "x_wconf"); ok {
		if v, err := strconv.ParseFloat(conf[0], 64); err == nil {
			word.Confidence = v
		}
	}
	if size, ok := titleField(title, "x_fsize"); ok {
		if v, err := strconv.ParseFloat(size[0], 64); err == nil {
			word.FontSize = v
		}
	}

	return word
}

// finalizePage fills the flattened Lines/Words slices, the page text, and
// the overall confidence from the parsed block tree.
func finalizePage(page *model.PageResult) {
	var texts []string
	total := 0.0
	wordCount := 0

	for _, block := range page.Blocks {
		texts = append(texts, block.Text)
		for _, line := range block.Lines {
			page.Lines = append(page.Lines, line)
			for _, word := range line.Words {
				page.Words = append(page.Words, word)
				total += word.Confidence
				wordCount++
			}
		}
	}

	page.Text = strings.Join(texts, "\n\n")
	if wordCount > 0 {
		page.Confidence = total / float64(wordCount)
	}
}

// nodeClass returns the element's class attribute
func nodeClass(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return attr.Val
		}
	}
	return ""
}

// nodeTitle returns the element's title attribute
func nodeTitle(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "title" {
			return attr.Val
		}
	}
	return ""
}

// nodeText returns the concatenated text content of a node's subtree
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

// titleField looks up a named property in an hOCR title attribute, which
// is a semicolon-separated list of "name value..." entries. Returns the
// value tokens.
func titleField(title, name string) ([]string, bool) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) > 1 && fields[0] == name {
			return fields[1:], true
		}
	}
	return nil, false
}

// titleBBox extracts the bbox entry from a title attribute
func titleBBox(title string) (model.BBox, bool) {
	fields, ok := titleField(title, "bbox")
	if !ok || len(fields) != 4 {
		return model.BBox{}, false
	}

	coords := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return model.BBox{}, false
		}
		coords[i] = v
	}

	return model.NewBBox(coords[0], coords[1], coords[2], coords[3]), true
}

// titleBaseline extracts the baseline entry from a title attribute
func titleBaseline(title string) *model.Baseline {
	fields, ok := titleField(title, "baseline")
	if !ok || len(fields) != 2 {
		return nil
	}

	slope, err1 := strconv.ParseFloat(fields[0], 64)
	offset, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return nil
	}

	return &model.Baseline{Slope: slope, Offset: offset}
}

// CanonicalLanguage normalizes a recognition-engine language code to a
// BCP 47 tag where possible (e.g. Tesseract's "eng" becomes "en"). Codes
// that cannot be parsed are returned unchanged; for multi-language codes
// like "eng+fra" the first language is used.
func CanonicalLanguage(code string) string {
	if code == "" {
		return ""
	}

	first := code
	if i := strings.Index(code, "+"); i >= 0 {
		first = code[:i]
	}

	if tag, err := language.Parse(first); err == nil {
		return tag.String()
	}
	return first
}
