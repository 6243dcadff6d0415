package export

import (
	"github.com/danielsimonjr/paperflow/model"
)

// makeWord builds a word whose box matches the given coordinates
func makeWord(text string, conf float64, x0, y0, x1, y1 int) model.Word {
	return model.Word{
		Text:       text,
		Confidence: conf,
		BBox:       model.NewBBox(x0, y0, x1, y1),
	}
}

// makePage builds a one-block page from lines of words
func makePage(lines ...[]model.Word) *model.PageResult {
	block := model.Block{Type: model.BlockText}

	var pageLines []model.Line
	var pageWords []model.Word
	var texts []string

	for _, words := range lines {
		var wordTexts []string
		var boxes []model.BBox
		var conf float64
		for _, w := range words {
			wordTexts = append(wordTexts, w.Text)
			boxes = append(boxes, w.BBox)
			conf += w.Confidence
		}
		if len(words) > 0 {
			conf /= float64(len(words))
		}

		line := model.Line{
			Text:       joinWords(wordTexts),
			Confidence: conf,
			BBox:       model.UnionAll(boxes),
			Words:      words,
		}
		pageLines = append(pageLines, line)
		pageWords = append(pageWords, words...)
		texts = append(texts, line.Text)
	}

	block.Lines = pageLines
	block.BBox = model.UnionAll(lineBoxes(pageLines))
	block.Text = joinLines(texts)

	return &model.PageResult{
		Text:        block.Text,
		Confidence:  90,
		Blocks:      []model.Block{block},
		Lines:       pageLines,
		Words:       pageWords,
		ImageWidth:  600,
		ImageHeight: 800,
	}
}

func joinWords(texts []string) string {
	out := ""
	for i, t := range texts {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}

func joinLines(texts []string) string {
	out := ""
	for i, t := range texts {
		if i > 0 {
			out += "\n"
		}
		out += t
	}
	return out
}

func lineBoxes(lines []model.Line) []model.BBox {
	boxes := make([]model.BBox, len(lines))
	for i, l := range lines {
		boxes[i] = l.BBox
	}
	return boxes
}

// sampleTable builds a 2x3 table with a header row
func sampleTable() *model.Table {
	cells := []model.TableCell{
		{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Text: "Name"},
		{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1, Text: "Qty"},
		{Row: 0, Col: 2, RowSpan: 1, ColSpan: 1, Text: "Price"},
		{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Text: "Bolt"},
		{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Text: "12"},
		{Row: 1, Col: 2, RowSpan: 1, ColSpan: 1, Text: "0.40"},
	}
	return &model.Table{
		ID:        0,
		BBox:      model.NewBBox(100, 100, 450, 160),
		Rows:      2,
		Cols:      3,
		Cells:     cells,
		HasHeader: true,
	}
}
