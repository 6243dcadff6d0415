package export

import (
	"encoding/json"

	"github.com/danielsimonjr/paperflow/layout"
	"github.com/danielsimonjr/paperflow/model"
)

// jsonBBox is the wire form of a bounding box
type jsonBBox struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// jsonWord is the wire form of a word with full geometry
type jsonWord struct {
	Text       string   `json:"text"`
	Confidence float64  `json:"confidence"`
	BBox       jsonBBox `json:"bbox"`
}

// jsonLine is the wire form of a line with full geometry
type jsonLine struct {
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
	BBox       jsonBBox   `json:"bbox"`
	Words      []jsonWord `json:"words"`
}

// jsonBlock is the wire form of a block. Lines and BBox are present only
// when bounding boxes are requested.
type jsonBlock struct {
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
	Type       string     `json:"type"`
	BBox       *jsonBBox  `json:"bbox,omitempty"`
	Lines      []jsonLine `json:"lines,omitempty"`
}

// jsonTable describes a detected table's schema plus its CSV rendering
type jsonTable struct {
	ID        int      `json:"id"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	HasHeader bool     `json:"hasHeader"`
	BBox      jsonBBox `json:"bbox"`
	CSV       string   `json:"csv"`
}

// jsonLayout is the optional layout section of a page object
type jsonLayout struct {
	MultiColumn      bool        `json:"multiColumn"`
	EstimatedColumns int         `json:"estimatedColumns"`
	Direction        string      `json:"direction"`
	Tables           []jsonTable `json:"tables"`
}

// jsonPage is the per-page output object
type jsonPage struct {
	PageNumber       int         `json:"pageNumber"`
	Text             string      `json:"text"`
	Confidence       float64     `json:"confidence"`
	ProcessingTimeMs int64       `json:"processingTimeMs"`
	Language         string      `json:"language,omitempty"`
	Blocks           []jsonBlock `json:"blocks"`
	Layout           *jsonLayout `json:"layout,omitempty"`
}

// JSONExport renders pages as structured, indented JSON. Each page object
// carries the page number, full text, confidence and processing time, plus
// either full bbox-annotated block/line/word trees or confidence-only block
// summaries depending on opts.IncludeBoundingBoxes. When a layout analysis
// is supplied for a page, a layout section is included with the
// multi-column flag, detected table schemas and each table's CSV rendering.
func JSONExport(pages map[int]*model.PageResult, analyses map[int]*layout.Analysis, opts Options) (string, error) {
	out := make([]jsonPage, 0, len(pages))

	for _, idx := range selectPages(pages, opts) {
		page := pages[idx]

		jp := jsonPage{
			PageNumber:       idx + 1,
			Text:             page.Text,
			Confidence:       page.Confidence,
			ProcessingTimeMs: page.ProcessingTime.Milliseconds(),
			Language:         page.Language,
			Blocks:           jsonBlocks(page, opts),
		}

		if analyses != nil {
			if analysis := analyses[idx]; analysis != nil {
				jp.Layout = jsonLayoutSection(analysis)
			}
		}

		out = append(out, jp)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// jsonBlocks converts a page's blocks per the bounding-box option
func jsonBlocks(page *model.PageResult, opts Options) []jsonBlock {
	blocks := make([]jsonBlock, 0, len(page.Blocks))

	for _, block := range page.Blocks {
		jb := jsonBlock{
			Text:       block.Text,
			Confidence: block.Confidence,
			Type:       block.Type.String(),
		}

		if opts.IncludeBoundingBoxes {
			bbox := toJSONBBox(block.BBox)
			jb.BBox = &bbox
			jb.Lines = jsonLines(block.Lines)
		}

		blocks = append(blocks, jb)
	}

	return blocks
}

// jsonLines converts lines (and their words) to wire form
func jsonLines(lines []model.Line) []jsonLine {
	out := make([]jsonLine, len(lines))
	for i, line := range lines {
		words := make([]jsonWord, len(line.Words))
		for j, word := range line.Words {
			words[j] = jsonWord{
				Text:       word.Text,
				Confidence: word.Confidence,
				BBox:       toJSONBBox(word.BBox),
			}
		}
		out[i] = jsonLine{
			Text:       line.Text,
			Confidence: line.Confidence,
			BBox:       toJSONBBox(line.BBox),
			Words:      words,
		}
	}
	return out
}

// jsonLayoutSection converts a layout analysis to its wire form
func jsonLayoutSection(analysis *layout.Analysis) *jsonLayout {
	section := &jsonLayout{
		MultiColumn:      analysis.MultiColumn,
		EstimatedColumns: analysis.EstimatedColumns,
		Direction:        analysis.Direction.String(),
		Tables:           []jsonTable{},
	}

	for i := range analysis.Tables {
		table := &analysis.Tables[i]
		section.Tables = append(section.Tables, jsonTable{
			ID:        table.ID,
			Rows:      table.Rows,
			Cols:      table.Cols,
			HasHeader: table.HasHeader,
			BBox:      toJSONBBox(table.BBox),
			CSV:       TableToCSV(table),
		})
	}

	return section
}

// toJSONBBox converts a model bounding box to wire form
func toJSONBBox(b model.BBox) jsonBBox {
	return jsonBBox{X0: b.X0, Y0: b.Y0, X1: b.X1, Y1: b.Y1}
}
