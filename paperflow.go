// Package paperflow provides a fluent API for reconstructing document
// layout from recognition output and exporting the result.
//
// Basic usage:
//
//	doc := paperflow.NewDocument().AddPage(page)
//	text := doc.Text()
//
// With options:
//
//	html := paperflow.NewDocument().
//	    AddPage(page).
//	    IncludeConfidence().
//	    HTML()
//
// For advanced use cases, the lower-level layout and export packages are
// also available.
package paperflow

import (
	"sort"

	"github.com/danielsimonjr/paperflow/export"
	"github.com/danielsimonjr/paperflow/layout"
	"github.com/danielsimonjr/paperflow/model"
)

// Document accumulates recognized pages together with their layout
// analyses and exposes export operations over the set.
type Document struct {
	pages    map[int]*model.PageResult
	analyses map[int]*layout.Analysis
	analyzer *layout.Analyzer
	opts     export.Options
}

// NewDocument creates an empty document using the default layout
// configuration.
func NewDocument() *Document {
	return NewDocumentWithConfig(layout.DefaultConfig())
}

// NewDocumentWithConfig creates an empty document whose pages will be
// analyzed with the given layout configuration.
func NewDocumentWithConfig(config layout.Config) *Document {
	return &Document{
		pages:    make(map[int]*model.PageResult),
		analyses: make(map[int]*layout.Analysis),
		analyzer: layout.NewAnalyzerWithConfig(config),
		opts:     export.DefaultOptions(),
	}
}

// AddPage analyzes a page's layout and adds it to the document, keyed by
// its page index. Adding a page with an existing index replaces it.
func (d *Document) AddPage(page *model.PageResult) *Document {
	d.pages[page.Page] = page
	d.analyses[page.Page] = d.analyzer.Analyze(page)
	return d
}

// Analysis returns the layout analysis for a page index, or nil if the
// page was never added.
func (d *Document) Analysis(pageIndex int) *layout.Analysis {
	return d.analyses[pageIndex]
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Analyze reconstructs the layout of a single page with the default
// configuration. It is a convenience wrapper around layout.NewAnalyzer.
func Analyze(page *model.PageResult) *layout.Analysis {
	return layout.NewAnalyzer().Analyze(page)
}

// Text exports the document as plain text.
func (d *Document) Text() string {
	return export.PlainText(d.pages, d.opts)
}

// HTML exports the document as a standalone styled HTML document.
func (d *Document) HTML() string {
	return export.HTMLDocument(d.pages, d.analyses, d.opts)
}

// HOCR exports the document as hOCR-compatible XHTML.
func (d *Document) HOCR() string {
	return export.HOCRDocument(d.pages, d.opts)
}

// JSON exports the document as structured JSON.
func (d *Document) JSON() (string, error) {
	return export.JSONExport(d.pages, d.analyses, d.opts)
}

// TableCSVs renders every detected table as CSV, in page order then table
// order within each page. One string per table.
func (d *Document) TableCSVs() []string {
	var out []string
	for _, idx := range sortedPageIndices(d.pages) {
		analysis := d.analyses[idx]
		if analysis == nil {
			continue
		}
		for i := range analysis.Tables {
			out = append(out, export.TableToCSV(&analysis.Tables[i]))
		}
	}
	return out
}

// sortedPageIndices returns page indices in ascending order
func sortedPageIndices(pages map[int]*model.PageResult) []int {
	indices := make([]int, 0, len(pages))
	for idx := range pages {
		indices = append(indices, idx)
	}

	sort.Ints(indices)
	return indices
}
