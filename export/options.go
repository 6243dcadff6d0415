// Package export renders recognition results and layout analyses into the
// supported output formats: plain text, HTML, hOCR-compatible XHTML, JSON,
// and per-table CSV. Every exporter is a stateless function of its inputs.
package export

import (
	"sort"

	"github.com/danielsimonjr/paperflow/model"
)

// PageRange selects an inclusive range of 1-based page numbers
type PageRange struct {
	Start int
	End   int
}

// Options holds shared configuration for the exporters
type Options struct {
	// IncludeConfidence adds per-word confidence information where the
	// format supports it (HTML coloring, JSON summaries)
	IncludeConfidence bool

	// IncludeBoundingBoxes emits full bbox-annotated block/line/word
	// trees in the JSON export instead of confidence-only summaries
	IncludeBoundingBoxes bool

	// PreserveLineBreaks keeps line breaks within blocks in text output
	PreserveLineBreaks bool

	// PreserveParagraphs separates blocks with blank lines in text output
	PreserveParagraphs bool

	// PageRange restricts output to the given page numbers (1-based,
	// inclusive). Nil exports every page.
	PageRange *PageRange
}

// DefaultOptions returns the default export options
func DefaultOptions() Options {
	return Options{
		PreserveLineBreaks: true,
		PreserveParagraphs: true,
	}
}

// selectPages returns the page indices to export, sorted ascending and
// filtered by the options' page range.
func selectPages(pages map[int]*model.PageResult, opts Options) []int {
	indices := make([]int, 0, len(pages))
	for idx := range pages {
		if opts.PageRange != nil {
			number := idx + 1
			if number < opts.PageRange.Start || number > opts.PageRange.End {
				continue
			}
		}
		indices = append(indices, idx)
	}

	sort.Ints(indices)
	return indices
}
