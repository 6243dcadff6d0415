package paperflow

import "github.com/danielsimonjr/paperflow/export"

// IncludeConfidence enables per-word confidence output in formats that
// support it (HTML coloring, JSON summaries).
func (d *Document) IncludeConfidence() *Document {
	d.opts.IncludeConfidence = true
	return d
}

// IncludeBoundingBoxes emits full bbox-annotated block/line/word trees in
// the JSON export.
func (d *Document) IncludeBoundingBoxes() *Document {
	d.opts.IncludeBoundingBoxes = true
	return d
}

// PreserveLineBreaks keeps line breaks within blocks in plain-text output.
func (d *Document) PreserveLineBreaks(preserve bool) *Document {
	d.opts.PreserveLineBreaks = preserve
	return d
}

// PreserveParagraphs separates blocks with blank lines in plain-text
// output.
func (d *Document) PreserveParagraphs(preserve bool) *Document {
	d.opts.PreserveParagraphs = preserve
	return d
}

// Pages restricts export to the inclusive range of 1-based page numbers.
func (d *Document) Pages(start, end int) *Document {
	d.opts.PageRange = &export.PageRange{Start: start, End: end}
	return d
}
