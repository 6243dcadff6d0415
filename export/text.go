package export

import (
	"fmt"
	"strings"

	"github.com/danielsimonjr/paperflow/model"
)

// PlainText renders pages as plain UTF-8 text with a "--- Page N ---"
// separator between consecutive pages.
//
// Blocks and lines are walked in the recognizer's original order, not the
// computed reading order. This preserves the engine's own flow for
// fidelity and is intentional documented behavior.
func PlainText(pages map[int]*model.PageResult, opts Options) string {
	var sb strings.Builder

	for i, idx := range selectPages(pages, opts) {
		page := pages[idx]

		if i > 0 {
			sb.WriteString(fmt.Sprintf("\n\n--- Page %d ---\n\n", idx+1))
		}

		sb.WriteString(pageText(page, opts))
	}

	return sb.String()
}

// pageText renders one page's text according to the options
func pageText(page *model.PageResult, opts Options) string {
	if !opts.PreserveLineBreaks && !opts.PreserveParagraphs {
		return page.Text
	}

	blockSep := "\n"
	if opts.PreserveParagraphs {
		blockSep = "\n\n"
	}

	parts := make([]string, 0, len(page.Blocks))
	for _, block := range page.Blocks {
		if opts.PreserveLineBreaks && len(block.Lines) > 0 {
			lines := make([]string, len(block.Lines))
			for j, line := range block.Lines {
				lines[j] = line.Text
			}
			parts = append(parts, strings.Join(lines, "\n"))
		} else {
			parts = append(parts, block.Text)
		}
	}

	return strings.Join(parts, blockSep)
}
