package layout

import (
	"github.com/danielsimonjr/paperflow/model"
)

// Direction indicates the primary reading direction of a page
type Direction int

const (
	// LeftToRight is the default for Latin/Cyrillic-style scripts
	LeftToRight Direction = iota
	// RightToLeft is used for Arabic, Hebrew, etc.
	RightToLeft
	// TopToBottom is used for vertical CJK text
	TopToBottom
)

// String returns a string representation of the reading direction
func (d Direction) String() string {
	switch d {
	case RightToLeft:
		return "rtl"
	case TopToBottom:
		return "ttb"
	default:
		return "ltr"
	}
}

// scriptSampleSize is the maximum number of runes examined for script
// classification.
const scriptSampleSize = 1000

// verticalWordRatio is the fraction of words that must be taller than twice
// their width before CJK text is treated as vertically set.
const verticalWordRatio = 0.3

// DetectDirection classifies the dominant reading direction of a page from
// a sample of its text and the aspect ratios of its word boxes.
//
// RTL script ranges (Arabic, Hebrew) take priority. CJK text is classified
// as top-to-bottom only when a significant share of the word boxes are
// taller than they are wide; horizontally set CJK falls through to
// left-to-right. Empty input defaults to left-to-right.
func DetectDirection(page *model.PageResult) Direction {
	sample := []rune(page.Text)
	if len(sample) > scriptSampleSize {
		sample = sample[:scriptSampleSize]
	}

	if containsRTL(sample) {
		return RightToLeft
	}

	if containsCJK(sample) && tallWordFraction(page.Words) > verticalWordRatio {
		return TopToBottom
	}

	return LeftToRight
}

// containsRTL reports whether the sample contains Arabic (U+0600-U+06FF)
// or Hebrew (U+0590-U+05FF) characters.
func containsRTL(sample []rune) bool {
	for _, r := range sample {
		if r >= 0x0590 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// containsCJK reports whether the sample contains CJK ideographs
// (U+4E00-U+9FFF) or Hiragana/Katakana (U+3040-U+30FF).
func containsCJK(sample []rune) bool {
	for _, r := range sample {
		if (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3040 && r <= 0x30FF) {
			return true
		}
	}
	return false
}

// tallWordFraction returns the fraction of words whose bounding box is more
// than twice as tall as it is wide.
func tallWordFraction(words []model.Word) float64 {
	if len(words) == 0 {
		return 0
	}

	tall := 0
	for _, w := range words {
		if w.BBox.Height() > 2*w.BBox.Width() {
			tall++
		}
	}

	return float64(tall) / float64(len(words))
}
