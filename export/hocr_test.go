package export

import (
	"strings"
	"testing"

	"github.com/danielsimonjr/paperflow/model"
)

func TestHOCR_Structure(t *testing.T) {
	pages := map[int]*model.PageResult{
		0: makePage([]model.Word{makeWord("Hello", 95, 10, 10, 60, 30)}),
	}

	got := HOCRDocument(pages, DefaultOptions())

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<meta name="ocr-system" content="paperflow" />`,
		`class="ocr_page" id="page_1"`,
		`class="ocr_carea"`,
		`class="ocr_line"`,
		`class="ocrx_word"`,
		"</body>\n</html>\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestHOCR_WordConfidenceRounded(t *testing.T) {
	pages := map[int]*model.PageResult{
		0: makePage([]model.Word{makeWord("word", 87.6, 10, 20, 50, 40)}),
	}

	got := HOCRDocument(pages, DefaultOptions())
	want := `title="bbox 10 20 50 40; x_wconf 88"`
	if !strings.Contains(got, want) {
		t.Errorf("expected word title %q in output:\n%s", want, got)
	}
}

func TestHOCR_PageBBoxFromImageDimensions(t *testing.T) {
	pages := map[int]*model.PageResult{
		0: makePage([]model.Word{makeWord("a", 90, 10, 10, 20, 20)}),
	}

	got := HOCRDocument(pages, DefaultOptions())
	if !strings.Contains(got, "bbox 0 0 600 800; ppageno 0") {
		t.Errorf("expected page bbox from image dimensions, got:\n%s", got)
	}
}

func TestHOCR_Baseline(t *testing.T) {
	page := makePage([]model.Word{makeWord("sloped", 90, 10, 10, 80, 30)})
	page.Blocks[0].Lines[0].Baseline = &model.Baseline{Slope: 0.01, Offset: -3}

	got := HOCRDocument(map[int]*model.PageResult{0: page}, DefaultOptions())
	if !strings.Contains(got, "; baseline 0.01 -3") {
		t.Errorf("expected baseline in line title, got:\n%s", got)
	}
}

func TestHOCR_NoBaselineOmitted(t *testing.T) {
	pages := map[int]*model.PageResult{
		0: makePage([]model.Word{makeWord("flat", 90, 10, 10, 50, 30)}),
	}

	if got := HOCRDocument(pages, DefaultOptions()); strings.Contains(got, "baseline") {
		t.Error("expected no baseline attribute when none was reported")
	}
}

func TestHOCR_TextEscaped(t *testing.T) {
	pages := map[int]*model.PageResult{
		0: makePage([]model.Word{makeWord("a<b&c", 90, 10, 10, 50, 30)}),
	}

	got := HOCRDocument(pages, DefaultOptions())
	if !strings.Contains(got, "a&lt;b&amp;c") {
		t.Error("expected markup characters escaped in word text")
	}
	if strings.Contains(got, ">a<b&c<") {
		t.Error("raw markup characters leaked into output")
	}
}

func TestHOCR_MultiplePages(t *testing.T) {
	pages := map[int]*model.PageResult{
		0: makePage([]model.Word{makeWord("one", 90, 10, 10, 50, 30)}),
		1: makePage([]model.Word{makeWord("two", 90, 10, 10, 50, 30)}),
	}

	got := HOCRDocument(pages, DefaultOptions())
	if !strings.Contains(got, `id="page_1"`) || !strings.Contains(got, `id="page_2"`) {
		t.Error("expected one ocr_page element per page")
	}
	if !strings.Contains(got, "ppageno 1") {
		t.Error("expected zero-based ppageno for the second page")
	}
}
