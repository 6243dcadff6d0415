package layout

import (
	"testing"

	"github.com/danielsimonjr/paperflow/model"
)

// makeBlock creates a text block with the given geometry
func makeBlock(x0, y0, x1, y1 int, text string) model.Block {
	return model.Block{
		Text:       text,
		Confidence: 90,
		BBox:       model.NewBBox(x0, y0, x1, y1),
		Type:       model.BlockText,
	}
}

func TestHeaderFooterClassifier_Partition(t *testing.T) {
	classifier := NewHeaderFooterClassifier()

	// Page height 1000: header band is [0, 100), footer band is (900, 1000]
	blocks := []model.Block{
		makeBlock(100, 20, 500, 60, "Chapter Three"),   // center 40: header
		makeBlock(100, 200, 500, 240, "Body one"),      // center 220: body
		makeBlock(100, 500, 500, 540, "Body two"),      // center 520: body
		makeBlock(100, 920, 500, 960, "Page 17"),       // center 940: footer
	}

	headers, footers, body := classifier.Classify(blocks, 1000)

	if len(headers) != 1 {
		t.Fatalf("expected 1 header, got %d", len(headers))
	}
	if headers[0].Text != "Chapter Three" {
		t.Errorf("expected header text %q, got %q", "Chapter Three", headers[0].Text)
	}
	if headers[0].Type != RegionHeader {
		t.Errorf("expected header region type, got %s", headers[0].Type)
	}

	if len(footers) != 1 {
		t.Fatalf("expected 1 footer, got %d", len(footers))
	}
	if footers[0].Text != "Page 17" {
		t.Errorf("expected footer text %q, got %q", "Page 17", footers[0].Text)
	}

	if len(body) != 2 {
		t.Fatalf("expected 2 body blocks, got %d", len(body))
	}

	// Every input block landed in exactly one partition
	if len(headers)+len(footers)+len(body) != len(blocks) {
		t.Errorf("partition lost blocks: %d+%d+%d != %d",
			len(headers), len(footers), len(body), len(blocks))
	}
}

func TestHeaderFooterClassifier_PreservesInputOrder(t *testing.T) {
	classifier := NewHeaderFooterClassifier()

	blocks := []model.Block{
		makeBlock(400, 10, 500, 50, "right header"),
		makeBlock(0, 10, 100, 50, "left header"),
		makeBlock(400, 950, 500, 990, "right footer"),
		makeBlock(0, 950, 100, 990, "left footer"),
	}

	headers, footers, _ := classifier.Classify(blocks, 1000)

	if len(headers) != 2 || headers[0].Text != "right header" || headers[1].Text != "left header" {
		t.Errorf("headers not in input order: %+v", headers)
	}
	if len(footers) != 2 || footers[0].Text != "right footer" || footers[1].Text != "left footer" {
		t.Errorf("footers not in input order: %+v", footers)
	}

	// IDs are sequential within each list
	for i, h := range headers {
		if h.ID != i {
			t.Errorf("expected header ID %d, got %d", i, h.ID)
		}
	}
}

func TestHeaderFooterClassifier_Empty(t *testing.T) {
	classifier := NewHeaderFooterClassifier()

	headers, footers, body := classifier.Classify(nil, 1000)

	if len(headers) != 0 || len(footers) != 0 || len(body) != 0 {
		t.Errorf("expected all-empty partition for empty input")
	}
}

func TestHeaderFooterClassifier_CustomThreshold(t *testing.T) {
	classifier := &HeaderFooterClassifier{Threshold: 0.25}

	// Center at 200 of a 1000px page is a header at threshold 0.25 but
	// body content at the default 0.10.
	blocks := []model.Block{makeBlock(0, 180, 100, 220, "running head")}

	headers, _, body := classifier.Classify(blocks, 1000)
	if len(headers) != 1 || len(body) != 0 {
		t.Errorf("expected block classified as header at threshold 0.25")
	}

	headers, _, body = NewHeaderFooterClassifier().Classify(blocks, 1000)
	if len(headers) != 0 || len(body) != 1 {
		t.Errorf("expected block classified as body at default threshold")
	}
}

func TestRegionTypeString(t *testing.T) {
	cases := map[RegionType]string{
		RegionHeader:    "header",
		RegionFooter:    "footer",
		RegionParagraph: "paragraph",
		RegionHeading:   "heading",
		RegionCaption:   "caption",
	}

	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
