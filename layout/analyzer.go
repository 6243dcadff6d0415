package layout

import (
	"github.com/danielsimonjr/paperflow/model"
	"github.com/danielsimonjr/paperflow/tables"
)

// Config holds configuration for the layout analyzer. Each field feeds one
// of the detection components.
type Config struct {
	// ColumnGapRatio is the minimum horizontal gap, as a fraction of page
	// width, for a column boundary. Default: 0.03
	ColumnGapRatio float64

	// HeaderFooterThreshold is the fraction of page height treated as the
	// header band at the top and footer band at the bottom. Default: 0.10
	HeaderFooterThreshold float64

	// MinTableCells is the minimum accumulated line count for a table
	// candidate to be committed. Default: 4
	MinTableCells int

	// LineOverlapThreshold is the minimum vertical overlap fraction for
	// two lines to share a table row. Default: 0.5
	LineOverlapThreshold float64
}

// DefaultConfig returns sensible defaults for typical scanned documents
func DefaultConfig() Config {
	return Config{
		ColumnGapRatio:        0.03,
		HeaderFooterThreshold: 0.10,
		MinTableCells:         4,
		LineOverlapThreshold:  0.5,
	}
}

// Analysis is the aggregate result of layout analysis for one page. It is
// the sole public output of the engine and is consumed by the exporters.
type Analysis struct {
	// Columns detected in the body content, left to right
	Columns []Column

	// Tables re-derived from line geometry
	Tables []model.Table

	// Images found on the page. Image region detection is not performed
	// from bounding-box geometry alone, so this list is always empty; it
	// is carried so the reading-order builder and exporters have a stable
	// shape when image regions arrive from a richer source.
	Images []ImageRegion

	// Headers and Footers in input block order
	Headers []TextRegion
	Footers []TextRegion

	// ReadingOrder is the reconstructed linear document flow. Order
	// values form the contiguous range [0, N).
	ReadingOrder []Region

	// MultiColumn indicates more than one column was detected
	MultiColumn bool

	// EstimatedColumns is the number of detected columns
	EstimatedColumns int

	// Direction is the dominant script direction of the page
	Direction Direction
}

// Analyzer runs all layout detection components over one page's
// recognition result. It is stateless: a single Analyzer may be shared by
// concurrent goroutines, each analyzing its own PageResult.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Analyze reconstructs the logical structure of a page: script direction,
// header/footer classification, column partitioning, table detection, and
// the merged reading order. It is a pure function of the page's geometry;
// the same input always yields a structurally identical Analysis.
//
// A page with no blocks yields an Analysis with all collections empty,
// MultiColumn false and EstimatedColumns 0.
func (a *Analyzer) Analyze(page *model.PageResult) *Analysis {
	analysis := &Analysis{
		Direction: DetectDirection(page),
	}

	if len(page.Blocks) == 0 {
		analysis.ReadingOrder = []Region{}
		return analysis
	}

	pageWidth, pageHeight := page.Dimensions()

	classifier := &HeaderFooterClassifier{Threshold: a.config.HeaderFooterThreshold}
	headers, footers, body := classifier.Classify(page.Blocks, pageHeight)
	analysis.Headers = headers
	analysis.Footers = footers

	columnDetector := &ColumnDetector{GapRatio: a.config.ColumnGapRatio}
	columns, _ := columnDetector.Detect(body, pageWidth)
	analysis.Columns = columns
	analysis.EstimatedColumns = len(columns)
	analysis.MultiColumn = len(columns) > 1

	tableDetector := tables.NewDetectorWithConfig(tables.Config{
		MinTableCells:        a.config.MinTableCells,
		LineOverlapThreshold: a.config.LineOverlapThreshold,
		ColumnProximity:      tables.DefaultConfig().ColumnProximity,
		HeaderHeightRatio:    tables.DefaultConfig().HeaderHeightRatio,
	})
	analysis.Tables = tableDetector.Detect(page.Lines)

	analysis.ReadingOrder = BuildReadingOrder(
		analysis.Headers,
		analysis.Footers,
		analysis.Columns,
		analysis.Tables,
		analysis.Images,
		analysis.Direction,
	)

	return analysis
}
