// Package layout reconstructs the logical structure of a recognized page
// from geometry alone. Given a model.PageResult (blocks, lines and words
// positioned in pixel space), it classifies header and footer regions,
// partitions body content into columns by horizontal gap analysis, infers
// the dominant script direction, and merges columns, tables and image
// regions into a single direction-aware reading order.
//
// The Analyzer orchestrates all detectors over one page and returns an
// Analysis. Every function is a pure transformation of its inputs: there is
// no shared state, so pages may be analyzed concurrently from separate
// goroutines without coordination.
package layout
