// Package tables detects tabular structure from recognized line geometry.
// The detector works purely from bounding boxes: lines are grouped into
// rows by vertical overlap, runs of multi-line rows become table
// candidates, and column boundaries are recovered by clustering line left
// edges. The recognizer's own block classification is deliberately ignored;
// table regions are always re-derived from the geometry.
package tables
