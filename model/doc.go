// Package model defines the shared data model for the paperflow layout
// engine: geometry primitives (Point, BBox) and the recognition-result
// types (Word, Line, Block, PageResult, Table) exchanged between the
// recognition boundary, the layout analyzer, and the exporters.
//
// All coordinates are page-local device pixels with the origin at the
// top-left corner of the page and Y increasing downward. Every value is
// constructed fresh per page and treated as immutable afterward.
package model
