package model

// Point represents a 2D point in page pixel space
type Point struct {
	X, Y int
}

// BBox represents a bounding box (rectangle) in page pixel space.
// The origin is the top-left corner of the page and Y increases downward.
type BBox struct {
	X0 int // Left
	Y0 int // Top
	X1 int // Right
	Y1 int // Bottom
}

// NewBBox creates a bounding box from two corner coordinates, normalizing
// them so that X1 >= X0 and Y1 >= Y0.
func NewBBox(x0, y0, x1, y1 int) BBox {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the width of the bounding box
func (b BBox) Width() int {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BBox) Height() int {
	return b.Y1 - b.Y0
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.X0 + b.X1) / 2,
		Y: (b.Y0 + b.Y1) / 2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X0 && p.X <= b.X1 &&
		p.Y >= b.Y0 && p.Y <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	return BBox{
		X0: maxInt(b.X0, other.X0),
		Y0: maxInt(b.Y0, other.Y0),
		X1: minInt(b.X1, other.X1),
		Y1: minInt(b.Y1, other.Y1),
	}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: minInt(b.X0, other.X0),
		Y0: minInt(b.Y0, other.Y0),
		X1: maxInt(b.X1, other.X1),
		Y1: maxInt(b.Y1, other.Y1),
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() int {
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// OverlapRatio calculates the overlap ratio with another box, relative to
// the smaller of the two boxes. Returns a value between 0 and 1.
func (b BBox) OverlapRatio(other BBox) float64 {
	if !b.Intersects(other) {
		return 0
	}

	intersection := b.Intersection(other)
	minArea := minInt(b.Area(), other.Area())

	if minArea == 0 {
		return 0
	}

	return float64(intersection.Area()) / float64(minArea)
}

// VerticalOverlap returns the length of the overlap between the vertical
// extents [Y0, Y1] of the two boxes, or 0 if they do not overlap.
func (b BBox) VerticalOverlap(other BBox) int {
	overlap := minInt(b.Y1, other.Y1) - maxInt(b.Y0, other.Y0)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// UnionAll returns the union of all the given boxes. It returns the zero
// BBox when the slice is empty.
func UnionAll(boxes []BBox) BBox {
	if len(boxes) == 0 {
		return BBox{}
	}

	union := boxes[0]
	for _, b := range boxes[1:] {
		union = union.Union(b)
	}
	return union
}

// minInt returns the smaller of two ints
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// maxInt returns the larger of two ints
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
