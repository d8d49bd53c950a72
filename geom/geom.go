// Package geom provides the screen-space points and rectangles the stagger
// engine ranks views by. Coordinates are float64 in a single shared space;
// the package does not care whether that space is terminal cells or pixels.
package geom

import "math"

// Point is a location in the shared coordinate space
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to another point
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in the shared coordinate space
// A rect with MaxX < MinX or MaxY < MinY is degenerate and treated as zero-size
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectXYWH builds a rect from origin and size
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the horizontal extent, zero for degenerate rects
func (r Rect) Width() float64 {
	return max(r.MaxX-r.MinX, 0)
}

// Height returns the vertical extent, zero for degenerate rects
func (r Rect) Height() float64 {
	return max(r.MaxY-r.MinY, 0)
}

// Area returns width * height, zero for degenerate rects
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Center returns the rect midpoint
func (r Rect) Center() Point {
	return Point{
		X: (r.MinX + r.MaxX) / 2,
		Y: (r.MinY + r.MaxY) / 2,
	}
}

// DistanceTo returns the Euclidean distance between rect centers
func (r Rect) DistanceTo(other Rect) float64 {
	return r.Center().DistanceTo(other.Center())
}

// DistanceToPoint returns the Euclidean distance from the rect center to a point
func (r Rect) DistanceToPoint(p Point) float64 {
	return r.Center().DistanceTo(p)
}

// IsAbove reports whether r lies strictly above other
// Disjointness test on the Y axis: overlapping rects are neither above nor below
func (r Rect) IsAbove(other Rect) bool {
	return r.MaxY < other.MinY
}

// IsBelow reports whether r lies strictly below other
func (r Rect) IsBelow(other Rect) bool {
	return r.MinY > other.MaxY
}

// IsLeftOf reports whether r lies strictly left of other
func (r Rect) IsLeftOf(other Rect) bool {
	return r.MaxX < other.MinX
}

// IsRightOf reports whether r lies strictly right of other
func (r Rect) IsRightOf(other Rect) bool {
	return r.MinX > other.MaxX
}
