// Package geometry provides the rectangle and point types used for
// window and monitor placement.
package geometry

// Point is a position in absolute screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Rectangle describes a window or monitor area by its top-left corner and
// size. Coordinates are absolute screen coordinates unless the rectangle
// has been renormalized onto another basis (see Renormalize).
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Unit is the unit square, the basis used for normalized window positions.
var Unit = Rectangle{X: 0, Y: 0, Width: 1, Height: 1}

// New creates a rectangle from its top-left corner and size.
func New(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the rectangle's center point.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive, so a point on the shared
// edge of two adjacent monitors resolves to exactly one of them.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Renormalize maps r, expressed in the coordinate basis of from, into the
// coordinate basis of to. Renormalizing a window rectangle from its
// monitor's bounds onto Unit yields the window's normalized position;
// the inverse mapping converts a normalized position back to absolute
// coordinates.
func (r Rectangle) Renormalize(from, to Rectangle) Rectangle {
	if from.Width == 0 || from.Height == 0 {
		return r
	}
	sx := to.Width / from.Width
	sy := to.Height / from.Height
	return Rectangle{
		X:      (r.X-from.X)*sx + to.X,
		Y:      (r.Y-from.Y)*sy + to.Y,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
}
