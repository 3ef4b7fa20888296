package world

import (
	"fmt"
	"math"
)

// Point is a tile position. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Dist returns the Euclidean distance between two points
func (p Point) Dist(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Rect is an axis-aligned rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect builds a rectangle from its top-left corner and size
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the number of columns covered
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the number of rows covered
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty returns true if the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Center returns the geometric center of the rectangle
func (r Rect) Center() (x, y float64) {
	return float64(r.Left+r.Right) / 2, float64(r.Top+r.Bottom) / 2
}

// CenterDist returns the Euclidean distance between the centers of r and o
func (r Rect) CenterDist(o Rect) float64 {
	ax, ay := r.Center()
	bx, by := o.Center()
	return math.Hypot(ax-bx, ay-by)
}

// Contains checks if a point lies on a cell covered by r
func (r Rect) Contains(p Point) bool {
	return r.Left <= p.X && p.X < r.Right && r.Top <= p.Y && p.Y < r.Bottom
}

// Inside checks if r lies completely within outer
func (r Rect) Inside(outer Rect) bool {
	return r.Left >= outer.Left && r.Top >= outer.Top && r.Right <= outer.Right && r.Bottom <= outer.Bottom
}

// Overlaps checks if r and o share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Touches checks if r and o overlap or are not separated by at least one cell.
// Rooms placed with this test always keep a solid tile between them.
func (r Rect) Touches(o Rect) bool {
	return !(r.Left > o.Right || r.Right < o.Left || r.Top > o.Bottom || r.Bottom < o.Top)
}

// Corners returns the four corner coordinates of r, using the exclusive edges
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Left, Y: r.Bottom},
		{X: r.Right, Y: r.Bottom},
	}
}

// RowOverlap returns the shared row interval [start, end) of r and o.
// The interval is empty when start >= end.
func (r Rect) RowOverlap(o Rect) (start, end int) {
	return max(r.Top, o.Top), min(r.Bottom, o.Bottom)
}

// ColOverlap returns the shared column interval [start, end) of r and o.
func (r Rect) ColOverlap(o Rect) (start, end int) {
	return max(r.Left, o.Left), min(r.Right, o.Right)
}

// String formats the rectangle as (left,top,right,bottom)
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
