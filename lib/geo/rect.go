package geo

import (
	"math"

	"oss.terrastruct.com/util-go/go2"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64 // top-left corner + dimensions
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// Sides returns the four boundary coordinates.
func (r Rect) Sides() Sides {
	return Sides{
		Top:    r.Top(),
		Right:  r.Right(),
		Bottom: r.Bottom(),
		Left:   r.Left(),
	}
}

// Vertices returns the four corner points, clockwise from top-left.
func (r Rect) Vertices() [4]Point {
	return [4]Point{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

// Expand grows the rectangle symmetrically by offset on all sides.
// A negative offset shrinks it.
func (r Rect) Expand(offset float64) Rect {
	return Rect{
		X: r.X - offset,
		Y: r.Y - offset,
		W: r.W + 2*offset,
		H: r.H + 2*offset,
	}
}

// Overlaps reports whether the two rectangles overlap: their centers are
// strictly closer than half the sum of their extents on both axes.
func (r Rect) Overlaps(o Rect) bool {
	return math.Abs(r.CenterX()-o.CenterX()) < (r.W+o.W)/2 &&
		math.Abs(r.CenterY()-o.CenterY()) < (r.H+o.H)/2
}

// Contains reports whether p lies within the rectangle, boundary inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// MergeRects returns the minimal rectangle covering all inputs.
// The zero Rect is returned for no inputs.
func MergeRects(rects ...Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	minX, minY := rects[0].Left(), rects[0].Top()
	maxX, maxY := rects[0].Right(), rects[0].Bottom()
	for _, r := range rects[1:] {
		minX = go2.Min(minX, r.Left())
		minY = go2.Min(minY, r.Top())
		maxX = go2.Max(maxX, r.Right())
		maxY = go2.Max(maxY, r.Bottom())
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
