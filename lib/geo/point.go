// Package geo provides the axis-aligned geometry primitives used by
// connector routing: points, rectangles, and segment intersection tests.
// Coordinates are float64 with the origin at the top-left, Y growing down.
package geo

import "fmt"

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// NewPoint returns a pointer to a new Point.
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Sides holds the four boundary coordinates of a rectangle or point set.
type Sides struct {
	Top, Right, Bottom, Left float64
}

// BoundingSides returns the min/max X and Y across a point set.
// The zero Sides is returned for an empty set.
func BoundingSides(points []Point) Sides {
	if len(points) == 0 {
		return Sides{}
	}
	s := Sides{
		Top:    points[0].Y,
		Right:  points[0].X,
		Bottom: points[0].Y,
		Left:   points[0].X,
	}
	for _, p := range points[1:] {
		if p.Y < s.Top {
			s.Top = p.Y
		}
		if p.Y > s.Bottom {
			s.Bottom = p.Y
		}
		if p.X < s.Left {
			s.Left = p.X
		}
		if p.X > s.Right {
			s.Right = p.X
		}
	}
	return s
}

// Rect converts the sides into the rectangle they bound.
func (s Sides) Rect() Rect {
	return Rect{X: s.Left, Y: s.Top, W: s.Right - s.Left, H: s.Bottom - s.Top}
}
