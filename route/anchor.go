// Package route cleans raw connector waypoints into minimal orthogonal
// polylines and derives the candidate routing points around two anchored
// rectangles. It consumes waypoint sequences from a pathfinder and produces
// the control points the rendering and drag layers work with.
package route

import "github.com/veschin/orthopath/lib/geo"

// Side identifies which side of its owning rectangle an anchor protrudes
// from. It determines whether offsets and drags along the anchor move on
// the X or the Y axis.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return "unknown"
}

// Vertical reports whether offsets from this side move along the Y axis.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// AnchorPoint is a fixed point on a rectangle boundary where a connector
// attaches, tagged with the side it protrudes from.
type AnchorPoint struct {
	Point geo.Point
	Side  Side
}

// Offset moves the anchor point distance units outward along its side:
// top is -Y, bottom +Y, left -X, right +X.
func (a AnchorPoint) Offset(distance float64) geo.Point {
	p := a.Point
	switch a.Side {
	case SideTop:
		p.Y -= distance
	case SideBottom:
		p.Y += distance
	case SideLeft:
		p.X -= distance
	case SideRight:
		p.X += distance
	}
	return p
}

// ControlPoint is a path point with a stable identity used for list
// diffing. IDs are positional and carry no meaning beyond identity.
type ControlPoint struct {
	ID int
	geo.Point
}

// NewControlPoint returns a pointer to a new ControlPoint.
func NewControlPoint(id int, x, y float64) *ControlPoint {
	return &ControlPoint{ID: id, Point: geo.Point{X: x, Y: y}}
}
