// Package drag models the interactive form of an orthogonal connector
// path: the ordered chain of segments built from optimized control points,
// partner linkage between same-orientation segments, and the controller
// that owns the single active drag gesture.
package drag

import "github.com/veschin/orthopath/route"

// Orientation of a segment.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Segment is one straight piece of the chain. Orientation is fixed once
// computed from the optimized path: dragging changes position, never
// orientation. Oriented is false for zero-length or diagonal segments,
// whose orientation is not well-defined.
type Segment struct {
	ChainIndex  int
	Start, End  *route.ControlPoint
	Orientation Orientation
	Oriented    bool

	chain *Chain
}

// Prev returns the previous partner: the nearest earlier segment sharing
// this segment's orientation. Consecutive segments of a rectilinear path
// alternate orientation, so partners sit two chain positions away. Nil at
// the head of the chain.
func (s *Segment) Prev() *Segment {
	return s.chain.Segment(s.ChainIndex - 2)
}

// Next returns the next partner, two chain positions forward. Nil at the
// tail of the chain.
func (s *Segment) Next() *Segment {
	return s.chain.Segment(s.ChainIndex + 2)
}

// Draggable reports whether the segment may be dragged: it must be a
// genuine interior segment with a well-defined orientation. The first and
// last segments touch the anchors, which never move.
func (s *Segment) Draggable() bool {
	return s.Oriented && s.ChainIndex > 0 && s.ChainIndex < len(s.chain.segments)-1
}

// Chain is the ordered sequence of path segments. It is rebuilt whenever
// the optimized point list changes; partner references are resolved by
// index arithmetic on demand and carry no ownership.
type Chain struct {
	segments []*Segment
}

// Build splits an optimized point list into its n-1 segments.
func Build(points []*route.ControlPoint) *Chain {
	c := &Chain{}
	if len(points) < 2 {
		return c
	}
	c.segments = make([]*Segment, len(points)-1)
	for i := range c.segments {
		start, end := points[i], points[i+1]
		seg := &Segment{
			ChainIndex: i,
			Start:      start,
			End:        end,
			chain:      c,
		}
		switch {
		case start.Point == end.Point:
			// Zero-length: orientation undefined.
		case start.Y == end.Y:
			seg.Orientation, seg.Oriented = Horizontal, true
		case start.X == end.X:
			seg.Orientation, seg.Oriented = Vertical, true
		}
		c.segments[i] = seg
	}
	return c
}

// Segments returns the chain's segments in order.
func (c *Chain) Segments() []*Segment {
	return c.segments
}

// Segment returns the segment at chain index i, or nil when out of range.
func (c *Chain) Segment(i int) *Segment {
	if i < 0 || i >= len(c.segments) {
		return nil
	}
	return c.segments[i]
}

// Len returns the number of segments.
func (c *Chain) Len() int {
	return len(c.segments)
}
