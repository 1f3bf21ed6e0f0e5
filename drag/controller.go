package drag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"oss.terrastruct.com/util-go/go2"

	"github.com/veschin/orthopath/lib/geo"
	"github.com/veschin/orthopath/lib/log"
)

// Transform converts between screen and diagram coordinate spaces. It is
// supplied by the host: this package never reads viewport or camera state.
type Transform interface {
	ToDiagram(p geo.Point) geo.Point
	ToScreen(p geo.Point) geo.Point
}

// SegmentPosition is a snapshot of a segment's two endpoint coordinates.
type SegmentPosition struct {
	Start, End geo.Point
}

// DragState is the state of the one active drag gesture. It lives from
// drag-start to drag-end and is never persisted.
type DragState struct {
	ID           string
	SegmentIndex int
	OriginalFrom SegmentPosition
	CurrentTo    SegmentPosition
}

// Event is emitted once per pointer move while dragging. The coordination
// layer applies To to the dragged segment and stretches the two adjacent
// (non-partner) segments to meet it.
type Event struct {
	DragID string
	From   SegmentPosition
	To     SegmentPosition
}

var (
	// ErrDragActive is returned by Start while another drag is active:
	// at most one drag exists process-wide.
	ErrDragActive = errors.New("drag: a drag is already active")
	// ErrNoActiveDrag is returned by Move and End outside a drag gesture.
	ErrNoActiveDrag = errors.New("drag: no active drag")
	// ErrNotDraggable is returned by Start for anchor-adjacent or
	// degenerate segments.
	ErrNotDraggable = errors.New("drag: segment is not draggable")
)

const dragIDLength = 10

// Controller owns the process-wide drag singleton. All methods are meant
// for a single interaction source: the host dispatches pointer events one
// at a time, so no locking is involved.
type Controller struct {
	transform Transform

	state       *DragState
	orientation Orientation
}

// NewController returns a controller using the given coordinate transform.
func NewController(t Transform) *Controller {
	return &Controller{transform: t}
}

// Start begins a drag on seg, capturing its current position and issuing a
// fresh drag identity.
func (c *Controller) Start(ctx context.Context, seg *Segment) (string, error) {
	if c.state != nil {
		return "", ErrDragActive
	}
	if !seg.Draggable() {
		return "", ErrNotDraggable
	}
	id, err := gonanoid.New(dragIDLength)
	if err != nil {
		return "", fmt.Errorf("drag: generating drag id: %w", err)
	}
	pos := SegmentPosition{Start: seg.Start.Point, End: seg.End.Point}
	c.state = go2.Pointer(DragState{
		ID:           id,
		SegmentIndex: seg.ChainIndex,
		OriginalFrom: pos,
		CurrentTo:    pos,
	})
	c.orientation = seg.Orientation
	log.Debug(ctx, "drag started",
		slog.String("dragId", id),
		slog.Int("segment", seg.ChainIndex),
		slog.String("orientation", seg.Orientation.String()))
	return id, nil
}

// Move applies one pointer-move delta, given in screen space. The dragged
// segment translates perpendicular to its own orientation: a horizontal
// segment slides vertically, a vertical one horizontally. Deltas are
// per-move increments; the returned event carries the original position
// and the accumulated current one.
func (c *Controller) Move(ctx context.Context, screenDelta geo.Point) (Event, error) {
	if c.state == nil {
		return Event{}, ErrNoActiveDrag
	}
	d := c.diagramDelta(screenDelta)
	if c.orientation == Horizontal {
		c.state.CurrentTo.Start.Y += d.Y
		c.state.CurrentTo.End.Y += d.Y
	} else {
		c.state.CurrentTo.Start.X += d.X
		c.state.CurrentTo.End.X += d.X
	}
	return Event{
		DragID: c.state.ID,
		From:   c.state.OriginalFrom,
		To:     c.state.CurrentTo,
	}, nil
}

// End clears the drag state. The last applied move is final: there are no
// partial or rollback semantics.
func (c *Controller) End(ctx context.Context) error {
	if c.state == nil {
		return ErrNoActiveDrag
	}
	log.Debug(ctx, "drag ended", slog.String("dragId", c.state.ID))
	c.state = nil
	return nil
}

// Active returns a copy of the current drag state, if any. Segments use it
// to compute highlighting without being able to mutate the gesture.
func (c *Controller) Active() (DragState, bool) {
	if c.state == nil {
		return DragState{}, false
	}
	return *c.state, true
}

// diagramDelta converts a screen-space delta vector to diagram space.
// Transforming the zero point alongside cancels the transform's
// translation component, so pan never leaks into the delta.
func (c *Controller) diagramDelta(screenDelta geo.Point) geo.Point {
	p := c.transform.ToDiagram(screenDelta)
	o := c.transform.ToDiagram(geo.Point{})
	return geo.Point{X: p.X - o.X, Y: p.Y - o.Y}
}
