package route

import (
	"context"
	"log/slog"
	"math"

	"github.com/veschin/orthopath/lib/geo"
	"github.com/veschin/orthopath/lib/log"
)

// Result is the optimized form of a raw waypoint sequence. Source and
// Target are the exact anchor endpoints; SourceOffset and TargetOffset are
// the pre-anchor offset points after merging and correction; Interior holds
// everything between the endpoints, offsets included when they survive.
type Result struct {
	Source       *ControlPoint
	Target       *ControlPoint
	SourceOffset geo.Point
	TargetOffset geo.Point
	Interior     []*ControlPoint
}

// Points returns the full ordered path: source, interior, target.
func (r Result) Points() []*ControlPoint {
	pts := make([]*ControlPoint, 0, len(r.Interior)+2)
	pts = append(pts, r.Source)
	pts = append(pts, r.Interior...)
	return append(pts, r.Target)
}

// axisMerger clusters coordinate values on a single axis. The first value
// to land in a neighborhood becomes the cluster's representative; later
// values within threshold snap to it. Order-dependent near threshold
// boundaries, deliberately: reordering inputs may shift representatives.
type axisMerger struct {
	threshold float64
	reps      []float64
}

func (m *axisMerger) merge(v float64) float64 {
	v = math.Floor(v)
	for _, r := range m.reps {
		if math.Abs(v-r) <= m.threshold {
			return r
		}
	}
	m.reps = append(m.reps, v)
	return v
}

// Optimize cleans a raw waypoint sequence into the minimal orthogonal
// polyline, in four passes: per-axis coordinate merging, endpoint
// correction back to the exact anchor coordinates, duplicate removal, and
// collinearity reduction. It is total over any non-empty point list;
// callers supply a list whose first and last points are the two anchors.
func Optimize(ctx context.Context, raw []geo.Point, srcAnchor, dstAnchor AnchorPoint, srcOffset, dstOffset geo.Point, opts *Opts) Result {
	if opts == nil {
		opts = &DefaultOpts
	}
	log.Debug(ctx, "optimizing connector path",
		slog.Int("points", len(raw)),
		slog.String("srcSide", srcAnchor.Side.String()),
		slog.String("dstSide", dstAnchor.Side.String()))

	pts := make([]geo.Point, len(raw))
	copy(pts, raw)

	// Pass 1: coordinate merge, X and Y independently.
	mx := &axisMerger{threshold: opts.MergeThreshold}
	my := &axisMerger{threshold: opts.MergeThreshold}
	for i := range pts {
		pts[i].X = mx.merge(pts[i].X)
		pts[i].Y = my.merge(pts[i].Y)
	}
	srcOff := geo.Point{X: mx.merge(srcOffset.X), Y: my.merge(srcOffset.Y)}
	dstOff := geo.Point{X: mx.merge(dstOffset.X), Y: my.merge(dstOffset.Y)}

	// Pass 2: endpoint correction. Merging must never detach the path from
	// its anchors: the coordinate on each anchor's perpendicular axis is
	// forced back to the exact original value. The adjacent offset points
	// share that coordinate, so they are corrected too or the first and
	// last segments would turn diagonal.
	if len(pts) > 0 {
		correctToAnchor(&pts[0], srcAnchor)
		correctToAnchor(&pts[len(pts)-1], dstAnchor)
	}
	if len(pts) >= 4 {
		correctToAnchor(&pts[1], srcAnchor)
		correctToAnchor(&pts[len(pts)-2], dstAnchor)
	}
	correctToAnchor(&srcOff, srcAnchor)
	correctToAnchor(&dstOff, dstAnchor)

	// Passes 3+4: duplicate removal, then collinearity reduction.
	pts = removeDuplicates(pts)
	pts = ReducePoints(pts)

	// Renumber by position for stable identity.
	cps := make([]*ControlPoint, len(pts))
	for i, p := range pts {
		cps[i] = &ControlPoint{ID: i, Point: p}
	}

	res := Result{SourceOffset: srcOff, TargetOffset: dstOff}
	if len(cps) > 0 {
		res.Source = cps[0]
		res.Target = cps[len(cps)-1]
		if len(cps) > 2 {
			res.Interior = cps[1 : len(cps)-1]
		}
	}
	return res
}

// correctToAnchor restores the anchor-exact coordinate on the axis
// perpendicular to the anchor's offset axis: X for top/bottom anchors,
// Y for left/right anchors.
func correctToAnchor(p *geo.Point, a AnchorPoint) {
	if a.Side.Vertical() {
		p.X = a.Point.X
	} else {
		p.Y = a.Point.Y
	}
}

// removeDuplicates drops interior points whose coordinates match the first
// point or any later point. The first and last points are always kept: they
// are the anchors. In a run of equal points the last occurrence wins over
// earlier ones, except that index 0 always wins over its own copies.
func removeDuplicates(pts []geo.Point) []geo.Point {
	if len(pts) <= 2 {
		return pts
	}
	last := len(pts) - 1
	out := make([]geo.Point, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < last; i++ {
		if pts[i] == pts[0] {
			continue
		}
		dup := false
		for j := i + 1; j <= last; j++ {
			if pts[i] == pts[j] {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, pts[i])
		}
	}
	return append(out, pts[last])
}

// ReducePoints drops every interior point that lies exactly on the segment
// between its immediate neighbors: collinear on a shared axis and between
// them, bounds inclusive. Runs of redundant waypoints collapse into a
// single straight segment. Usable standalone as a cleanup pass; Optimize
// runs it last.
func ReducePoints(points []geo.Point) []geo.Point {
	if len(points) <= 2 {
		return points
	}
	out := make([]geo.Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points)-1; i++ {
		if onSegment(out[len(out)-1], points[i], points[i+1]) {
			continue
		}
		out = append(out, points[i])
	}
	return append(out, points[len(points)-1])
}

// onSegment reports whether b lies on the axis-aligned segment a-c.
func onSegment(a, b, c geo.Point) bool {
	if a.X == b.X && b.X == c.X {
		return between(b.Y, a.Y, c.Y)
	}
	if a.Y == b.Y && b.Y == c.Y {
		return between(b.X, a.X, c.X)
	}
	return false
}

func between(v, a, b float64) bool {
	return v >= math.Min(a, b) && v <= math.Max(a, b)
}
