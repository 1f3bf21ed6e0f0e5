package route

import "github.com/veschin/orthopath/lib/geo"

// CenterCandidates returns up to 8 candidate routing points for a connector
// between two anchored rectangles: the 4 edge-midpoints of the bounding box
// spanned by the two anchor offsets, and the 4 edge-midpoints of the outer
// bounding box covering both rectangles. Candidates falling inside either
// rectangle are excluded.
//
// When the two offsets share an X or Y coordinate no spanning rectangle
// exists and the candidate set is empty: callers must fall back to a direct
// route (see FallbackRoute).
func CenterCandidates(srcRect geo.Rect, srcOffset geo.Point, dstRect geo.Rect, dstOffset geo.Point) []geo.Point {
	if srcOffset.X == dstOffset.X || srcOffset.Y == dstOffset.Y {
		return nil
	}

	inner := geo.BoundingSides([]geo.Point{srcOffset, dstOffset}).Rect()
	outer := geo.MergeRects(srcRect, dstRect)

	var candidates []geo.Point
	for _, r := range []geo.Rect{inner, outer} {
		candidates = append(candidates,
			geo.Point{X: r.CenterX(), Y: r.Top()},
			geo.Point{X: r.Right(), Y: r.CenterY()},
			geo.Point{X: r.CenterX(), Y: r.Bottom()},
			geo.Point{X: r.Left(), Y: r.CenterY()},
		)
	}

	var kept []geo.Point
	for _, c := range candidates {
		if srcRect.Contains(c) || dstRect.Contains(c) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// RouteClear reports whether no segment of the polyline crosses any of the
// obstacle rectangles, each expanded by margin. Degenerate obstacles are
// treated as no obstacle.
func RouteClear(points []geo.Point, obstacles []geo.Rect, margin float64) bool {
	for _, o := range obstacles {
		grown := o.Expand(margin)
		for i := 0; i < len(points)-1; i++ {
			if geo.SegmentCrossesRect(points[i], points[i+1], grown) {
				return false
			}
		}
	}
	return true
}

// FallbackRoute builds a direct route between two anchors for the cases the
// candidate search cannot serve: collinear offsets, overlapping rectangles,
// or blocked L-bends.
//
// Priority follows bend count: the straight offset-to-offset line when the
// offsets align, then the L-bend whose first leg matches the source side's
// exit axis, then the alternate L-bend. The plain 2-bend-free direct route
// is the last resort and is used immediately when the rectangles overlap.
func FallbackRoute(srcRect, dstRect geo.Rect, srcAnchor, dstAnchor AnchorPoint, srcOffset, dstOffset geo.Point) []geo.Point {
	direct := []geo.Point{srcAnchor.Point, srcOffset, dstOffset, dstAnchor.Point}
	if srcRect.Overlaps(dstRect) {
		return direct
	}
	if srcOffset.X == dstOffset.X || srcOffset.Y == dstOffset.Y {
		return direct
	}

	// Vertical exit (top/bottom) → first leg vertical: bend at (src.X, dst.Y).
	// Horizontal exit (left/right) → first leg horizontal: bend at (dst.X, src.Y).
	var bendPrimary, bendAlt geo.Point
	if srcAnchor.Side.Vertical() {
		bendPrimary = geo.Point{X: srcOffset.X, Y: dstOffset.Y}
		bendAlt = geo.Point{X: dstOffset.X, Y: srcOffset.Y}
	} else {
		bendPrimary = geo.Point{X: dstOffset.X, Y: srcOffset.Y}
		bendAlt = geo.Point{X: srcOffset.X, Y: dstOffset.Y}
	}

	obstacles := []geo.Rect{srcRect, dstRect}
	for _, bend := range []geo.Point{bendPrimary, bendAlt} {
		// Only the offset-to-offset portion is validated: the anchor legs
		// touch the rectangle boundaries by construction.
		if RouteClear([]geo.Point{srcOffset, bend, dstOffset}, obstacles, 0) {
			return []geo.Point{srcAnchor.Point, srcOffset, bend, dstOffset, dstAnchor.Point}
		}
	}
	return direct
}
