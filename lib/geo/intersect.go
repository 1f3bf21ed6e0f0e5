package geo

// SegmentsIntersect reports whether segment p0-p1 intersects segment p2-p3,
// solved parametrically. Parallel segments, collinear overlaps included,
// never intersect: the zero-denominator case is not a segment-overlap test.
// Touching at an endpoint counts as intersecting.
func SegmentsIntersect(p0, p1, p2, p3 Point) bool {
	d := (p1.X-p0.X)*(p3.Y-p2.Y) - (p1.Y-p0.Y)*(p3.X-p2.X)
	if d == 0 {
		return false
	}
	s := ((p2.X-p0.X)*(p3.Y-p2.Y) - (p2.Y-p0.Y)*(p3.X-p2.X)) / d
	t := ((p2.X-p0.X)*(p1.Y-p0.Y) - (p2.Y-p0.Y)*(p1.X-p0.X)) / d
	return s >= 0 && s <= 1 && t >= 0 && t <= 1
}

// SegmentCrossesRect reports whether segment p1-p2 intersects any of the
// rectangle's four edges. A degenerate (zero-area) rectangle never crosses:
// it is treated as no obstacle at all.
func SegmentCrossesRect(p1, p2 Point, r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	v := r.Vertices()
	for i := range v {
		if SegmentsIntersect(p1, p2, v[i], v[(i+1)%4]) {
			return true
		}
	}
	return false
}
