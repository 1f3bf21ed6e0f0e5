package geo

import "testing"

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 Point
		want           bool
	}{
		{
			name: "perpendicular crossing",
			p0:   Point{X: 0, Y: 50}, p1: Point{X: 100, Y: 50},
			p2: Point{X: 50, Y: 0}, p3: Point{X: 50, Y: 100},
			want: true,
		},
		{
			name: "perpendicular non-intersecting",
			p0:   Point{X: 0, Y: 50}, p1: Point{X: 30, Y: 50},
			p2: Point{X: 50, Y: 0}, p3: Point{X: 50, Y: 100},
			want: false,
		},
		{
			name: "parallel horizontal",
			p0:   Point{X: 0, Y: 0}, p1: Point{X: 100, Y: 0},
			p2: Point{X: 0, Y: 10}, p3: Point{X: 100, Y: 10},
			want: false,
		},
		{
			name: "collinear overlapping reported as non-intersecting",
			p0:   Point{X: 0, Y: 0}, p1: Point{X: 100, Y: 0},
			p2: Point{X: 50, Y: 0}, p3: Point{X: 150, Y: 0},
			want: false,
		},
		{
			name: "endpoint touch counts",
			p0:   Point{X: 0, Y: 50}, p1: Point{X: 100, Y: 50},
			p2: Point{X: 50, Y: 50}, p3: Point{X: 50, Y: 100},
			want: true,
		},
		{
			name: "diagonal crossing",
			p0:   Point{X: 0, Y: 0}, p1: Point{X: 100, Y: 100},
			p2: Point{X: 0, Y: 100}, p3: Point{X: 100, Y: 0},
			want: true,
		},
		{
			name: "diagonal near miss",
			p0:   Point{X: 0, Y: 0}, p1: Point{X: 40, Y: 40},
			p2: Point{X: 0, Y: 100}, p3: Point{X: 100, Y: 0},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p0, tt.p1, tt.p2, tt.p3); got != tt.want {
				t.Errorf("SegmentsIntersect: got %v, want %v", got, tt.want)
			}
			// The test must not care which segment comes first.
			if got := SegmentsIntersect(tt.p2, tt.p3, tt.p0, tt.p1); got != tt.want {
				t.Errorf("SegmentsIntersect swapped: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentCrossesRect(t *testing.T) {
	r := Rect{X: 50, Y: 50, W: 100, H: 100}
	tests := []struct {
		name   string
		p1, p2 Point
		want   bool
	}{
		{"horizontal through", Point{X: 0, Y: 100}, Point{X: 200, Y: 100}, true},
		{"vertical through", Point{X: 100, Y: 0}, Point{X: 100, Y: 200}, true},
		{"ends inside", Point{X: 0, Y: 100}, Point{X: 100, Y: 100}, true},
		{"fully inside crosses no edge", Point{X: 70, Y: 100}, Point{X: 130, Y: 100}, false},
		{"above", Point{X: 0, Y: 10}, Point{X: 200, Y: 10}, false},
		{"left of", Point{X: 10, Y: 0}, Point{X: 10, Y: 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentCrossesRect(tt.p1, tt.p2, r); got != tt.want {
				t.Errorf("SegmentCrossesRect: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentCrossesRect_DegenerateRect(t *testing.T) {
	degenerate := []Rect{
		{X: 50, Y: 50, W: 0, H: 0},
		{X: 50, Y: 50, W: 100, H: 0},
		{X: 50, Y: 50, W: 0, H: 100},
	}
	for _, r := range degenerate {
		if SegmentCrossesRect(Point{X: 0, Y: 50}, Point{X: 200, Y: 50}, r) {
			t.Errorf("degenerate rect %+v should never cross", r)
		}
	}
}
