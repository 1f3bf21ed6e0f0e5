package route

import (
	"testing"

	"github.com/veschin/orthopath/lib/geo"
)

func TestAnchorPoint_Offset(t *testing.T) {
	base := geo.Point{X: 100, Y: 50}
	tests := []struct {
		side Side
		want geo.Point
	}{
		{SideTop, geo.Point{X: 100, Y: 30}},
		{SideBottom, geo.Point{X: 100, Y: 70}},
		{SideLeft, geo.Point{X: 80, Y: 50}},
		{SideRight, geo.Point{X: 120, Y: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			a := AnchorPoint{Point: base, Side: tt.side}
			if got := a.Offset(20); got != tt.want {
				t.Errorf("Offset(20) from %v: got %v, want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestSide_Vertical(t *testing.T) {
	if !SideTop.Vertical() || !SideBottom.Vertical() {
		t.Error("top and bottom anchors offset along Y")
	}
	if SideLeft.Vertical() || SideRight.Vertical() {
		t.Error("left and right anchors offset along X")
	}
}
