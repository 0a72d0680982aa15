package geometry

import (
	"math"
	"testing"
)

func TestRectContainedIn(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		w, h float64
		want bool
	}{
		{"inside", Rect{X: 1, Y: 1, W: 2, H: 2}, 5, 5, true},
		{"exact fit", Rect{X: 0, Y: 0, W: 5, H: 5}, 5, 5, true},
		{"over right edge", Rect{X: 4, Y: 0, W: 2, H: 1}, 5, 5, false},
		{"over bottom edge", Rect{X: 0, Y: 4.5, W: 1, H: 1}, 5, 5, false},
		{"negative origin", Rect{X: -0.1, Y: 0, W: 1, H: 1}, 5, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ContainedIn(tt.w, tt.h); got != tt.want {
				t.Errorf("ContainedIn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 1, H: 1}

	tests := []struct {
		name   string
		b      Rect
		margin float64
		want   bool
	}{
		{"disjoint no margin", Rect{X: 2, Y: 0, W: 1, H: 1}, 0, false},
		{"disjoint within margin", Rect{X: 1.4, Y: 0, W: 1, H: 1}, 0.6, true},
		{"disjoint outside margin", Rect{X: 1.7, Y: 0, W: 1, H: 1}, 0.6, false},
		{"direct overlap", Rect{X: 0.5, Y: 0.5, W: 1, H: 1}, 0, true},
		{"diagonal gap within margin", Rect{X: 1.3, Y: 1.3, W: 1, H: 1}, 0.6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b, tt.margin); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"overlapping", Rect{0, 0, 2, 2}, Rect{1, 1, 2, 2}, 0},
		{"horizontal gap", Rect{0, 0, 1, 1}, Rect{1.4, 0, 1, 1}, 0.4},
		{"vertical gap", Rect{0, 0, 1, 1}, Rect{0, 2, 1, 1}, 1.0},
		{"diagonal gap", Rect{0, 0, 1, 1}, Rect{4, 5, 1, 1}, 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Distance(tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
			// Distance is symmetric.
			if rev := tt.b.Distance(tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("Distance not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	if got := a.Intersection(Rect{X: 1, Y: 1, W: 2, H: 2}); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Intersection = %v, want 1.0", got)
	}
	if got := a.Intersection(Rect{X: 3, Y: 3, W: 1, H: 1}); got != 0 {
		t.Errorf("Intersection of disjoint rects = %v, want 0", got)
	}
}
