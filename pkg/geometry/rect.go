// Package geometry provides axis-aligned rectangle math for room layouts.
//
// All coordinates are in meters with the origin at one corner of the room,
// x increasing along the width and y along the length. Rectangles are
// represented by their top-left corner and extents; rotation is handled by
// callers swapping width and depth before constructing a Rect.
package geometry

import "math"

// Rect is an axis-aligned rectangle in room coordinates (meters).
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Area returns the rectangle area in square meters.
func (r Rect) Area() float64 { return r.W * r.H }

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// ContainedIn reports whether r lies entirely within the w×h region
// anchored at the origin.
func (r Rect) ContainedIn(w, h float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= w && r.Bottom() <= h
}

// Overlaps reports whether r and other intersect when each side of other
// is expanded by margin. A zero margin tests plain intersection; a positive
// margin enforces a spacing buffer between the two rectangles.
func (r Rect) Overlaps(other Rect, margin float64) bool {
	return r.X < other.Right()+margin &&
		r.Right()+margin > other.X &&
		r.Y < other.Bottom()+margin &&
		r.Bottom()+margin > other.Y
}

// Intersection returns the overlapping area between r and other, or 0 when
// they do not intersect.
func (r Rect) Intersection(other Rect) float64 {
	x1 := math.Max(r.X, other.X)
	y1 := math.Max(r.Y, other.Y)
	x2 := math.Min(r.Right(), other.Right())
	y2 := math.Min(r.Bottom(), other.Bottom())
	if x1 >= x2 || y1 >= y2 {
		return 0
	}
	return (x2 - x1) * (y2 - y1)
}

// Distance returns the minimum edge-to-edge distance between r and other.
// Overlapping or touching rectangles have distance 0.
func (r Rect) Distance(other Rect) float64 {
	dx := math.Max(0, math.Max(r.X-other.Right(), other.X-r.Right()))
	dy := math.Max(0, math.Max(r.Y-other.Bottom(), other.Y-r.Bottom()))
	return math.Hypot(dx, dy)
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
