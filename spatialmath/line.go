package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// Line is a 2D line segment between two points.
type Line struct {
	Start r2.Point
	End   r2.Point
}

// NewLine creates a line segment from start to end.
func NewLine(start, end r2.Point) Line {
	return Line{Start: start, End: end}
}

// Length returns the segment's length.
func (l Line) Length() float64 {
	return Distance(l.Start, l.End)
}

// BoundingRect returns the axis-aligned bounding rectangle of the segment.
func (l Line) BoundingRect() r2.Rect {
	return r2.RectFromPoints(l.Start, l.End)
}

// ClosestPointTo returns the point on the segment closest to p.
func (l Line) ClosestPointTo(p r2.Point) r2.Point {
	d := l.End.Sub(l.Start)
	len2 := d.Dot(d)
	if len2 < 1e-12 {
		// degenerate segment
		return l.Start
	}
	t := p.Sub(l.Start).Dot(d) / len2
	t = math.Max(0, math.Min(1, t))
	return l.Start.Add(d.Mul(t))
}

// DistanceTo returns the distance from p to the nearest point on the segment.
func (l Line) DistanceTo(p r2.Point) float64 {
	return Distance(p, l.ClosestPointTo(p))
}

// Intersects reports whether the two segments share at least one point.
// Collinear overlapping segments intersect.
func (l Line) Intersects(other Line) bool {
	d1 := orientation(other.Start, other.End, l.Start)
	d2 := orientation(other.Start, other.End, l.End)
	d3 := orientation(l.Start, l.End, other.Start)
	d4 := orientation(l.Start, l.End, other.End)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(other.Start, other.End, l.Start):
		return true
	case d2 == 0 && onSegment(other.Start, other.End, l.End):
		return true
	case d3 == 0 && onSegment(l.Start, l.End, other.Start):
		return true
	case d4 == 0 && onSegment(l.Start, l.End, other.End):
		return true
	}
	return false
}

// orientation returns the signed area of the triangle (a, b, c): positive for
// counterclockwise, negative for clockwise, zero for collinear.
func orientation(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether collinear point p lies within the bounding box of
// segment ab.
func onSegment(a, b, p r2.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
