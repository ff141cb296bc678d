// Package fieldmap models the field a wheeled robot drives on: convex
// obstacle shapes, named zones wrapping them, and the map that owns the zone
// collection and field bounds. It also rasterizes map regions into occupancy
// grids for grid-based path search.
package fieldmap

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/fieldrobotics/fieldnav/spatialmath"
)

// Shape is a closed convex region on the field. It is a sealed union over
// Circle, Rectangle, and RoundedRectangle; collision queries dispatch by type
// switch so the geometry core stays allocation-free.
type Shape interface {
	fmt.Stringer
	isShape()
}

// Circle is a disc centered on a field point.
type Circle struct {
	Center r2.Point
	Radius float64
}

// Rectangle is an axis-aligned rectangle anchored at its minimum corner.
type Rectangle struct {
	Origin r2.Point
	Width  float64
	Height float64
}

// RoundedRectangle is a rectangle whose corners are rounded by CornerRadius.
// It is the union of two inset rectangles and four corner discs.
type RoundedRectangle struct {
	Rectangle
	CornerRadius float64
}

func (Circle) isShape()           {}
func (Rectangle) isShape()        {}
func (RoundedRectangle) isShape() {}

func (c Circle) String() string {
	return fmt.Sprintf("Circle | Center: (%.1f, %.1f) | Radius: %.1f", c.Center.X, c.Center.Y, c.Radius)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle | Origin: (%.1f, %.1f) | Dims: %.1f x %.1f", r.Origin.X, r.Origin.Y, r.Width, r.Height)
}

func (rr RoundedRectangle) String() string {
	return fmt.Sprintf("RoundedRectangle | Origin: (%.1f, %.1f) | Dims: %.1f x %.1f | Corner: %.1f",
		rr.Origin.X, rr.Origin.Y, rr.Width, rr.Height, rr.CornerRadius)
}

// NewCircle creates a circle. Negative radii are not allowed.
func NewCircle(center r2.Point, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, newBadShapeDimensionsError(Circle{})
	}
	return Circle{Center: center, Radius: radius}, nil
}

// NewRectangle creates an axis-aligned rectangle from its minimum corner and
// dimensions. Negative dimensions are not allowed; zero dimensions are
// allowed for degenerate probe rectangles.
func NewRectangle(origin r2.Point, width, height float64) (Rectangle, error) {
	if width < 0 || height < 0 {
		return Rectangle{}, newBadShapeDimensionsError(Rectangle{})
	}
	return Rectangle{Origin: origin, Width: width, Height: height}, nil
}

// NewRoundedRectangle creates a rectangle with rounded corners. The corner
// radius may not exceed half of either dimension.
func NewRoundedRectangle(origin r2.Point, width, height, cornerRadius float64) (RoundedRectangle, error) {
	if width < 0 || height < 0 || cornerRadius < 0 {
		return RoundedRectangle{}, newBadShapeDimensionsError(RoundedRectangle{})
	}
	if cornerRadius > width/2 || cornerRadius > height/2 {
		return RoundedRectangle{}, errors.Errorf("corner radius %.2f exceeds half dimensions of %.2f x %.2f rectangle",
			cornerRadius, width, height)
	}
	return RoundedRectangle{
		Rectangle:    Rectangle{Origin: origin, Width: width, Height: height},
		CornerRadius: cornerRadius,
	}, nil
}

func newBadShapeDimensionsError(s Shape) error {
	return errors.Errorf("shape %T has invalid dimensions; dimensions must be non-negative", s)
}

// rect returns the rectangle as an r2.Rect.
func (r Rectangle) rect() r2.Rect {
	return r2.RectFromPoints(r.Origin, r.Origin.Add(r2.Point{X: r.Width, Y: r.Height}))
}

// insetRects returns the two rectangles whose union with the corner discs
// forms the rounded rectangle: one inset horizontally, one vertically.
func (rr RoundedRectangle) insetRects() (r2.Rect, r2.Rect) {
	cr := rr.CornerRadius
	lo := rr.Origin
	hi := rr.Origin.Add(r2.Point{X: rr.Width, Y: rr.Height})
	horizontal := r2.RectFromPoints(r2.Point{X: lo.X, Y: lo.Y + cr}, r2.Point{X: hi.X, Y: hi.Y - cr})
	vertical := r2.RectFromPoints(r2.Point{X: lo.X + cr, Y: lo.Y}, r2.Point{X: hi.X - cr, Y: hi.Y})
	return horizontal, vertical
}

// cornerCenters returns the centers of the four corner discs.
func (rr RoundedRectangle) cornerCenters() [4]r2.Point {
	cr := rr.CornerRadius
	lo := rr.Origin
	hi := rr.Origin.Add(r2.Point{X: rr.Width, Y: rr.Height})
	return [4]r2.Point{
		{X: lo.X + cr, Y: lo.Y + cr},
		{X: hi.X - cr, Y: lo.Y + cr},
		{X: hi.X - cr, Y: hi.Y - cr},
		{X: lo.X + cr, Y: hi.Y - cr},
	}
}

// BoundingRect returns the axis-aligned bounding rectangle of a shape.
func BoundingRect(s Shape) r2.Rect {
	switch v := s.(type) {
	case Circle:
		r := r2.Point{X: v.Radius, Y: v.Radius}
		return r2.RectFromPoints(v.Center.Sub(r), v.Center.Add(r))
	case Rectangle:
		return v.rect()
	case RoundedRectangle:
		return v.Rectangle.rect()
	default:
		panic(errors.Errorf("unknown shape type %T", s))
	}
}

// ContainsPoint reports whether p lies inside (or on the boundary of) s.
func ContainsPoint(s Shape, p r2.Point) bool {
	switch v := s.(type) {
	case Circle:
		return spatialmath.Distance(v.Center, p) <= v.Radius
	case Rectangle:
		return v.rect().ContainsPoint(p)
	case RoundedRectangle:
		h, vert := v.insetRects()
		if h.ContainsPoint(p) || vert.ContainsPoint(p) {
			return true
		}
		for _, c := range v.cornerCenters() {
			if spatialmath.Distance(c, p) <= v.CornerRadius {
				return true
			}
		}
		return false
	default:
		panic(errors.Errorf("unknown shape type %T", s))
	}
}

// IntersectsLine reports whether the line segment crosses or touches s.
func IntersectsLine(s Shape, l spatialmath.Line) bool {
	switch v := s.(type) {
	case Circle:
		return l.DistanceTo(v.Center) <= v.Radius
	case Rectangle:
		return lineIntersectsRect(l, v.rect())
	case RoundedRectangle:
		h, vert := v.insetRects()
		if lineIntersectsRect(l, h) || lineIntersectsRect(l, vert) {
			return true
		}
		for _, c := range v.cornerCenters() {
			if l.DistanceTo(c) <= v.CornerRadius {
				return true
			}
		}
		return false
	default:
		panic(errors.Errorf("unknown shape type %T", s))
	}
}

// IntersectsRect reports whether s overlaps the axis-aligned rectangle. Used
// by area queries and the rasterizer's footprint probes.
func IntersectsRect(s Shape, area r2.Rect) bool {
	switch v := s.(type) {
	case Circle:
		return spatialmath.Distance(area.ClampPoint(v.Center), v.Center) <= v.Radius
	case Rectangle:
		return v.rect().Intersects(area)
	case RoundedRectangle:
		h, vert := v.insetRects()
		if h.Intersects(area) || vert.Intersects(area) {
			return true
		}
		for _, c := range v.cornerCenters() {
			if spatialmath.Distance(area.ClampPoint(c), c) <= v.CornerRadius {
				return true
			}
		}
		return false
	default:
		panic(errors.Errorf("unknown shape type %T", s))
	}
}

// lineIntersectsRect reports whether the segment touches the rectangle,
// including segments fully inside it.
func lineIntersectsRect(l spatialmath.Line, rect r2.Rect) bool {
	if rect.ContainsPoint(l.Start) || rect.ContainsPoint(l.End) {
		return true
	}
	lo := r2.Point{X: rect.X.Lo, Y: rect.Y.Lo}
	hi := r2.Point{X: rect.X.Hi, Y: rect.Y.Hi}
	corners := [4]r2.Point{
		lo,
		{X: hi.X, Y: lo.Y},
		hi,
		{X: lo.X, Y: hi.Y},
	}
	for i := 0; i < 4; i++ {
		edge := spatialmath.NewLine(corners[i], corners[(i+1)%4])
		if l.Intersects(edge) {
			return true
		}
	}
	return false
}

// rectFromCenter builds a rectangle from a center point and half extents.
func rectFromCenter(center r2.Point, halfX, halfY float64) r2.Rect {
	half := r2.Point{X: math.Abs(halfX), Y: math.Abs(halfY)}
	return r2.RectFromPoints(center.Sub(half), center.Add(half))
}
