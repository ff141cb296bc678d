package trajectory

import (
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats"

	"github.com/fieldrobotics/fieldnav/spatialmath"
)

// Spline is a Segment backed by monotone cubic Hermite interpolation through
// ordered, headed control points. Two interpolators are fit independently:
// one over (x, y) for InterpolateFromX and one over (y, x) for
// InterpolateFromY. Sensible inverse lookups require the Y samples to be
// monotone; non-monotone Y input yields a mathematically valid but not
// necessarily physically meaningful inverse.
type Spline struct {
	points []spatialmath.HeadingPoint
	xToY   *splineInterpolator
	yToX   *splineInterpolator
	min    r2.Point
	max    r2.Point
}

// NewSpline fits a spline through at least two ordered control points.
func NewSpline(points []spatialmath.HeadingPoint) (*Spline, error) {
	if len(points) < 2 {
		return nil, NewTooFewControlPointsError(len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, hp := range points {
		xs[i] = hp.Point.X
		ys[i] = hp.Point.Y
	}

	return &Spline{
		points: points,
		xToY:   newSplineInterpolator(xs, ys),
		yToX:   newSplineInterpolator(ys, xs),
		min:    r2.Point{X: floats.Min(xs), Y: floats.Min(ys)},
		max:    r2.Point{X: floats.Max(xs), Y: floats.Max(ys)},
	}, nil
}

// NewLinear builds a straight line between two headed points through the same
// interpolation machinery as any other spline. That trades a little CPU per
// evaluation for sharing one code path.
func NewLinear(start, end spatialmath.HeadingPoint) (*Spline, error) {
	return NewSpline([]spatialmath.HeadingPoint{start, end})
}

// NewArc builds a three-point spline that bends away from the straight
// start->end line: the middle control point is the midpoint offset by
// bendDistance along the direction 90 degrees from the start->end heading,
// with its heading set to the average of the start and end headings.
func NewArc(start, end spatialmath.HeadingPoint, bendDistance float64) (*Spline, error) {
	heading := spatialmath.AngleTo(start.Point, end.Point)
	mid := start.Point.Add(end.Point).Mul(0.5)
	offsetDir := spatialmath.RotateAboutOrigin(r2.Point{X: 1, Y: 0}, heading+90)
	bend := spatialmath.HeadingPoint{
		Point:   mid.Add(offsetDir.Mul(bendDistance)),
		Heading: spatialmath.ModAngDeg((start.Heading + end.Heading) / 2),
	}
	return NewSpline([]spatialmath.HeadingPoint{start, bend, end})
}

// InterpolateFromX returns the spline point at x, clamped into the fitted X
// domain.
func (s *Spline) InterpolateFromX(x float64) r2.Point {
	lo, hi := s.xToY.domain()
	if x < lo {
		x = lo
	} else if x > hi {
		x = hi
	}
	return r2.Point{X: x, Y: s.xToY.interpolate(x)}
}

// InterpolateFromY returns the spline point at y, clamped into the fitted Y
// domain.
func (s *Spline) InterpolateFromY(y float64) r2.Point {
	lo, hi := s.yToX.domain()
	if y < lo {
		y = lo
	} else if y > hi {
		y = hi
	}
	return r2.Point{X: s.yToX.interpolate(y), Y: y}
}

// AngleAt returns the heading stored on the spline's last control point. The
// heading is therefore constant along the segment; this simplification keeps
// the "heading is well-defined everywhere" contract.
func (s *Spline) AngleAt(r2.Point) float64 {
	return s.points[len(s.points)-1].Heading
}

// Minimum returns the lower corner of the spline's control-point bounding box.
func (s *Spline) Minimum() r2.Point { return s.min }

// Maximum returns the upper corner of the spline's control-point bounding box.
func (s *Spline) Maximum() r2.Point { return s.max }

// Start returns the first control point.
func (s *Spline) Start() r2.Point { return s.points[0].Point }

// End returns the last control point.
func (s *Spline) End() r2.Point { return s.points[len(s.points)-1].Point }

// ControlPoints returns the headed control points the spline was fit to. The
// returned slice must not be mutated.
func (s *Spline) ControlPoints() []spatialmath.HeadingPoint {
	return s.points
}
