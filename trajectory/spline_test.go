package trajectory

import (
	"testing"

	"go.viam.com/test"

	"github.com/fieldrobotics/fieldnav/spatialmath"
)

func TestNewSplineTooFewPoints(t *testing.T) {
	_, err := NewSpline(nil)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewSpline([]spatialmath.HeadingPoint{spatialmath.NewHeadingPoint(0, 0, 0)})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLinearRoundTrip(t *testing.T) {
	line, err := NewLinear(
		spatialmath.NewHeadingPoint(0, 0, 45),
		spatialmath.NewHeadingPoint(10, 10, 45),
	)
	test.That(t, err, test.ShouldBeNil)

	p := line.InterpolateFromX(5)
	test.That(t, p.X, test.ShouldAlmostEqual, 5)
	test.That(t, p.Y, test.ShouldAlmostEqual, 5)

	p = line.InterpolateFromY(5)
	test.That(t, p.X, test.ShouldAlmostEqual, 5)
	test.That(t, p.Y, test.ShouldAlmostEqual, 5)
}

func TestLinearDescendingX(t *testing.T) {
	line, err := NewLinear(
		spatialmath.NewHeadingPoint(10, 0, 135),
		spatialmath.NewHeadingPoint(0, 10, 135),
	)
	test.That(t, err, test.ShouldBeNil)

	p := line.InterpolateFromX(5)
	test.That(t, p.X, test.ShouldAlmostEqual, 5)
	test.That(t, p.Y, test.ShouldAlmostEqual, 5)

	test.That(t, line.Start().X, test.ShouldEqual, 10)
	test.That(t, line.End().X, test.ShouldEqual, 0)
}

func TestSplineMonotonicity(t *testing.T) {
	pts := []spatialmath.HeadingPoint{
		spatialmath.NewHeadingPoint(0, 0, 0),
		spatialmath.NewHeadingPoint(2, 1, 0),
		spatialmath.NewHeadingPoint(5, 1.5, 0),
		spatialmath.NewHeadingPoint(6, 6, 0),
		spatialmath.NewHeadingPoint(10, 7, 0),
	}
	s, err := NewSpline(pts)
	test.That(t, err, test.ShouldBeNil)

	prev := s.InterpolateFromX(0).Y
	for x := 0.1; x <= 10; x += 0.1 {
		y := s.InterpolateFromX(x).Y
		test.That(t, y, test.ShouldBeGreaterThanOrEqualTo, prev-1e-9)
		prev = y
	}
}

func TestSplineFlatRegionStaysFlat(t *testing.T) {
	pts := []spatialmath.HeadingPoint{
		spatialmath.NewHeadingPoint(0, 2, 0),
		spatialmath.NewHeadingPoint(5, 2, 0),
		spatialmath.NewHeadingPoint(10, 7, 0),
	}
	s, err := NewSpline(pts)
	test.That(t, err, test.ShouldBeNil)

	// zeroed adjacent tangents keep the flat interval from overshooting
	for x := 0.0; x <= 5; x += 0.5 {
		test.That(t, s.InterpolateFromX(x).Y, test.ShouldAlmostEqual, 2, 1e-9)
	}
}

func TestSplineBoundaryClamping(t *testing.T) {
	s, err := NewSpline([]spatialmath.HeadingPoint{
		spatialmath.NewHeadingPoint(2, 3, 0),
		spatialmath.NewHeadingPoint(8, 9, 0),
	})
	test.That(t, err, test.ShouldBeNil)

	low := s.InterpolateFromX(-100)
	test.That(t, low.X, test.ShouldAlmostEqual, 2)
	test.That(t, low.Y, test.ShouldAlmostEqual, 3)

	high := s.InterpolateFromX(100)
	test.That(t, high.X, test.ShouldAlmostEqual, 8)
	test.That(t, high.Y, test.ShouldAlmostEqual, 9)

	test.That(t, s.InterpolateFromY(-5).X, test.ShouldAlmostEqual, 2)
	test.That(t, s.InterpolateFromY(50).X, test.ShouldAlmostEqual, 8)
}

func TestSplineAngleAt(t *testing.T) {
	s, err := NewSpline([]spatialmath.HeadingPoint{
		spatialmath.NewHeadingPoint(0, 0, 10),
		spatialmath.NewHeadingPoint(5, 5, 50),
		spatialmath.NewHeadingPoint(10, 10, 90),
	})
	test.That(t, err, test.ShouldBeNil)

	// the heading everywhere along the segment is the last control point's
	test.That(t, s.AngleAt(s.Start()), test.ShouldEqual, 90)
	test.That(t, s.AngleAt(s.InterpolateFromX(3)), test.ShouldEqual, 90)
	test.That(t, s.AngleAt(s.End()), test.ShouldEqual, 90)
}

func TestSplineBounds(t *testing.T) {
	s, err := NewSpline([]spatialmath.HeadingPoint{
		spatialmath.NewHeadingPoint(10, 1, 0),
		spatialmath.NewHeadingPoint(2, 8, 0),
		spatialmath.NewHeadingPoint(6, 4, 0),
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Minimum().X, test.ShouldEqual, 2)
	test.That(t, s.Minimum().Y, test.ShouldEqual, 1)
	test.That(t, s.Maximum().X, test.ShouldEqual, 10)
	test.That(t, s.Maximum().Y, test.ShouldEqual, 8)
}

func TestNewArc(t *testing.T) {
	arc, err := NewArc(
		spatialmath.NewHeadingPoint(0, 0, 0),
		spatialmath.NewHeadingPoint(10, 0, 90),
		5,
	)
	test.That(t, err, test.ShouldBeNil)

	// the bend control point sits 5 units perpendicular to the start->end
	// heading, off the midpoint, with the averaged heading
	cps := arc.ControlPoints()
	test.That(t, cps, test.ShouldHaveLength, 3)
	test.That(t, cps[1].Point.X, test.ShouldAlmostEqual, 5, 1e-9)
	test.That(t, cps[1].Point.Y, test.ShouldAlmostEqual, 5, 1e-9)
	test.That(t, cps[1].Heading, test.ShouldAlmostEqual, 45)

	// the fitted curve passes through the bend point
	apex := arc.InterpolateFromX(5)
	test.That(t, apex.Y, test.ShouldAlmostEqual, 5, 1e-9)
}

func TestVerticalLinearUsesYLookup(t *testing.T) {
	line, err := NewLinear(
		spatialmath.NewHeadingPoint(3, 0, 90),
		spatialmath.NewHeadingPoint(3, 10, 90),
	)
	test.That(t, err, test.ShouldBeNil)

	p := line.InterpolateFromY(4)
	test.That(t, p.X, test.ShouldAlmostEqual, 3)
	test.That(t, p.Y, test.ShouldAlmostEqual, 4)
}
