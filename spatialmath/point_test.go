package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestDistance(t *testing.T) {
	a := r2.Point{X: 1, Y: 2}
	b := r2.Point{X: 4, Y: 6}
	test.That(t, Distance(a, b), test.ShouldAlmostEqual, 5)
	test.That(t, Distance(a, b), test.ShouldAlmostEqual, Distance(b, a))
	test.That(t, Distance(a, a), test.ShouldEqual, 0)
}

func TestAngleTo(t *testing.T) {
	origin := r2.Point{}
	cases := []struct {
		to       r2.Point
		expected float64
	}{
		{r2.Point{X: 1, Y: 0}, 0},
		{r2.Point{X: 0, Y: 1}, 90},
		{r2.Point{X: -1, Y: 0}, 180},
		{r2.Point{X: 0, Y: -1}, 270},
		{r2.Point{X: 1, Y: 1}, 45},
	}
	for _, c := range cases {
		test.That(t, AngleTo(origin, c.to), test.ShouldAlmostEqual, c.expected)
	}
}

func TestRotateAboutOrigin(t *testing.T) {
	p := r2.Point{X: 1, Y: 0}

	r := RotateAboutOrigin(p, 90)
	test.That(t, r.X, test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, r.Y, test.ShouldAlmostEqual, 1, 1e-9)

	full := RotateAboutOrigin(p, 360)
	test.That(t, full.X, test.ShouldAlmostEqual, p.X, 1e-9)
	test.That(t, full.Y, test.ShouldAlmostEqual, p.Y, 1e-9)
}

func TestScaleTranslate(t *testing.T) {
	p := r2.Point{X: 2, Y: -3}
	test.That(t, Scale(p, 2), test.ShouldResemble, r2.Point{X: 4, Y: -6})
	test.That(t, Translate(p, r2.Point{X: 1, Y: 1}), test.ShouldResemble, r2.Point{X: 3, Y: -2})
}

func TestModAngDeg(t *testing.T) {
	test.That(t, ModAngDeg(-90), test.ShouldAlmostEqual, 270)
	test.That(t, ModAngDeg(450), test.ShouldAlmostEqual, 90)
	test.That(t, ModAngDeg(360), test.ShouldAlmostEqual, 0)
}

func TestHeadingPoint(t *testing.T) {
	hp := NewHeadingPoint(3, 4, -45)
	test.That(t, hp.Point.X, test.ShouldEqual, 3)
	test.That(t, hp.Point.Y, test.ShouldEqual, 4)
	test.That(t, hp.Heading, test.ShouldAlmostEqual, 315)
}

func TestLineIntersects(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Line
		expected bool
	}{
		{
			"crossing",
			NewLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 10}),
			NewLine(r2.Point{X: 0, Y: 10}, r2.Point{X: 10, Y: 0}),
			true,
		},
		{
			"parallel",
			NewLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 0}),
			NewLine(r2.Point{X: 0, Y: 1}, r2.Point{X: 10, Y: 1}),
			false,
		},
		{
			"collinear overlapping",
			NewLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 5, Y: 0}),
			NewLine(r2.Point{X: 3, Y: 0}, r2.Point{X: 8, Y: 0}),
			true,
		},
		{
			"collinear disjoint",
			NewLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0}),
			NewLine(r2.Point{X: 3, Y: 0}, r2.Point{X: 8, Y: 0}),
			false,
		},
		{
			"touching at endpoint",
			NewLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 5, Y: 5}),
			NewLine(r2.Point{X: 5, Y: 5}, r2.Point{X: 9, Y: 0}),
			true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			test.That(t, c.a.Intersects(c.b), test.ShouldEqual, c.expected)
			test.That(t, c.b.Intersects(c.a), test.ShouldEqual, c.expected)
		})
	}
}

func TestLineDistanceTo(t *testing.T) {
	l := NewLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 0})
	test.That(t, l.DistanceTo(r2.Point{X: 5, Y: 3}), test.ShouldAlmostEqual, 3)
	test.That(t, l.DistanceTo(r2.Point{X: -3, Y: 4}), test.ShouldAlmostEqual, 5)

	degenerate := NewLine(r2.Point{X: 1, Y: 1}, r2.Point{X: 1, Y: 1})
	test.That(t, degenerate.DistanceTo(r2.Point{X: 1, Y: 2}), test.ShouldAlmostEqual, 1)
	test.That(t, degenerate.Length(), test.ShouldEqual, 0)
}

func TestAngleDiffDeg(t *testing.T) {
	test.That(t, AngleDiffDeg(350, 10), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDiffDeg(10, 350), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDiffDeg(90, 90), test.ShouldAlmostEqual, 0)
	test.That(t, math.Abs(AngleDiffDeg(0, 180)), test.ShouldAlmostEqual, 180)
}
