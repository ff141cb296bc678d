// Package spatialmath defines the 2D geometric primitives used for field
// navigation: points, headed points, lines, and angle utilities. Field
// coordinates are unit-agnostic floats, conventionally inches. Headings are
// degrees normalized to [0, 360).
package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Distance returns the Euclidean distance between two points.
func Distance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}

// AngleTo returns the heading in degrees from a to b, normalized to [0, 360).
func AngleTo(a, b r2.Point) float64 {
	d := b.Sub(a)
	return ModAngDeg(RadToDeg(math.Atan2(d.Y, d.X)))
}

// Scale returns p scaled by factor about the origin.
func Scale(p r2.Point, factor float64) r2.Point {
	return p.Mul(factor)
}

// Translate returns p shifted by delta.
func Translate(p, delta r2.Point) r2.Point {
	return p.Add(delta)
}

// RotateAboutOrigin returns p rotated counterclockwise about the origin by
// the given angle in degrees.
func RotateAboutOrigin(p r2.Point, degrees float64) r2.Point {
	rad := DegToRad(degrees)
	sin, cos := math.Sincos(rad)
	return r2.Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// HeadingPoint is a point paired with a heading in degrees. It is used
// wherever travel direction matters: trajectory control points and path
// output consumed by heading-aware followers.
type HeadingPoint struct {
	Point   r2.Point
	Heading float64
}

// NewHeadingPoint creates a HeadingPoint at (x, y) with the given heading,
// normalized to [0, 360).
func NewHeadingPoint(x, y, heading float64) HeadingPoint {
	return HeadingPoint{Point: r2.Point{X: x, Y: y}, Heading: ModAngDeg(heading)}
}

// String returns a human readable representation of the headed point.
func (hp HeadingPoint) String() string {
	return fmt.Sprintf("(%.3f, %.3f | %.1f°)", hp.Point.X, hp.Point.Y, hp.Heading)
}
