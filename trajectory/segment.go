// Package trajectory turns sparse, headed control points into continuously
// differentiable segments and densely sampled, direction-consistent waypoint
// sequences that a downstream follower can consume at arbitrary resolution.
// Segments, splines, and trajectories are immutable after construction and
// safe to share across goroutines.
package trajectory

import "github.com/golang/geo/r2"

// Segment is a continuously interpolatable piece of a trajectory: a line, an
// arc, or a spline.
type Segment interface {
	// InterpolateFromX returns the point on the segment at the given X.
	// Queries outside the segment's X domain clamp to the nearest endpoint.
	InterpolateFromX(x float64) r2.Point
	// InterpolateFromY returns the point on the segment at the given Y.
	// Queries outside the segment's Y domain clamp to the nearest endpoint.
	InterpolateFromY(y float64) r2.Point
	// AngleAt returns the heading in degrees at the given point on the
	// segment. The heading is well-defined everywhere along the segment.
	AngleAt(p r2.Point) float64
	// Minimum returns the lower corner of the segment's bounding box.
	Minimum() r2.Point
	// Maximum returns the upper corner of the segment's bounding box.
	Maximum() r2.Point
	// Start returns the segment's first control point.
	Start() r2.Point
	// End returns the segment's last control point.
	End() r2.Point
}
