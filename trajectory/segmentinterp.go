package trajectory

import "github.com/golang/geo/r2"

// PercentOutOfRange is the sentinel PercentX and PercentY return for a value
// outside the segment's domain: "not on this segment". It is recoverable and
// must be checked by the caller.
const PercentOutOfRange = -1.0

// SegmentInterpolator maps between field coordinates and percent-of-completion
// along a single segment. It caches the segment's bounds and ranges so a
// follower can ask "where should the robot be at 37% of this segment" on a
// high-frequency loop without recomputing them.
type SegmentInterpolator struct {
	segment Segment

	minX, maxX float64
	minY, maxY float64
	rangeX     float64
	rangeY     float64
}

// NewSegmentInterpolator wraps a segment with cached min/max bounds.
func NewSegmentInterpolator(segment Segment) *SegmentInterpolator {
	min := segment.Minimum()
	max := segment.Maximum()
	return &SegmentInterpolator{
		segment: segment,
		minX:    min.X,
		maxX:    max.X,
		minY:    min.Y,
		maxY:    max.Y,
		rangeX:  max.X - min.X,
		rangeY:  max.Y - min.Y,
	}
}

// Segment returns the wrapped segment.
func (si *SegmentInterpolator) Segment() Segment {
	return si.segment
}

// PercentX returns the completion fraction in [0, 1] of x across the
// segment's X domain, or PercentOutOfRange when x is not on the segment.
func (si *SegmentInterpolator) PercentX(x float64) float64 {
	if x < si.minX || x > si.maxX {
		return PercentOutOfRange
	}
	if si.rangeX == 0 {
		return 0
	}
	return (x - si.minX) / si.rangeX
}

// PercentY returns the completion fraction in [0, 1] of y across the
// segment's Y domain, or PercentOutOfRange when y is not on the segment.
func (si *SegmentInterpolator) PercentY(y float64) float64 {
	if y < si.minY || y > si.maxY {
		return PercentOutOfRange
	}
	if si.rangeY == 0 {
		return 0
	}
	return (y - si.minY) / si.rangeY
}

// AtPercentX returns the segment point at the given completion fraction of
// the X domain. It is the inverse of PercentX within floating point
// tolerance.
func (si *SegmentInterpolator) AtPercentX(percent float64) r2.Point {
	return si.segment.InterpolateFromX(si.minX + percent*si.rangeX)
}

// AtPercentY returns the segment point at the given completion fraction of
// the Y domain. It is the inverse of PercentY within floating point
// tolerance.
func (si *SegmentInterpolator) AtPercentY(percent float64) r2.Point {
	return si.segment.InterpolateFromY(si.minY + percent*si.rangeY)
}
