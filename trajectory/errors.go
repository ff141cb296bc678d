package trajectory

import "github.com/pkg/errors"

// NewTooFewControlPointsError is returned when a spline is fit to fewer than
// two control points.
func NewTooFewControlPointsError(n int) error {
	return errors.Errorf("a spline needs at least 2 control points, got %d", n)
}

// NewEmptyTrajectoryError is returned when a trajectory is built with no
// segments; the segment cursor would have no valid position.
func NewEmptyTrajectoryError() error {
	return errors.New("a trajectory needs at least one segment")
}

// NewNoNextSegmentError is returned when the segment cursor is advanced past
// the last segment. This is caller misuse: check NextSegment first.
func NewNoNextSegmentError(current, total int) error {
	return errors.Errorf("cannot complete segment %d of %d; no next segment exists", current, total)
}

// NewBadSampleCountError is returned for a non-positive per-segment sample
// count.
func NewBadSampleCountError(samples int) error {
	return errors.Errorf("samples per segment must be positive, got %d", samples)
}
