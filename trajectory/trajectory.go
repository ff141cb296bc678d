package trajectory

// Trajectory is an ordered sequence of segments with a zero-based completion
// cursor. The cursor always addresses a valid segment; advancing past the
// last segment is an error, never a silent no-op.
type Trajectory struct {
	segments []Segment
	current  int
}

// NewTrajectory builds a trajectory over one or more segments with the
// cursor on the first.
func NewTrajectory(segments ...Segment) (*Trajectory, error) {
	if len(segments) == 0 {
		return nil, NewEmptyTrajectoryError()
	}
	return &Trajectory{segments: segments}, nil
}

// Segments returns the segments in travel order. The returned slice must not
// be mutated.
func (t *Trajectory) Segments() []Segment {
	return t.segments
}

// CurrentSegment returns the segment the cursor is on.
func (t *Trajectory) CurrentSegment() Segment {
	return t.segments[t.current]
}

// NextSegment returns the segment after the cursor, or nil when the cursor
// is on the last segment.
func (t *Trajectory) NextSegment() Segment {
	if t.current+1 >= len(t.segments) {
		return nil
	}
	return t.segments[t.current+1]
}

// CompleteSegment advances the cursor by one. Advancing when no next segment
// exists returns an error immediately; callers must check NextSegment first.
func (t *Trajectory) CompleteSegment() error {
	if t.current+1 >= len(t.segments) {
		return NewNoNextSegmentError(t.current, len(t.segments))
	}
	t.current++
	return nil
}
