package trajectory

import (
	"math"

	"github.com/fieldrobotics/fieldnav/spatialmath"
)

// GeneratePath walks every segment of the trajectory in order and emits a
// dense, direction-ordered sequence of headed points, sampling each segment's
// X range in range/samples increments. Segments whose start X exceeds their
// end X are emitted in reverse sample order so that per-segment travel
// direction is preserved; the output never silently reverses the caller's
// intended direction of travel.
func GeneratePath(traj *Trajectory, samples int) ([]spatialmath.HeadingPoint, error) {
	if samples <= 0 {
		return nil, NewBadSampleCountError(samples)
	}

	var path []spatialmath.HeadingPoint
	for _, seg := range traj.Segments() {
		path = append(path, sampleSegment(seg, samples)...)
	}
	return path, nil
}

func sampleDegenerateSegment(seg Segment) []spatialmath.HeadingPoint {
	start := seg.Start()
	end := seg.End()
	return []spatialmath.HeadingPoint{
		{Point: start, Heading: seg.AngleAt(start)},
		{Point: end, Heading: seg.AngleAt(end)},
	}
}

// sampleSegment emits samples+1 headed points across the segment's X range,
// ordered in the segment's direction of travel.
func sampleSegment(seg Segment, samples int) []spatialmath.HeadingPoint {
	startX := seg.Start().X
	endX := seg.End().X
	lo := math.Min(startX, endX)
	hi := math.Max(startX, endX)
	if hi-lo == 0 {
		// vertical segment: X sampling cannot advance, emit the endpoints
		return sampleDegenerateSegment(seg)
	}

	step := (hi - lo) / float64(samples)
	pts := make([]spatialmath.HeadingPoint, 0, samples+1)
	for i := 0; i <= samples; i++ {
		x := lo + float64(i)*step
		p := seg.InterpolateFromX(x)
		pts = append(pts, spatialmath.HeadingPoint{Point: p, Heading: seg.AngleAt(p)})
	}

	if startX > endX {
		// the segment runs in decreasing X: reverse so the emitted order
		// follows the segment from its start to its end
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}
