package pathplan

import (
	"github.com/golang/geo/r2"

	"github.com/fieldrobotics/fieldnav/fieldmap"
	"github.com/fieldrobotics/fieldnav/spatialmath"
)

// corridorFinder assumes the direct clearance test already failed and checks
// a straight-line corridor instead: two boundary lines parallel to the
// start->end heading, offset perpendicular by the robot's half diagonal. If
// neither boundary line hits a zone, the straight line is reported free.
//
// This is a corridor-collision approximation, not a full swept-shape test: a
// convex obstacle that straddles the corridor without crossing either
// boundary line is a known false negative. Callers relying on tight
// tolerances should not depend solely on this tier.
type corridorFinder struct {
	m            *fieldmap.Map
	halfDiagonal float64
}

func (f *corridorFinder) CoordinatePath(start, end r2.Point) []r2.Point {
	if spatialmath.Distance(start, end) < defaultEpsilon {
		return []r2.Point{start, end}
	}

	dir := end.Sub(start).Normalize()
	// perpendicular to the direction of travel
	perp := r2.Point{X: -dir.Y, Y: dir.X}.Mul(f.halfDiagonal)

	left := spatialmath.NewLine(start.Add(perp), end.Add(perp))
	right := spatialmath.NewLine(start.Sub(perp), end.Sub(perp))

	corridor := r2.RectFromPoints(left.Start, left.End, right.Start, right.End)
	for _, z := range f.m.ZonesInArea(corridor) {
		if fieldmap.IntersectsLine(z.Shape, left) || fieldmap.IntersectsLine(z.Shape, right) {
			return []r2.Point{}
		}
	}
	return []r2.Point{start, end}
}
