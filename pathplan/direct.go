package pathplan

import (
	"github.com/golang/geo/r2"

	"github.com/fieldrobotics/fieldnav/fieldmap"
)

// directFinder is the cheapest tier: if the axis-aligned bounding rectangle
// between start and end contains no zone at all, the straight line is free.
type directFinder struct {
	m *fieldmap.Map
}

func (f *directFinder) CoordinatePath(start, end r2.Point) []r2.Point {
	if f.m.AreaEmpty(start, end) {
		return []r2.Point{start, end}
	}
	return []r2.Point{}
}
