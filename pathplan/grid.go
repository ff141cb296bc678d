package pathplan

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"

	"github.com/fieldrobotics/fieldnav/fieldmap"
	"github.com/fieldrobotics/fieldnav/spatialmath"
)

// gridFinder is the fallback of last resort: it rasterizes the bounding
// region between start and end into an occupancy grid and runs a cell
// search over it. Cost grows with area x resolution squared; this is the
// accuracy/performance tier callers accept when the cheaper tiers fail.
type gridFinder struct {
	m               *fieldmap.Map
	resolution      float64
	robotHalfWidth  float64
	robotHalfHeight float64
	anyAngle        bool
	heuristic       Heuristic
	logger          golog.Logger
}

func (f *gridFinder) CoordinatePath(start, end r2.Point) []r2.Point {
	if spatialmath.Distance(start, end) < defaultEpsilon {
		return []r2.Point{start, end}
	}

	// pad the bounding region by the footprint so the endpoint probes fit
	area := r2.RectFromPoints(start, end)
	pad := r2.Point{X: f.robotHalfWidth, Y: f.robotHalfHeight}
	area = r2.RectFromPoints(
		r2.Point{X: area.X.Lo, Y: area.Y.Lo}.Sub(pad),
		r2.Point{X: area.X.Hi, Y: area.Y.Hi}.Add(pad),
	)

	grid := f.m.Rasterize(area, f.resolution, f.robotHalfWidth, f.robotHalfHeight)
	f.logger.Debugf("rasterized %dx%d grid at resolution %.2f", grid.Width(), grid.Height(), f.resolution)

	// start and end are clamped into the rasterized bounding box
	startCell := cellOf(grid.PointToCell(start))
	endCell := cellOf(grid.PointToCell(end))

	// an endpoint inside an inflated obstacle means no path; never fabricate
	// a path through a wall
	if !grid.Walkable(startCell.x, startCell.y) || !grid.Walkable(endCell.x, endCell.y) {
		return []r2.Point{}
	}

	cells := searchGrid(grid, startCell, endCell, f.heuristic, f.anyAngle)
	if len(cells) == 0 {
		return []r2.Point{}
	}
	if len(cells) == 1 {
		// both endpoints clamped into the same cell
		return []r2.Point{start, end}
	}

	path := make([]r2.Point, 0, len(cells))
	for _, c := range cells {
		path = append(path, grid.CellToPoint(c.x, c.y))
	}
	// snap the interior cell centers' endpoints onto the requested points
	path[0] = start
	path[len(path)-1] = end
	return path
}

func cellOf(x, y int) cell {
	return cell{x: x, y: y}
}
