package fieldmap

import (
	"math"
	"runtime"
	"sync"

	"github.com/golang/geo/r2"
	goutils "go.viam.com/utils"
)

// Grid is an occupancy grid over a rasterized sub-region of a map. Cells are
// resolution cells per field unit; a cell is walkable iff a robot-footprint
// probe centered on the cell overlaps no zone. Grids are immutable after
// Rasterize returns.
type Grid struct {
	walkable   []bool
	width      int
	height     int
	origin     r2.Point
	resolution float64
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Resolution returns the cells-per-field-unit scale the grid was built at.
func (g *Grid) Resolution() float64 { return g.resolution }

// InBounds reports whether the cell coordinates lie inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Walkable reports whether the cell is free of inflated obstacles. Cells
// outside the grid are not walkable.
func (g *Grid) Walkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.walkable[y*g.width+x]
}

// CellToPoint returns the field coordinates of the cell's center.
func (g *Grid) CellToPoint(x, y int) r2.Point {
	return r2.Point{
		X: g.origin.X + (float64(x)+0.5)/g.resolution,
		Y: g.origin.Y + (float64(y)+0.5)/g.resolution,
	}
}

// PointToCell returns the cell containing the field point, clamped into the
// grid so out-of-region endpoints map to the nearest boundary cell.
func (g *Grid) PointToCell(p r2.Point) (int, int) {
	x := int(math.Floor((p.X - g.origin.X) * g.resolution))
	y := int(math.Floor((p.Y - g.origin.Y) * g.resolution))
	x = clampInt(x, 0, g.width-1)
	y = clampInt(y, 0, g.height-1)
	return x, y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rasterize builds an occupancy grid covering the area at resolution cells
// per field unit. Each cell is probed with a rectangle of the robot's half
// extents centered on the cell, so obstacles are effectively inflated by the
// robot footprint. Cost grows with area x resolution squared; callers choose
// the accuracy/performance trade-off explicitly. Rows are filled in parallel;
// all workers join before Rasterize returns.
func (m *Map) Rasterize(area r2.Rect, resolution, robotHalfWidth, robotHalfHeight float64) *Grid {
	if resolution <= 0 {
		resolution = 1
	}
	size := area.Size()
	width := int(math.Ceil(size.X * resolution))
	height := int(math.Ceil(size.Y * resolution))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	g := &Grid{
		walkable:   make([]bool, width*height),
		width:      width,
		height:     height,
		origin:     r2.Point{X: area.X.Lo, Y: area.Y.Lo},
		resolution: resolution,
	}

	// Only zones overlapping the inflated area can block any probe.
	padded := rectFromCenter(area.Center(), size.X/2+robotHalfWidth, size.Y/2+robotHalfHeight)
	zones := m.ZonesInArea(padded)

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}
	rowsPer := (height + workers - 1) / workers

	var wait sync.WaitGroup
	for w := 0; w < workers; w++ {
		fromRow := w * rowsPer
		toRow := fromRow + rowsPer
		if toRow > height {
			toRow = height
		}
		if fromRow >= toRow {
			continue
		}
		wait.Add(1)
		fromCopy, toCopy := fromRow, toRow
		goutils.PanicCapturingGo(func() {
			defer wait.Done()
			for y := fromCopy; y < toCopy; y++ {
				for x := 0; x < width; x++ {
					probe := rectFromCenter(g.CellToPoint(x, y), robotHalfWidth, robotHalfHeight)
					g.walkable[y*width+x] = !anyZoneIntersectsRect(zones, probe)
				}
			}
		})
	}
	wait.Wait()
	return g
}

func anyZoneIntersectsRect(zones []Zone, area r2.Rect) bool {
	for _, z := range zones {
		if IntersectsRect(z.Shape, area) {
			return true
		}
	}
	return false
}
