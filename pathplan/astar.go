package pathplan

import (
	"container/heap"
	"math"

	"github.com/fieldrobotics/fieldnav/fieldmap"
)

// step costs for grid moves.
const (
	orthogonalCost = 1.0
	diagonalCost   = math.Sqrt2
)

type cell struct {
	x, y int
}

type node struct {
	c      cell
	g      float64 // cost from start
	f      float64 // g + heuristic
	parent *node
	index  int // position in the open heap, -1 when not queued
	closed bool
}

// openSet is a min-heap of nodes ordered by f.
type openSet []*node

func (s openSet) Len() int            { return len(s) }
func (s openSet) Less(i, j int) bool  { return s[i].f < s[j].f }
func (s openSet) Swap(i, j int)       { s[i], s[j] = s[j], s[i]; s[i].index = i; s[j].index = j }
func (s *openSet) Push(x interface{}) { n := x.(*node); n.index = len(*s); *s = append(*s, n) }
func (s *openSet) Pop() interface{} {
	old := *s
	n := old[len(old)-1]
	n.index = -1
	*s = old[:len(old)-1]
	return n
}

// neighbor move table: 4 orthogonal then 4 diagonal.
var gridMoves = [8]struct {
	dx, dy int
	cost   float64
}{
	{1, 0, orthogonalCost},
	{-1, 0, orthogonalCost},
	{0, 1, orthogonalCost},
	{0, -1, orthogonalCost},
	{1, 1, diagonalCost},
	{1, -1, diagonalCost},
	{-1, 1, diagonalCost},
	{-1, -1, diagonalCost},
}

// searchGrid runs A* (or Theta* when anyAngle is set) from start to goal over
// the grid's walkable cells. Diagonal moves obey the don't-cross-corners
// rule: both orthogonally adjacent cells must be walkable. Returns the
// ordered cell path including both endpoints, or nil when the goal is
// unreachable.
func searchGrid(g *fieldmap.Grid, start, goal cell, h Heuristic, anyAngle bool) []cell {
	if start == goal {
		return []cell{start}
	}

	nodes := map[cell]*node{}
	startNode := &node{c: start, g: 0, f: h(goal.x-start.x, goal.y-start.y), index: -1}
	nodes[start] = startNode

	open := openSet{}
	heap.Init(&open)
	heap.Push(&open, startNode)

	for open.Len() > 0 {
		current := heap.Pop(&open).(*node)
		current.closed = true
		if current.c == goal {
			return reconstructPath(current)
		}

		for _, mv := range gridMoves {
			next := cell{x: current.c.x + mv.dx, y: current.c.y + mv.dy}
			if !g.Walkable(next.x, next.y) {
				continue
			}
			// don't cut corners on diagonal moves
			if mv.dx != 0 && mv.dy != 0 &&
				(!g.Walkable(current.c.x+mv.dx, current.c.y) || !g.Walkable(current.c.x, current.c.y+mv.dy)) {
				continue
			}

			neighbor, seen := nodes[next]
			if !seen {
				neighbor = &node{c: next, g: math.Inf(1), index: -1}
				nodes[next] = neighbor
			}
			if neighbor.closed {
				continue
			}

			tentativeG := current.g + mv.cost
			tentativeParent := current
			if anyAngle && current.parent != nil && lineOfSight(g, current.parent.c, next) {
				// Theta*: shortcut through the grid by re-parenting to the
				// grandparent when it can see this neighbor
				shortcut := current.parent.g + cellDistance(current.parent.c, next)
				if shortcut < tentativeG {
					tentativeG = shortcut
					tentativeParent = current.parent
				}
			}
			if tentativeG >= neighbor.g {
				continue
			}

			neighbor.g = tentativeG
			neighbor.f = tentativeG + h(goal.x-next.x, goal.y-next.y)
			neighbor.parent = tentativeParent
			if neighbor.index >= 0 {
				heap.Fix(&open, neighbor.index)
			} else {
				heap.Push(&open, neighbor)
			}
		}
	}
	return nil
}

func reconstructPath(n *node) []cell {
	var reversed []cell
	for ; n != nil; n = n.parent {
		reversed = append(reversed, n.c)
	}
	path := make([]cell, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

func cellDistance(a, b cell) float64 {
	return math.Hypot(float64(b.x-a.x), float64(b.y-a.y))
}

// lineOfSight reports whether every cell on the discrete line between a and b
// is walkable. Standard integer Bresenham traversal.
func lineOfSight(g *fieldmap.Grid, a, b cell) bool {
	x0, y0 := a.x, a.y
	x1, y1 := b.x, b.y
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	errTerm := dx - dy
	for {
		if !g.Walkable(x0, y0) {
			return false
		}
		if x0 == x1 && y0 == y1 {
			return true
		}
		e2 := 2 * errTerm
		if e2 > -dy {
			errTerm -= dy
			x0 += sx
		}
		if e2 < dx {
			errTerm += dx
			y0 += sy
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
