// Package pathplan discovers coordinate paths across a field map with a
// tiered strategy chain: a direct clearance test, a corridor approximation,
// and a rasterized grid search, tried in that fixed order until one finds a
// path. Finding no path is signaled with an empty result, not an error.
package pathplan

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"go.uber.org/multierr"

	"github.com/fieldrobotics/fieldnav/fieldmap"
)

// default values for planning.
const (
	// distance below which start and end are considered coincident.
	defaultEpsilon = 1e-4

	// cells per field unit when the caller does not set a resolution.
	defaultResolution = 1.0
)

// SearchMode selects the algorithm the grid finder runs.
type SearchMode string

// The set of supported grid search modes.
const (
	// SearchAStar is plain A* over the occupancy grid.
	SearchAStar = SearchMode("astar")
	// SearchThetaStar is an any-angle A* variant that shortcuts through
	// grid cells with line-of-sight re-parenting, yielding paths with fewer
	// waypoints.
	SearchThetaStar = SearchMode("thetastar")
)

// Heuristic estimates remaining cost from a cell offset of (dx, dy) cells to
// the goal. It must never overestimate if admissibility is desired.
type Heuristic func(dx, dy int) float64

// ManhattanHeuristic is the default grid heuristic.
func ManhattanHeuristic(dx, dy int) float64 {
	return math.Abs(float64(dx)) + math.Abs(float64(dy))
}

// EuclideanHeuristic is a tighter heuristic appropriate for the any-angle
// Theta* mode.
func EuclideanHeuristic(dx, dy int) float64 {
	return math.Hypot(float64(dx), float64(dy))
}

// Generator is a strategy that attempts to produce a coordinate path between
// two points. The result is non-nil and ordered; an empty result means "no
// path found by this strategy". A non-empty result always begins at (or near)
// start and ends at (or near) end.
type Generator interface {
	CoordinatePath(start, end r2.Point) []r2.Point
}

// Config selects and parameterizes the finder tiers. Tiers run in the fixed
// order direct, corridor, grid; each is independently enable/disable-able.
type Config struct {
	// enabled tiers
	Direct   bool
	Corridor bool
	Grid     bool

	// grid search parameters
	Search     SearchMode // defaults to SearchAStar
	Resolution float64    // cells per field unit; defaults to 1 when unset
	Heuristic  Heuristic  // defaults to ManhattanHeuristic

	// robot footprint half extents, used to inflate obstacles
	RobotHalfWidth  float64
	RobotHalfHeight float64
}

// Validate rejects configurations that could only fail at plan time: zero
// enabled tiers, unknown search modes, and unusable grid parameters.
func (c Config) Validate() error {
	var err error
	if !c.Direct && !c.Corridor && !c.Grid {
		err = multierr.Append(err, NewNoFinderEnabledError())
	}
	if c.RobotHalfWidth < 0 || c.RobotHalfHeight < 0 {
		err = multierr.Append(err, NewBadFootprintError(c.RobotHalfWidth, c.RobotHalfHeight))
	}
	if c.Grid {
		if c.Resolution < 0 {
			err = multierr.Append(err, NewBadResolutionError(c.Resolution))
		}
		switch c.Search {
		case SearchAStar, SearchThetaStar, "":
		default:
			err = multierr.Append(err, NewUnknownSearchModeError(c.Search))
		}
	}
	return err
}

// Chain runs an ordered list of finders, returning the first non-empty path.
type Chain struct {
	finders []Generator
	logger  golog.Logger
}

// NewChain validates the config and builds the ordered finder list over the
// given map. The map must not be mutated while the chain is planning.
func NewChain(cfg Config, m *fieldmap.Map, logger golog.Logger) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	halfDiagonal := math.Hypot(cfg.RobotHalfWidth, cfg.RobotHalfHeight)

	var finders []Generator
	if cfg.Direct {
		finders = append(finders, &directFinder{m: m})
	}
	if cfg.Corridor {
		finders = append(finders, &corridorFinder{m: m, halfDiagonal: halfDiagonal})
	}
	if cfg.Grid {
		resolution := cfg.Resolution
		if resolution == 0 {
			resolution = defaultResolution
		}
		heuristic := cfg.Heuristic
		if heuristic == nil {
			heuristic = ManhattanHeuristic
		}
		finders = append(finders, &gridFinder{
			m:               m,
			resolution:      resolution,
			robotHalfWidth:  cfg.RobotHalfWidth,
			robotHalfHeight: cfg.RobotHalfHeight,
			anyAngle:        cfg.Search == SearchThetaStar,
			heuristic:       heuristic,
			logger:          logger,
		})
	}
	return &Chain{finders: finders, logger: logger}, nil
}

// CoordinatePath tries each enabled tier in order and returns the first
// non-empty path, or an empty path when every tier fails. Callers surface
// the all-tiers-exhausted case as their own "no path" condition.
func (c *Chain) CoordinatePath(start, end r2.Point) []r2.Point {
	for _, f := range c.finders {
		path := f.CoordinatePath(start, end)
		if len(path) > 0 {
			c.logger.Debugf("%T found a %d-point path from %v to %v", f, len(path), start, end)
			return path
		}
		c.logger.Debugf("%T found no path from %v to %v, falling back", f, start, end)
	}
	return []r2.Point{}
}
