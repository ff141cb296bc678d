package pathplan

import "github.com/pkg/errors"

// NewNoFinderEnabledError is returned at configuration time when every finder
// tier is disabled; a chain with zero tiers could never find a path.
func NewNoFinderEnabledError() error {
	return errors.New("no finder tier enabled; at least one of direct, corridor, or grid must be set")
}

// NewUnknownSearchModeError is returned at configuration time for a search
// mode with no backing finder.
func NewUnknownSearchModeError(mode SearchMode) error {
	return errors.Errorf("unknown grid search mode %q", string(mode))
}

// NewBadResolutionError is returned for a negative grid resolution.
func NewBadResolutionError(resolution float64) error {
	return errors.Errorf("grid resolution must be positive, got %f", resolution)
}

// NewBadFootprintError is returned for negative robot half extents.
func NewBadFootprintError(halfWidth, halfHeight float64) error {
	return errors.Errorf("robot half extents must be non-negative, got %f x %f", halfWidth, halfHeight)
}
