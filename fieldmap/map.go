package fieldmap

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Zone is a named obstacle region on the field, backed by a Shape. Parent
// points at the owning obstacle outline so collision reports can name the
// obstacle that was hit even when the zone is a sub-shape of a larger
// structure. Zones are immutable once added to a map.
type Zone struct {
	Name   string
	Shape  Shape
	Parent Shape
}

// NewZone creates a zone that is its own parent obstacle.
func NewZone(name string, shape Shape) Zone {
	return Zone{Name: name, Shape: shape, Parent: shape}
}

// NewSubZone creates a zone that belongs to a larger parent obstacle.
func NewSubZone(name string, shape, parent Shape) Zone {
	return Zone{Name: name, Shape: shape, Parent: parent}
}

// Map is an ordered collection of zones plus the field bounds. A map is
// constructed once per field configuration and then read by many finder
// invocations; zone mutation is a configuration-time operation and must be
// externally serialized against in-flight searches.
type Map struct {
	width  float64
	height float64
	zones  []Zone
}

// NewMap creates an empty field map with the given bounds.
func NewMap(width, height float64) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("field bounds must be positive, got %.2f x %.2f", width, height)
	}
	return &Map{width: width, height: height}, nil
}

// Width returns the field width.
func (m *Map) Width() float64 { return m.width }

// Height returns the field height.
func (m *Map) Height() float64 { return m.height }

// Bounds returns the field as a rectangle anchored at the origin.
func (m *Map) Bounds() r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: m.width, Y: m.height})
}

// AddZone appends a zone to the map. Configuration-time only.
func (m *Map) AddZone(z Zone) {
	m.zones = append(m.zones, z)
}

// Zones returns the zones in insertion order. The returned slice must not be
// mutated.
func (m *Map) Zones() []Zone {
	return m.zones
}

// AreaEmpty reports whether no zone overlaps the axis-aligned rectangle
// spanned by the two points. This is the cheapest clearance test the finder
// chain runs.
func (m *Map) AreaEmpty(a, b r2.Point) bool {
	area := r2.RectFromPoints(a, b)
	for _, z := range m.zones {
		if IntersectsRect(z.Shape, area) {
			return false
		}
	}
	return true
}

// ZonesInArea returns every zone whose shape overlaps the rectangle, in
// insertion order. Finders use it to restrict full collision checks to the
// relevant subset.
func (m *Map) ZonesInArea(area r2.Rect) []Zone {
	var hits []Zone
	for _, z := range m.zones {
		if IntersectsRect(z.Shape, area) {
			hits = append(hits, z)
		}
	}
	return hits
}
