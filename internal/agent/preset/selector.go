package preset

import (
	"math"
	"math/rand/v2"
)

// IntN returns a uniform integer in [0, n)
type IntN func(n int) int

// Selector resolves requested preset names against a catalog
type Selector struct {
	catalog *Catalog
	intN    IntN
}

// NewSelector creates a selector. A nil intN uses math/rand/v2.
func NewSelector(catalog *Catalog, intN IntN) *Selector {
	if intN == nil {
		intN = rand.IntN
	}
	return &Selector{catalog: catalog, intN: intN}
}

// Catalog returns the catalog the selector resolves against
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

// Resolve maps a requested preset name to a concrete preset.
// "rotate" picks from the rotation order: seeded requests are deterministic,
// unseeded ones are random. Unknown names fall back to the default.
func (s *Selector) Resolve(requested string, seed *float64) ID {
	if requested == Rotate {
		rotation := s.catalog.rotation
		var idx int
		if seed != nil {
			idx = RotationIndex(*seed, len(rotation))
		} else {
			idx = s.intN(len(rotation))
		}
		return rotation[idx]
	}

	if _, ok := s.catalog.presets[ID(requested)]; ok {
		return ID(requested)
	}
	return s.catalog.defaultID
}

// RotationIndex computes abs(trunc(seed)) mod n. Non-finite seeds map to 0.
func RotationIndex(seed float64, n int) int {
	if n <= 0 || math.IsNaN(seed) || math.IsInf(seed, 0) {
		return 0
	}
	return int(math.Mod(math.Abs(math.Trunc(seed)), float64(n)))
}
