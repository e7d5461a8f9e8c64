package sim

import "math"

// RNG is a deterministic pseudo-random number generator.
// Uses a simple LCG so a run can be replayed from its seed.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Unit returns a random unit vector.
func (r *RNG) Unit() Vec2 {
	return FromAngle(r.Float64() * 2 * math.Pi)
}

// State exposes the generator state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
