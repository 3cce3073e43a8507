// Package vmath holds the small amount of math the game needs: a seeded xorshift source
// for pickup placement and float helpers for bounds and circular collision.
package vmath

import "math"

// Clamp restricts v to [lo, hi]
// lo wins when hi < lo, matching a canvas smaller than the entity
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Distance returns the Euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap reports whether two circles strictly intersect
// Touching circles (distance == sum of radii) do not overlap
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return Distance(ax, ay, bx, by) < ar+br
}

// --- Randomness ---

// FastRand is a xorshift64 source; not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
