// Package dice provides the seeded random source behind combat, AI, loot,
// and encounter rolls. Every session owns one Roller, so a transcript of
// player commands plus the seed replays identically.
package dice

import "math/rand"

// Roller wraps a seeded math/rand source with position tracking. Every
// public method consumes exactly one draw from the source, so a (seed,
// position) pair fully reconstructs the stream for save/restore.
//
// A Roller is not safe for concurrent use; each session owns its own.
type Roller struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a Roller from a seed.
func New(seed int64) *Roller {
	return &Roller{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Restore creates a Roller and advances it to the given position,
// reproducing the exact stream state recorded by Position.
func Restore(seed int64, position int64) *Roller {
	r := New(seed)
	for i := int64(0); i < position; i++ {
		r.src.Int63()
	}
	r.pos = position
	return r
}

// draw consumes the single underlying value all methods are built on.
func (r *Roller) draw() int64 {
	r.pos++
	return r.src.Int63()
}

// Intn returns a random integer in [0, n). n must be positive.
func (r *Roller) Intn(n int) int {
	return int(r.draw() % int64(n))
}

// Roll returns a random integer in [1, sides].
func (r *Roller) Roll(sides int) int {
	return r.Intn(sides) + 1
}

// Between returns a random integer in [low, high]. high must be >= low.
func (r *Roller) Between(low, high int) int {
	return low + r.Intn(high-low+1)
}

// Float64 returns a random float in [0, 1).
func (r *Roller) Float64() float64 {
	return float64(r.draw()>>11) / (1 << 52)
}

// Chance returns true with probability p. p <= 0 never hits, p >= 1
// always hits; either way one draw is consumed so replay stays aligned.
func (r *Roller) Chance(p float64) bool {
	return r.Float64() < p
}

// Seed returns the seed the Roller was created with.
func (r *Roller) Seed() int64 {
	return r.seed
}

// Position returns the number of draws consumed since creation.
func (r *Roller) Position() int64 {
	return r.pos
}
