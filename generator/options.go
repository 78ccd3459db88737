// SPDX-License-Identifier: MIT

package generator

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/gellermann/predicate"
)

// Option customizes a generation call.
// Option constructors panic on meaningless values; generators never panic.
type Option func(*config)

// config aggregates all knobs of a generation call.
type config struct {
	rng           *rand.Rand
	maxIterations int // 0 means unbounded
	tolerance     float64
}

// newConfig applies opts over the defaults, later options overriding
// earlier ones.
func newConfig(opts ...Option) config {
	cfg := config{
		tolerance: predicate.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// random returns the configured source or a clock-seeded one.
func (c config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// WithSeed uses a fresh *rand.Rand seeded with seed. Use it to make runs
// reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an existing source. Its state advances with every
// attempt, so consecutive calls sharing r continue one random stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxIterations bounds the number of shuffle attempts of Sample.
// 0 means unbounded. Panics on negative values. Enumerate ignores it.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("generator: WithMaxIterations(n<0)")
	}
	return func(c *config) {
		c.maxIterations = n
	}
}

// WithTolerance sets the near-chance alternation tolerance.
// Values outside [0, 0.5] are reported by the generator as
// predicate.ErrInvalidTolerance, not as a panic, because they usually come
// from user input.
func WithTolerance(t float64) Option {
	return func(c *config) {
		c.tolerance = t
	}
}
