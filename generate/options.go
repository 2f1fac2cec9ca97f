// SPDX-License-Identifier: MIT
// Package: cascadia/generate
//
// options.go — functional options for network generators.
//
// Contract:
//   - Options are functional (Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic, they return sentinel errors.
//   - No hidden globals; everything flows through the resolved config.
package generate

import "math/rand"

// config aggregates generator knobs. It is resolved once per call and
// passed by value (immutable to callers).
type config struct {
	// rng drives stochastic choices; nil means the process-global source.
	rng *rand.Rand
}

// Option customizes a generator by mutating the config before work begins.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic generation.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// newConfig applies options in order; later options override earlier ones.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// bernoulli reports one trial with probability p, drawing from r when set
// and from the process-global source otherwise.
func (c config) bernoulli(p float64) bool {
	if c.rng != nil {
		return c.rng.Float64() < p
	}

	return rand.Float64() < p
}
