// Package cascade: options, snapshot and result types, sentinel errors.
package cascade

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Sentinel errors for cascade execution.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("cascade: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cascade: invalid option supplied")
)

// Option configures cascade behavior via functional arguments.
// An invalid Option (e.g. negative max steps) is recorded internally and
// surfaced as ErrOptionViolation when the operation is invoked.
type Option func(*options)

// options holds resolved parameters for AssignThresholds, SelectSeeds, and Run.
type options struct {
	// rng drives stochastic choices; nil means the process-global source.
	rng *rand.Rand

	// maxSteps bounds Run iterations; 0 means "default to node count".
	maxSteps int

	// internal error recorded during option parsing
	err error
}

// resolveOptions applies opts in order; later options override earlier ones.
func resolveOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRand provides an explicit RNG for threshold and seed sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cascade: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithSeed creates a deterministic *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxSteps bounds the number of cascade iterations.
//
//	d > 0: stop after d steps even without a fixed point
//	d == 0: explicit default (node count)
//	d < 0: invalid option → ErrOptionViolation
func WithMaxSteps(d int) Option {
	return func(o *options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.maxSteps = d
		}
	}
}

// uniform draws one value in [0,1) from the configured RNG, falling back to
// the process-global source when none was supplied.
func (o options) uniform() float64 {
	if o.rng != nil {
		return o.rng.Float64()
	}

	return rand.Float64()
}

// intn draws one value in [0,n) from the configured RNG, falling back to
// the process-global source when none was supplied.
func (o options) intn(n int) int {
	if o.rng != nil {
		return o.rng.Intn(n)
	}

	return rand.Intn(n)
}

// State is one adoption snapshot: node ID → adopted flag. Each State is a
// complete, independently meaningful value; callers may retain or discard
// snapshots freely.
type State map[int]bool

// AdoptedCount returns the number of adopted nodes in the snapshot.
func (s State) AdoptedCount() int {
	var c int
	for _, adopted := range s {
		if adopted {
			c++
		}
	}

	return c
}

// Adopted returns the IDs of adopted nodes, sorted ascending.
func (s State) Adopted() []int {
	out := make([]int, 0, len(s))
	for id, adopted := range s {
		if adopted {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// Clone returns an independent copy of the snapshot.
func (s State) Clone() State {
	c := make(State, len(s))
	for id, adopted := range s {
		c[id] = adopted
	}

	return c
}

// Equal reports structural equality: the same node set with the same flags.
// Fixed-point detection uses this, never iteration order.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for id, adopted := range s {
		other, ok := o[id]
		if !ok || other != adopted {
			return false
		}
	}

	return true
}

// Result holds the outcome of a cascade run:
//   - History: ordered snapshots; History[0] is the post-seeding state and
//     the last entry is the terminal state. Unchanged states are never
//     appended.
//   - Steps: number of transition steps applied (len(History)-1).
//   - Converged: true if the terminal state is a verified fixed point;
//     false only when the step cap interrupted a still-changing cascade.
type Result struct {
	History   []State
	Steps     int
	Converged bool
}

// Final returns the terminal snapshot (the last history entry).
func (r *Result) Final() State {
	return r.History[len(r.History)-1]
}
