// Package cascade: the cascade engine.
//
// Update rule (one discrete step, synchronous):
//   - For every non-adopted node n, ratio = adopted neighbors / neighbors,
//     with ratio = 0 when n has no neighbors.
//   - n adopts in this step iff ratio ≥ n.Threshold.
//   - All ratios are computed from the state at the start of the step, so
//     nodes adopting within a step do not influence each other until the
//     following step (no order-dependent bias).
//
// Termination: first step whose snapshot equals the previous one
// (structural fixed point), or after maxSteps as a safety bound. Adoption
// is monotonic and bounded by the node count, so the bound should never
// trigger with the default maxSteps = node count.
package cascade

import (
	"fmt"

	"github.com/katalvlaran/cascadia/network"
)

const methodRun = "Run"

// Run drives the linear threshold adoption process on net to a fixed point
// and returns the ordered history of adoption snapshots.
//
// History[0] is the current (post-seeding) state of net; each subsequent
// entry reflects exactly one step that changed at least one node. The
// engine writes every new adoption back onto net, keeping the network the
// single source of truth for the current step.
//
// Errors: ErrNetworkNil; ErrOptionViolation for bad options; an empty
// network or any node without an assigned threshold wraps
// network.ErrInvalidConfiguration.
// Complexity: O(maxSteps · (V + E)).
func Run(net *network.Network, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	o := resolveOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	if err := validateNetwork(net); err != nil {
		return nil, err
	}

	maxSteps := o.maxSteps
	if maxSteps == 0 {
		maxSteps = net.NodeCount() // default safety bound
	}

	cur := State(net.AdoptedState())
	res := &Result{History: []State{cur}}

	for s := 0; s < maxSteps; s++ {
		next := step(net, cur)
		if next.Equal(cur) {
			res.Converged = true
			break
		}

		// Write new adoptions back onto the network before the next step.
		for id, adopted := range next {
			if adopted && !cur[id] {
				if err := net.SetAdopted(id, true); err != nil {
					return nil, fmt.Errorf("%s: SetAdopted(%d): %w", methodRun, id, err)
				}
			}
		}

		res.History = append(res.History, next)
		cur = next
	}
	res.Steps = len(res.History) - 1

	// The cap can land exactly on a fixed point; probe once so Converged
	// reports stability rather than the iteration budget.
	if !res.Converged && step(net, cur).Equal(cur) {
		res.Converged = true
	}

	return res, nil
}

// Step computes one synchronous update of cur against net's topology and
// thresholds, without mutating net. Applying Step to a terminal snapshot
// returns an equal snapshot.
//
// Errors: ErrNetworkNil; unassigned thresholds or an empty network wrap
// network.ErrInvalidConfiguration.
// Complexity: O(V + E).
func Step(net *network.Network, cur State) (State, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if err := validateNetwork(net); err != nil {
		return nil, err
	}

	return step(net, cur), nil
}

// step is the unvalidated synchronous update shared by Run and Step.
func step(net *network.Network, cur State) State {
	next := cur.Clone()

	for _, id := range net.NodeIDs() {
		if cur[id] {
			continue // monotonic: adopted nodes stay adopted
		}

		nbrs, err := net.Neighbors(id)
		if err != nil {
			continue // unreachable after validation; skip defensively
		}

		// Isolated nodes have ratio 0: they adopt via the rule only when
		// their threshold is exactly 0.
		var ratio float64
		if len(nbrs) > 0 {
			var adopted int
			for _, nbr := range nbrs {
				if cur[nbr] {
					adopted++
				}
			}
			ratio = float64(adopted) / float64(len(nbrs))
		}

		node, err := net.Node(id)
		if err != nil {
			continue
		}
		if ratio >= node.Threshold {
			next[id] = true
		}
	}

	return next
}

// validateNetwork rejects empty networks and unassigned thresholds.
func validateNetwork(net *network.Network) error {
	if net.NodeCount() == 0 {
		return fmt.Errorf("%s: network has no nodes: %w", methodRun, network.ErrInvalidConfiguration)
	}

	for _, id := range net.NodeIDs() {
		node, err := net.Node(id)
		if err != nil {
			return fmt.Errorf("%s: Node(%d): %w", methodRun, id, err)
		}
		if !node.HasThreshold() {
			return fmt.Errorf("%s: node %d has no assigned threshold: %w",
				methodRun, id, network.ErrInvalidConfiguration)
		}
	}

	return nil
}
