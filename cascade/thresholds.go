// Package cascade: threshold assignment.
//
// Contract:
//   - 0 ≤ min ≤ max ≤ 1 (else wraps network.ErrInvalidConfiguration).
//   - Every node receives a threshold drawn uniformly from [min, max].
//   - Nodes are visited in sorted ID order, so a fixed seed reproduces the
//     exact assignment.
//   - Mutates only Node.Threshold; adoption state is untouched.
package cascade

import (
	"fmt"

	"github.com/katalvlaran/cascadia/network"
)

const methodAssignThresholds = "AssignThresholds"

// AssignThresholds assigns every node of net a threshold drawn uniformly at
// random from [min, max].
//
// Errors: ErrNetworkNil for a nil network; inverted or out-of-range bounds
// wrap network.ErrInvalidConfiguration.
// Complexity: O(V log V).
func AssignThresholds(net *network.Network, min, max float64, opts ...Option) error {
	if net == nil {
		return ErrNetworkNil
	}
	if min < 0 || max > 1 || min > max {
		return fmt.Errorf("%s: bounds [%.6f,%.6f] violate 0 ≤ min ≤ max ≤ 1: %w",
			methodAssignThresholds, min, max, network.ErrInvalidConfiguration)
	}

	o := resolveOptions(opts...)
	if o.err != nil {
		return o.err
	}

	span := max - min
	for _, id := range net.NodeIDs() {
		t := min
		if span > 0 {
			t += o.uniform() * span
		}
		if err := net.SetThreshold(id, t); err != nil {
			return fmt.Errorf("%s: SetThreshold(%d, %.6f): %w", methodAssignThresholds, id, t, err)
		}
	}

	return nil
}
