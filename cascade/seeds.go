// Package cascade: seed selection.
//
// Contract:
//   - 0 ≤ k ≤ node count (else wraps network.ErrInvalidConfiguration).
//   - Seeds are k distinct nodes chosen uniformly without replacement
//     (Fisher–Yates over the sorted ID slice, deterministic per seed).
//   - All nodes are reset to non-adopted first; this is the only entry
//     point that establishes the initial adoption state.
package cascade

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cascadia/network"
)

const methodSelectSeeds = "SelectSeeds"

// SelectSeeds marks k distinct nodes of net as the initial adopters and
// returns their IDs sorted ascending. Every other node starts non-adopted.
//
// Errors: ErrNetworkNil for a nil network; k < 0 or k > node count wraps
// network.ErrInvalidConfiguration.
// Complexity: O(V log V).
func SelectSeeds(net *network.Network, k int, opts ...Option) ([]int, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	ids := net.NodeIDs()
	if k < 0 || k > len(ids) {
		return nil, fmt.Errorf("%s: seed_count=%d not in [0,%d]: %w",
			methodSelectSeeds, k, len(ids), network.ErrInvalidConfiguration)
	}

	o := resolveOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	// In-place Fisher–Yates over the sorted ID slice; the first k entries
	// form a uniform sample without replacement.
	for i := len(ids) - 1; i > 0; i-- {
		j := o.intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}

	seeds := make([]int, k)
	copy(seeds, ids[:k])
	sort.Ints(seeds)

	chosen := make(map[int]struct{}, k)
	for _, id := range seeds {
		chosen[id] = struct{}{}
	}

	// Reset everything, then mark the sample: seeding owns the initial state.
	for _, id := range ids {
		_, isSeed := chosen[id]
		if err := net.SetAdopted(id, isSeed); err != nil {
			return nil, fmt.Errorf("%s: SetAdopted(%d): %w", methodSelectSeeds, id, err)
		}
	}

	return seeds, nil
}
