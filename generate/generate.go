// SPDX-License-Identifier: MIT
// Package: cascadia/generate
//
// generate.go — generator implementations.
//
// Contract (all generators):
//   - Validate parameters early and return sentinel-wrapped errors; never panic.
//   - Add nodes via ascending indices 0..n-1.
//   - Emit edges in a stable, documented order.
//   - Deterministic for a fixed seed and identical parameters.
package generate

import (
	"fmt"

	"github.com/katalvlaran/cascadia/network"
)

// File-local constants (no magic literals; stable method tags for context).
const (
	methodRandom   = "Random"
	methodEdgeless = "Edgeless"
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"

	minNodes      = 1
	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2

	probMin = 0.0
	probMax = 1.0
)

// Random samples an Erdős–Rényi network G(n,p): n nodes with IDs 0..n-1,
// each unordered pair {i,j} linked independently with probability p.
//
// Determinism: stable trial order (i asc, j > i asc); identical output for
// a fixed WithSeed. Without a seed the process-global source is used.
//
// Errors: n < 1 or p outside [0,1] wrap network.ErrInvalidConfiguration.
// Complexity: O(n) nodes + O(n²) trials.
func Random(n int, p float64, opts ...Option) (*network.Network, error) {
	if n < minNodes {
		return nil, fmt.Errorf("%s: node_count=%d < min=%d: %w",
			methodRandom, n, minNodes, network.ErrInvalidConfiguration)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: edge_probability=%.6f not in [%.1f,%.1f]: %w",
			methodRandom, p, probMin, probMax, network.ErrInvalidConfiguration)
	}

	cfg := newConfig(opts...)

	net, err := addNodes(methodRandom, n)
	if err != nil {
		return nil, err
	}

	// Bernoulli trial per unordered pair, fixed order for reproducibility.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !cfg.bernoulli(p) {
				continue
			}
			if err = net.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d—%d): %w", methodRandom, i, j, err)
			}
		}
	}

	return net, nil
}

// Edgeless builds n isolated nodes (G(n,0) without consuming randomness).
// Errors: n < 1 wraps network.ErrInvalidConfiguration.
func Edgeless(n int) (*network.Network, error) {
	return addNodes(methodEdgeless, n)
}

// Complete builds the complete network K_n: every pair linked.
// Edge emission order: for each i asc, j > i asc.
// Errors: n < 1 wraps network.ErrInvalidConfiguration.
func Complete(n int) (*network.Network, error) {
	net, err := addNodes(methodComplete, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = net.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d—%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return net, nil
}

// Cycle builds an n-node simple cycle C_n (n ≥ 3).
// Edge emission order: i — (i+1) mod n for i asc.
func Cycle(n int) (*network.Network, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: node_count=%d < min=%d: %w",
			methodCycle, n, minCycleNodes, network.ErrInvalidConfiguration)
	}

	net, err := addNodes(methodCycle, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if err = net.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d—%d): %w", methodCycle, i, j, err)
		}
	}

	return net, nil
}

// Path builds a simple path P_n (n ≥ 2): 0—1—…—(n-1).
func Path(n int) (*network.Network, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: node_count=%d < min=%d: %w",
			methodPath, n, minPathNodes, network.ErrInvalidConfiguration)
	}

	net, err := addNodes(methodPath, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < n; i++ {
		if err = net.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d—%d): %w", methodPath, i, i+1, err)
		}
	}

	return net, nil
}

// Star builds a star S_n (n ≥ 2): hub 0 linked to leaves 1..n-1.
func Star(n int) (*network.Network, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: node_count=%d < min=%d: %w",
			methodStar, n, minStarNodes, network.ErrInvalidConfiguration)
	}

	net, err := addNodes(methodStar, n)
	if err != nil {
		return nil, err
	}

	for i := 1; i < n; i++ {
		if err = net.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d—%d): %w", methodStar, 0, i, err)
		}
	}

	return net, nil
}

// addNodes validates n and populates a fresh network with nodes 0..n-1.
func addNodes(method string, n int) (*network.Network, error) {
	if n < minNodes {
		return nil, fmt.Errorf("%s: node_count=%d < min=%d: %w",
			method, n, minNodes, network.ErrInvalidConfiguration)
	}

	net := network.NewNetwork()
	for i := 0; i < n; i++ {
		if err := net.AddNode(i); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
	}

	return net, nil
}
