// Package network: thread-safe Network method implementations.
//
// Adjacency is mirrored (adjacency[u][v] and adjacency[v][u]) so neighbor
// lookup is a single map read regardless of the edge's stored orientation.
// All enumerations sort ascending to keep seeded simulations reproducible.
package network

import (
	"math"
	"sort"
)

// AddNode inserts a new node with the given ID and an unassigned (NaN)
// threshold. If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (n *Network) AddNode(id int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.nodes[id]; exists {
		return nil // no-op for existing node
	}
	n.nodes[id] = &Node{ID: id, Threshold: math.NaN()}
	n.ensureAdjacency(id)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (n *Network) HasNode(id int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, exists := n.nodes[id]

	return exists
}

// Node returns a copy of the node with the given ID.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (n *Network) Node(id int) (Node, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	node, ok := n.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *node, nil
}

// AddEdge links u and v with a symmetric influence edge. Both endpoints are
// created if absent (idempotent, like AddNode).
// Returns ErrSelfLoop if u == v, ErrDuplicateEdge if the pair is already
// linked.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	// Ensure both endpoints exist before linking.
	for _, id := range [2]int{u, v} {
		if _, exists := n.nodes[id]; !exists {
			n.nodes[id] = &Node{ID: id, Threshold: math.NaN()}
			n.ensureAdjacency(id)
		}
	}

	if _, dup := n.adjacency[u][v]; dup {
		return ErrDuplicateEdge
	}

	// Mirror both directions; the edge itself is unordered.
	n.adjacency[u][v] = struct{}{}
	n.adjacency[v][u] = struct{}{}
	n.edgeCount++

	return nil
}

// HasEdge reports whether u and v are linked.
// Complexity: O(1).
func (n *Network) HasEdge(u, v int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, exists := n.adjacency[u][v]

	return exists
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (n *Network) NodeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// EdgeCount returns the number of unordered edges.
// Complexity: O(1).
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edgeCount
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (n *Network) NodeIDs() []int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]int, 0, len(n.nodes))
	for id := range n.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(d log d) where d is the node's degree.
func (n *Network) Neighbors(id int) ([]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]int, 0, len(n.adjacency[id]))
	for nbr := range n.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (n *Network) Degree(id int) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(n.adjacency[id]), nil
}

// Edges returns all edges as normalized (U < V) pairs, sorted by U then V.
// The returned slice is freshly allocated and safe to retain.
// Complexity: O(V + E log E).
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Edge, 0, n.edgeCount)
	for u, nbrs := range n.adjacency {
		for v := range nbrs {
			if u < v { // emit each unordered pair once
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// SetThreshold assigns the adoption threshold of id.
// Returns ErrNodeNotFound for absent nodes and ErrBadThreshold when t is
// outside [0,1] or NaN.
// Complexity: O(1).
func (n *Network) SetThreshold(id int, t float64) error {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return ErrBadThreshold
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	node, ok := n.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	node.Threshold = t

	return nil
}

// SetAdopted sets the adoption flag of id.
// Returns ErrNodeNotFound for absent nodes.
// Complexity: O(1).
func (n *Network) SetAdopted(id int, adopted bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	node, ok := n.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	node.Adopted = adopted

	return nil
}

// AdoptedState returns a snapshot mapping node ID → adopted flag.
// The map is freshly allocated; mutating it does not affect the network.
// Complexity: O(V).
func (n *Network) AdoptedState() map[int]bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make(map[int]bool, len(n.nodes))
	for id, node := range n.nodes {
		out[id] = node.Adopted
	}

	return out
}

// Clone returns an independent deep copy of the network: nodes, thresholds,
// adoption flags, and adjacency. Concurrent simulation runs must each use
// their own instance; Clone is the supported way to obtain one.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := NewNetwork()
	for id, node := range n.nodes {
		dup := *node
		c.nodes[id] = &dup
		c.adjacency[id] = make(map[int]struct{}, len(n.adjacency[id]))
		for nbr := range n.adjacency[id] {
			c.adjacency[id][nbr] = struct{}{}
		}
	}
	c.edgeCount = n.edgeCount

	return c
}

// Stats produces a read-only snapshot of counters for diagnostics.
// Complexity: O(V).
func (n *Network) Stats() *Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s := Stats{
		NodeCount:          len(n.nodes),
		EdgeCount:          n.edgeCount,
		ThresholdsAssigned: true,
	}
	for _, node := range n.nodes {
		if node.Adopted {
			s.AdoptedCount++
		}
		if math.IsNaN(node.Threshold) {
			s.ThresholdsAssigned = false
		}
	}

	return &s
}

// ensureAdjacency guarantees adjacency[id] is initialized.
// Must be called only under the write lock.
func (n *Network) ensureAdjacency(id int) {
	if n.adjacency[id] == nil {
		n.adjacency[id] = make(map[int]struct{})
	}
}
