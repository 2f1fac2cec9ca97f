// Package network: central type and error declarations.
//
// This file declares Node, Edge, Network, sentinel errors, and the
// NewNetwork constructor. Method implementations live in methods.go.
package network

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrInvalidConfiguration indicates an invalid simulation parameter
	// (node count, probability, threshold bounds, seed count). All
	// configuration failures across the module wrap this sentinel, so
	// callers can branch with a single errors.Is check.
	ErrInvalidConfiguration = errors.New("network: invalid configuration")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrSelfLoop indicates an edge with identical endpoints was attempted.
	ErrSelfLoop = errors.New("network: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("network: duplicate edge not allowed")

	// ErrBadThreshold indicates a threshold outside the closed interval [0,1].
	ErrBadThreshold = errors.New("network: threshold out of range")
)

// Node represents one individual in the network.
//
// ID uniquely identifies the node within its Network.
// Threshold is the minimum fraction of adopted neighbors required before
// the node adopts; it is NaN until assigned exactly once.
// Adopted reports the node's current adoption state.
type Node struct {
	// ID is the unique identifier for this Node.
	ID int

	// Threshold in [0,1]; NaN means "not yet assigned".
	Threshold float64

	// Adopted is true once the node has adopted; it never reverts.
	Adopted bool
}

// HasThreshold reports whether a threshold has been assigned to the node.
func (n Node) HasThreshold() bool { return !math.IsNaN(n.Threshold) }

// Edge represents a symmetric influence relationship between two distinct
// nodes. Endpoints are normalized so that U < V.
type Edge struct {
	U, V int
}

// Network is the in-memory social network shared by all simulation stages.
//
// Adjacency is stored as a nested map adjacency[u][v] = struct{}{}, mirrored
// both ways, allowing constant-time existence checks and insertion.
// A single RWMutex guards nodes, adjacency, and the edge counter.
type Network struct {
	mu sync.RWMutex

	nodes     map[int]*Node            // node ID → Node
	adjacency map[int]map[int]struct{} // mirrored neighbor sets
	edgeCount int                      // number of unordered pairs linked
}

// NewNetwork creates an empty Network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int]map[int]struct{}),
	}
}

// Stats is a read-only snapshot of network counters, suitable for
// diagnostics and test assertions.
type Stats struct {
	NodeCount          int
	EdgeCount          int
	AdoptedCount       int
	ThresholdsAssigned bool // true iff every node has a threshold
}
