// Package network defines the Node, Edge, and Network types underlying the
// cascade simulation, and provides thread-safe primitives for building,
// querying, and cloning social networks.
//
// What:
//
//   - Node: integer-identified individual with an adoption Threshold and an
//     Adopted flag.
//   - Edge: unordered pair of distinct node IDs (symmetric influence).
//   - Network: owns all nodes and edges; exposes deterministic neighbor
//     lookup, adoption snapshots, and deep cloning.
//
// Why:
//
//   - Generators populate topology; the threshold assigner and seed selector
//     annotate nodes; the cascade engine reads neighborhoods and flips
//     Adopted flags. One shared data model keeps those stages decoupled.
//
// Invariants:
//
//   - Every edge references two nodes present in the network.
//   - No self-loops, no duplicate edges.
//   - NodeIDs, Neighbors, and Edges enumerate in sorted ascending order,
//     so seeded runs are reproducible.
//   - Threshold is NaN until assigned; the engine rejects networks with
//     unassigned thresholds.
//
// Concurrency:
//
//   - All methods use an internal sync.RWMutex, so a single Network may be
//     mutated safely across goroutines. Concurrent simulation runs must
//     still operate on independent instances (use Clone).
//
// Errors:
//
//   - ErrInvalidConfiguration: a constructor or setter received an invalid
//     parameter; every configuration failure in the module wraps this.
//   - ErrNodeNotFound: an operation referenced an absent node.
//   - ErrSelfLoop: an edge with identical endpoints was rejected.
//   - ErrDuplicateEdge: an edge between already-linked endpoints was rejected.
//   - ErrBadThreshold: a threshold outside [0,1] was rejected.
package network
