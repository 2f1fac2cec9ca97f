// Package cascade drives the linear threshold adoption process over a
// network.Network and produces the full history of adoption states.
//
// What:
//
//   - AssignThresholds: draws each node's threshold uniformly from
//     [min, max] ⊆ [0,1].
//   - SelectSeeds: marks k distinct nodes, chosen uniformly without
//     replacement, as the initial adopters.
//   - Step: one synchronous update — every non-adopted node adopts iff the
//     fraction of its neighbors already adopted meets its threshold,
//     computed entirely from the state at the start of the step.
//   - Run: iterates Step until a fixed point (structural snapshot equality)
//     or a configured maximum step count, recording each changed snapshot.
//
// Semantics:
//
//   - Adoption is monotonic: once adopted, a node never reverts.
//   - A node with zero neighbors has ratio 0; it adopts via the rule only
//     when its threshold is exactly 0 (the boundary is preserved, not
//     special-cased).
//   - History[0] is the post-seeding snapshot; the unchanged fixed-point
//     duplicate is never appended, so an immediately stable cascade has
//     history length 1.
//   - The terminal snapshot is stable: one further Step returns an equal
//     state (Run verifies this even when the step cap is hit).
//
// Determinism:
//
//   - Thresholds and seeds iterate nodes in sorted ID order, so a fixed
//     WithSeed reproduces the exact run. Without a seed the process-global
//     math/rand source is used.
//
// Errors:
//
//   - ErrNetworkNil: a nil network pointer was passed.
//   - ErrOptionViolation: an invalid Option was supplied (e.g. negative
//     max steps).
//   - network.ErrInvalidConfiguration (wrapped): empty network, inverted or
//     out-of-range threshold bounds, bad seed count, unassigned thresholds.
//
// Complexity:
//
//   - AssignThresholds / SelectSeeds: O(V log V).
//   - Step: O(V + E) per step; Run: O(maxSteps · (V + E)).
package cascade
