// Package generate constructs networks for cascade simulations.
//
// What:
//
//   - Random(n, p): Erdős–Rényi G(n,p) — every unordered pair of distinct
//     nodes is linked independently with probability p.
//   - Fixture topologies for tests and examples: Edgeless, Complete, Cycle,
//     Path, Star.
//
// Determinism:
//
//   - Nodes are added in ascending index order 0..n-1 and pair trials run
//     in a stable order (i asc, j > i asc), so a fixed seed yields an
//     identical network on every run.
//   - Without WithSeed/WithRand, Random draws from the process-global
//     math/rand source and is intentionally non-deterministic.
//
// Errors:
//
//   - All parameter violations wrap network.ErrInvalidConfiguration;
//     branch with errors.Is, never on message text.
//
// Complexity:
//
//   - Random: O(n) nodes + O(n²) Bernoulli trials.
//   - Fixtures: O(n) nodes + O(edges emitted).
package generate
