// Package simulate wires the full pipeline behind a single call:
// network generation → threshold assignment → seed selection → cascade.
//
// What:
//
//   - Config: the complete external parameter surface (node count, edge
//     probability, threshold bounds, seed count, step bound, random seed),
//     yaml-tagged for file-based configuration.
//   - Run(cfg): executes the stages in order and returns an Outcome holding
//     the network (topology + thresholds), the chosen seeds, and the full
//     snapshot history — everything a renderer needs without recomputation.
//
// Determinism:
//
//   - RandomSeed == 0 means unseeded: every stage draws from the
//     process-global source. A non-zero RandomSeed derives an independent
//     deterministic sub-stream per stage (SplitMix64 mixing), so identical
//     configs replay identical simulations.
//
// Errors:
//
//   - Config.Validate reports the first violated constraint; all
//     violations wrap network.ErrInvalidConfiguration. Stage errors are
//     wrapped once at the Run boundary.
package simulate
