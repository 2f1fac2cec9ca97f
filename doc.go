// Package cascadia simulates the diffusion of adoption through a social
// network using the linear threshold cascade model.
//
// 🚀 What is cascadia?
//
//	A small, thread-safe, reproducible simulation toolkit that brings together:
//		• network/   — Node, Edge and Network primitives with safe mutation under locks
//		• generate/  — Erdős–Rényi random networks plus deterministic fixture topologies
//		• cascade/   — threshold assignment, seed selection and the cascade engine
//		• simulate/  — one-call Config → Outcome pipeline for external consumers
//		• cmd/cascadia — a minimal CLI runner printing per-step adoption counts
//
// ✨ Why choose cascadia?
//
//   - Deterministic by choice – every stochastic stage accepts WithSeed/WithRand
//   - Monotonic by contract – once a node adopts, it never reverts
//   - Pure Go core – snapshots are plain maps, ready for any renderer
//
// Quick ASCII example (4-node cycle, thresholds 0.4, one seed):
//
//	    0───1          step 0: {0}
//	    │   │    ⇒     step 1: {0,1,3}
//	    3───2          step 2: {0,1,2,3}   (fixed point)
//
// Dive into the per-package docs for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/cascadia
package cascadia
