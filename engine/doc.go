// Package engine provides the capacity-constrained routing and
// admission-control engine with iterative cost relaxation and
// residual-floor estimation.
//
// # Reading Guide
//
// Start with these three files to understand the engine kernel:
//   - interface.go: the per-interface cost model (cost, headroom, feasible load)
//   - admission.go: candidate enumeration and minimum-cost admissible routing
//   - floor.go: the commitment stream driver and residual-floor reports
//
// # Architecture
//
// A Network is a read-only graph of nodes joined by undirected edges, each
// edge bound to a capacity-bounded Interface. Commitments (source, target,
// demand) arrive in order; the AdmissionController enumerates bounded simple
// paths (path.go), keeps the admissible candidate with minimum total cost,
// and the resulting load mutates a single LoadVector owned by the caller.
// The Relaxer periodically re-optimizes all active routes by coordinate
// descent, and History records the monotonic accumulated transition cost
// ("action"). FloorEstimator ties the pieces together and emits FloorReports.
//
// Sub-packages:
//   - engine/scenario: YAML scenario loading (interfaces, topology, stream)
//   - engine/trace: decision-trace recording and aggregate summaries
//
// The engine is sequential: one logical writer processes one
// commitment at a time. Admission reads the shared load to decide and the
// same step writes it back, so hosting the engine concurrently requires
// exclusive access around each admit/relax step.
package engine
