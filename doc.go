// Package ils provides an Iterated Local Search (ILS) engine for the
// Travelling Salesman Problem on 2D point sets.
//
// The engine nests two search levels:
//
//   - An inner hill climb over stochastic 2-opt neighbors (segment
//     reversal), stopped by a patience budget of consecutive
//     non-improving draws.
//
//   - An outer loop that perturbs the global best with a double-bridge
//     move (4-segment recombination that a single 2-opt step cannot
//     undo), re-runs the inner climb, and keeps the result only when it
//     is strictly better.
//
// Two degenerate variants of the same engine are exposed through the
// dispatcher: single-level stochastic hill climbing and plain random
// search. All solvers are best-effort metaheuristics; none claims
// convergence to the true optimum.
//
// Distances default to nearest-integer Euclidean rounding (TSPLIB
// EUC_2D), which reproduces the documented optima of classic benchmark
// instances such as Berlin52 (7542).
//
// Every run is deterministic for a fixed Options.Seed: all randomness is
// drawn from a single sequential stream threaded through the operators.
//
// Use this package when you need a fast, reproducible, good-enough tour
// on instances far beyond the reach of exact solvers.
package ils
