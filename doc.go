// Package mcf implements a Network Simplex solver for the Minimum-Cost Flow
// (MCF) problem on directed networks with arc capacities, arc unit costs,
// and node supplies/demands.
//
// 🚀 What is mcf?
//
//	A single-threaded, synchronous, zero-dependency (outside of tests) engine
//	that brings together:
//
//	  • A spanning-tree basis with thread-index traversal for O(1)
//	    ancestor/descendant queries and subtree-scoped potential updates.
//	  • Reduced-cost maintenance via node potentials, kept dual-feasible
//	    between pivots.
//	  • Four pluggable pivot-selection strategies (First-Eligible,
//	    Best-Eligible, Block-Search, Candidate-List) behind one interface,
//	    plus a self-tuning block-size controller.
//	  • A problem analyzer and config selector that pick sane defaults from
//	    problem shape (density, degree CV, supply pattern) so most callers
//	    never need to touch pivot tuning by hand.
//
// ✨ Why Network Simplex?
//
//   - Integer in, integer out     — no floating-point drift in the objective.
//   - Deterministic               — same input, same pivot rule, same output.
//   - Fast in practice            — spanning-tree pivots beat generic LP
//     simplex by orders of magnitude on flow problems.
//
// Out of scope (left to external collaborators): DIMACS textual I/O, graph
// builders and convenience iterators, a separate push-relabel max-flow
// engine, benchmark harnesses, CLI and logging glue. See SPEC_FULL.md for
// the full accounting.
//
// # Usage
//
//	s, _ := mcf.New(2, 1)
//	s.SetNodeSupply(0, 5)
//	s.SetNodeSupply(1, -5)
//	a, _ := s.AddArc(0, 1)
//	s.SetArcBounds(a, 0, 10)
//	s.SetArcCost(a, 1)
//	status, _ := s.Solve(context.Background())
//	// status == mcf.Optimal, total cost == 5
//
// # Concurrency
//
// A *Solver is owned exclusively by the goroutine that calls Solve; it must
// not be read or mutated concurrently with a running Solve. Distinct
// *Solver instances share no global state and may run on separate
// goroutines concurrently.
//
//	go get github.com/gomcf/netsimplex
package mcf
