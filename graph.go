package mcf

// graph.go implements C1: a read-only, structure-of-arrays adjacency view
// over real arcs. Storage is two parallel int32 slices (source[], target[]),
// contiguous and cache-friendly, exactly the shape pivot rules iterate over
// directly — no per-node adjacency list is needed or built.
//
// Grounded on matrix/builder.go's dense, fail-fast construction style and
// core/types.go's accessor-only surface over privately owned storage.

// AddArc appends a real arc u→v to the graph view and returns its id.
// Pre-solve only; the graph is fixed once Solve begins (spec.md §4.1: "No
// arcs may be added after solve begins").
//
// This is the narrowest possible topology-entry point: DIMACS readers and
// convenience graph builders (path/cycle/grid generators, bipartite
// helpers) remain out of scope per spec.md §1; AddArc only appends, never
// validates shape beyond node-id range, and offers no generator helpers.
func (s *Solver) AddArc(source, target int32) (int32, error) {
	if s.solved {
		return -1, ErrAlreadySolved
	}
	if source < 0 || source >= s.n || target < 0 || target >= s.n {
		return -1, argErrorf("AddArc(%d,%d): node id out of [0,%d)", source, target, s.n)
	}
	if int32(len(s.arcSource)) >= s.mCap {
		return -1, argErrorf("AddArc: arc capacity %d exhausted", s.mCap)
	}

	id := int32(len(s.arcSource))
	s.arcSource = append(s.arcSource, source)
	s.arcTarget = append(s.arcTarget, target)
	s.arcCost = append(s.arcCost, 0)
	s.arcLower = append(s.arcLower, 0)
	s.arcUpper = append(s.arcUpper, 0)

	return id, nil
}

// NodeCount returns n, the number of real nodes (excludes the artificial root).
func (s *Solver) NodeCount() int32 { return s.n }

// ArcCount returns m, the number of real arcs (excludes artificial arcs).
func (s *Solver) ArcCount() int32 { return int32(len(s.arcSource)) }

// Source returns the source node of real arc a.
func (s *Solver) Source(a int32) (int32, error) {
	if a < 0 || a >= int32(len(s.arcSource)) {
		return -1, argErrorf("Source(%d): arc id out of range", a)
	}
	return s.arcSource[a], nil
}

// Target returns the target node of real arc a.
func (s *Solver) Target(a int32) (int32, error) {
	if a < 0 || a >= int32(len(s.arcTarget)) {
		return -1, argErrorf("Target(%d): arc id out of range", a)
	}
	return s.arcTarget[a], nil
}
