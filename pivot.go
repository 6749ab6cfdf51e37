package mcf

// pivot.go implements the shared C6 contract plus the two simplest
// strategies (First-Eligible, Best-Eligible). Block-Search and
// Candidate-List live in their own files; the adaptive block-size
// controller (adaptive.go) is used by Block-Search only.
//
// Grounded on flow/dinic.go's BFS-level-graph construction style: a single
// small interface (there, "has this node been visited at this level";
// here, "give me the next entering arc") with multiple callers sharing one
// contract and no shared mutable state between instances.

// pivotRule is the entering-arc selection strategy contract. Chosen once in
// Solve before the pivot loop begins (spec.md §9: static dispatch, never a
// per-pivot type switch).
type pivotRule interface {
	// next returns an entering arc id a with state[a]*reducedCost(a) < 0,
	// or ok=false if no eligible arc remains (optimum reached).
	next(s *Solver) (arc int32, ok bool)
}

// absInt64 returns the absolute value of a signed 64-bit integer.
func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// firstEligibleRule scans from a moving cursor and returns the first
// eligible arc found, wrapping around.
type firstEligibleRule struct {
	m      int32
	cursor int32
}

func (r *firstEligibleRule) next(s *Solver) (int32, bool) {
	if r.m == 0 {
		return -1, false
	}
	for i := int32(0); i < r.m; i++ {
		idx := (r.cursor + i) % r.m
		if s.eligible(idx) {
			r.cursor = (idx + 1) % r.m
			return idx, true
		}
	}
	return -1, false
}

// bestEligibleRule performs a full linear scan for the arc maximizing
// |state[a] * r(a)|.
type bestEligibleRule struct {
	m int32
}

func (r *bestEligibleRule) next(s *Solver) (int32, bool) {
	best := int32(-1)
	var bestVal int64
	for a := int32(0); a < r.m; a++ {
		if !s.eligible(a) {
			continue
		}
		val := absInt64(int64(s.state[a]) * s.reducedCost(a))
		if best < 0 || val > bestVal {
			best, bestVal = a, val
		}
	}
	return best, best >= 0
}
