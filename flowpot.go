package mcf

// flowpot.go implements C3: per-arc flow/cost/bounds and per-node dual
// potentials, plus the reduced-cost and eligibility predicates every pivot
// rule scans against. Grounded on flow/utils.go's residual-capacity helpers,
// generalized from a 0/1 direction flag to the three-way non-basic arc
// state used by Network Simplex (spec.md §4.3).

// reducedCost returns r(a) = cost[a] + potential[source[a]] - potential[target[a]].
func (s *Solver) reducedCost(a int32) int64 {
	return s.cost[a] + s.potential[s.source[a]] - s.potential[s.target[a]]
}

// eligible reports whether non-basic arc a violates dual feasibility and is
// therefore a candidate entering arc. state[a]*reducedCost(a) < 0 captures
// both directions: an at-lower arc (state=+1) is eligible when its reduced
// cost is negative, an at-upper arc (state=-1) when its reduced cost is
// positive.
func (s *Solver) eligible(a int32) bool {
	if s.state[a] == inTree {
		return false
	}
	return int64(s.state[a])*s.reducedCost(a) < 0
}

// residualDelta returns how much flow on arc a can move in the direction
// implied by its current non-basic state before it hits its opposite bound:
// upper[a]-flow[a] if currently at lower (about to increase), flow[a]-lower[a]
// if currently at upper (about to decrease). Used as the delta contribution
// for the entering arc itself during cycle augmentation.
func (s *Solver) residualDelta(a int32) int64 {
	if s.state[a] == atLower {
		return s.upper[a] - s.flow[a]
	}
	return s.flow[a] - s.lower[a]
}
