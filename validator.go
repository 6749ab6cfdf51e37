package mcf

// validator.go implements C8: a read-only post-solve oracle. Checks
// feasibility (I1/I2), complementary slackness (I4/I5) and the primal/dual
// objective equality from spec.md §4.8. Any mismatch indicates a bug in
// the simplex driver (C7), never a caller error, so Validate is exercised
// from tests and from embedders wanting a sanity check — never from the
// hot pivot loop.
//
// Grounded on matrix/errors.go's aggregate-error style: every violation
// found is collected, not just the first, so a failing test reports the
// complete picture in one shot.

// Validate checks every invariant in spec.md §3/§8 against s's solution
// and returns a *ValidationError aggregating every mismatch found, or nil
// if s is a valid optimal solution.
func Validate(s *Solver) error {
	if !s.solved || s.status != Optimal {
		return ErrNotSolved
	}

	ve := &ValidationError{}
	mReal := int32(len(s.arcSource))

	for a := int32(0); a < mReal; a++ {
		if s.flow[a] < s.lower[a] || s.flow[a] > s.upper[a] {
			ve.add("arc %d: flow %d out of bounds [%d,%d]", a, s.flow[a], s.lower[a], s.upper[a])
		}
	}

	net := make([]int64, s.n)
	for a := int32(0); a < mReal; a++ {
		net[s.arcSource[a]] += s.flow[a]
		net[s.arcTarget[a]] -= s.flow[a]
	}
	for v := int32(0); v < s.n; v++ {
		switch s.supplyType {
		case LEQ:
			if net[v] > s.nodeSupply[v] {
				ve.add("node %d: net outflow %d exceeds supply %d under LEQ", v, net[v], s.nodeSupply[v])
			}
		default: // GEQ
			if net[v] < s.nodeSupply[v] {
				ve.add("node %d: net outflow %d falls short of supply %d under GEQ", v, net[v], s.nodeSupply[v])
			}
		}
	}

	for a := int32(0); a < mReal; a++ {
		r := s.reducedCost(a)
		switch s.state[a] {
		case atLower:
			if s.flow[a] != s.lower[a] {
				ve.add("arc %d: state LOWER but flow %d != lower %d", a, s.flow[a], s.lower[a])
			}
			if r < 0 {
				ve.add("arc %d: state LOWER but reduced cost %d < 0", a, r)
			}
		case atUpper:
			if s.flow[a] != s.upper[a] {
				ve.add("arc %d: state UPPER but flow %d != upper %d", a, s.flow[a], s.upper[a])
			}
			if r > 0 {
				ve.add("arc %d: state UPPER but reduced cost %d > 0", a, r)
			}
		case inTree:
			if r != 0 {
				ve.add("arc %d: state TREE but reduced cost %d != 0", a, r)
			}
		}
	}

	for a := mReal; a < int32(len(s.flow)); a++ {
		if s.flow[a] != 0 {
			ve.add("artificial arc %d: nonzero flow %d at an optimal solution", a, s.flow[a])
		}
	}

	excess := make([]int64, s.n)
	copy(excess, s.nodeSupply)
	var lowerCostSum, slackSum, primal int64
	for a := int32(0); a < mReal; a++ {
		excess[s.arcSource[a]] -= s.arcLower[a]
		excess[s.arcTarget[a]] += s.arcLower[a]
		lowerCostSum += s.arcLower[a] * s.arcCost[a]
		if neg := -s.reducedCost(a); neg > 0 {
			slackSum += (s.arcUpper[a] - s.arcLower[a]) * neg
		}
		primal += s.flow[a] * s.cost[a]
	}
	var potentialSum int64
	for v := int32(0); v < s.n; v++ {
		potentialSum += excess[v] * s.potential[v]
	}
	dual := -potentialSum + lowerCostSum - slackSum
	if primal != dual {
		ve.add("primal objective %d does not equal dual objective %d", primal, dual)
	}

	if len(ve.Violations) == 0 {
		return nil
	}
	return ve
}
