package mcf

// SupplyType selects how a node's flow-conservation constraint is enforced.
// GEQ is the conventional choice and the package default; LEQ relaxes the
// constraint in the opposite direction. See spec.md I1 and §4.7.
type SupplyType int8

const (
	// GEQ allows oversatisfaction of demand: net outflow may exceed the
	// declared supply at a node. Default.
	GEQ SupplyType = iota
	// LEQ allows undersatisfaction of demand: net outflow may fall short
	// of the declared supply at a node.
	LEQ
)

func (t SupplyType) String() string {
	switch t {
	case GEQ:
		return "GEQ"
	case LEQ:
		return "LEQ"
	default:
		return "SupplyType(?)"
	}
}

// PivotRule selects the entering-arc strategy used by the pivot loop.
type PivotRule int8

const (
	// BlockSearch scans a contiguous window of arcs per pivot, returning
	// the best eligible arc found in the window. Default.
	BlockSearch PivotRule = iota
	// FirstEligible returns the first eligible arc found scanning from a
	// moving cursor.
	FirstEligible
	// BestEligible performs a full linear scan for the most-violated arc.
	BestEligible
	// CandidateList maintains a re-ranked shortlist of most-negative
	// reduced-cost arcs across several minor iterations.
	CandidateList
)

func (r PivotRule) String() string {
	switch r {
	case BlockSearch:
		return "BlockSearch"
	case FirstEligible:
		return "FirstEligible"
	case BestEligible:
		return "BestEligible"
	case CandidateList:
		return "CandidateList"
	default:
		return "PivotRule(?)"
	}
}

// Status is the outcome of a Solve call.
type Status int8

const (
	// NotSolved is the pre-run state, and the state left behind when the
	// iteration cap or a cancellation fires before termination.
	NotSolved Status = iota
	// Optimal: no eligible entering arc remains and no artificial arc
	// carries flow.
	Optimal
	// Infeasible: no eligible entering arc remains but some artificial
	// arc still carries nonzero flow.
	Infeasible
	// Unbounded: the augmenting step found an unbounded cycle (a
	// negative-cost cycle with unconstrained capacity).
	Unbounded
)

func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NotSolved"
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "Status(?)"
	}
}

// arc non-basic state. The product convention state[a]*reducedCost(a) < 0
// gives one eligibility predicate for both bound directions (spec.md §4.3).
const (
	atUpper int8 = -1
	inTree  int8 = 0
	atLower int8 = +1
)

// infinite is a finite sentinel standing in for "unbounded capacity" on
// artificial arcs. Any bound at or above this threshold is treated as
// infinite for unboundedness detection; kept well under
// math.MaxInt64/(1+m) so Big-M arithmetic never overflows (spec.md §7).
const infinite int64 = 1 << 40
