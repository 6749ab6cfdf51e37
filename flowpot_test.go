package mcf

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FlowPotSuite exercises C3's pure per-arc predicates directly, grounded on
// the teacher's small-pure-function test style for matrix/methods.go.
type FlowPotSuite struct {
	suite.Suite
}

// arcSolver builds a minimal two-arc Solver with arrays populated by hand,
// bypassing New/Solve entirely since reducedCost/eligible/residualDelta only
// ever touch source/target/cost/potential/state/flow/lower/upper.
func arcSolver() *Solver {
	s := &Solver{
		source:    []int32{0, 1},
		target:    []int32{1, 0},
		cost:      []int64{5, 5},
		lower:     []int64{0, 0},
		upper:     []int64{10, 10},
		flow:      []int64{0, 0},
		state:     []int8{atLower, atUpper},
		potential: []int64{0, 0, 0},
	}
	return s
}

func (s *FlowPotSuite) TestReducedCostFormula() {
	t := arcSolver()
	t.potential[0] = 3
	t.potential[1] = 1
	// r(0) = cost[0] + pi[source[0]] - pi[target[0]] = 5 + 3 - 1 = 7.
	require.Equal(s.T(), int64(7), t.reducedCost(0))
}

func (s *FlowPotSuite) TestEligibleAtLowerNeedsNegativeReducedCost() {
	t := arcSolver()
	// cost=5, no potential skew: reducedCost(0) = 5, state=atLower -> not eligible.
	require.False(s.T(), t.eligible(0))

	t.cost[0] = -5
	require.True(s.T(), t.eligible(0))
}

func (s *FlowPotSuite) TestEligibleAtUpperNeedsPositiveReducedCost() {
	t := arcSolver()
	// arc 1: cost=5, state=atUpper -> reducedCost(1)=5>0 -> eligible.
	require.True(s.T(), t.eligible(1))

	t.cost[1] = -5
	require.False(s.T(), t.eligible(1))
}

func (s *FlowPotSuite) TestEligibleTreeArcIsNeverEligible() {
	t := arcSolver()
	t.state[0] = inTree
	t.cost[0] = -100
	require.False(s.T(), t.eligible(0))
}

func (s *FlowPotSuite) TestResidualDeltaAtLower() {
	t := arcSolver()
	t.flow[0] = 3
	require.Equal(s.T(), int64(7), t.residualDelta(0)) // upper(10) - flow(3)
}

func (s *FlowPotSuite) TestResidualDeltaAtUpper() {
	t := arcSolver()
	t.flow[1] = 8
	require.Equal(s.T(), int64(8), t.residualDelta(1)) // flow(8) - lower(0)
}

func TestFlowPotSuite(t *testing.T) {
	suite.Run(t, new(FlowPotSuite))
}
