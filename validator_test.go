package mcf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	mcf "github.com/gomcf/netsimplex"
)

// ValidatorSuite covers C8's oracle behavior independent of the scenario
// tests in simplex_test.go: the not-yet-solved guard and a minimal
// happy-path solve.
type ValidatorSuite struct {
	suite.Suite
}

func (s *ValidatorSuite) TestValidateBeforeSolveIsErrNotSolved() {
	g, err := mcf.New(2, 1)
	require.NoError(s.T(), err)
	_, err = g.AddArc(0, 1)
	require.NoError(s.T(), err)

	require.ErrorIs(s.T(), mcf.Validate(g), mcf.ErrNotSolved)
}

func (s *ValidatorSuite) TestValidateAfterInfeasibleIsErrNotSolved() {
	g, err := mcf.New(3, 1)
	require.NoError(s.T(), err)
	a, err := g.AddArc(0, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.SetArcBounds(a, 0, 10))
	require.NoError(s.T(), g.SetNodeSupply(0, 1))
	require.NoError(s.T(), g.SetNodeSupply(2, -1))

	status, err := g.Solve(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), mcf.Infeasible, status)

	require.ErrorIs(s.T(), mcf.Validate(g), mcf.ErrNotSolved)
}

func (s *ValidatorSuite) TestValidatePassesOnOptimalSolution() {
	g, err := mcf.New(2, 1)
	require.NoError(s.T(), err)
	a, err := g.AddArc(0, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.SetArcBounds(a, 0, 10))
	require.NoError(s.T(), g.SetArcCost(a, 2))
	require.NoError(s.T(), g.SetNodeSupply(0, 6))
	require.NoError(s.T(), g.SetNodeSupply(1, -6))

	status, err := g.Solve(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), mcf.Optimal, status)
	require.NoError(s.T(), mcf.Validate(g))
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}
