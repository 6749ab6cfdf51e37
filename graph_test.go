package mcf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gomcf/netsimplex"
)

// GraphSuite covers C1's read-only adjacency view: AddArc, NodeCount,
// ArcCount, Source, Target.
type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) TestAddArcAssignsSequentialIDs() {
	g, err := mcf.New(3, 4)
	require.NoError(s.T(), err)

	a0, err := g.AddArc(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int32(0), a0)

	a1, err := g.AddArc(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int32(1), a1)

	require.Equal(s.T(), int32(3), g.NodeCount())
	require.Equal(s.T(), int32(2), g.ArcCount())

	src, err := g.Source(a1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int32(1), src)

	dst, err := g.Target(a1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int32(2), dst)
}

func (s *GraphSuite) TestAddArcRejectsOutOfRangeNodes() {
	g, err := mcf.New(2, 1)
	require.NoError(s.T(), err)

	_, err = g.AddArc(0, 5)
	require.ErrorIs(s.T(), err, mcf.ErrBadArgument)

	_, err = g.AddArc(-1, 0)
	require.ErrorIs(s.T(), err, mcf.ErrBadArgument)
}

func (s *GraphSuite) TestSourceTargetRejectOutOfRangeArc() {
	g, err := mcf.New(2, 1)
	require.NoError(s.T(), err)
	_, err = g.Source(0)
	require.ErrorIs(s.T(), err, mcf.ErrBadArgument)
	_, err = g.Target(99)
	require.ErrorIs(s.T(), err, mcf.ErrBadArgument)
}

func (s *GraphSuite) TestAddArcRejectedAfterSolve() {
	g, err := mcf.New(2, 1)
	require.NoError(s.T(), err)
	_, err = g.AddArc(0, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.SetNodeSupply(0, 0))
	require.NoError(s.T(), g.SetNodeSupply(1, 0))

	_, err = g.Solve(context.Background())
	require.NoError(s.T(), err)

	_, err = g.AddArc(0, 1)
	require.ErrorIs(s.T(), err, mcf.ErrAlreadySolved)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
