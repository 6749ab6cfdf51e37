package mcf

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// BasisSuite exercises C2's tree operations directly against Solver's
// internal arrays, grounded on the teacher's union-find test style in
// prim_kruskal (direct manipulation of the structure under test, no
// exported-API indirection, since the structure itself has no exported
// surface of its own).
type BasisSuite struct {
	suite.Suite
}

// starSolver builds a bare n-node solver with the initial star basis and
// uniform artificial-arc direction (all supplies treated as >= 0), enough
// to exercise findJoin/inSubtree/updateTree without running Solve.
func starSolver(t *testing.T, n int32) *Solver {
	s, err := New(int(n), 0)
	require.NoError(t, err)
	s.initStar()
	for v := int32(0); v < n; v++ {
		s.predArc[v] = n + v // arbitrary distinct arc ids, unused by these tests
		s.predDir[v] = -1
	}
	return s
}

func (s *BasisSuite) TestInitStarShape() {
	t := starSolver(s.T(), 4)
	require.Equal(s.T(), int32(-1), t.parent[t.root])
	for v := int32(0); v < 4; v++ {
		require.Equal(s.T(), t.root, t.parent[v])
		require.Equal(s.T(), int32(1), t.succNum[v])
		require.Equal(s.T(), v, t.lastSucc[v])
	}
	require.Equal(s.T(), int32(5), t.succNum[t.root])
}

func (s *BasisSuite) TestFindJoinOfTwoLeavesIsRoot() {
	t := starSolver(s.T(), 4)
	require.Equal(s.T(), t.root, t.findJoin(0, 2))
}

func (s *BasisSuite) TestInSubtreeAfterRebuild() {
	t := starSolver(s.T(), 3)
	// Re-parent node 1 under node 0 directly and rebuild.
	t.parent[1] = 0
	t.predArc[1] = 100
	t.predDir[1] = 1
	t.rebuildThread()

	require.True(s.T(), t.inSubtree(0, 1))
	require.False(s.T(), t.inSubtree(1, 0))
	require.False(s.T(), t.inSubtree(0, 2))
	require.Equal(s.T(), int32(2), t.succNum[0])
	require.Equal(s.T(), int32(1), t.succNum[1])
}

func (s *BasisSuite) TestSubtreeNodesMatchesInSubtree() {
	t := starSolver(s.T(), 5)
	t.parent[1] = 0
	t.parent[2] = 0
	t.rebuildThread()

	nodes := t.subtreeNodes(0)
	require.ElementsMatch(s.T(), []int32{0, 1, 2}, nodes)
}

func (s *BasisSuite) TestUpdateTreeReroots() {
	t := starSolver(s.T(), 4)
	// Before: 0,1,2,3 all children of root. Enter an arc 1->2 (arc id 4),
	// detaching node 2's single-node "subtree" from root and reattaching
	// it under node 1.
	enter := int32(4)
	t.source = []int32{0, 0, 0, 0, 1}
	t.target = []int32{0, 0, 0, 0, 2}

	t.updateTree(enter, 2 /*w*/, 2 /*detachedEnd*/, 1 /*attachEnd*/)

	require.Equal(s.T(), int32(1), t.parent[2])
	require.Equal(s.T(), enter, t.predArc[2])
	require.True(s.T(), t.inSubtree(1, 2))
	require.False(s.T(), t.inSubtree(0, 2))
}

func TestBasisSuite(t *testing.T) {
	suite.Run(t, new(BasisSuite))
}
