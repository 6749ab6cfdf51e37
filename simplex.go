package mcf

import (
	"context"
	"fmt"
	"math"
	"os"
)

// simplex.go implements C7: the Solver type itself and the Network Simplex
// driver — initialization (artificial root + Big-M arcs), the pivot loop,
// cycle augmentation, basis update dispatch, and potential maintenance.
//
// The pivot loop's cancellation idiom is grounded on flow.FordFulkerson's
// ctx probe at the top of its augmenting loop (never a mid-push suspension
// point): here the check happens once every 1024 pivots per spec.md §5.

// Solver owns one Minimum-Cost Flow instance end to end: graph topology,
// supplies, costs and bounds before Solve; the working basis, flows and
// potentials during and after it. A *Solver must not be shared across
// concurrently-running Solve calls; see doc.go.
type Solver struct {
	n    int32
	mCap int32
	root int32

	// Pre-solve graph/problem data (C1), indexed by real arc/node id.
	arcSource  []int32
	arcTarget  []int32
	arcCost    []int64
	arcLower   []int64
	arcUpper   []int64
	nodeSupply []int64

	supplyType        SupplyType
	pivotRuleSet      PivotRule
	pivotRuleExplicit bool
	autoConfig        bool
	verbose           bool

	solved bool
	status Status

	// Full arc arrays (real arcs [0,mReal) followed by n artificial arcs),
	// valid from Solve's init onward (C3 flow/cost/bounds, C2 state).
	source []int32
	target []int32
	cost   []int64
	lower  []int64
	upper  []int64
	flow   []int64
	state  []int8

	// Basis tree arrays (C2), indexed by node id, size n+1; root is index n.
	parent    []int32
	predArc   []int32
	predDir   []int8
	thread    []int32
	revThread []int32
	succNum   []int32
	lastSucc  []int32
	potential []int64

	// rebuildThread scratch, reused across pivots to avoid per-pivot
	// allocation (spec.md §5: "no per-pivot allocation").
	children     [][]int32
	rebuildOrder []int32
	rebuildStack []threadFrame

	characteristics ProblemCharacteristics
	config          OptimizationConfig

	rule       pivotRule
	pivotCount int64
	bigM       int64
	totalCost  int64
}

// New allocates a Solver for a graph with the given node and (upper-bound)
// arc count. Arcs are appended later via AddArc up to arcCount.
func New(nodeCount, arcCount int) (*Solver, error) {
	if nodeCount <= 0 {
		return nil, argErrorf("New(%d,%d): node_count must be positive", nodeCount, arcCount)
	}
	if arcCount < 0 {
		return nil, argErrorf("New(%d,%d): arc_count must be non-negative", nodeCount, arcCount)
	}

	n := int32(nodeCount)
	s := &Solver{
		n:            n,
		mCap:         int32(arcCount),
		root:         n,
		supplyType:   GEQ,
		pivotRuleSet: BlockSearch,
		autoConfig:   true,
		verbose:      os.Getenv("MCF_VERBOSE") == "1",
	}

	s.arcSource = make([]int32, 0, arcCount)
	s.arcTarget = make([]int32, 0, arcCount)
	s.arcCost = make([]int64, 0, arcCount)
	s.arcLower = make([]int64, 0, arcCount)
	s.arcUpper = make([]int64, 0, arcCount)
	s.nodeSupply = make([]int64, n)

	nn := int(n) + 1
	s.parent = make([]int32, nn)
	s.predArc = make([]int32, nn)
	s.predDir = make([]int8, nn)
	s.thread = make([]int32, nn)
	s.revThread = make([]int32, nn)
	s.succNum = make([]int32, nn)
	s.lastSucc = make([]int32, nn)
	s.potential = make([]int64, nn)
	s.children = make([][]int32, nn)
	s.rebuildOrder = make([]int32, 0, nn)
	s.rebuildStack = make([]threadFrame, 0, nn)

	return s, nil
}

// SetNodeSupply sets node v's supply. Pre-solve only.
func (s *Solver) SetNodeSupply(node int32, supply int64) error {
	if s.solved {
		return ErrAlreadySolved
	}
	if node < 0 || node >= s.n {
		return argErrorf("SetNodeSupply(%d): node id out of [0,%d)", node, s.n)
	}
	s.nodeSupply[node] = supply
	return nil
}

// SetArcCost sets arc a's unit cost. Pre-solve only.
func (s *Solver) SetArcCost(arc int32, cost int64) error {
	if s.solved {
		return ErrAlreadySolved
	}
	if arc < 0 || arc >= int32(len(s.arcCost)) {
		return argErrorf("SetArcCost(%d): arc id out of range", arc)
	}
	s.arcCost[arc] = cost
	return nil
}

// SetArcBounds sets arc a's lower and upper capacity bounds. Pre-solve only;
// requires 0 <= lower <= upper.
func (s *Solver) SetArcBounds(arc int32, lower, upper int64) error {
	if s.solved {
		return ErrAlreadySolved
	}
	if arc < 0 || arc >= int32(len(s.arcLower)) {
		return argErrorf("SetArcBounds(%d): arc id out of range", arc)
	}
	if lower < 0 {
		return argErrorf("SetArcBounds(%d): lower %d is negative", arc, lower)
	}
	if lower > upper {
		return argErrorf("SetArcBounds(%d): lower %d exceeds upper %d", arc, lower, upper)
	}
	s.arcLower[arc] = lower
	s.arcUpper[arc] = upper
	return nil
}

// SetSupplyType selects GEQ (default) or LEQ supply semantics.
func (s *Solver) SetSupplyType(t SupplyType) { s.supplyType = t }

// SetPivotRule overrides the pivot-selection strategy, taking precedence
// over whatever the config selector would otherwise have chosen.
func (s *Solver) SetPivotRule(r PivotRule) {
	s.pivotRuleSet = r
	s.pivotRuleExplicit = true
}

// SetAutoConfiguration enables or disables the problem analyzer / config
// selector (C4/C5). Default true. Disabling falls back to DefaultConfig.
func (s *Solver) SetAutoConfiguration(enabled bool) { s.autoConfig = enabled }

// AnalyzeProblem runs the problem analyzer (C4) over the current pre-solve
// graph and returns the characteristics bundle.
func (s *Solver) AnalyzeProblem() ProblemCharacteristics {
	s.characteristics = analyze(s)
	return s.characteristics
}

// GetFlow returns the current flow on real arc a. Valid once Solve has
// produced any terminal status other than NotSolved.
func (s *Solver) GetFlow(arc int32) (int64, error) {
	if !s.solved || s.status == NotSolved {
		return 0, ErrNotSolved
	}
	if arc < 0 || arc >= int32(len(s.arcSource)) {
		return 0, argErrorf("GetFlow(%d): arc id out of range", arc)
	}
	return s.flow[arc], nil
}

// GetPotential returns node v's dual variable.
func (s *Solver) GetPotential(node int32) (int64, error) {
	if !s.solved || s.status == NotSolved {
		return 0, ErrNotSolved
	}
	if node < 0 || node >= s.n {
		return 0, argErrorf("GetPotential(%d): node id out of [0,%d)", node, s.n)
	}
	return s.potential[node], nil
}

// GetTotalCost returns the primal objective Σ cost(a)*flow(a) over real arcs.
func (s *Solver) GetTotalCost() (int64, error) {
	if !s.solved || s.status == NotSolved {
		return 0, ErrNotSolved
	}
	return s.totalCost, nil
}

// Reset clears solution state, allowing supplies, costs and bounds to be
// mutated again before the next Solve. Graph topology (arcs added via
// AddArc) is retained.
func (s *Solver) Reset() {
	s.solved = false
	s.status = NotSolved
	s.source, s.target = nil, nil
	s.cost, s.lower, s.upper, s.flow = nil, nil, nil, nil
	s.state = nil
	s.rule = nil
	s.pivotCount = 0
	s.totalCost = 0
	for i := range s.potential {
		s.potential[i] = 0
	}
}

// computeBigM derives a cost strictly larger than 1 + (n+m)*maxAbsCost,
// rejecting it if it would risk overflow against m real arcs' worth of
// accumulated cost*flow (spec.md §7: Big-M <= INT64_MAX/(1+m)).
func computeBigM(n, m int32, maxAbsCost int64) (int64, error) {
	limit := int64(math.MaxInt64) / (1 + int64(m))
	bigM := 1 + int64(n+m)*maxAbsCost + 1
	if bigM <= 0 || bigM > limit {
		return 0, ErrNumericOverflow
	}
	return bigM, nil
}

// hasArtificialFlow reports whether any artificial arc still carries
// nonzero flow, the Infeasible/Optimal discriminator.
func (s *Solver) hasArtificialFlow(mReal int32) bool {
	for a := mReal; a < int32(len(s.flow)); a++ {
		if s.flow[a] != 0 {
			return true
		}
	}
	return false
}

// Solve runs the Network Simplex pivot loop to termination, cancellation,
// or the iteration cap. Calling Solve again on an already-terminated
// instance (without an intervening Reset) is a no-op returning the cached
// status, satisfying the idempotence property (spec.md §8).
func (s *Solver) Solve(ctx context.Context) (Status, error) {
	if s.solved {
		return s.status, nil
	}

	n := s.n
	mReal := int32(len(s.arcSource))
	mTotal := mReal + n

	s.source = make([]int32, mTotal)
	s.target = make([]int32, mTotal)
	s.cost = make([]int64, mTotal)
	s.lower = make([]int64, mTotal)
	s.upper = make([]int64, mTotal)
	s.flow = make([]int64, mTotal)
	s.state = make([]int8, mTotal)

	copy(s.source, s.arcSource)
	copy(s.target, s.arcTarget)
	copy(s.cost, s.arcCost)
	copy(s.lower, s.arcLower)
	copy(s.upper, s.arcUpper)

	var maxAbsCost int64
	excess := make([]int64, n)
	copy(excess, s.nodeSupply)
	for a := int32(0); a < mReal; a++ {
		c := s.arcCost[a]
		if c < 0 {
			c = -c
		}
		if c > maxAbsCost {
			maxAbsCost = c
		}
		s.flow[a] = s.arcLower[a]
		s.state[a] = atLower
		excess[s.arcSource[a]] -= s.arcLower[a]
		excess[s.arcTarget[a]] += s.arcLower[a]
	}

	bigM, err := computeBigM(n, mReal, maxAbsCost)
	if err != nil {
		return NotSolved, err
	}
	s.bigM = bigM

	s.initStar()

	for v := int32(0); v < n; v++ {
		arcID := mReal + v
		b := excess[v]
		s.cost[arcID] = bigM
		s.lower[arcID] = 0
		s.state[arcID] = inTree
		s.predArc[v] = arcID

		if b >= 0 {
			s.source[arcID], s.target[arcID] = v, s.root
			s.flow[arcID] = b
			if s.supplyType == LEQ {
				s.upper[arcID] = infinite
			} else {
				s.upper[arcID] = b
			}
			s.predDir[v] = -1 // child(v) -> parent(root)
			s.potential[v] = -bigM
		} else {
			s.source[arcID], s.target[arcID] = s.root, v
			s.flow[arcID] = -b
			if s.supplyType == GEQ {
				s.upper[arcID] = infinite
			} else {
				s.upper[arcID] = -b
			}
			s.predDir[v] = +1 // parent(root) -> child(v)
			s.potential[v] = bigM
		}
	}

	if s.autoConfig {
		s.characteristics = analyze(s)
		s.config = selectConfig(s.characteristics)
	} else {
		s.config = DefaultConfig()
	}

	activeRule := s.pivotRuleSet
	if !s.pivotRuleExplicit && s.autoConfig && s.config.CandidateListPivot {
		activeRule = CandidateList
	}
	switch activeRule {
	case FirstEligible:
		s.rule = &firstEligibleRule{m: mReal}
	case BestEligible:
		s.rule = &bestEligibleRule{m: mReal}
	case CandidateList:
		s.rule = newCandidateListRule(s.config, mReal)
	default:
		s.rule = newBlockSearchRule(s.config, mReal)
	}
	if s.verbose {
		fmt.Fprintf(os.Stderr, "mcf: problem type %s, pivot rule %s, config %+v\n",
			s.characteristics.Type, activeRule, s.config)
	}

	status, err := s.pivotLoop(ctx, mReal)
	if err != nil {
		return status, err
	}

	s.totalCost = 0
	for a := int32(0); a < mReal; a++ {
		s.totalCost += s.cost[a] * s.flow[a]
	}
	s.status = status
	s.solved = true
	return status, nil
}

// pivotLoop runs steps 1-8 of spec.md §4.7 until termination.
func (s *Solver) pivotLoop(ctx context.Context, mReal int32) (Status, error) {
	maxIter := int64(50) * int64(s.n+mReal)

	for {
		if s.pivotCount%1024 == 0 {
			select {
			case <-ctx.Done():
				return NotSolved, ctx.Err()
			default:
			}
		}
		if s.pivotCount >= maxIter {
			return NotSolved, ErrIterationLimit
		}

		enter, found := s.rule.next(s)
		if !found {
			if s.hasArtificialFlow(mReal) {
				return Infeasible, nil
			}
			return Optimal, nil
		}

		status, err := s.augment(enter)
		if err != nil || status != NotSolved {
			return status, err
		}
		s.pivotCount++
	}
}

// augment performs one pivot's cycle augmentation, basis update and
// potential update (spec.md §4.7 steps 2-8). Returns a non-NotSolved
// status only on Unbounded.
func (s *Solver) augment(enter int32) (Status, error) {
	cu, cv := s.source[enter], s.target[enter]
	if s.state[enter] == atUpper {
		cu, cv = cv, cu
	}
	join := s.findJoin(cu, cv)

	delta := s.residualDelta(enter)
	var leaveArc, leaveNode int32 = -1, -1
	var leaveSide int8
	var leaveNewState int8

	for x := cu; x != join; x = s.parent[x] {
		a := s.predArc[x]
		var cand int64
		var newSt int8
		if s.predDir[x] == +1 {
			cand, newSt = s.upper[a]-s.flow[a], atUpper
		} else {
			cand, newSt = s.flow[a]-s.lower[a], atLower
		}
		if cand < delta {
			delta, leaveArc, leaveNode, leaveSide, leaveNewState = cand, a, x, +1, newSt
		}
	}
	for x := cv; x != join; x = s.parent[x] {
		a := s.predArc[x]
		var cand int64
		var newSt int8
		if s.predDir[x] == -1 {
			cand, newSt = s.upper[a]-s.flow[a], atUpper
		} else {
			cand, newSt = s.flow[a]-s.lower[a], atLower
		}
		if cand < delta {
			delta, leaveArc, leaveNode, leaveSide, leaveNewState = cand, a, x, -1, newSt
		}
	}

	if leaveArc < 0 && delta >= infinite {
		return Unbounded, nil
	}

	if delta != 0 {
		for x := cu; x != join; x = s.parent[x] {
			a := s.predArc[x]
			if s.predDir[x] == +1 {
				s.flow[a] += delta
			} else {
				s.flow[a] -= delta
			}
		}
		for x := cv; x != join; x = s.parent[x] {
			a := s.predArc[x]
			if s.predDir[x] == -1 {
				s.flow[a] += delta
			} else {
				s.flow[a] -= delta
			}
		}
		s.flow[enter] += int64(s.state[enter]) * delta
	}

	if leaveArc < 0 {
		// The entering arc's own residual capacity is the binding
		// constraint: it flips bound without ever becoming basic, no
		// basis change needed.
		if s.state[enter] == atLower {
			s.state[enter] = atUpper
		} else {
			s.state[enter] = atLower
		}
		return NotSolved, nil
	}

	rOld := s.reducedCost(enter)
	var detachedEnd, attachEnd int32
	if leaveSide == +1 {
		detachedEnd, attachEnd = cu, cv
	} else {
		detachedEnd, attachEnd = cv, cu
	}

	var deltaPi int64
	if detachedEnd == s.source[enter] {
		deltaPi = -rOld
	} else {
		deltaPi = rOld
	}
	affected := s.subtreeNodes(leaveNode)

	s.state[leaveArc] = leaveNewState
	s.state[enter] = inTree

	for _, w := range affected {
		s.potential[w] += deltaPi
	}
	s.updateTree(enter, leaveNode, detachedEnd, attachEnd)

	return NotSolved, nil
}
