package mcf

import "math"

// analyzer.go implements C4: the problem analyzer. analyze() computes
// shape statistics over the real graph (never touches artificial arcs —
// those only exist once Solve has begun) and classifies the problem type
// per spec.md §4.4's ordered rule list.
//
// Grounded on graph/dijkstra.go's degree-bookkeeping pass (a single linear
// scan over arcs accumulating per-node counters before the traversal
// proper begins) generalized from "build an adjacency count" to "build a
// full statistics bundle."

// ProblemType classifies the detected shape of an MCF instance.
type ProblemType int8

const (
	General ProblemType = iota
	Circulation
	Assignment
	Transportation
	Transshipment
	TimeExpanded
)

func (t ProblemType) String() string {
	switch t {
	case General:
		return "General"
	case Circulation:
		return "Circulation"
	case Assignment:
		return "Assignment"
	case Transportation:
		return "Transportation"
	case Transshipment:
		return "Transshipment"
	case TimeExpanded:
		return "TimeExpanded"
	default:
		return "ProblemType(?)"
	}
}

// ProblemCharacteristics bundles the shape statistics C5 maps to a pivot
// configuration. Returned read-only from Solver.AnalyzeProblem.
type ProblemCharacteristics struct {
	NodeCount int32
	ArcCount  int32

	Density      float64
	AvgDegree    float64
	MaxDegree    int32
	DegreeCV     float64
	NumSources   int32
	NumSinks     int32
	NumTransship int32
	TotalSupply  int64

	CostMin int64
	CostMax int64
	CostCV  float64

	FracFiniteCapacity float64

	Dense        bool
	Sparse       bool
	UniformCosts bool

	Type ProblemType
}

// analyze computes ProblemCharacteristics over the solver's real (pre-init)
// graph and supply/cost/bound arrays.
func analyze(s *Solver) ProblemCharacteristics {
	n := s.n
	m := int32(len(s.arcSource))
	var pc ProblemCharacteristics
	pc.NodeCount = n
	pc.ArcCount = m

	if n > 1 {
		pc.Density = float64(m) / (float64(n) * float64(n-1))
	}
	pc.Dense = pc.Density > 0.01 || m > 10000
	pc.Sparse = pc.Density < 0.005

	degree := make([]int32, n)
	outOnly := make([]bool, n)
	inOnly := make([]bool, n)
	hasOut := make([]bool, n)
	hasIn := make([]bool, n)
	for i := range outOnly {
		outOnly[i] = true
		inOnly[i] = true
	}

	var costSum, costSumSq float64
	var finiteCount int32
	costMin, costMax := int64(math.MaxInt64), int64(math.MinInt64)

	for a := int32(0); a < m; a++ {
		u, v := s.arcSource[a], s.arcTarget[a]
		degree[u]++
		degree[v]++
		hasOut[u] = true
		hasIn[v] = true
		inOnly[u] = false
		outOnly[v] = false

		c := float64(s.arcCost[a])
		costSum += c
		costSumSq += c * c
		if s.arcCost[a] < costMin {
			costMin = s.arcCost[a]
		}
		if s.arcCost[a] > costMax {
			costMax = s.arcCost[a]
		}
		if s.arcUpper[a] < infinite {
			finiteCount++
		}
	}
	if m > 0 {
		pc.CostMin, pc.CostMax = costMin, costMax
		mean := costSum / float64(m)
		variance := costSumSq/float64(m) - mean*mean
		if variance < 0 {
			variance = 0
		}
		stddev := math.Sqrt(variance)
		denom := math.Abs(mean)
		if denom < 1e-9 {
			if stddev < 1e-9 {
				pc.CostCV = 0
			} else {
				pc.CostCV = math.Inf(1)
			}
		} else {
			pc.CostCV = stddev / denom
		}
		pc.FracFiniteCapacity = float64(finiteCount) / float64(m)
	}
	pc.UniformCosts = pc.CostCV < 0.01

	var degSum float64
	var maxDeg int32
	for v := int32(0); v < n; v++ {
		degSum += float64(degree[v])
		if degree[v] > maxDeg {
			maxDeg = degree[v]
		}
	}
	pc.MaxDegree = maxDeg
	if n > 0 {
		pc.AvgDegree = degSum / float64(n)
	}
	var devSumSq float64
	for v := int32(0); v < n; v++ {
		d := float64(degree[v]) - pc.AvgDegree
		devSumSq += d * d
	}
	if n > 0 && pc.AvgDegree > 1e-9 {
		pc.DegreeCV = math.Sqrt(devSumSq/float64(n)) / pc.AvgDegree
	}

	var maxAbsSupply int64
	oneDirectional := int32(0)
	for v := int32(0); v < n; v++ {
		sv := s.nodeSupply[v]
		switch {
		case sv > 0:
			pc.NumSources++
			pc.TotalSupply += sv
		case sv < 0:
			pc.NumSinks++
		default:
			pc.NumTransship++
		}
		abs := sv
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbsSupply {
			maxAbsSupply = abs
		}
		// A node with no arcs at all counts as one-directional vacuously;
		// only nodes touching arcs in both directions break the pattern.
		if !(hasOut[v] && hasIn[v]) {
			oneDirectional++
		}
	}
	bipartite := n == 0 || float64(oneDirectional)/float64(n) >= 0.8

	switch {
	case pc.NumSources == 0 && pc.NumSinks == 0:
		pc.Type = Circulation
	case bipartite && maxAbsSupply <= 1 && pc.NumSources == pc.NumSinks:
		pc.Type = Assignment
	case bipartite && pc.NumTransship == 0:
		pc.Type = Transportation
	case pc.NumTransship > 0:
		pc.Type = Transshipment
		if pc.Sparse && pc.DegreeCV < 0.3 {
			pc.Type = TimeExpanded
		}
	default:
		pc.Type = General
	}

	return pc
}
