package mcf

import (
	"math"
	"sort"
)

// pivot_candidate.go implements the Candidate-List pivot strategy
// (spec.md §4.6): periodically scan all real arcs to build a shortlist of
// the most-violated eligible arcs, then serve minor iterations from that
// list (re-checking eligibility live, since potentials shift every pivot)
// until it is exhausted or more than half of it has gone stale, at which
// point it is rebuilt.

type candidateListRule struct {
	m     int32
	ratio float64
	list  []int32
	pos   int
}

func newCandidateListRule(cfg OptimizationConfig, m int32) *candidateListRule {
	ratio := cfg.CandidateListRatio
	if ratio <= 0 {
		ratio = 0.1
	}
	return &candidateListRule{m: m, ratio: ratio}
}

type candidateEntry struct {
	arc int32
	val int64
}

// rebuild performs the full scan and re-ranks by |state*reducedCost|,
// keeping the top ceil(m * ratio) entries.
func (r *candidateListRule) rebuild(s *Solver) {
	cands := make([]candidateEntry, 0, r.m/8+1)
	for a := int32(0); a < r.m; a++ {
		if !s.eligible(a) {
			continue
		}
		cands = append(cands, candidateEntry{a, absInt64(int64(s.state[a]) * s.reducedCost(a))})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].val > cands[j].val })

	k := int(math.Ceil(float64(r.m) * r.ratio))
	if k > len(cands) {
		k = len(cands)
	}
	list := make([]int32, k)
	for i := 0; i < k; i++ {
		list[i] = cands[i].arc
	}
	r.list = list
	r.pos = 0
}

func (r *candidateListRule) next(s *Solver) (int32, bool) {
	if r.m == 0 {
		return -1, false
	}
	for attempt := 0; attempt < 2; attempt++ {
		if r.list == nil {
			r.rebuild(s)
		}
		staleBudget := len(r.list)/2 + 1
		for r.pos < len(r.list) {
			a := r.list[r.pos]
			r.pos++
			if s.eligible(a) {
				return a, true
			}
			staleBudget--
			if staleBudget <= 0 {
				break
			}
		}
		r.list = nil
	}
	return -1, false
}
