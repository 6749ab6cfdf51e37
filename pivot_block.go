package mcf

import "math"

// pivot_block.go implements the default Block-Search pivot strategy
// (spec.md §4.6): scan a contiguous block of arcs from the cursor,
// returning the best eligible arc in the block, or advance to the next
// block (up to one full sweep) if the block was empty.

type blockSearchRule struct {
	m         int32
	cursor    int32
	fixedSize int32
	adaptive  *adaptiveBlock // nil unless OptimizationConfig.AdaptiveBlockSize
}

func newBlockSearchRule(cfg OptimizationConfig, m int32) *blockSearchRule {
	r := &blockSearchRule{m: m}
	if cfg.AdaptiveBlockSize {
		r.adaptive = newAdaptiveBlock(cfg, m)
		return r
	}
	size := int32(math.Ceil(math.Sqrt(float64(m))))
	if size < cfg.MinBlockSize {
		size = cfg.MinBlockSize
	}
	if size > cfg.MaxBlockSize {
		size = cfg.MaxBlockSize
	}
	r.fixedSize = size
	return r
}

func (r *blockSearchRule) blockSize() int32 {
	if r.adaptive != nil {
		return r.adaptive.size
	}
	return r.fixedSize
}

func (r *blockSearchRule) next(s *Solver) (int32, bool) {
	if r.m == 0 {
		return -1, false
	}

	var scanned int32
	for scanned < r.m {
		size := r.blockSize()
		if size <= 0 {
			size = 1
		}
		if size > r.m {
			size = r.m
		}

		best := int32(-1)
		var bestVal int64
		for i := int32(0); i < size; i++ {
			idx := (r.cursor + i) % r.m
			if !s.eligible(idx) {
				continue
			}
			val := absInt64(int64(s.state[idx]) * s.reducedCost(idx))
			if best < 0 || val > bestVal {
				best, bestVal = idx, val
			}
		}
		r.cursor = (r.cursor + size) % r.m
		scanned += size

		hit := best >= 0
		if r.adaptive != nil {
			r.adaptive.record(hit)
		}
		if hit {
			return best, true
		}
	}
	return -1, false
}
