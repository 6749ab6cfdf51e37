package mcf

import "math"

// adaptive.go implements the adaptive block-size controller used by
// blockSearchRule (spec.md §4.6); candidateListRule does not use it. It tracks an
// exponentially-weighted recent hit rate (the concrete realization of the
// spec's "recent hit-rate" — no ring buffer needed, one float suffices and
// it only reads as a heuristic tuning signal, not an optimality condition)
// alongside consecutive hit/miss streaks.

type adaptiveBlock struct {
	size int32

	minSize, maxSize            int32
	growthFactor, shrinkFactor  float64
	hitsBeforeAdapt             int32
	lowThreshold, highThreshold float64
	minSizeRatio                float64

	m int32

	consecutiveHits   int32
	consecutiveMisses int32
	hitRate           float64
}

func newAdaptiveBlock(cfg OptimizationConfig, m int32) *adaptiveBlock {
	ab := &adaptiveBlock{
		minSize:         cfg.MinBlockSize,
		maxSize:         cfg.MaxBlockSize,
		growthFactor:    cfg.BlockSizeGrowthFactor,
		shrinkFactor:    cfg.BlockSizeShrinkFactor,
		hitsBeforeAdapt: cfg.ConsecutiveHitsBeforeAdapt,
		lowThreshold:    cfg.LowHitRateThreshold,
		highThreshold:   cfg.HighHitRateThreshold,
		minSizeRatio:    cfg.MinBlockSizeRatio,
		m:               m,
		hitRate:         0.5,
	}
	initial := int32(math.Ceil(math.Sqrt(float64(m))))
	ab.size = ab.clamp(initial)
	return ab
}

func (ab *adaptiveBlock) clamp(v int32) int32 {
	lo := ab.minSize
	if floor := int32(ab.minSizeRatio * math.Sqrt(float64(ab.m))); floor > lo {
		lo = floor
	}
	if v < lo {
		v = lo
	}
	if v > ab.maxSize {
		v = ab.maxSize
	}
	return v
}

// record updates the streak counters and hit-rate estimate after a block
// scan, adapting the block size once a streak crosses hitsBeforeAdapt and
// the hit rate is on the corresponding side of its threshold.
const adaptiveHitRateAlpha = 0.1

func (ab *adaptiveBlock) record(hit bool) {
	observed := 0.0
	if hit {
		observed = 1.0
	}
	ab.hitRate = ab.hitRate*(1-adaptiveHitRateAlpha) + observed*adaptiveHitRateAlpha

	if hit {
		ab.consecutiveHits++
		ab.consecutiveMisses = 0
		if ab.consecutiveHits >= ab.hitsBeforeAdapt && ab.hitRate > ab.highThreshold {
			ab.size = ab.clamp(int32(float64(ab.size) * ab.shrinkFactor))
			ab.consecutiveHits = 0
		}
		return
	}
	ab.consecutiveMisses++
	ab.consecutiveHits = 0
	if ab.consecutiveMisses >= ab.hitsBeforeAdapt && ab.hitRate < ab.lowThreshold {
		ab.size = ab.clamp(int32(float64(ab.size) * ab.growthFactor))
		ab.consecutiveMisses = 0
	}
}
