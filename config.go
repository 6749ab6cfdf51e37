package mcf

// config.go implements C5: mapping ProblemCharacteristics to an
// OptimizationConfig. The decision table in spec.md §4.5 is the contract,
// so selectConfig is straight-line conditionals, one clause per row, each
// commented with the row it implements — no generic rule-engine
// abstraction, matching how the teacher never reaches for one where a
// conditional suffices (see e.g. flow/utils.go's plain if-chains).

// OptimizationConfig bundles the pivot-tuning decisions C5 derives from a
// problem's shape. When auto-configuration is disabled, Solve uses
// DefaultConfig; there is no API for supplying a custom value.
type OptimizationConfig struct {
	AdaptiveBlockSize   bool
	SmallBlocksForDense bool
	ReducedCostCaching  bool
	CandidateListPivot  bool
	HotColdSplitting    bool
	EarlyTermination    bool

	MinBlockSize int32
	MaxBlockSize int32

	BlockSizeGrowthFactor float64
	BlockSizeShrinkFactor float64

	ConsecutiveHitsBeforeAdapt int32

	LowHitRateThreshold  float64
	HighHitRateThreshold float64

	CandidateListRatio float64
	MinBlockSizeRatio  float64
}

// DefaultConfig returns the baseline configuration row 1b ("not dense")
// plus the table's implicit baseline numeric defaults, before any
// conditional row is applied.
func DefaultConfig() OptimizationConfig {
	return OptimizationConfig{
		MinBlockSize:               25,
		MaxBlockSize:               100,
		BlockSizeGrowthFactor:      1.5,
		BlockSizeShrinkFactor:      0.5,
		ConsecutiveHitsBeforeAdapt: 3,
		LowHitRateThreshold:        0.05,
		HighHitRateThreshold:       0.3,
		CandidateListRatio:         0.1,
		MinBlockSizeRatio:          0.5,
	}
}

// selectConfig applies spec.md §4.5's fixed decision table to pc, row by
// row, starting from DefaultConfig.
func selectConfig(pc ProblemCharacteristics) OptimizationConfig {
	cfg := DefaultConfig()

	// Row: dense | not dense.
	if pc.Dense {
		cfg.SmallBlocksForDense = true
		cfg.MinBlockSize, cfg.MaxBlockSize = 10, 50
	} else {
		cfg.MinBlockSize, cfg.MaxBlockSize = 25, 100
	}

	// Row: degree CV > 0.5.
	switch {
	case pc.DegreeCV > 0.5:
		cfg.AdaptiveBlockSize = true
		cfg.BlockSizeGrowthFactor = 1.3
		cfg.BlockSizeShrinkFactor = 0.7
		cfg.ConsecutiveHitsBeforeAdapt = 2
	case pc.DegreeCV > 0.3 && pc.DegreeCV <= 0.5:
		// Row: 0.3 < CV <= 0.5 -- adaptive with the table's defaults.
		cfg.AdaptiveBlockSize = true
	}

	// Row: sparse AND m < 50000.
	if pc.Sparse && pc.ArcCount < 50000 {
		cfg.ReducedCostCaching = true
	}

	// Row: m >= 1000 AND (sparse-and-m>5000 OR uniform costs OR
	// type in {Assignment, Transportation}).
	typeFavorsCandidateList := pc.Type == Assignment || pc.Type == Transportation
	if pc.ArcCount >= 1000 && ((pc.Sparse && pc.ArcCount > 5000) || pc.UniformCosts || typeFavorsCandidateList) {
		cfg.CandidateListPivot = true
		switch {
		case pc.UniformCosts:
			cfg.CandidateListRatio = 0.2
		case pc.ArcCount > 100000:
			cfg.CandidateListRatio = 0.05
		default:
			cfg.CandidateListRatio = 0.1
		}
	}

	// Row: n > 5000 AND CV > 1.0.
	if pc.NodeCount > 5000 && pc.DegreeCV > 1.0 {
		cfg.HotColdSplitting = true
	}

	// Row: type in {Assignment, Transportation}.
	if typeFavorsCandidateList {
		cfg.EarlyTermination = true
	}

	// Row: m > 10000 -> tighter hit-rate thresholds, else the defaults.
	if pc.ArcCount > 10000 {
		cfg.LowHitRateThreshold, cfg.HighHitRateThreshold = 0.03, 0.25
	} else {
		cfg.LowHitRateThreshold, cfg.HighHitRateThreshold = 0.05, 0.3
	}

	return cfg
}
