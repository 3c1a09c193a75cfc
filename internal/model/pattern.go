package model

// CandlePattern names a single-bar or two-bar reversal pattern.
type CandlePattern string

const (
	CandleNone             CandlePattern = ""
	CandleHammer           CandlePattern = "hammer"
	CandleBullishEngulfing CandlePattern = "bullish_engulfing"
)

// PatternFlags holds the qualitative signals detected on one series.
// Recomputed fresh per analysis, never cached across calls. Insufficient
// history reads as "no signal" (false), which is distinct from the absent
// state used for numeric indicators.
type PatternFlags struct {
	SleepingDragon bool `json:"sleeping_dragon"`
	// DragonRangePct and DragonVolRatio are the supporting metrics behind
	// the Sleeping Dragon check, reported even when the flag is false.
	DragonRangePct Value `json:"dragon_range_pct"`
	DragonVolRatio Value `json:"dragon_vol_ratio"`

	MorningSpike  bool  `json:"morning_spike"`
	SpikeRangePct Value `json:"spike_range_pct"`

	OBVDivergence bool `json:"obv_divergence"`
	// DivergenceKind distinguishes hidden accumulation from a plain
	// bullish divergence; empty when OBVDivergence is false.
	DivergenceKind string `json:"divergence_kind,omitempty"`

	Candle CandlePattern `json:"candle_pattern,omitempty"`
}
