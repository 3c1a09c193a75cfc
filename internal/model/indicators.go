package model

// PivotLevels holds classic pivot points derived from the previous
// completed bar. S1 < P < R1 whenever the source bar has High >= Low.
type PivotLevels struct {
	S1 Value `json:"s1"`
	P  Value `json:"p"`
	R1 Value `json:"r1"`
}

// IndicatorSnapshot holds all derived values as of the last bar of a series.
// Each field is absent (not zero) when the series is shorter than the
// indicator's lookback, or when the indicator is undefined for the
// granularity (VWAP on daily bars).
type IndicatorSnapshot struct {
	Symbol      string      `json:"symbol"`
	Granularity Granularity `json:"granularity"`

	Close     float64 `json:"close"`
	PrevClose Value   `json:"prev_close"`
	// ChangePct is (close-prevClose)/prevClose*100; absent with < 2 bars.
	ChangePct Value `json:"change_pct"`

	EMA20 Value       `json:"ema20"`
	EMA50 Value       `json:"ema50"`
	RSI14 Value       `json:"rsi14"`
	ATR14 Value       `json:"atr14"`
	VWAP  Value       `json:"vwap"`
	OBV   Value       `json:"obv"`
	Pivot PivotLevels `json:"pivot"`

	// Volume baselines used by the strategy-selected volume check.
	Volume   float64 `json:"volume"`
	AvgVol20 Value   `json:"avg_vol_20"`
	AvgVol5  Value   `json:"avg_vol_5"`
}

// RSIZone is the presentation-level classification of an RSI reading.
type RSIZone string

const (
	RSIOverbought RSIZone = "overbought"
	RSIOversold   RSIZone = "oversold"
	RSINeutral    RSIZone = "neutral"
	RSIUnknown    RSIZone = "unknown"
)

// RSIZoneOf classifies an RSI value: >70 overbought, <30 oversold.
func RSIZoneOf(rsi Value) RSIZone {
	switch {
	case !rsi.Valid:
		return RSIUnknown
	case rsi.Float > 70:
		return RSIOverbought
	case rsi.Float < 30:
		return RSIOversold
	default:
		return RSINeutral
	}
}
