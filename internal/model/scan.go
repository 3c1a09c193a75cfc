package model

import "fmt"

// ScanMode names a batch scan predicate.
type ScanMode string

const (
	ScanGEM      ScanMode = "gem"
	ScanDragon   ScanMode = "dragon"
	ScanDayTrade ScanMode = "daytrade"
)

// ParseScanMode validates enum membership.
func ParseScanMode(s string) (ScanMode, error) {
	switch ScanMode(s) {
	case ScanGEM, ScanDragon, ScanDayTrade:
		return ScanMode(s), nil
	}
	return "", fmt.Errorf("%w: unknown scan mode %q", ErrInvalidInput, s)
}

// ScanResult is one symbol's outcome in a batch run. A fetch failure sets
// Failed with a reason and leaves Matched false; it never aborts the batch.
type ScanResult struct {
	Symbol  string `json:"symbol"`
	Matched bool   `json:"matched"`
	Failed  bool   `json:"failed"`
	Reason  string `json:"reason,omitempty"`

	Price     float64 `json:"price,omitempty"`
	EMA20     Value   `json:"ema20,omitempty"`
	ChangePct Value   `json:"change_pct,omitempty"`
	VolRatio  Value   `json:"vol_ratio,omitempty"`
	// TurnoverB is close*volume in billions of rupiah, used by the
	// day-trade liquidity gate.
	TurnoverB Value `json:"turnover_b,omitempty"`
}
