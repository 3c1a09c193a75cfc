package indicator

import "TradeCompass/internal/model"

// PivotPoints computes classic pivot levels from the previous completed
// bar's high/low/close: P=(H+L+C)/3, S1=2P-H, R1=2P-L. Requires at least
// 2 bars; absent otherwise.
func PivotPoints(bars []model.OHLCV) (p, s1, r1 float64, ok bool) {
	if len(bars) < 2 {
		return 0, 0, 0, false
	}
	prev := bars[len(bars)-2]
	p = (prev.High + prev.Low + prev.Close) / 3.0
	s1 = 2*p - prev.High
	r1 = 2*p - prev.Low
	return p, s1, r1, true
}
