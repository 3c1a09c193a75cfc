package indicator

import (
	"time"

	"TradeCompass/internal/model"
)

// OBV computes on-balance volume as of the last bar: a running sum seeded
// at 0 on the first bar, +volume when the close rises, -volume when it
// falls, unchanged when flat. Returns false only for an empty series.
func OBV(bars []model.OHLCV) (float64, bool) {
	if len(bars) == 0 {
		return 0, false
	}
	obv := 0.0
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv += bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv -= bars[i].Volume
		}
	}
	return obv, true
}

// OBVSeries returns the full on-balance volume series, one value per bar.
func OBVSeries(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i := 1; i < len(bars); i++ {
		out[i] = out[i-1]
		switch {
		case bars[i].Close > bars[i-1].Close:
			out[i] += bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			out[i] -= bars[i].Volume
		}
	}
	return out
}

// VWAP computes the volume-weighted average price as of the last bar,
// restarting the cumulative sums at the start of each trading session.
// VWAP is only defined for intraday series; daily granularity is absent.
func VWAP(series *model.PriceSeries) (float64, bool) {
	if series.Granularity != model.GranularityIntraday || series.Len() == 0 {
		return 0, false
	}

	var sumPV, sumV float64
	for i, b := range series.Bars {
		if i > 0 && !sameSession(series.Bars[i-1].Time, b.Time) {
			sumPV, sumV = 0, 0
		}
		tp := (b.High + b.Low + b.Close) / 3.0
		sumPV += tp * b.Volume
		sumV += b.Volume
	}
	if sumV == 0 {
		return 0, false
	}
	return sumPV / sumV, true
}

// sameSession reports whether two bar timestamps fall on the same trading day.
func sameSession(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
