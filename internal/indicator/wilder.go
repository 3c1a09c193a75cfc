package indicator

import (
	"math"

	"TradeCompass/internal/model"
)

// RSI computes the Wilder-smoothed relative strength index as of the last
// value. Requires at least period+1 values; absent otherwise.
func RSI(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, true
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), true
}

// TrueRange is max(high-low, |high-prevClose|, |low-prevClose|).
func TrueRange(bar model.OHLCV, prevClose float64) float64 {
	tr := bar.High - bar.Low
	if hc := math.Abs(bar.High - prevClose); hc > tr {
		tr = hc
	}
	if lc := math.Abs(bar.Low - prevClose); lc > tr {
		tr = lc
	}
	return tr
}

// ATR computes the Wilder-smoothed average true range as of the last bar.
// Requires at least period+1 bars since each true range needs a previous
// close; absent otherwise.
func ATR(bars []model.OHLCV, period int) (float64, bool) {
	if period <= 0 || len(bars) < period+1 {
		return 0, false
	}

	seed := 0.0
	for i := 1; i <= period; i++ {
		seed += TrueRange(bars[i], bars[i-1].Close)
	}
	atr := seed / float64(period)

	for i := period + 1; i < len(bars); i++ {
		tr := TrueRange(bars[i], bars[i-1].Close)
		atr = (atr*float64(period-1) + tr) / float64(period)
	}
	return atr, true
}
