package indicator

import "TradeCompass/internal/model"

func value(f float64, ok bool) model.Value {
	if !ok {
		return model.Absent
	}
	return model.Val(f)
}

// Snapshot computes every derived value as of the last bar of the series.
// Indicators whose lookback exceeds the available bars are reported as
// absent, never as zero.
func Snapshot(series *model.PriceSeries) *model.IndicatorSnapshot {
	snap := &model.IndicatorSnapshot{
		Symbol:      series.Symbol,
		Granularity: series.Granularity,
	}

	last, ok := series.Last()
	if !ok {
		return snap
	}
	snap.Close = last.Close
	snap.Volume = last.Volume

	closes := series.Closes()
	if n := len(closes); n >= 2 {
		prev := closes[n-2]
		snap.PrevClose = model.Val(prev)
		if prev != 0 {
			snap.ChangePct = model.Val((last.Close - prev) / prev * 100)
		}
	}

	snap.EMA20 = value(EMA(closes, 20))
	snap.EMA50 = value(EMA(closes, 50))
	snap.RSI14 = value(RSI(closes, 14))
	snap.ATR14 = value(ATR(series.Bars, 14))
	snap.VWAP = value(VWAP(series))
	snap.OBV = value(OBV(series.Bars))

	if p, s1, r1, ok := PivotPoints(series.Bars); ok {
		snap.Pivot = model.PivotLevels{P: model.Val(p), S1: model.Val(s1), R1: model.Val(r1)}
	}

	vols := series.Volumes()
	// Baselines exclude the last bar so a spike does not inflate its own
	// reference average.
	if len(vols) >= 1 {
		hist := vols[:len(vols)-1]
		snap.AvgVol20 = value(SMA(hist, 20))
		snap.AvgVol5 = value(SMA(hist, 5))
	}

	return snap
}
