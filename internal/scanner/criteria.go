package scanner

import (
	"TradeCompass/internal/indicator"
	"TradeCompass/internal/model"
)

const (
	// gemChangeMin/Max bound the consolidation band for the GEM scan.
	gemChangeMin = -3.0
	gemChangeMax = 2.0

	// dragonVolRatio and dragonChangeMin gate the momentum scan.
	dragonVolRatio  = 1.5
	dragonChangeMin = 2.0

	// Day-trade gates: active move, minimum turnover, volume spike.
	dayTradeChangeMin   = 2.0
	dayTradeChangeMax   = 10.0
	dayTradeTurnoverMin = 5.0 // billions of rupiah
	dayTradeVolRatio    = 1.2
)

// evaluate applies the scan predicate for one symbol's daily series and
// fills the supporting metrics. The result reports matched=false with a
// reason when the predicate cannot be evaluated on the available history.
func evaluate(mode model.ScanMode, series *model.PriceSeries) model.ScanResult {
	res := model.ScanResult{Symbol: series.Symbol}

	last, ok := series.Last()
	if !ok {
		res.Failed = true
		res.Reason = "empty series"
		return res
	}
	res.Price = last.Close

	closes := series.Closes()
	if n := len(closes); n >= 2 && closes[n-2] != 0 {
		prev := closes[n-2]
		res.ChangePct = model.Val((last.Close - prev) / prev * 100)
	}
	if ema, ok := indicator.EMA(closes, 20); ok {
		res.EMA20 = model.Val(ema)
	}

	vols := series.Volumes()
	if len(vols) >= 1 {
		if avg, ok := indicator.SMA(vols[:len(vols)-1], 20); ok && avg > 0 {
			res.VolRatio = model.Val(last.Volume / avg)
		}
	}
	res.TurnoverB = model.Val(last.Close * last.Volume / 1e9)

	switch mode {
	case model.ScanGEM:
		// Uptrend stock pausing to consolidate.
		res.Matched = res.EMA20.Valid && last.Close > res.EMA20.Float &&
			res.ChangePct.Valid &&
			res.ChangePct.Float >= gemChangeMin && res.ChangePct.Float <= gemChangeMax
	case model.ScanDragon:
		// Volume explosion with a price surge.
		res.Matched = res.VolRatio.Valid && res.VolRatio.Float > dragonVolRatio &&
			res.ChangePct.Valid && res.ChangePct.Float > dragonChangeMin
	case model.ScanDayTrade:
		// Active, liquid, and confirmed by volume.
		res.Matched = res.ChangePct.Valid &&
			res.ChangePct.Float >= dayTradeChangeMin && res.ChangePct.Float <= dayTradeChangeMax &&
			res.TurnoverB.Valid && res.TurnoverB.Float > dayTradeTurnoverMin &&
			res.VolRatio.Valid && res.VolRatio.Float > dayTradeVolRatio
	}
	return res
}
