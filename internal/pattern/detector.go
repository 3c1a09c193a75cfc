package pattern

import (
	"TradeCompass/internal/indicator"
	"TradeCompass/internal/model"

	"gonum.org/v1/gonum/stat"
)

const (
	// dragonLookback is the sideways window for the Sleeping Dragon check.
	dragonLookback = 20
	// dragonRangeLimit: (max high - min low)/min low below this is sideways.
	dragonRangeLimit = 0.15
	// dragonVolMultiplier gates the volume spike against the window mean.
	dragonVolMultiplier = 2.0

	// spikeRangeLimit: a morning spike needs (high-low)/low above this.
	spikeRangeLimit = 0.02
	// openLowTolerance allows open==low to hold within 0.5% of the open,
	// matching how exchange ticks round the prints.
	openLowTolerance = 0.005

	// DefaultDivergenceWindow is the trailing window for OBV divergence.
	DefaultDivergenceWindow = 10
	// divergenceFlatBandPct: projected price drift within this band over
	// the window still counts as flat.
	divergenceFlatBandPct = 5.0
)

// Config tunes the detector. The zero value uses the defaults above.
type Config struct {
	DivergenceWindow int
}

// Detect evaluates all qualitative signals on one series. Insufficient
// history reads as "no signal": a short history is not itself a dragon.
func Detect(series *model.PriceSeries, cfg Config) model.PatternFlags {
	window := cfg.DivergenceWindow
	if window <= 0 {
		window = DefaultDivergenceWindow
	}

	var flags model.PatternFlags
	sleepingDragon(series.Bars, &flags)
	morningSpike(series.Bars, &flags)
	obvDivergence(series.Bars, window, &flags)
	flags.Candle = CandleOf(series.Bars)
	return flags
}

// sleepingDragon: over the trailing 20 bars the price range is under 15%
// of the window low while the last bar's volume doubles the window mean.
func sleepingDragon(bars []model.OHLCV, flags *model.PatternFlags) {
	if len(bars) < dragonLookback {
		return
	}
	recent := bars[len(bars)-dragonLookback:]

	maxHigh, minLow := recent[0].High, recent[0].Low
	meanVol := 0.0
	for _, b := range recent {
		if b.High > maxHigh {
			maxHigh = b.High
		}
		if b.Low < minLow {
			minLow = b.Low
		}
		meanVol += b.Volume
	}
	meanVol /= float64(len(recent))
	if minLow <= 0 {
		return
	}

	rangePct := (maxHigh - minLow) / minLow * 100
	flags.DragonRangePct = model.Val(rangePct)
	if meanVol > 0 {
		flags.DragonVolRatio = model.Val(recent[len(recent)-1].Volume / meanVol)
	}

	sideways := (maxHigh-minLow)/minLow < dragonRangeLimit
	spike := recent[len(recent)-1].Volume > dragonVolMultiplier*meanVol
	flags.SleepingDragon = sideways && spike
}

// morningSpike: the last bar opened at its low (HAKA setup) with an
// intrabar range above 2%.
func morningSpike(bars []model.OHLCV, flags *model.PatternFlags) {
	if len(bars) == 0 {
		return
	}
	last := bars[len(bars)-1]
	if last.Low <= 0 {
		return
	}
	rangePct := (last.High - last.Low) / last.Low * 100
	flags.SpikeRangePct = model.Val(rangePct)
	flags.MorningSpike = OpenEqualsLow(last) && rangePct > spikeRangeLimit*100
}

// OpenEqualsLow reports whether a bar opened at its low, within the tick
// tolerance. Shared with the Scalper structural check.
func OpenEqualsLow(bar model.OHLCV) bool {
	if bar.Open <= 0 {
		return false
	}
	return (bar.Open-bar.Low)/bar.Open < openLowTolerance
}

// obvDivergence: price flat-or-down over the trailing window while OBV is
// strictly rising. Trend direction uses the least-squares slope over the
// window rather than an endpoint comparison, so a single noisy bar cannot
// flip the call.
func obvDivergence(bars []model.OHLCV, window int, flags *model.PatternFlags) {
	if len(bars) < window || window < 2 {
		return
	}
	recent := bars[len(bars)-window:]

	closes := make([]float64, window)
	for i, b := range recent {
		closes[i] = b.Close
	}
	obv := indicator.OBVSeries(recent)

	priceSlope := Slope(closes)
	obvSlope := Slope(obv)

	if closes[0] <= 0 {
		return
	}
	// Projected price drift across the window, as a percentage of the
	// starting close.
	driftPct := priceSlope * float64(window-1) / closes[0] * 100

	if obvSlope <= 0 {
		return
	}
	switch {
	case driftPct < -divergenceFlatBandPct:
		flags.OBVDivergence = true
		flags.DivergenceKind = "bullish_divergence"
	case driftPct <= divergenceFlatBandPct:
		flags.OBVDivergence = true
		flags.DivergenceKind = "hidden_accumulation"
	}
}

// Slope returns the least-squares slope of values against their index.
func Slope(values []float64) float64 {
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, values, nil, false)
	return slope
}
