package pattern

import (
	"math"

	"TradeCompass/internal/model"
)

// CandleOf detects single- and two-bar reversal patterns on the last bar.
func CandleOf(bars []model.OHLCV) model.CandlePattern {
	if len(bars) < 2 {
		return model.CandleNone
	}
	last := bars[len(bars)-1]
	prev := bars[len(bars)-2]

	body := math.Abs(last.Close - last.Open)
	lowerShadow := math.Min(last.Close, last.Open) - last.Low
	upperShadow := last.High - math.Max(last.Close, last.Open)

	// Hammer: long lower shadow, small upper shadow.
	if lowerShadow >= 2*body && upperShadow <= 0.5*body {
		return model.CandleHammer
	}

	// Bullish engulfing: a green body that wraps the previous bar's body.
	if last.Close > last.Open && last.Close > prev.Open && last.Open < prev.Close {
		return model.CandleBullishEngulfing
	}

	return model.CandleNone
}
