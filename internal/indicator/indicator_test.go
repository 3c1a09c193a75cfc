package indicator

import (
	"math"
	"testing"
	"time"

	"TradeCompass/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func barsFromCloses(closes []float64) []model.OHLCV {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestSMA_InsufficientHistory(t *testing.T) {
	if _, ok := SMA([]float64{1, 2, 3}, 5); ok {
		t.Fatal("expected absent SMA with 3 values for period 5")
	}
}

func TestEMA_ExactPeriodEqualsSMA(t *testing.T) {
	values := []float64{10, 11, 12, 13, 14}
	ema, ok := EMA(values, 5)
	if !ok {
		t.Fatal("expected EMA with exactly period values")
	}
	sma, _ := SMA(values, 5)
	if !almostEqual(ema, sma) {
		t.Errorf("EMA with exactly period values should equal the seed SMA: %.4f vs %.4f", ema, sma)
	}
}

func TestEMA_InsufficientHistory(t *testing.T) {
	if _, ok := EMA([]float64{10, 11, 12}, 20); ok {
		t.Fatal("expected absent EMA with 3 values for period 20")
	}
}

func TestEMA_FollowsRecentValues(t *testing.T) {
	// A long rally: the EMA must sit above the starting price and below the
	// final price.
	values := make([]float64, 60)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	ema, ok := EMA(values, 20)
	if !ok {
		t.Fatal("expected EMA")
	}
	if ema <= values[0] || ema >= values[len(values)-1] {
		t.Errorf("EMA %.2f outside (%.2f, %.2f)", ema, values[0], values[len(values)-1])
	}
}

func TestRSI_AllGainsIs100(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	rsi, ok := RSI(values, 14)
	if !ok {
		t.Fatal("expected RSI")
	}
	if rsi != 100 {
		t.Errorf("RSI of a pure uptrend = %.2f, want 100", rsi)
	}
}

func TestRSI_InsufficientHistory(t *testing.T) {
	// 14 closes give only 13 changes; period 14 needs 15 closes.
	values := make([]float64, 14)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	if _, ok := RSI(values, 14); ok {
		t.Fatal("expected absent RSI with period closes")
	}
}

func TestRSI_Bounded(t *testing.T) {
	values := []float64{100, 102, 99, 103, 98, 104, 97, 105, 96, 106, 95, 107, 94, 108, 93, 109, 92}
	rsi, ok := RSI(values, 14)
	if !ok {
		t.Fatal("expected RSI")
	}
	if rsi < 0 || rsi > 100 {
		t.Errorf("RSI %.2f out of [0,100]", rsi)
	}
}

func TestATR_ConstantRange(t *testing.T) {
	// Every bar spans exactly 2 points and gaps never exceed the range, so
	// the smoothed ATR is exactly 2.
	bars := barsFromCloses([]float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100})
	atr, ok := ATR(bars, 14)
	if !ok {
		t.Fatal("expected ATR with 16 bars")
	}
	if !almostEqual(atr, 2.0) {
		t.Errorf("ATR = %.4f, want 2.0", atr)
	}
}

func TestATR_InsufficientHistory(t *testing.T) {
	bars := barsFromCloses(make([]float64, 14))
	if _, ok := ATR(bars, 14); ok {
		t.Fatal("expected absent ATR with period bars")
	}
}

func TestOBV_KnownSequence(t *testing.T) {
	bars := barsFromCloses([]float64{10, 11, 10, 10})
	bars[1].Volume = 200
	bars[2].Volume = 300
	bars[3].Volume = 400

	obv, ok := OBV(bars)
	if !ok {
		t.Fatal("expected OBV")
	}
	// +200 (up), -300 (down), +0 (flat)
	if obv != -100 {
		t.Errorf("OBV = %.0f, want -100", obv)
	}
}

func TestOBV_FlatSeriesStaysAtSeed(t *testing.T) {
	bars := barsFromCloses([]float64{10, 10, 10})
	obv, ok := OBV(bars)
	if !ok || obv != 0 {
		t.Errorf("flat-close OBV = %.0f (ok=%v), want 0", obv, ok)
	}
}

func TestOBV_EmptySeries(t *testing.T) {
	if _, ok := OBV(nil); ok {
		t.Fatal("expected absent OBV for empty series")
	}
}

func TestVWAP_DailyGranularityAbsent(t *testing.T) {
	series := &model.PriceSeries{
		Granularity: model.GranularityDaily,
		Bars:        barsFromCloses([]float64{100, 101, 102}),
	}
	if _, ok := VWAP(series); ok {
		t.Fatal("VWAP must be absent on daily bars")
	}
}

func TestVWAP_SingleBarIsTypicalPrice(t *testing.T) {
	bar := model.OHLCV{
		Time: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		Open: 99, High: 102, Low: 98, Close: 100, Volume: 5000,
	}
	series := &model.PriceSeries{Granularity: model.GranularityIntraday, Bars: []model.OHLCV{bar}}
	vwap, ok := VWAP(series)
	if !ok {
		t.Fatal("expected VWAP")
	}
	want := (102.0 + 98.0 + 100.0) / 3.0
	if !almostEqual(vwap, want) {
		t.Errorf("VWAP = %.4f, want %.4f", vwap, want)
	}
}

func TestVWAP_RestartsAtSessionBoundary(t *testing.T) {
	day1 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	series := &model.PriceSeries{
		Granularity: model.GranularityIntraday,
		Bars: []model.OHLCV{
			{Time: day1, High: 10, Low: 10, Close: 10, Volume: 1e6},
			{Time: day2, High: 20, Low: 20, Close: 20, Volume: 100},
		},
	}
	vwap, ok := VWAP(series)
	if !ok {
		t.Fatal("expected VWAP")
	}
	// Yesterday's huge volume must not leak into today's session.
	if !almostEqual(vwap, 20) {
		t.Errorf("VWAP = %.4f, want 20 (session restarted)", vwap)
	}
}

func TestPivotPoints_Ordering(t *testing.T) {
	bars := barsFromCloses([]float64{100, 105, 110})
	p, s1, r1, ok := PivotPoints(bars)
	if !ok {
		t.Fatal("expected pivots")
	}
	// Derived from bars[n-2]: H=106, L=104, C=105.
	wantP := (106.0 + 104.0 + 105.0) / 3.0
	if !almostEqual(p, wantP) {
		t.Errorf("P = %.4f, want %.4f", p, wantP)
	}
	if !(s1 < p && p < r1) {
		t.Errorf("expected S1 < P < R1, got %.2f, %.2f, %.2f", s1, p, r1)
	}
}

func TestPivotPoints_SingleBarAbsent(t *testing.T) {
	bars := barsFromCloses([]float64{100})
	if _, _, _, ok := PivotPoints(bars); ok {
		t.Fatal("expected absent pivots with one bar")
	}
}

func TestSnapshot_ShortSeriesIsAbsentNotZero(t *testing.T) {
	series := &model.PriceSeries{
		Symbol:      "BBCA",
		Granularity: model.GranularityDaily,
		Bars:        barsFromCloses([]float64{100, 101, 102}),
	}
	snap := Snapshot(series)

	if snap.Close != 102 {
		t.Errorf("Close = %.2f, want 102", snap.Close)
	}
	if snap.EMA20.Valid || snap.EMA50.Valid || snap.RSI14.Valid || snap.ATR14.Valid {
		t.Error("long-lookback indicators must be absent on a 3-bar series")
	}
	if snap.VWAP.Valid {
		t.Error("VWAP must be absent on daily bars")
	}
	if !snap.OBV.Valid {
		t.Error("OBV is defined from the first bar")
	}
	if !snap.ChangePct.Valid || !almostEqual(snap.ChangePct.Float, (102.0-101.0)/101.0*100) {
		t.Errorf("ChangePct = %+v", snap.ChangePct)
	}
	if !snap.Pivot.P.Valid {
		t.Error("pivots are defined with 2 bars")
	}
}

func TestSnapshot_VolumeBaselineExcludesLastBar(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100
	}
	bars := barsFromCloses(closes)
	// A terminal spike must not lift its own baseline.
	bars[len(bars)-1].Volume = 50000

	snap := Snapshot(&model.PriceSeries{Granularity: model.GranularityDaily, Bars: bars})
	if !snap.AvgVol20.Valid {
		t.Fatal("expected 20-bar volume baseline")
	}
	if !almostEqual(snap.AvgVol20.Float, 1000) {
		t.Errorf("AvgVol20 = %.0f, want 1000", snap.AvgVol20.Float)
	}
}
