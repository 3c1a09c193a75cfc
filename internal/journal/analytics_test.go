package journal

import (
	"math"
	"testing"
	"time"

	"TradeCompass/internal/model"
)

func closedTrade(pnl float64, at time.Time) model.TradeRecord {
	status := model.TradeWin
	if pnl < 0 {
		status = model.TradeLoss
	}
	return model.TradeRecord{Ticker: "TEST", RealizedPnL: pnl, Status: status, Timestamp: at}
}

func TestSummarize_Empty(t *testing.T) {
	if sum := Summarize(nil); sum != nil {
		t.Fatal("no closed trades should give a nil summary")
	}
	open := []model.TradeRecord{{Ticker: "BBCA", Status: model.TradeOpen}}
	if sum := Summarize(open); sum != nil {
		t.Fatal("open trades alone should give a nil summary")
	}
}

func TestSummarize_MixedOutcomes(t *testing.T) {
	now := time.Now()
	trades := []model.TradeRecord{
		closedTrade(300_000, now),
		closedTrade(100_000, now),
		closedTrade(-100_000, now),
		closedTrade(-100_000, now),
		{Ticker: "OPEN", Status: model.TradeOpen}, // must be ignored
	}

	sum := Summarize(trades)
	if sum == nil {
		t.Fatal("expected summary")
	}
	if sum.TotalTrades != 4 || sum.Wins != 2 || sum.Losses != 2 {
		t.Errorf("counts = %d/%d/%d, want 4/2/2", sum.TotalTrades, sum.Wins, sum.Losses)
	}
	if sum.WinRate != 50 {
		t.Errorf("WinRate = %.1f, want 50", sum.WinRate)
	}
	if sum.NetProfit != 200_000 {
		t.Errorf("NetProfit = %.0f, want 200000", sum.NetProfit)
	}
	if sum.ProfitFactor != 2.0 {
		t.Errorf("ProfitFactor = %.2f, want 2.0", sum.ProfitFactor)
	}
	if sum.AvgWin != 200_000 || sum.AvgLoss != -100_000 {
		t.Errorf("AvgWin/AvgLoss = %.0f/%.0f", sum.AvgWin, sum.AvgLoss)
	}
}

func TestSummarize_NoLossesProfitFactorInf(t *testing.T) {
	sum := Summarize([]model.TradeRecord{closedTrade(100_000, time.Now())})
	if !math.IsInf(sum.ProfitFactor, 1) {
		t.Errorf("ProfitFactor = %.2f, want +Inf with zero losses", sum.ProfitFactor)
	}
}

func TestEquityCurve_CumulativeAndSorted(t *testing.T) {
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	trades := []model.TradeRecord{
		closedTrade(-50_000, base.AddDate(0, 0, 2)),
		closedTrade(100_000, base),
		closedTrade(200_000, base.AddDate(0, 0, 5)),
	}

	curve := EquityCurve(trades)
	if len(curve) != 3 {
		t.Fatalf("got %d points, want 3", len(curve))
	}
	want := []float64{100_000, 50_000, 250_000}
	for i, w := range want {
		if curve[i].CumulativePnL != w {
			t.Errorf("point %d = %.0f, want %.0f", i, curve[i].CumulativePnL, w)
		}
	}
	if !curve[0].Timestamp.Before(curve[1].Timestamp) {
		t.Error("curve must be ordered by close time")
	}
}
