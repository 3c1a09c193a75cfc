package journal

import (
	"math"
	"sort"

	"TradeCompass/internal/model"
)

// Summarize aggregates closed trades into performance statistics. Open
// trades are ignored; a nil summary means nothing has been closed yet.
func Summarize(trades []model.TradeRecord) *model.PerformanceSummary {
	var closed []model.TradeRecord
	for _, t := range trades {
		if t.Status != model.TradeOpen {
			closed = append(closed, t)
		}
	}
	if len(closed) == 0 {
		return nil
	}

	sum := &model.PerformanceSummary{TotalTrades: len(closed)}
	var winTotal, lossTotal float64
	for _, t := range closed {
		if t.RealizedPnL > 0 {
			sum.Wins++
			winTotal += t.RealizedPnL
		} else {
			sum.Losses++
			lossTotal += -t.RealizedPnL
		}
	}

	sum.WinRate = float64(sum.Wins) / float64(sum.TotalTrades) * 100
	sum.GrossProfit = winTotal
	sum.GrossLoss = lossTotal
	sum.NetProfit = winTotal - lossTotal
	if lossTotal > 0 {
		sum.ProfitFactor = winTotal / lossTotal
	} else {
		sum.ProfitFactor = math.Inf(1)
	}
	if sum.Wins > 0 {
		sum.AvgWin = winTotal / float64(sum.Wins)
	}
	if sum.Losses > 0 {
		sum.AvgLoss = -lossTotal / float64(sum.Losses)
	}
	return sum
}

// EquityCurve builds the cumulative realized-PnL series over closed
// trades, ordered by close timestamp.
func EquityCurve(trades []model.TradeRecord) []model.EquityPoint {
	var closed []model.TradeRecord
	for _, t := range trades {
		if t.Status != model.TradeOpen {
			closed = append(closed, t)
		}
	}
	sort.Slice(closed, func(i, j int) bool { return closed[i].Timestamp.Before(closed[j].Timestamp) })

	curve := make([]model.EquityPoint, 0, len(closed))
	cum := 0.0
	for _, t := range closed {
		cum += t.RealizedPnL
		curve = append(curve, model.EquityPoint{Timestamp: t.Timestamp, CumulativePnL: cum})
	}
	return curve
}
