package model

import "time"

// TradeStatus tracks the lifecycle of a journal entry.
type TradeStatus string

const (
	TradeOpen TradeStatus = "OPEN"
	TradeWin  TradeStatus = "WIN"
	TradeLoss TradeStatus = "LOSS"
	TradeBEP  TradeStatus = "BEP"
)

// TradeRecord is one journal entry: the planned setup, the verdict it was
// taken under, and the eventual outcome.
type TradeRecord struct {
	ID             int64       `json:"id"`
	Timestamp      time.Time   `json:"timestamp"`
	Ticker         string      `json:"ticker"`
	EntryPrice     float64     `json:"entry_price"`
	StopLoss       float64     `json:"stop_loss"`
	TakeProfit     float64     `json:"take_profit"`
	Lots           int         `json:"lots"`
	Capital        float64     `json:"capital"`
	RiskPercent    float64     `json:"risk_percent"`
	RRR            float64     `json:"rrr"`
	PotentialWin   float64     `json:"potential_profit"`
	PotentialLoss  float64     `json:"potential_loss"`
	ChecklistScore int         `json:"checklist_score"`
	Decision       Verdict     `json:"decision"`
	Notes          string      `json:"notes"`
	ExitPrice      float64     `json:"exit_price"`
	RealizedPnL    float64     `json:"realized_pnl"`
	Status         TradeStatus `json:"status"`
}

// PerformanceSummary aggregates closed trades.
type PerformanceSummary struct {
	TotalTrades  int     `json:"total_trades"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
	NetProfit    float64 `json:"net_profit"`
	GrossProfit  float64 `json:"gross_profit"`
	GrossLoss    float64 `json:"gross_loss"`
	ProfitFactor float64 `json:"profit_factor"`
	AvgWin       float64 `json:"avg_win"`
	AvgLoss      float64 `json:"avg_loss"`
}

// EquityPoint is one step of the cumulative realized-PnL curve.
type EquityPoint struct {
	Timestamp     time.Time `json:"timestamp"`
	CumulativePnL float64   `json:"cumulative_pnl"`
}
