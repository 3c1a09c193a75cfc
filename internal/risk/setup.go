package risk

import (
	"fmt"

	"TradeCompass/internal/model"

	"github.com/shopspring/decimal"
)

// LotSize is the IDX board lot: 100 shares.
const LotSize = 100

// Setup is a planned trade: capital, levels, and fee rates. All money
// arithmetic runs on decimals so lot and fee rounding stays exact.
type Setup struct {
	Ticker      string  `json:"ticker"`
	Capital     float64 `json:"capital"`
	EntryPrice  float64 `json:"entry_price"`
	StopLoss    float64 `json:"stop_loss"`
	TakeProfit  float64 `json:"take_profit"`
	RiskPercent float64 `json:"risk_percent"`
	// Fee rates are fractions of transaction value (0.0015 = 0.15%),
	// unlike RiskPercent which is a true percent.
	BuyFeeRate  float64 `json:"buy_fee_rate"`
	SellFeeRate float64 `json:"sell_fee_rate"`
}

// Validate rejects setups the arithmetic below cannot price.
func (s *Setup) Validate() error {
	if s.EntryPrice <= 0 {
		return fmt.Errorf("%w: entry price must be positive", model.ErrInvalidInput)
	}
	if s.StopLoss >= s.EntryPrice {
		return fmt.Errorf("%w: stop loss must be below entry", model.ErrInvalidInput)
	}
	if s.TakeProfit <= s.EntryPrice {
		return fmt.Errorf("%w: take profit must be above entry", model.ErrInvalidInput)
	}
	if s.Capital <= 0 {
		return fmt.Errorf("%w: capital must be positive", model.ErrInvalidInput)
	}
	return nil
}

// RiskPerShare is entry minus stop loss.
func (s *Setup) RiskPerShare() float64 { return s.EntryPrice - s.StopLoss }

// RewardPerShare is take profit minus entry.
func (s *Setup) RewardPerShare() float64 { return s.TakeProfit - s.EntryPrice }

// MaxRiskAmount is the rupiah amount the trader accepts to lose.
func (s *Setup) MaxRiskAmount() float64 {
	return s.Capital * s.RiskPercent / 100
}

// RRR is reward per share over risk per share; 0 when risk is not positive.
func (s *Setup) RRR() float64 {
	risk := s.RiskPerShare()
	if risk <= 0 {
		return 0
	}
	return s.RewardPerShare() / risk
}

// MaxLots is the largest position honoring both the risk budget and the
// capital constraint (position value plus buy fee within capital).
func (s *Setup) MaxLots() int {
	risk := decimal.NewFromFloat(s.RiskPerShare())
	if !risk.IsPositive() {
		return 0
	}
	lotSize := decimal.NewFromInt(LotSize)

	byRisk := decimal.NewFromFloat(s.MaxRiskAmount()).
		Div(risk).
		Div(lotSize).
		IntPart()

	entry := decimal.NewFromFloat(s.EntryPrice)
	feeFactor := decimal.NewFromFloat(1 + s.BuyFeeRate)
	byCapital := decimal.NewFromFloat(s.Capital).
		Div(feeFactor).
		Div(entry).
		Div(lotSize).
		IntPart()

	lots := byRisk
	if byCapital < lots {
		lots = byCapital
	}
	if lots < 0 {
		lots = 0
	}
	return int(lots)
}

// PositionValue is entry price times shares for the given lots.
func (s *Setup) PositionValue(lots int) float64 {
	return decimal.NewFromFloat(s.EntryPrice).
		Mul(decimal.NewFromInt(int64(lots * LotSize))).
		InexactFloat64()
}

// BuyFee is the brokerage fee on the buy side.
func (s *Setup) BuyFee(lots int) float64 {
	return decimal.NewFromFloat(s.PositionValue(lots)).
		Mul(decimal.NewFromFloat(s.BuyFeeRate)).
		InexactFloat64()
}

// TotalBuyCost is position value plus buy fee.
func (s *Setup) TotalBuyCost(lots int) float64 {
	return s.PositionValue(lots) + s.BuyFee(lots)
}

// PotentialProfit is the net gain at take profit after the sell fee.
func (s *Setup) PotentialProfit(lots int) float64 {
	shares := decimal.NewFromInt(int64(lots * LotSize))
	gross := decimal.NewFromFloat(s.RewardPerShare()).Mul(shares)
	sellValue := decimal.NewFromFloat(s.TakeProfit).Mul(shares)
	fee := sellValue.Mul(decimal.NewFromFloat(s.SellFeeRate))
	return gross.Sub(fee).InexactFloat64()
}

// PotentialLoss is the net loss at stop loss including the sell fee.
func (s *Setup) PotentialLoss(lots int) float64 {
	shares := decimal.NewFromInt(int64(lots * LotSize))
	gross := decimal.NewFromFloat(s.RiskPerShare()).Mul(shares)
	sellValue := decimal.NewFromFloat(s.StopLoss).Mul(shares)
	fee := sellValue.Mul(decimal.NewFromFloat(s.SellFeeRate))
	return gross.Add(fee).InexactFloat64()
}

// Plan is the fully priced position for a setup at its maximum size.
type Plan struct {
	Setup           Setup   `json:"setup"`
	RRR             float64 `json:"rrr"`
	MaxLots         int     `json:"max_lots"`
	PositionValue   float64 `json:"position_value"`
	TotalBuyCost    float64 `json:"total_buy_cost"`
	MaxRiskAmount   float64 `json:"max_risk_amount"`
	PotentialProfit float64 `json:"potential_profit"`
	PotentialLoss   float64 `json:"potential_loss"`
}

// BuildPlan validates a setup and prices it at max size.
func BuildPlan(s Setup) (*Plan, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	lots := s.MaxLots()
	return &Plan{
		Setup:           s,
		RRR:             s.RRR(),
		MaxLots:         lots,
		PositionValue:   s.PositionValue(lots),
		TotalBuyCost:    s.TotalBuyCost(lots),
		MaxRiskAmount:   s.MaxRiskAmount(),
		PotentialProfit: s.PotentialProfit(lots),
		PotentialLoss:   s.PotentialLoss(lots),
	}, nil
}
