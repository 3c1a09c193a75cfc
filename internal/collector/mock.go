package collector

import (
	"context"
	"fmt"
	"time"

	"TradeCompass/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	// Daily maps symbol to its daily bars; symbols absent from the map
	// fall back to generated bars around Price.
	Daily    map[string][]model.OHLCV
	Intraday map[string][]model.OHLCV
	// Fail lists symbols whose fetches return ErrDataUnavailable.
	Fail map[string]bool

	// FetchCount tracks provider calls, for rate-limit and cap tests.
	FetchCount int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDaily(_ context.Context, symbol string, days int) (*model.PriceSeries, error) {
	m.FetchCount++
	if m.Fail[symbol] {
		return nil, fmt.Errorf("%w: %s: no data returned", model.ErrDataUnavailable, symbol)
	}
	bars := m.Daily[symbol]
	if bars == nil {
		bars = GenerateBars(m.Price, days, 24*time.Hour)
	}
	return &model.PriceSeries{
		Symbol:      symbol,
		Granularity: model.GranularityDaily,
		Bars:        bars,
		FetchedAt:   time.Now(),
	}, nil
}

func (m *MockFetcher) FetchIntraday(_ context.Context, symbol string) (*model.PriceSeries, error) {
	m.FetchCount++
	if m.Fail[symbol] {
		return nil, fmt.Errorf("%w: %s: no data returned", model.ErrDataUnavailable, symbol)
	}
	bars := m.Intraday[symbol]
	if bars == nil {
		bars = GenerateBars(m.Price, 36, 5*time.Minute)
	}
	return &model.PriceSeries{
		Symbol:      symbol,
		Granularity: model.GranularityIntraday,
		Bars:        bars,
		FetchedAt:   time.Now(),
	}, nil
}

// GenerateBars builds a gently drifting series around basePrice.
func GenerateBars(basePrice float64, count int, step time.Duration) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Now().Add(-time.Duration(count) * step)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return bars
}
