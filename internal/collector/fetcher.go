package collector

import (
	"context"
	"fmt"

	"TradeCompass/internal/model"
)

// Fetcher supplies ordered OHLCV series for a symbol. Implementations must
// return model.ErrDataUnavailable (wrapped) when the provider has no data,
// so callers can tell a recoverable miss from a broken series.
type Fetcher interface {
	// FetchDaily returns up to `days` trailing daily bars.
	FetchDaily(ctx context.Context, symbol string, days int) (*model.PriceSeries, error)
	// FetchIntraday returns the current session's 5-minute bars.
	FetchIntraday(ctx context.Context, symbol string) (*model.PriceSeries, error)
	Name() string
}

// ValidateSeries rejects malformed series before any indicator sees them:
// a bar with high < low, or out-of-order or duplicate timestamps, would
// silently corrupt ATR and pivot results.
func ValidateSeries(series *model.PriceSeries) error {
	for i, b := range series.Bars {
		if b.High < b.Low {
			return fmt.Errorf("%w: %s bar %d has high %.2f < low %.2f",
				model.ErrAmbiguousData, series.Symbol, i, b.High, b.Low)
		}
		if i > 0 && !series.Bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("%w: %s bars %d..%d not strictly ascending",
				model.ErrAmbiguousData, series.Symbol, i-1, i)
		}
	}
	return nil
}
