package collector

import (
	"context"

	"TradeCompass/internal/model"
	"TradeCompass/internal/ratelimit"
)

// PacedFetcher spaces every call to the wrapped fetcher through a shared
// pacer. Stacking it between the cache and the provider means cache hits
// return immediately while all real provider traffic, single-symbol
// analysis and batch scans alike, observes one process-wide floor.
type PacedFetcher struct {
	inner Fetcher
	pacer *ratelimit.Pacer
}

// NewPacedFetcher wraps a fetcher with the given pacer. Pass the one
// process-wide pacer instance; a second pacer would defeat the shared
// clock.
func NewPacedFetcher(inner Fetcher, pacer *ratelimit.Pacer) *PacedFetcher {
	return &PacedFetcher{inner: inner, pacer: pacer}
}

func (p *PacedFetcher) Name() string { return p.inner.Name() }

func (p *PacedFetcher) FetchDaily(ctx context.Context, symbol string, days int) (*model.PriceSeries, error) {
	if err := p.pacer.Wait(ctx); err != nil {
		return nil, err
	}
	return p.inner.FetchDaily(ctx, symbol, days)
}

func (p *PacedFetcher) FetchIntraday(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	if err := p.pacer.Wait(ctx); err != nil {
		return nil, err
	}
	return p.inner.FetchIntraday(ctx, symbol)
}
