package scanner

import (
	"context"
	"errors"
	"fmt"

	"TradeCompass/internal/collector"
	"TradeCompass/internal/model"

	"github.com/rs/zerolog/log"
)

const (
	// MaxSymbols hard-caps one batch; larger requests are rejected before
	// any fetch occurs.
	MaxSymbols = 50

	// scanLookback: every predicate needs at least 20 daily bars of
	// volume history plus the bar under test.
	scanLookback = 30
)

// Progress reports incremental batch state: symbols processed so far out
// of the total.
type Progress func(done, total int)

// Scanner applies a scan predicate across a symbol list, strictly
// sequentially. Pacing against the provider lives in the fetcher stack
// (collector.PacedFetcher), so batch fetches and single-symbol analysis
// share one clock.
type Scanner struct {
	fetcher collector.Fetcher
}

// New creates a Scanner over the shared fetcher stack.
func New(fetcher collector.Fetcher) *Scanner {
	return &Scanner{fetcher: fetcher}
}

// Scan evaluates the mode's predicate for each symbol in input order.
// A fetch failure for one symbol marks that result failed and continues;
// it never aborts the batch. Cancellation between symbols returns the
// partial results already computed along with the context error.
func (s *Scanner) Scan(ctx context.Context, mode model.ScanMode, symbols []string, progress Progress) ([]model.ScanResult, error) {
	if _, err := model.ParseScanMode(string(mode)); err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty symbol list", model.ErrInvalidInput)
	}
	if len(symbols) > MaxSymbols {
		return nil, fmt.Errorf("%w: %d symbols exceeds the cap of %d", model.ErrInvalidInput, len(symbols), MaxSymbols)
	}

	log.Info().Str("mode", string(mode)).Int("symbols", len(symbols)).Msg("batch scan started")

	results := make([]model.ScanResult, 0, len(symbols))
	for i, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			log.Warn().Int("done", i).Int("total", len(symbols)).Msg("batch scan aborted")
			return results, err
		}

		results = append(results, s.scanOne(ctx, mode, symbol))
		if progress != nil {
			progress(i+1, len(symbols))
		}
	}

	log.Info().Str("mode", string(mode)).Int("symbols", len(symbols)).Msg("batch scan finished")
	return results, nil
}

func (s *Scanner) scanOne(ctx context.Context, mode model.ScanMode, symbol string) model.ScanResult {
	series, err := s.fetcher.FetchDaily(ctx, symbol, scanLookback)
	if err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("scan fetch failed, continuing")
		reason := "fetch failed"
		if errors.Is(err, model.ErrDataUnavailable) {
			reason = "data unavailable"
		} else if errors.Is(err, model.ErrAmbiguousData) {
			reason = "malformed data"
		}
		return model.ScanResult{Symbol: symbol, Failed: true, Reason: reason}
	}
	return evaluate(mode, series)
}
