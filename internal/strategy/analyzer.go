package strategy

import (
	"context"
	"fmt"

	"TradeCompass/internal/collector"
	"TradeCompass/internal/indicator"
	"TradeCompass/internal/model"
	"TradeCompass/internal/pattern"

	"github.com/rs/zerolog/log"
)

// dailyLookback covers the longest lookback any indicator needs (EMA50)
// plus the pattern windows, with headroom for market holidays.
const dailyLookback = 90

// Analysis is the complete output surface for one symbol: snapshot,
// pattern flags, and the strategy-aware checklist. All fields are
// immutable data; the verdict is derived separately via Decide.
type Analysis struct {
	Symbol    string                   `json:"symbol"`
	Mode      Mode                     `json:"mode"`
	Snapshot  *model.IndicatorSnapshot `json:"snapshot"`
	Flags     model.PatternFlags       `json:"flags"`
	Checklist model.ChecklistResult    `json:"checklist"`
}

// Analyzer runs the single-symbol analysis pipeline. It holds no state
// across calls beyond its collaborators; every analysis is recomputed
// fresh, and switching mode re-derives all auto checklist items.
type Analyzer struct {
	Fetcher    collector.Fetcher
	PatternCfg pattern.Config
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(fetcher collector.Fetcher) *Analyzer {
	return &Analyzer{Fetcher: fetcher}
}

// Analyze fetches the series the mode needs, computes indicators and
// patterns, and assembles the checklist. Provider failures on the daily
// series halt the analysis; a missing intraday series only leaves the
// intraday-backed checks unsatisfied.
func (a *Analyzer) Analyze(ctx context.Context, symbol string, mode Mode, manual map[string]bool) (*Analysis, error) {
	policy, err := PolicyFor(mode)
	if err != nil {
		return nil, err
	}

	daily, err := a.Fetcher.FetchDaily(ctx, symbol, dailyLookback)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if daily.Len() == 0 {
		return nil, fmt.Errorf("%w: %s: empty daily series", model.ErrDataUnavailable, symbol)
	}

	snap := indicator.Snapshot(daily)
	flags := pattern.Detect(daily, a.PatternCfg)

	// Intraday modes evaluate VWAP and the morning spike on the 5-minute
	// session; when no intraday data exists the VWAP stays absent and the
	// daily-bar spike stands in, both conservative.
	if policy.Granularity == model.GranularityIntraday {
		intraday, err := a.Fetcher.FetchIntraday(ctx, symbol)
		if err != nil {
			log.Warn().Str("symbol", symbol).Err(err).Msg("intraday series unavailable, falling back to daily")
		} else if intraday.Len() > 0 {
			if vwap, ok := indicator.VWAP(intraday); ok {
				snap.VWAP = model.Val(vwap)
			}
			intraFlags := pattern.Detect(intraday, a.PatternCfg)
			flags.MorningSpike = intraFlags.MorningSpike
			flags.SpikeRangePct = intraFlags.SpikeRangePct
		}
	}

	checklist := BuildChecklist(snap, flags, policy, manual)

	log.Debug().
		Str("symbol", symbol).
		Str("mode", string(mode)).
		Int("score", checklist.Score).
		Int("total", checklist.Total).
		Msg("analysis complete")

	return &Analysis{
		Symbol:    symbol,
		Mode:      mode,
		Snapshot:  snap,
		Flags:     flags,
		Checklist: checklist,
	}, nil
}
