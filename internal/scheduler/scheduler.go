package scheduler

import (
	"context"
	"fmt"

	"TradeCompass/internal/model"
	"TradeCompass/internal/notifier"
	"TradeCompass/internal/scanner"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the watchlist scan on a cron schedule and pushes the
// report to the notifier.
type Scheduler struct {
	Cron      *cron.Cron
	Scanner   *scanner.Scanner
	Notifier  notifier.Notifier
	Mode      model.ScanMode
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a Scheduler for the given watchlist and scan mode.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, n notifier.Notifier, mode model.ScanMode, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Scanner:   sc,
		Notifier:  n,
		Mode:      mode,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register adds the scheduled scan under the given cron expression.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunScanNow executes the watchlist scan immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	if len(s.Watchlist) == 0 {
		log.Warn().Msg("scheduled scan skipped: empty watchlist")
		return
	}
	log.Info().Str("mode", string(s.Mode)).Int("symbols", len(s.Watchlist)).Msg("running scheduled scan")

	results, err := s.Scanner.Scan(s.Ctx, s.Mode, s.Watchlist, nil)
	if err != nil {
		log.Error().Err(err).Msg("scheduled scan failed")
		s.trySend(fmt.Sprintf("❌ Scheduled scan failed: %v", err))
		return
	}

	s.trySend(notifier.FormatScanReport(s.Mode, results))
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
