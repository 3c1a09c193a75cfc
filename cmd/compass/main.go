package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"TradeCompass/internal/collector"
	"TradeCompass/internal/config"
	"TradeCompass/internal/journal"
	"TradeCompass/internal/model"
	"TradeCompass/internal/notifier"
	"TradeCompass/internal/ratelimit"
	"TradeCompass/internal/scanner"
	"TradeCompass/internal/scheduler"
	"TradeCompass/internal/server"
	"TradeCompass/internal/strategy"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	setupLogging(cfg)
	log.Info().Msg("TradeCompass starting")

	// Data layer: Yahoo chart API, paced through one process-wide limiter,
	// behind a short-TTL cache. Cache hits skip the pacer; every real
	// provider fetch, whether from analysis or a scan, shares the clock.
	yahoo := collector.NewYahooFetcher(cfg.DataSource.ExchangeSuffix, cfg.DataSource.Proxy)
	paced := collector.NewPacedFetcher(yahoo, ratelimit.NewPacer(cfg.PaceInterval()))
	fetcher := collector.NewCachingFetcher(paced, cfg.CacheTTL())
	log.Info().Str("source", fetcher.Name()).Dur("pace", cfg.PaceInterval()).Msg("data source ready")

	analyzer := strategy.NewAnalyzer(fetcher)
	scan := scanner.New(fetcher)

	if err := os.MkdirAll(filepath.Dir(cfg.Journal.SQLitePath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("create journal dir")
	}
	store, err := journal.Open(cfg.Journal.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open journal")
	}
	defer store.CloseStore()

	var notify notifier.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notify = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.DataSource.Proxy)
		log.Info().Msg("telegram notifier enabled")
	} else {
		notify = notifier.NewNoopNotifier()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Scan.Cron != "" {
		sched := scheduler.NewScheduler(ctx, scan, notify, model.ScanMode(cfg.Scan.Mode), cfg.Scan.Watchlist)
		if err := sched.Register(cfg.Scan.Cron); err != nil {
			log.Fatal().Err(err).Msg("register scan schedule")
		}
		sched.Start()
		defer sched.Stop()

		if strings.EqualFold(os.Getenv("RUN_ON_START"), "true") {
			log.Info().Msg("RUN_ON_START enabled, scanning watchlist now")
			go sched.RunScanNow()
		}
	}

	handler := server.NewHandler(analyzer, scan, store, server.NewMetrics(), notify, server.RiskDefaults{
		Capital:     cfg.Risk.DefaultCapital,
		RiskPercent: cfg.Risk.DefaultRiskPercent,
		BuyFeeRate:  cfg.Risk.BuyFeeRate,
		SellFeeRate: cfg.Risk.SellFeeRate,
	})
	srv := server.New(handler, server.Config{
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	})
	srv.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownGraceSec)*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("TradeCompass stopped")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
