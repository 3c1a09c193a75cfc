package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Values come from YAML, then
// struct defaults for anything left unset, then environment overrides.
type Config struct {
	Server struct {
		Port              int `yaml:"port" default:"8080" validate:"min=1,max=65535"`
		ReadTimeoutSec    int `yaml:"read_timeout_sec" default:"15" validate:"min=1"`
		WriteTimeoutSec   int `yaml:"write_timeout_sec" default:"30" validate:"min=1"`
		ShutdownGraceSec  int `yaml:"shutdown_grace_sec" default:"10" validate:"min=1"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	} `yaml:"log"`

	DataSource struct {
		// ExchangeSuffix maps bare IDX tickers to provider symbols.
		ExchangeSuffix string `yaml:"exchange_suffix" default:".JK"`
		CacheTTLSec    int    `yaml:"cache_ttl_sec" default:"300" validate:"min=0"`
		Proxy          string `yaml:"proxy"`
	} `yaml:"data_source"`

	Scan struct {
		// PaceIntervalMs is the floor between provider fetches; the
		// provider's implicit rate limit sits around 3 req/s.
		PaceIntervalMs int      `yaml:"pace_interval_ms" default:"300" validate:"min=0"`
		Watchlist      []string `yaml:"watchlist" validate:"max=50"`
		Mode           string   `yaml:"mode" default:"gem" validate:"oneof=gem dragon daytrade"`
		// Cron schedules the watchlist scan; empty disables it.
		Cron string `yaml:"cron"`
	} `yaml:"scan"`

	Journal struct {
		SQLitePath string `yaml:"sqlite_path" default:"data/tradecompass.db"`
	} `yaml:"journal"`

	Risk struct {
		DefaultCapital     float64 `yaml:"default_capital" default:"5000000" validate:"gt=0"`
		DefaultRiskPercent float64 `yaml:"default_risk_percent" default:"1" validate:"gt=0,lte=100"`
		// Broker fee rates as fractions of transaction value
		// (0.0015 = 0.15%).
		BuyFeeRate  float64 `yaml:"buy_fee_rate" default:"0.0015" validate:"gte=0"`
		SellFeeRate float64 `yaml:"sell_fee_rate" default:"0.0025" validate:"gte=0"`
	} `yaml:"risk"`

	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
}

// Load reads config from a YAML file, applies defaults, environment
// variable overrides, and validates the result. A missing file is fine:
// defaults plus environment carry a complete configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Journal.SQLitePath = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Scan.Watchlist = splitList(v)
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, strings.ToUpper(t))
		}
	}
	return out
}

// CacheTTL returns the quote cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.DataSource.CacheTTLSec) * time.Second
}

// PaceInterval returns the fetch pacing floor as a duration.
func (c *Config) PaceInterval() time.Duration {
	return time.Duration(c.Scan.PaceIntervalMs) * time.Millisecond
}
