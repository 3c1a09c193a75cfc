package strategy

import (
	"fmt"

	"TradeCompass/internal/model"
)

// Mode selects the active trading style.
type Mode string

const (
	ModeSwing      Mode = "swing"
	ModeScalper    Mode = "scalper"
	ModeMiniBandar Mode = "minibandar"
)

// StructureCheck names the structural gate a policy applies.
type StructureCheck string

const (
	// StructureEMATrend: close above EMA20.
	StructureEMATrend StructureCheck = "ema_trend"
	// StructureOpenLow: the HAKA setup, open equals low on the last bar.
	StructureOpenLow StructureCheck = "open_low"
	// StructureVWAP: close above the session VWAP.
	StructureVWAP StructureCheck = "vwap"
)

// Policy is the per-mode rule set. Adding a mode is a table entry, not new
// control flow.
type Policy struct {
	Mode           Mode
	Structure      StructureCheck
	StructureLabel string
	// VolumeWindow selects the baseline: 20-bar or 5-bar average volume.
	VolumeWindow int
	VolumeLabel  string
	// ManualItems are the subjective checks this mode asks the trader to
	// confirm; the engine assumes no labels beyond this list.
	ManualItems []string
	// Granularity is the preferred series for structural evaluation.
	// Intraday modes fall back to daily when no intraday data exists.
	Granularity model.Granularity
}

var defaultManualItems = []string{
	"Bid/offer flow shows strong buying pressure",
	"Broker summary shows key brokers accumulating",
	"No negative corporate action in the news",
}

var policies = map[Mode]Policy{
	ModeSwing: {
		Mode:           ModeSwing,
		Structure:      StructureEMATrend,
		StructureLabel: "Market structure: bullish trend (close > EMA20)",
		VolumeWindow:   20,
		VolumeLabel:    "Volume confirmation: above 20-bar average",
		ManualItems:    defaultManualItems,
		Granularity:    model.GranularityDaily,
	},
	ModeScalper: {
		Mode:           ModeScalper,
		Structure:      StructureOpenLow,
		StructureLabel: "Scalp structure: open equals low (HAKA setup)",
		VolumeWindow:   20,
		VolumeLabel:    "Volume confirmation: above 20-bar average",
		ManualItems:    defaultManualItems,
		Granularity:    model.GranularityIntraday,
	},
	ModeMiniBandar: {
		Mode:           ModeMiniBandar,
		Structure:      StructureVWAP,
		StructureLabel: "Flow structure: close above VWAP",
		VolumeWindow:   5,
		VolumeLabel:    "Volume flow: above 5-bar average",
		ManualItems:    defaultManualItems,
		Granularity:    model.GranularityIntraday,
	},
}

// PolicyFor looks up the rule set for a mode. Unknown modes are rejected
// before any data is fetched.
func PolicyFor(mode Mode) (Policy, error) {
	p, ok := policies[mode]
	if !ok {
		return Policy{}, fmt.Errorf("%w: unknown strategy mode %q", model.ErrInvalidInput, mode)
	}
	return p, nil
}

// ParseMode validates enum membership.
func ParseMode(s string) (Mode, error) {
	if _, err := PolicyFor(Mode(s)); err != nil {
		return "", err
	}
	return Mode(s), nil
}
