package notifier

import (
	"fmt"
	"strings"
	"time"

	"TradeCompass/internal/model"
)

var scanTitles = map[model.ScanMode]string{
	model.ScanGEM:      "GEM Screener",
	model.ScanDragon:   "Dragon Screener",
	model.ScanDayTrade: "Day Trade Screener",
}

// FormatScanReport formats a batch scan outcome into a Telegram message.
// Matches lead, failures trail, non-matches are summarized as a count.
func FormatScanReport(mode model.ScanMode, results []model.ScanResult) string {
	var b strings.Builder

	title := scanTitles[mode]
	if title == "" {
		title = string(mode)
	}
	b.WriteString(fmt.Sprintf("🔍 <b>%s</b> | %s\n\n", title, time.Now().Format("2006-01-02 15:04")))

	var matched, failed []model.ScanResult
	for _, r := range results {
		switch {
		case r.Failed:
			failed = append(failed, r)
		case r.Matched:
			matched = append(matched, r)
		}
	}

	if len(matched) == 0 {
		b.WriteString("No candidates matched.\n")
	} else {
		b.WriteString(fmt.Sprintf("✅ <b>%d candidates:</b>\n", len(matched)))
		for _, r := range matched {
			b.WriteString(fmt.Sprintf("  %s @ %.0f (%+.1f%%, vol %.1fx)\n",
				r.Symbol, r.Price, r.ChangePct.Or(0), r.VolRatio.Or(0)))
		}
	}

	b.WriteString(fmt.Sprintf("\nScanned %d symbols, %d matched", len(results), len(matched)))
	if len(failed) > 0 {
		b.WriteString(fmt.Sprintf(", %d failed:\n", len(failed)))
		for _, r := range failed {
			b.WriteString(fmt.Sprintf("  ⚠️ %s: %s\n", r.Symbol, r.Reason))
		}
	} else {
		b.WriteString(".\n")
	}

	return b.String()
}

var verdictBadges = map[model.Verdict]string{
	model.VerdictStrongBuy: "🟢",
	model.VerdictCaution:   "🟡",
	model.VerdictDanger:    "🔴",
	model.VerdictNoTrade:   "⚪",
}

// FormatAnalysisReport formats a single-symbol analysis into a Telegram
// message: snapshot, checklist score, and the verdict with its reasons.
func FormatAnalysisReport(symbol string, snap *model.IndicatorSnapshot, checklist model.ChecklistResult, dec model.Decision) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", symbol, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Price: %.0f (%+.2f%%)\n", snap.Close, snap.ChangePct.Or(0)))
	if snap.EMA20.Valid {
		b.WriteString(fmt.Sprintf("EMA20: %.0f | ", snap.EMA20.Float))
	}
	if snap.RSI14.Valid {
		b.WriteString(fmt.Sprintf("RSI14: %.1f", snap.RSI14.Float))
	}
	b.WriteString("\n")
	if snap.Pivot.P.Valid {
		b.WriteString(fmt.Sprintf("Pivot: S1 %.0f / P %.0f / R1 %.0f\n",
			snap.Pivot.S1.Float, snap.Pivot.P.Float, snap.Pivot.R1.Float))
	}

	b.WriteString(fmt.Sprintf("\n📋 Checklist: %d/%d\n", checklist.Score, checklist.Total))
	for _, item := range checklist.Items {
		mark := "❌"
		if item.Satisfied {
			mark = "✅"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, item.Label))
	}

	badge := verdictBadges[dec.Verdict]
	b.WriteString(fmt.Sprintf("\n%s <b>%s</b> (score %+d, RRR %.2f)\n", badge, dec.Verdict, dec.AdjustedScore, dec.RRR))
	for _, reason := range dec.Reasons {
		b.WriteString(fmt.Sprintf("  • %s\n", reason))
	}

	return b.String()
}
