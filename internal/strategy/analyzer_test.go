package strategy

import (
	"context"
	"errors"
	"testing"
	"time"

	"TradeCompass/internal/collector"
	"TradeCompass/internal/model"
	"TradeCompass/internal/ratelimit"
)

func TestAnalyze_SwingUsesDailyOnly(t *testing.T) {
	mock := &collector.MockFetcher{Price: 5000}
	an := NewAnalyzer(mock)

	res, err := an.Analyze(context.Background(), "BBCA", ModeSwing, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Snapshot == nil || res.Snapshot.Close == 0 {
		t.Fatal("expected populated snapshot")
	}
	if mock.FetchCount != 1 {
		t.Errorf("FetchCount = %d, want 1 (daily only)", mock.FetchCount)
	}
	if res.Checklist.Total != 6 {
		t.Errorf("checklist total = %d, want 6", res.Checklist.Total)
	}
}

func TestAnalyze_DailyFetchFailureHalts(t *testing.T) {
	mock := &collector.MockFetcher{Price: 5000, Fail: map[string]bool{"GOTO": true}}
	an := NewAnalyzer(mock)

	if _, err := an.Analyze(context.Background(), "GOTO", ModeSwing, nil); !errors.Is(err, model.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestAnalyze_ScalperFetchesIntraday(t *testing.T) {
	mock := &collector.MockFetcher{Price: 5000}
	an := NewAnalyzer(mock)

	res, err := an.Analyze(context.Background(), "BBRI", ModeScalper, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if mock.FetchCount != 2 {
		t.Errorf("FetchCount = %d, want 2 (daily + intraday)", mock.FetchCount)
	}
	if res.Mode != ModeScalper {
		t.Errorf("Mode = %s", res.Mode)
	}
}

func TestAnalyze_MiniBandarGetsIntradayVWAP(t *testing.T) {
	mock := &collector.MockFetcher{Price: 5000}
	an := NewAnalyzer(mock)

	res, err := an.Analyze(context.Background(), "ANTM", ModeMiniBandar, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !res.Snapshot.VWAP.Valid {
		t.Error("minibandar analysis should carry the intraday session VWAP")
	}
}

func TestAnalyze_FetchesObservePacingFloor(t *testing.T) {
	// Single-symbol analysis runs on the same paced fetcher stack as batch
	// scans; its two scalper fetches must be spaced apart.
	mock := &collector.MockFetcher{Price: 5000}
	an := NewAnalyzer(collector.NewPacedFetcher(mock, ratelimit.NewPacer(30*time.Millisecond)))

	start := time.Now()
	if _, err := an.Analyze(context.Background(), "BBRI", ModeScalper, nil); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("daily+intraday fetches took %v, want at least one pacing interval", elapsed)
	}
	if mock.FetchCount != 2 {
		t.Errorf("FetchCount = %d, want 2", mock.FetchCount)
	}
}

func TestAnalyze_UnknownModeRejectedBeforeFetch(t *testing.T) {
	mock := &collector.MockFetcher{Price: 5000}
	an := NewAnalyzer(mock)

	if _, err := an.Analyze(context.Background(), "BBCA", Mode("hodl"), nil); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if mock.FetchCount != 0 {
		t.Errorf("FetchCount = %d, want 0", mock.FetchCount)
	}
}

func TestAnalyze_ModeSwitchRederivesChecklist(t *testing.T) {
	mock := &collector.MockFetcher{Price: 5000}
	an := NewAnalyzer(mock)

	swing, err := an.Analyze(context.Background(), "BBCA", ModeSwing, nil)
	if err != nil {
		t.Fatal(err)
	}
	scalp, err := an.Analyze(context.Background(), "BBCA", ModeScalper, nil)
	if err != nil {
		t.Fatal(err)
	}
	if swing.Checklist.Items[0].Label == scalp.Checklist.Items[0].Label {
		t.Error("structural item must change with the mode")
	}
}
