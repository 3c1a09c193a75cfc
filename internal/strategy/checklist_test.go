package strategy

import (
	"strings"
	"testing"

	"TradeCompass/internal/model"
)

func swingSnapshot() *model.IndicatorSnapshot {
	return &model.IndicatorSnapshot{
		Symbol:   "BBCA",
		Close:    105,
		Volume:   2000,
		EMA20:    model.Val(100),
		RSI14:    model.Val(55),
		AvgVol20: model.Val(1000),
		AvgVol5:  model.Val(1500),
	}
}

func allManualYes(p Policy) map[string]bool {
	m := make(map[string]bool, len(p.ManualItems))
	for _, label := range p.ManualItems {
		m[label] = true
	}
	return m
}

func TestBuildChecklist_SwingAllSatisfied(t *testing.T) {
	policy, _ := PolicyFor(ModeSwing)
	res := BuildChecklist(swingSnapshot(), model.PatternFlags{}, policy, allManualYes(policy))

	if res.Total != 6 {
		t.Fatalf("Total = %d, want 6 (3 auto + 3 manual)", res.Total)
	}
	if res.Score != 6 || !res.Complete {
		t.Errorf("Score = %d/%d complete=%v, want complete 6/6", res.Score, res.Total, res.Complete)
	}
}

func TestBuildChecklist_AbsentIndicatorIsUnsatisfied(t *testing.T) {
	snap := swingSnapshot()
	snap.EMA20 = model.Absent
	snap.RSI14 = model.Absent

	policy, _ := PolicyFor(ModeSwing)
	res := BuildChecklist(snap, model.PatternFlags{}, policy, allManualYes(policy))

	if res.Complete {
		t.Fatal("absent indicators must read as unsatisfied, not as a pass")
	}
	if res.Score != 4 {
		t.Errorf("Score = %d, want 4 (structure and timing fail)", res.Score)
	}
	// The failing items are still present and answered.
	for _, it := range res.Items {
		if !it.Answered {
			t.Errorf("item %q unanswered; auto items are always answered", it.Label)
		}
	}
}

func TestBuildChecklist_UnansweredManualNotCounted(t *testing.T) {
	policy, _ := PolicyFor(ModeSwing)
	res := BuildChecklist(swingSnapshot(), model.PatternFlags{}, policy, nil)

	if res.Complete {
		t.Fatal("unanswered manual items must block completeness")
	}
	if res.Score != 3 {
		t.Errorf("Score = %d, want 3 (auto items only)", res.Score)
	}
	answered := 0
	for _, it := range res.Items {
		if it.Kind == model.ItemManual && it.Answered {
			answered++
		}
	}
	if answered != 0 {
		t.Errorf("%d manual items answered without input", answered)
	}
}

func TestBuildChecklist_ScalperHasNoEMAItem(t *testing.T) {
	policy, _ := PolicyFor(ModeScalper)
	snap := swingSnapshot()
	snap.EMA20 = model.Absent // must not matter in scalper mode

	res := BuildChecklist(snap, model.PatternFlags{MorningSpike: true}, policy, allManualYes(policy))

	for _, it := range res.Items {
		if strings.Contains(it.Label, "EMA") {
			t.Fatalf("scalper checklist carries an EMA item: %q", it.Label)
		}
	}
	if !res.Items[0].Satisfied {
		t.Error("morning spike should satisfy the scalper structural check")
	}
	if !res.Complete {
		t.Errorf("expected complete checklist, got %d/%d", res.Score, res.Total)
	}
}

func TestBuildChecklist_MiniBandarUsesVWAPAnd5BarVolume(t *testing.T) {
	policy, _ := PolicyFor(ModeMiniBandar)
	snap := swingSnapshot()
	snap.VWAP = model.Val(104)    // close 105 above VWAP
	snap.AvgVol5 = model.Val(500) // volume 2000 above 5-bar baseline
	snap.AvgVol20 = model.Absent  // must not matter in minibandar mode

	res := BuildChecklist(snap, model.PatternFlags{}, policy, allManualYes(policy))
	if !res.Complete {
		t.Errorf("expected complete checklist, got %d/%d", res.Score, res.Total)
	}
}

func TestBuildChecklist_OverboughtRSIFailsTiming(t *testing.T) {
	snap := swingSnapshot()
	snap.RSI14 = model.Val(75)

	policy, _ := PolicyFor(ModeSwing)
	res := BuildChecklist(snap, model.PatternFlags{}, policy, allManualYes(policy))
	if res.Complete {
		t.Fatal("RSI 75 must fail the timing item")
	}
	if res.Score != 5 {
		t.Errorf("Score = %d, want 5", res.Score)
	}
}

func TestParseMode_RejectsUnknown(t *testing.T) {
	if _, err := ParseMode("yolo"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	for _, s := range []string{"swing", "scalper", "minibandar"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q): %v", s, err)
		}
	}
}
