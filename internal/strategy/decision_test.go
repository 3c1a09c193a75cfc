package strategy

import (
	"testing"

	"TradeCompass/internal/model"
)

func checklist(score, total int) model.ChecklistResult {
	return model.ChecklistResult{Score: score, Total: total, Complete: score == total}
}

func TestDecide_Table(t *testing.T) {
	tests := []struct {
		name    string
		rrr     float64
		list    model.ChecklistResult
		flow    model.ForeignFlow
		verdict model.Verdict
		rule    string
	}{
		{
			name: "validated setup", rrr: 2.0, list: checklist(6, 6), flow: model.FlowNetral,
			verdict: model.VerdictStrongBuy, rule: "validated_setup",
		},
		{
			name: "net buy still strong buy", rrr: 1.5, list: checklist(6, 6), flow: model.FlowNetBuy,
			verdict: model.VerdictStrongBuy, rule: "validated_setup",
		},
		{
			name: "distribution veto beats perfect setup", rrr: 3.0, list: checklist(6, 6), flow: model.FlowNetSell,
			verdict: model.VerdictDanger, rule: "distribution_veto",
		},
		{
			name: "incomplete checklist", rrr: 2.0, list: checklist(4, 6), flow: model.FlowNetral,
			verdict: model.VerdictCaution, rule: "incomplete_checklist",
		},
		{
			name: "incomplete with net sell still caution", rrr: 2.0, list: checklist(4, 6), flow: model.FlowNetSell,
			verdict: model.VerdictCaution, rule: "incomplete_checklist",
		},
		{
			name: "rrr below minimum", rrr: 1.2, list: checklist(6, 6), flow: model.FlowNetBuy,
			verdict: model.VerdictNoTrade, rule: "rrr_below_minimum",
		},
		{
			name: "exact minimum rrr passes", rrr: 1.5, list: checklist(6, 6), flow: model.FlowNetral,
			verdict: model.VerdictStrongBuy, rule: "validated_setup",
		},
		{
			name: "no plan at all", rrr: 0, list: checklist(6, 6), flow: model.FlowNetral,
			verdict: model.VerdictNoTrade, rule: "rrr_below_minimum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.rrr, tt.list, tt.flow)
			if d.Verdict != tt.verdict {
				t.Errorf("verdict = %s, want %s", d.Verdict, tt.verdict)
			}
			if d.Rule != tt.rule {
				t.Errorf("rule = %s, want %s", d.Rule, tt.rule)
			}
		})
	}
}

func TestDecide_AdjustedScore(t *testing.T) {
	d := Decide(2.0, checklist(5, 6), model.FlowNetSell)
	if d.AdjustedScore != 3 {
		t.Errorf("AdjustedScore = %d, want 3 (5 - 2)", d.AdjustedScore)
	}
	d = Decide(2.0, checklist(5, 6), model.FlowNetBuy)
	if d.AdjustedScore != 6 {
		t.Errorf("AdjustedScore = %d, want 6 (5 + 1)", d.AdjustedScore)
	}
}

func TestDecide_ReasonsExplainTheVerdict(t *testing.T) {
	d := Decide(1.0, checklist(4, 6), model.FlowNetSell)
	if d.Verdict != model.VerdictNoTrade {
		t.Fatalf("verdict = %s, want NO_TRADE", d.Verdict)
	}
	if len(d.Reasons) != 3 {
		t.Errorf("Reasons = %v, want all three failure reasons", d.Reasons)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	a := Decide(1.8, checklist(6, 6), model.FlowNetral)
	b := Decide(1.8, checklist(6, 6), model.FlowNetral)
	if a.Verdict != b.Verdict || a.Rule != b.Rule || a.AdjustedScore != b.AdjustedScore {
		t.Error("identical inputs must produce identical decisions")
	}
}

func TestForeignFlowScore(t *testing.T) {
	if model.FlowNetBuy.Score() != 1 || model.FlowNetSell.Score() != -2 || model.FlowNetral.Score() != 0 {
		t.Error("flow modifiers changed: net buy +1, net sell -2, netral 0")
	}
}
