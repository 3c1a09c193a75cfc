package strategy

import (
	"fmt"

	"TradeCompass/internal/model"
)

// MinRRR is the minimum acceptable risk-reward ratio for any entry.
const MinRRR = 1.5

type decisionInput struct {
	RRR       float64
	Checklist model.ChecklistResult
	Flow      model.ForeignFlow
}

// The decision policy is an ordered rule list, first match wins. The
// distribution veto is checked before the strong-buy rule: a perfect
// technical setup with institutions selling into it must read as Danger,
// never as StrongBuy.
var decisionRules = []struct {
	Name    string
	Verdict model.Verdict
	Match   func(in decisionInput) bool
}{
	{
		Name:    "distribution_veto",
		Verdict: model.VerdictDanger,
		Match: func(in decisionInput) bool {
			return in.RRR >= MinRRR && in.Checklist.Complete && in.Flow == model.FlowNetSell
		},
	},
	{
		Name:    "validated_setup",
		Verdict: model.VerdictStrongBuy,
		Match: func(in decisionInput) bool {
			return in.RRR >= MinRRR && in.Checklist.Complete && in.Flow != model.FlowNetSell
		},
	},
	{
		Name:    "incomplete_checklist",
		Verdict: model.VerdictCaution,
		Match: func(in decisionInput) bool {
			return in.RRR >= MinRRR
		},
	},
}

// Decide fuses risk/reward, checklist outcome, and foreign flow into one
// verdict. It is a total, deterministic function of its three inputs.
func Decide(rrr float64, checklist model.ChecklistResult, flow model.ForeignFlow) model.Decision {
	in := decisionInput{RRR: rrr, Checklist: checklist, Flow: flow}

	d := model.Decision{
		Verdict:       model.VerdictNoTrade,
		Rule:          "rrr_below_minimum",
		AdjustedScore: checklist.Score + flow.Score(),
		RRR:           rrr,
	}
	for _, rule := range decisionRules {
		if rule.Match(in) {
			d.Verdict = rule.Verdict
			d.Rule = rule.Name
			break
		}
	}
	d.Reasons = decisionReasons(in)
	return d
}

func decisionReasons(in decisionInput) []string {
	var reasons []string
	if in.RRR < MinRRR {
		reasons = append(reasons, fmt.Sprintf("RRR 1:%.2f below minimum 1:%.1f", in.RRR, MinRRR))
	}
	if !in.Checklist.Complete {
		reasons = append(reasons, fmt.Sprintf("checklist %d/%d incomplete", in.Checklist.Score, in.Checklist.Total))
	}
	if in.Flow == model.FlowNetSell {
		reasons = append(reasons, "foreign flow: net sell (distribution risk)")
	}
	return reasons
}
