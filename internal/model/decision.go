package model

import "fmt"

// ForeignFlow is the externally supplied institutional-flow sentiment.
type ForeignFlow string

const (
	FlowNetral  ForeignFlow = "netral"
	FlowNetBuy  ForeignFlow = "net_buy"
	FlowNetSell ForeignFlow = "net_sell"
)

// Score returns the flow modifier applied to the adjusted checklist score.
// Net sell carries a double penalty: distribution is treated as a veto-grade
// signal, not a symmetric opposite of net buy.
func (f ForeignFlow) Score() int {
	switch f {
	case FlowNetBuy:
		return 1
	case FlowNetSell:
		return -2
	default:
		return 0
	}
}

// ParseForeignFlow validates enum membership.
func ParseForeignFlow(s string) (ForeignFlow, error) {
	switch ForeignFlow(s) {
	case FlowNetral, FlowNetBuy, FlowNetSell:
		return ForeignFlow(s), nil
	case "":
		return FlowNetral, nil
	}
	return "", fmt.Errorf("%w: unknown foreign flow %q", ErrInvalidInput, s)
}

// Verdict is the final trade decision.
type Verdict string

const (
	VerdictStrongBuy Verdict = "STRONG_BUY"
	VerdictDanger    Verdict = "DANGER"
	VerdictCaution   Verdict = "CAUTION"
	VerdictNoTrade   Verdict = "NO_TRADE"
)

// Decision is the decision engine output. It is a pure function of its
// inputs and is recomputed on every evaluation, never persisted by the core.
type Decision struct {
	Verdict Verdict `json:"verdict"`
	// Rule names the first matching rule of the ordered policy.
	Rule string `json:"rule"`
	// AdjustedScore is checklist score + foreign flow modifier.
	AdjustedScore int      `json:"adjusted_score"`
	RRR           float64  `json:"rrr"`
	Reasons       []string `json:"reasons,omitempty"`
}
