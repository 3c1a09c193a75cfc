package model

// ItemKind distinguishes auto-evaluated items from manually confirmed ones.
type ItemKind string

const (
	ItemAuto   ItemKind = "auto"
	ItemManual ItemKind = "manual"
)

// ChecklistItem is a single pre-trade check. Auto items are derived
// deterministically from the indicator snapshot and pattern flags under the
// active strategy policy. Manual items stay unanswered (Answered=false)
// until the caller provides them; an unanswered item never scores.
type ChecklistItem struct {
	Label     string   `json:"label"`
	Kind      ItemKind `json:"kind"`
	Satisfied bool     `json:"satisfied"`
	Answered  bool     `json:"answered"`
}

// ChecklistResult is the scored checklist: auto items first, manual
// appended, in policy order.
type ChecklistResult struct {
	Items    []ChecklistItem `json:"items"`
	Score    int             `json:"score"`
	Total    int             `json:"total"`
	Complete bool            `json:"complete"`
}
