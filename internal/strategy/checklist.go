package strategy

import "TradeCompass/internal/model"

// rsiOverboughtLevel gates the timing item.
const rsiOverboughtLevel = 70.0

// BuildChecklist merges the policy-selected auto checks with the caller's
// manual answers. Auto items come first, manual appended, in policy order.
// An auto item whose backing indicator is absent is marked unsatisfied, not
// skipped: missing data reads as caution, never as a pass. Scalper mode
// carries no EMA-trend item at all; its structural slot is the HAKA check.
func BuildChecklist(snap *model.IndicatorSnapshot, flags model.PatternFlags, policy Policy, manual map[string]bool) model.ChecklistResult {
	items := []model.ChecklistItem{
		{
			Label:     policy.StructureLabel,
			Kind:      model.ItemAuto,
			Satisfied: structureSatisfied(snap, flags, policy.Structure),
			Answered:  true,
		},
		{
			Label:     policy.VolumeLabel,
			Kind:      model.ItemAuto,
			Satisfied: volumeSatisfied(snap, policy.VolumeWindow),
			Answered:  true,
		},
		{
			Label:     "Timing: RSI not overbought (<70)",
			Kind:      model.ItemAuto,
			Satisfied: snap.RSI14.Valid && snap.RSI14.Float < rsiOverboughtLevel,
			Answered:  true,
		},
	}

	for _, label := range policy.ManualItems {
		item := model.ChecklistItem{Label: label, Kind: model.ItemManual}
		if v, ok := manual[label]; ok {
			item.Satisfied = v
			item.Answered = true
		}
		items = append(items, item)
	}

	score := 0
	for _, it := range items {
		if it.Answered && it.Satisfied {
			score++
		}
	}

	return model.ChecklistResult{
		Items:    items,
		Score:    score,
		Total:    len(items),
		Complete: len(items) > 0 && score == len(items),
	}
}

func structureSatisfied(snap *model.IndicatorSnapshot, flags model.PatternFlags, check StructureCheck) bool {
	switch check {
	case StructureEMATrend:
		return snap.EMA20.Valid && snap.Close > snap.EMA20.Float
	case StructureOpenLow:
		return flags.MorningSpike
	case StructureVWAP:
		return snap.VWAP.Valid && snap.Close > snap.VWAP.Float
	}
	return false
}

func volumeSatisfied(snap *model.IndicatorSnapshot, window int) bool {
	var baseline model.Value
	switch window {
	case 5:
		baseline = snap.AvgVol5
	default:
		baseline = snap.AvgVol20
	}
	return baseline.Valid && snap.Volume > baseline.Float
}
