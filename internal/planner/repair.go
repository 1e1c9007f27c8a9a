package planner

import "weekly-menu-planner/internal/catalog"

// ValidateAndRepair sanitizes a plan state loaded from persistence and
// reports whether it is complete. Repair is limited to two rules: suggestion
// ids that do not resolve to a recipe of the slot's meal type are dropped,
// and a selected id missing from its suggestion list is prepended (the list
// truncated back to three) when it resolves to a matching recipe. A missing
// slot, an emptied suggestion list or an unrecoverable selection marks the
// whole state incomplete; the caller must regenerate the full week rather
// than patch further. Settings are normalized either way.
func ValidateAndRepair(state *PlanState) bool {
	if state == nil {
		return false
	}
	state.Settings = state.Settings.Normalize()
	if state.Slots == nil {
		state.Slots = make(map[string]Slot)
		return false
	}

	complete := true
	for _, day := range Days {
		for _, mt := range catalog.MealTypes {
			key := SlotKey(day, mt)
			slot, ok := state.Slots[key]
			if !ok {
				complete = false
				continue
			}

			kept := make([]string, 0, len(slot.SuggestedMealIDs))
			for _, id := range slot.SuggestedMealIDs {
				if r, ok := catalog.ByID(id); ok && r.MealType == mt {
					kept = append(kept, id)
				}
			}
			slot.SuggestedMealIDs = kept

			if !containsID(kept, slot.SelectedMealID) {
				r, ok := catalog.ByID(slot.SelectedMealID)
				if ok && r.MealType == mt {
					// Self-heal: put the selection back at the head.
					slot.SuggestedMealIDs = append([]string{slot.SelectedMealID}, kept...)
					if len(slot.SuggestedMealIDs) > maxSuggestions {
						slot.SuggestedMealIDs = slot.SuggestedMealIDs[:maxSuggestions]
					}
				} else {
					complete = false
				}
			}
			if len(slot.SuggestedMealIDs) == 0 {
				complete = false
			}
			state.Slots[key] = slot
		}
	}
	return complete
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
