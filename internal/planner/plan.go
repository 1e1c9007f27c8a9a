package planner

import (
	"errors"
	"fmt"
	"strings"

	"weekly-menu-planner/internal/catalog"
)

// Days lists the weekdays in plan order. The regeneration pass iterates
// days in this order; the output depends on it.
var Days = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// SlotsPerWeek is the number of populated slots in a complete plan.
const SlotsPerWeek = 21

// ErrNotSuggested is returned by SelectMeal when the recipe id is not among
// the slot's current suggestions.
var ErrNotSuggested = errors.New("recipe is not among the slot's suggestions")

// ErrUnknownSlot is returned for a day or meal type outside the plan grid.
var ErrUnknownSlot = errors.New("unknown day or meal type")

// Slot is one (day, meal type) cell: up to three ranked suggestions plus
// the current selection. The selection always belongs to the suggestions.
type Slot struct {
	SuggestedMealIDs []string `json:"suggested_meal_ids"`
	SelectedMealID   string   `json:"selected_meal_id"`
}

// PlanState is the full weekly assignment plus the household settings.
// Slots are keyed "<day>::<mealType>".
type PlanState struct {
	Settings Settings        `json:"settings"`
	Slots    map[string]Slot `json:"slots"`
}

// SlotKey builds the persisted key for a (day, meal type) pair.
func SlotKey(day string, mt catalog.MealType) string {
	return day + "::" + string(mt)
}

// ParseSlotKey splits a persisted slot key back into day and meal type.
func ParseSlotKey(key string) (day string, mt catalog.MealType, ok bool) {
	parts := strings.SplitN(key, "::", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	day, ok = ParseDay(parts[0])
	if !ok {
		return "", "", false
	}
	mt, ok = ParseMealType(parts[1])
	if !ok {
		return "", "", false
	}
	return day, mt, true
}

// ParseDay validates a weekday name, case-insensitively.
func ParseDay(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Days {
		if d == s {
			return d, true
		}
	}
	return "", false
}

// ParseMealType validates a meal type name, case-insensitively.
func ParseMealType(s string) (catalog.MealType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, mt := range catalog.MealTypes {
		if string(mt) == s {
			return mt, true
		}
	}
	return "", false
}

// SelectMeal records an explicit user selection for one slot. It performs
// no re-scoring and rejects ids outside the slot's suggestion list, leaving
// the plan unchanged.
func SelectMeal(state *PlanState, day string, mt catalog.MealType, recipeID string) error {
	day, ok := ParseDay(day)
	if !ok {
		return ErrUnknownSlot
	}
	key := SlotKey(day, mt)
	slot, ok := state.Slots[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, key)
	}
	for _, id := range slot.SuggestedMealIDs {
		if id == recipeID {
			slot.SelectedMealID = recipeID
			state.Slots[key] = slot
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotSuggested, recipeID)
}

// SelectedRecipes resolves every populated slot's selection, in day-major,
// meal-minor order. Unresolvable ids are skipped.
func (p *PlanState) SelectedRecipes() []catalog.Recipe {
	out := make([]catalog.Recipe, 0, SlotsPerWeek)
	for _, day := range Days {
		for _, mt := range catalog.MealTypes {
			slot, ok := p.Slots[SlotKey(day, mt)]
			if !ok {
				continue
			}
			if r, ok := catalog.ByID(slot.SelectedMealID); ok {
				out = append(out, r)
			}
		}
	}
	return out
}
