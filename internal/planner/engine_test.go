package planner

import (
	"math/rand"
	"reflect"
	"testing"

	"weekly-menu-planner/internal/catalog"
)

func newTestEngine(seed int64) *Engine {
	return NewEngine(rand.NewSource(seed))
}

func TestRegenerateWeekFillsAllSlots(t *testing.T) {
	state := newTestEngine(1).RegenerateWeek(DefaultSettings())

	if len(state.Slots) != SlotsPerWeek {
		t.Fatalf("expected %d slots, got %d", SlotsPerWeek, len(state.Slots))
	}

	for _, day := range Days {
		for _, mt := range catalog.MealTypes {
			slot, ok := state.Slots[SlotKey(day, mt)]
			if !ok {
				t.Fatalf("missing slot %s", SlotKey(day, mt))
			}
			if len(slot.SuggestedMealIDs) < 1 || len(slot.SuggestedMealIDs) > 3 {
				t.Errorf("slot %s has %d suggestions, want 1..3", SlotKey(day, mt), len(slot.SuggestedMealIDs))
			}

			found := false
			for _, id := range slot.SuggestedMealIDs {
				r, ok := catalog.ByID(id)
				if !ok {
					t.Errorf("slot %s suggests unknown recipe %s", SlotKey(day, mt), id)
					continue
				}
				if r.MealType != mt {
					t.Errorf("slot %s suggests %s of meal type %s", SlotKey(day, mt), id, r.MealType)
				}
				if id == slot.SelectedMealID {
					found = true
				}
			}
			if !found {
				t.Errorf("slot %s selection %s not among suggestions", SlotKey(day, mt), slot.SelectedMealID)
			}
		}
	}
}

func TestRegenerateWeekIsSeedDeterministic(t *testing.T) {
	a := newTestEngine(42).RegenerateWeek(DefaultSettings())
	b := newTestEngine(42).RegenerateWeek(DefaultSettings())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical seeds should produce identical plans")
	}
}

func TestRegenerateWeekNormalizesSettings(t *testing.T) {
	state := newTestEngine(3).RegenerateWeek(Settings{FamilySize: 100, BudgetMode: "luxurious"})
	if state.Settings.FamilySize != 24 {
		t.Errorf("expected family size clamped to 24, got %d", state.Settings.FamilySize)
	}
	if state.Settings.BudgetMode != BudgetBalanced {
		t.Errorf("expected balanced budget mode, got %s", state.Settings.BudgetMode)
	}
}

func TestCandidatesAppliesFilters(t *testing.T) {
	e := newTestEngine(1)

	t.Run("AvoidPork", func(t *testing.T) {
		for _, r := range e.Candidates(catalog.Dinner, Settings{AvoidPork: true}) {
			if r.HasTag(catalog.TagPork) {
				t.Errorf("pork recipe %s survived avoid-pork filter", r.ID)
			}
		}
	})

	t.Run("AvoidSeafood", func(t *testing.T) {
		for _, r := range e.Candidates(catalog.Lunch, Settings{AvoidSeafood: true}) {
			if r.HasTag(catalog.TagSeafood) {
				t.Errorf("seafood recipe %s survived avoid-seafood filter", r.ID)
			}
		}
	})

	t.Run("KidsOnly", func(t *testing.T) {
		for _, r := range e.Candidates(catalog.Dinner, Settings{KidsOnly: true}) {
			if !r.HasTag(catalog.TagKids) && !catalog.KidFriendly(r.ID) {
				t.Errorf("recipe %s survived kids-only filter", r.ID)
			}
		}
	})
}

func TestFilterDroppedWhenItEmptiesPool(t *testing.T) {
	// A pool containing only a seafood recipe with avoid-seafood set: the
	// constraint is best-effort, so the recipe must still come through.
	pool := []catalog.Recipe{
		{ID: "only-fish", MealType: catalog.Dinner, Tags: []string{catalog.TagSeafood}, FallbackCost: 40},
	}

	got := filterCandidates(pool, Settings{AvoidSeafood: true})
	if len(got) != 1 || got[0].ID != "only-fish" {
		t.Fatalf("expected the seafood recipe back as fallback, got %v", got)
	}
}

func TestSuggestRespectsExclusionsUnlessEmpty(t *testing.T) {
	e := newTestEngine(7)
	settings := DefaultSettings()

	pool := e.Candidates(catalog.Breakfast, settings)
	if len(pool) < 4 {
		t.Fatalf("test needs at least 4 breakfast candidates, have %d", len(pool))
	}

	t.Run("ExclusionsRemoved", func(t *testing.T) {
		excluded := map[string]bool{pool[0].ID: true, pool[1].ID: true}
		for _, r := range e.Suggest(catalog.Breakfast, settings, nil, excluded) {
			if excluded[r.ID] {
				t.Errorf("excluded recipe %s was suggested", r.ID)
			}
		}
	})

	t.Run("ExclusionCoveringPoolIsIgnored", func(t *testing.T) {
		excluded := make(map[string]bool, len(pool))
		for _, r := range pool {
			excluded[r.ID] = true
		}
		got := e.Suggest(catalog.Breakfast, settings, nil, excluded)
		if len(got) == 0 {
			t.Fatal("exclusion emptied the pool and was not dropped")
		}
		if len(got) > 3 {
			t.Errorf("expected at most 3 suggestions, got %d", len(got))
		}
	})
}

func TestSuggestUsagePenaltyDemotesRepeats(t *testing.T) {
	e := newTestEngine(11)
	settings := DefaultSettings()

	first := e.Suggest(catalog.Dinner, settings, nil, nil)
	top := first[0].ID

	// Pile usage onto the previous winner; the penalty dwarfs the jitter
	// span, so it cannot stay on top.
	usage := map[string]int{top: 10}
	again := e.Suggest(catalog.Dinner, settings, usage, nil)
	if again[0].ID == top {
		t.Errorf("heavily used recipe %s still ranked first", top)
	}
}

func TestRegenerateSlot(t *testing.T) {
	e := newTestEngine(5)
	state := e.RegenerateWeek(DefaultSettings())

	key := SlotKey("wednesday", catalog.Lunch)
	before := state.Slots[key]
	othersBefore := snapshotExcept(state, key)

	slot, err := e.RegenerateSlot(state, "wednesday", catalog.Lunch)
	if err != nil {
		t.Fatalf("RegenerateSlot failed: %v", err)
	}

	if len(slot.SuggestedMealIDs) == 0 {
		t.Fatal("regenerated slot has no suggestions")
	}
	if slot.SelectedMealID != slot.SuggestedMealIDs[0] {
		t.Error("selection should default to the top suggestion")
	}

	// The lunch pool is large enough that the previous suggestions are
	// excludable without emptying it.
	prev := make(map[string]bool)
	for _, id := range before.SuggestedMealIDs {
		prev[id] = true
	}
	for _, id := range slot.SuggestedMealIDs {
		if prev[id] {
			t.Errorf("previously suggested recipe %s reappeared", id)
		}
	}

	if !reflect.DeepEqual(othersBefore, snapshotExcept(state, key)) {
		t.Error("other slots were modified by single-slot regeneration")
	}
}

func TestRegenerateSlotUnknownSlot(t *testing.T) {
	e := newTestEngine(5)
	state := e.RegenerateWeek(DefaultSettings())

	if _, err := e.RegenerateSlot(state, "someday", catalog.Lunch); err == nil {
		t.Error("expected error for unknown day")
	}
}

func TestSelectMeal(t *testing.T) {
	e := newTestEngine(9)
	state := e.RegenerateWeek(DefaultSettings())
	key := SlotKey("friday", catalog.Dinner)
	slot := state.Slots[key]

	t.Run("SuggestedIDAccepted", func(t *testing.T) {
		want := slot.SuggestedMealIDs[len(slot.SuggestedMealIDs)-1]
		if err := SelectMeal(state, "friday", catalog.Dinner, want); err != nil {
			t.Fatalf("SelectMeal failed: %v", err)
		}
		if got := state.Slots[key].SelectedMealID; got != want {
			t.Errorf("expected selection %s, got %s", want, got)
		}
	})

	t.Run("UnknownIDRejected", func(t *testing.T) {
		before := state.Slots[key]
		err := SelectMeal(state, "friday", catalog.Dinner, "not-a-suggestion")
		if err == nil {
			t.Fatal("expected rejection for id outside the suggestion list")
		}
		if !reflect.DeepEqual(before, state.Slots[key]) {
			t.Error("plan changed despite rejected selection")
		}
	})
}

func snapshotExcept(state *PlanState, skip string) map[string]Slot {
	out := make(map[string]Slot, len(state.Slots))
	for k, v := range state.Slots {
		if k != skip {
			out[k] = v
		}
	}
	return out
}
