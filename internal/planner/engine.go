package planner

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/pricing"
)

const (
	maxSuggestions = 3

	// Scoring weights. Lower score wins.
	repeatPenalty    = 18 // per prior use of the recipe in the current pass
	vegetablePenalty = 14 // prefer-vegetables set but recipe not vegetarian
	jitterSpan       = 11 // random tie-breaker, uniform in [0, jitterSpan)
)

// Engine scores candidate recipes and fills plan slots. The random jitter
// source is injected so scoring is reproducible in tests.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an Engine backed by the given random source. A nil
// source gets a time-seeded one.
func NewEngine(src rand.Source) *Engine {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Engine{rng: rand.New(src)}
}

// Candidates narrows the catalog to recipes of the given meal type that
// survive the dietary and preference filters. Constraints are best-effort:
// if filtering empties the pool, the unfiltered meal-type pool is returned
// so a slot can always be filled.
func (e *Engine) Candidates(mt catalog.MealType, settings Settings) []catalog.Recipe {
	return filterCandidates(catalog.ByMealType(mt), settings)
}

func filterCandidates(pool []catalog.Recipe, settings Settings) []catalog.Recipe {
	filtered := make([]catalog.Recipe, 0, len(pool))
	for _, r := range pool {
		if settings.AvoidPork && r.HasTag(catalog.TagPork) {
			continue
		}
		if settings.AvoidSeafood && r.HasTag(catalog.TagSeafood) {
			continue
		}
		if settings.KidsOnly && !r.HasTag(catalog.TagKids) && !catalog.KidFriendly(r.ID) {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return pool
	}
	return filtered
}

// Suggest ranks the candidate pool for one slot and returns up to three
// recipes, best first. usage counts nudge the scorer away from recipes
// already picked elsewhere; excluded removes previously suggested ids
// (single-slot regeneration) and is ignored when it would empty the pool.
func (e *Engine) Suggest(mt catalog.MealType, settings Settings, usage map[string]int, excluded map[string]bool) []catalog.Recipe {
	pool := e.Candidates(mt, settings)
	if len(excluded) > 0 {
		trimmed := make([]catalog.Recipe, 0, len(pool))
		for _, r := range pool {
			if !excluded[r.ID] {
				trimmed = append(trimmed, r)
			}
		}
		if len(trimmed) > 0 {
			pool = trimmed
		}
	}

	target := settings.BudgetMode.TargetCost()
	type scoredRecipe struct {
		recipe catalog.Recipe
		score  float64
	}
	scored := make([]scoredRecipe, 0, len(pool))
	for _, r := range pool {
		s := math.Abs(pricing.CostPerPerson(r) - target)
		s += float64(usage[r.ID]) * repeatPenalty
		if settings.PreferVegetables && !r.HasTag(catalog.TagVegetarian) {
			s += vegetablePenalty
		}
		s += e.rng.Float64() * jitterSpan
		scored = append(scored, scoredRecipe{recipe: r, score: s})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score < scored[j].score
	})

	n := len(scored)
	if n > maxSuggestions {
		n = maxSuggestions
	}
	out := make([]catalog.Recipe, 0, n)
	for _, sr := range scored[:n] {
		out = append(out, sr.recipe)
	}
	return out
}

// RegenerateWeek builds a fresh 21-slot plan. Slots are filled greedily in
// day-major, meal-minor order against a shared usage table, so later slots
// in the same pass are steered away from recipes already chosen. The result
// is order dependent by design, not a global optimum.
func (e *Engine) RegenerateWeek(settings Settings) *PlanState {
	settings = settings.Normalize()
	state := &PlanState{
		Settings: settings,
		Slots:    make(map[string]Slot, SlotsPerWeek),
	}
	usage := make(map[string]int)
	for _, day := range Days {
		for _, mt := range catalog.MealTypes {
			recipes := e.Suggest(mt, settings, usage, nil)
			ids := make([]string, len(recipes))
			for i, r := range recipes {
				ids[i] = r.ID
			}
			state.Slots[SlotKey(day, mt)] = Slot{
				SuggestedMealIDs: ids,
				SelectedMealID:   ids[0],
			}
			usage[ids[0]]++
		}
	}
	return state
}

// RegenerateSlot re-scores a single slot without disturbing the rest of the
// plan. Usage counts come from every other slot's current selection; the
// slot's own previous suggestions are excluded so the user sees fresh
// alternatives. The new slot is written back into the state and returned.
func (e *Engine) RegenerateSlot(state *PlanState, day string, mt catalog.MealType) (Slot, error) {
	day, ok := ParseDay(day)
	if !ok {
		return Slot{}, ErrUnknownSlot
	}
	if _, ok := ParseMealType(string(mt)); !ok {
		return Slot{}, ErrUnknownSlot
	}
	key := SlotKey(day, mt)
	current, ok := state.Slots[key]
	if !ok {
		return Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, key)
	}

	usage := make(map[string]int)
	for k, slot := range state.Slots {
		if k == key || slot.SelectedMealID == "" {
			continue
		}
		usage[slot.SelectedMealID]++
	}
	excluded := make(map[string]bool, len(current.SuggestedMealIDs))
	for _, id := range current.SuggestedMealIDs {
		excluded[id] = true
	}

	recipes := e.Suggest(mt, state.Settings, usage, excluded)
	ids := make([]string, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	slot := Slot{SuggestedMealIDs: ids, SelectedMealID: ids[0]}
	state.Slots[key] = slot
	return slot, nil
}
