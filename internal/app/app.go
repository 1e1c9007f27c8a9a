// Package app wires the planning engine, persistence and history into the
// operations the user-facing surfaces (CLI, HTTP API, Telegram bot) expose.
package app

import (
	"context"
	"fmt"
	"log"

	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/grocery"
	"weekly-menu-planner/internal/history"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/storage"
)

// App coordinates the core operations against the shared plan state.
type App struct {
	engine  *planner.Engine
	store   *storage.StateStore
	history *history.Repository
}

// NewApp creates a new App. The history repository may be nil, in which
// case regenerations are not snapshotted.
func NewApp(engine *planner.Engine, store *storage.StateStore, hist *history.Repository) *App {
	return &App{engine: engine, store: store, history: hist}
}

// CurrentPlan returns the persisted plan state, repaired if necessary. A
// missing, malformed or incomplete state triggers a full regeneration —
// never a partial repair and never a blocked caller.
func (a *App) CurrentPlan(ctx context.Context) (*planner.PlanState, error) {
	if !a.store.Exists() {
		return a.RegenerateWeek(ctx, planner.DefaultSettings())
	}

	state, err := a.store.Load()
	if err != nil {
		log.Printf("Warning: discarding unreadable plan state: %v", err)
		return a.RegenerateWeek(ctx, planner.DefaultSettings())
	}

	if !planner.ValidateAndRepair(state) {
		log.Printf("Persisted plan state incomplete, regenerating full week")
		return a.RegenerateWeek(ctx, state.Settings)
	}

	// Repair may have rewritten slots; keep the persisted copy in sync.
	if err := a.store.Save(state); err != nil {
		return nil, fmt.Errorf("failed to persist repaired plan state: %w", err)
	}
	return state, nil
}

// RegenerateWeek builds a fresh 21-slot plan with the given settings,
// persists it and snapshots it to history.
func (a *App) RegenerateWeek(ctx context.Context, settings planner.Settings) (*planner.PlanState, error) {
	state := a.engine.RegenerateWeek(settings)
	if err := a.store.Save(state); err != nil {
		return nil, fmt.Errorf("failed to persist regenerated plan: %w", err)
	}
	if a.history != nil {
		if _, err := a.history.Save(ctx, state); err != nil {
			log.Printf("Warning: failed to snapshot plan to history: %v", err)
		}
	}
	return state, nil
}

// RegenerateSlot re-scores one slot of the current plan and persists the
// result. The rest of the plan is untouched.
func (a *App) RegenerateSlot(ctx context.Context, day string, mt catalog.MealType) (planner.Slot, *planner.PlanState, error) {
	state, err := a.CurrentPlan(ctx)
	if err != nil {
		return planner.Slot{}, nil, err
	}
	slot, err := a.engine.RegenerateSlot(state, day, mt)
	if err != nil {
		return planner.Slot{}, nil, err
	}
	if err := a.store.Save(state); err != nil {
		return planner.Slot{}, nil, fmt.Errorf("failed to persist plan: %w", err)
	}
	return slot, state, nil
}

// SelectMeal records an explicit selection and persists it. An id outside
// the slot's suggestions is rejected and the plan stays unchanged.
func (a *App) SelectMeal(ctx context.Context, day string, mt catalog.MealType, recipeID string) (*planner.PlanState, error) {
	state, err := a.CurrentPlan(ctx)
	if err != nil {
		return nil, err
	}
	if err := planner.SelectMeal(state, day, mt, recipeID); err != nil {
		return nil, err
	}
	if err := a.store.Save(state); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}
	return state, nil
}

// Groceries aggregates the current plan's selected meals into a priced,
// categorized shopping list.
func (a *App) Groceries(ctx context.Context) (grocery.List, *planner.PlanState, error) {
	state, err := a.CurrentPlan(ctx)
	if err != nil {
		return grocery.List{}, nil, err
	}
	return grocery.Aggregate(state), state, nil
}
