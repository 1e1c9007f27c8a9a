// Package export renders core outputs as tabular CSV. It performs no
// computation of its own beyond formatting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/grocery"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/pricing"
)

// WritePlanCSV renders the weekly plan, one row per slot in day-major,
// meal-minor order.
func WritePlanCSV(w io.Writer, state *planner.PlanState) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "meal", "recipe_id", "recipe", "cost_per_person", "cost_family"}); err != nil {
		return fmt.Errorf("failed to write plan header: %w", err)
	}

	familySize := state.Settings.Normalize().FamilySize
	for _, day := range planner.Days {
		for _, mt := range catalog.MealTypes {
			slot, ok := state.Slots[planner.SlotKey(day, mt)]
			if !ok {
				continue
			}
			r, ok := catalog.ByID(slot.SelectedMealID)
			if !ok {
				continue
			}
			row := []string{
				day,
				string(mt),
				r.ID,
				r.Name,
				formatAmount(pricing.CostPerPerson(r)),
				formatAmount(pricing.CostForFamily(r, familySize)),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write plan row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGroceriesCSV renders an aggregated grocery list with per-category
// subtotal rows and a final total row.
func WriteGroceriesCSV(w io.Writer, list grocery.List) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "ingredient", "quantity", "unit", "price"}); err != nil {
		return fmt.Errorf("failed to write groceries header: %w", err)
	}
	for _, g := range list.Groups {
		for _, l := range g.Lines {
			row := []string{
				string(g.Category),
				l.Ingredient,
				strconv.FormatFloat(l.Quantity, 'f', -1, 64),
				l.Unit,
				formatAmount(l.Price),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write grocery row: %w", err)
			}
		}
		if err := cw.Write([]string{string(g.Category), "subtotal", "", "", formatAmount(g.Subtotal)}); err != nil {
			return fmt.Errorf("failed to write subtotal row: %w", err)
		}
	}
	if err := cw.Write([]string{"", "total", "", "", formatAmount(list.Total)}); err != nil {
		return fmt.Errorf("failed to write total row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
