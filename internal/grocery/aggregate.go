// Package grocery turns the selected meals of a weekly plan into a priced,
// category-grouped shopping list.
package grocery

import (
	"sort"

	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/pricing"
)

// Line is one merged shopping list entry. Quantities are already scaled by
// family size; Price is 0 when the ingredient cannot be priced.
type Line struct {
	Ingredient string  `json:"ingredient"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
}

// Group is one grocery category section with its subtotal.
type Group struct {
	Category pricing.Category `json:"category"`
	Lines    []Line           `json:"lines"`
	Subtotal float64          `json:"subtotal"`
}

// List is the full aggregated shopping list.
type List struct {
	Groups []Group `json:"groups"`
	Total  float64 `json:"total"`
}

type lineKey struct {
	name string
	unit string
}

// Aggregate sums ingredient quantities across every selected meal, scaled
// by family size. Entries are merged per (ingredient, unit) pair — the same
// ingredient under two units accumulates separately. Lines are priced from
// the price table only (no recipe-level fallback), grouped into the fixed
// categories in canonical order with empty groups omitted, and sorted
// alphabetically within each group.
func Aggregate(state *planner.PlanState) List {
	return buildList(state.SelectedRecipes(), state.Settings.Normalize().FamilySize)
}

func buildList(recipes []catalog.Recipe, familySize int) List {
	merged := make(map[lineKey]float64)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			k := lineKey{name: ing.Name, unit: ing.Unit}
			merged[k] += ing.Quantity * float64(familySize)
		}
	}

	byCategory := make(map[pricing.Category][]Line)
	for k, qty := range merged {
		line := Line{
			Ingredient: k.name,
			Unit:       k.unit,
			Quantity:   qty,
			Price:      pricing.LinePrice(k.name, k.unit, qty),
		}
		c := pricing.Categorize(k.name)
		byCategory[c] = append(byCategory[c], line)
	}

	var list List
	for _, c := range pricing.CategoryOrder {
		lines := byCategory[c]
		if len(lines) == 0 {
			continue
		}
		sort.Slice(lines, func(i, j int) bool {
			if lines[i].Ingredient == lines[j].Ingredient {
				return lines[i].Unit < lines[j].Unit
			}
			return lines[i].Ingredient < lines[j].Ingredient
		})
		var subtotal float64
		for _, l := range lines {
			subtotal += l.Price
		}
		list.Groups = append(list.Groups, Group{Category: c, Lines: lines, Subtotal: subtotal})
		list.Total += subtotal
	}
	return list
}

// TotalCost is the estimated price of the whole aggregated list.
func TotalCost(state *planner.PlanState) float64 {
	return Aggregate(state).Total
}
