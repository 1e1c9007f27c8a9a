package grocery

import (
	"math"
	"math/rand"
	"testing"

	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/pricing"
)

func syntheticRecipes() []catalog.Recipe {
	return []catalog.Recipe{
		{
			ID: "eggs-a", MealType: catalog.Breakfast, FallbackCost: 10,
			Ingredients: []catalog.IngredientLine{
				{Name: "egg", Quantity: 2, Unit: "unit"},
				{Name: "tomato", Quantity: 50, Unit: "g"},
			},
		},
		{
			ID: "eggs-b", MealType: catalog.Lunch, FallbackCost: 10,
			Ingredients: []catalog.IngredientLine{
				{Name: "egg", Quantity: 3, Unit: "unit"},
				{Name: "bread", Quantity: 2, Unit: "slice"},
			},
		},
	}
}

func findLine(t *testing.T, list List, category pricing.Category, name, unit string) Line {
	t.Helper()
	for _, g := range list.Groups {
		if g.Category != category {
			continue
		}
		for _, l := range g.Lines {
			if l.Ingredient == name && l.Unit == unit {
				return l
			}
		}
	}
	t.Fatalf("line %s (%s) not found in category %s", name, unit, category)
	return Line{}
}

func TestBuildListMergesByNameAndUnit(t *testing.T) {
	list := buildList(syntheticRecipes(), 1)

	egg := findLine(t, list, pricing.CategoryDairy, "egg", "unit")
	if egg.Quantity != 5 {
		t.Errorf("expected 5 eggs merged across recipes, got %.1f", egg.Quantity)
	}
	if math.Abs(egg.Price-5*1.5) > 1e-9 {
		t.Errorf("expected egg line priced %.2f, got %.2f", 5*1.5, egg.Price)
	}
}

func TestBuildListScalesByFamilySize(t *testing.T) {
	one := buildList(syntheticRecipes(), 1)
	two := buildList(syntheticRecipes(), 2)

	eggOne := findLine(t, one, pricing.CategoryDairy, "egg", "unit")
	eggTwo := findLine(t, two, pricing.CategoryDairy, "egg", "unit")
	if eggTwo.Quantity != 2*eggOne.Quantity {
		t.Errorf("expected doubled quantity, got %.1f vs %.1f", eggTwo.Quantity, eggOne.Quantity)
	}
	if math.Abs(two.Total-2*one.Total) > 1e-9 {
		t.Errorf("expected doubled total, got %.2f vs %.2f", two.Total, one.Total)
	}
}

func TestBuildListKeepsUnitsSeparate(t *testing.T) {
	recipes := []catalog.Recipe{
		{
			ID: "mixed-units", MealType: catalog.Dinner, FallbackCost: 10,
			Ingredients: []catalog.IngredientLine{
				{Name: "tomato", Quantity: 100, Unit: "g"},
				{Name: "tomato", Quantity: 2, Unit: "unit"},
			},
		},
	}

	list := buildList(recipes, 1)
	grams := findLine(t, list, pricing.CategoryProduce, "tomato", "g")
	units := findLine(t, list, pricing.CategoryProduce, "tomato", "unit")

	if grams.Quantity != 100 || units.Quantity != 2 {
		t.Errorf("expected separate lines 100g and 2 units, got %.1f and %.1f", grams.Quantity, units.Quantity)
	}
	// The table prices tomato per gram, so the per-unit line stays at 0.
	if units.Price != 0 {
		t.Errorf("expected unpriced line for mismatched unit, got %.2f", units.Price)
	}
	if math.Abs(grams.Price-100*0.012) > 1e-9 {
		t.Errorf("expected gram line priced %.2f, got %.2f", 100*0.012, grams.Price)
	}
}

func TestBuildListUnknownIngredientPricedZero(t *testing.T) {
	recipes := []catalog.Recipe{
		{
			ID: "exotic", MealType: catalog.Dinner, FallbackCost: 10,
			Ingredients: []catalog.IngredientLine{
				{Name: "dragon fruit", Quantity: 3, Unit: "unit"},
			},
		},
	}

	list := buildList(recipes, 1)
	line := findLine(t, list, pricing.CategoryOther, "dragon fruit", "unit")
	if line.Price != 0 {
		t.Errorf("expected price 0 for unknown ingredient, got %.2f", line.Price)
	}
	if line.Quantity != 3 {
		t.Errorf("expected quantity kept on unpriced line, got %.1f", line.Quantity)
	}
}

func TestBuildListGroupOrderAndSorting(t *testing.T) {
	list := buildList(syntheticRecipes(), 1)

	// Groups must appear in canonical category order with empties omitted.
	rank := make(map[pricing.Category]int, len(pricing.CategoryOrder))
	for i, c := range pricing.CategoryOrder {
		rank[c] = i
	}
	for i := 1; i < len(list.Groups); i++ {
		if rank[list.Groups[i-1].Category] >= rank[list.Groups[i].Category] {
			t.Errorf("groups out of canonical order: %s before %s",
				list.Groups[i-1].Category, list.Groups[i].Category)
		}
	}
	for _, g := range list.Groups {
		if len(g.Lines) == 0 {
			t.Errorf("empty group %s should be omitted", g.Category)
		}
		for i := 1; i < len(g.Lines); i++ {
			if g.Lines[i-1].Ingredient > g.Lines[i].Ingredient {
				t.Errorf("group %s lines not alphabetical: %s before %s",
					g.Category, g.Lines[i-1].Ingredient, g.Lines[i].Ingredient)
			}
		}
	}
}

func TestBuildListSubtotalsSumToTotal(t *testing.T) {
	list := buildList(syntheticRecipes(), 3)

	var sum float64
	for _, g := range list.Groups {
		var lines float64
		for _, l := range g.Lines {
			lines += l.Price
		}
		if math.Abs(lines-g.Subtotal) > 1e-9 {
			t.Errorf("group %s subtotal %.2f != line sum %.2f", g.Category, g.Subtotal, lines)
		}
		sum += g.Subtotal
	}
	if math.Abs(sum-list.Total) > 1e-9 {
		t.Errorf("total %.2f != subtotal sum %.2f", list.Total, sum)
	}
}

func TestAggregateFullPlan(t *testing.T) {
	state := planner.NewEngine(rand.NewSource(17)).RegenerateWeek(planner.DefaultSettings())

	list := Aggregate(state)
	if len(list.Groups) == 0 {
		t.Fatal("aggregated list of a full week is empty")
	}
	if list.Total <= 0 {
		t.Errorf("expected positive total, got %.2f", list.Total)
	}
	if got := TotalCost(state); math.Abs(got-list.Total) > 1e-9 {
		t.Errorf("TotalCost %.2f disagrees with Aggregate total %.2f", got, list.Total)
	}

	// Aggregation must not mutate the plan.
	again := Aggregate(state)
	if math.Abs(again.Total-list.Total) > 1e-9 {
		t.Error("repeated aggregation changed the total")
	}
}
