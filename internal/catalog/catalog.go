package catalog

// MealType identifies which of the three daily meals a recipe is for.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes lists the meal types in their fixed daily order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

// IngredientLine is a single ingredient entry of a recipe, quantities are
// per person.
type IngredientLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is an immutable catalog entry. FallbackCost is the static
// per-person estimate used when ingredient-level pricing is incomplete.
type Recipe struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	MealType     MealType         `json:"meal_type"`
	Tags         []string         `json:"tags"`
	FallbackCost float64          `json:"fallback_cost"`
	Ingredients  []IngredientLine `json:"ingredients"`
}

// HasTag reports whether the recipe carries the given tag.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tag values used by the candidate filter.
const (
	TagVegetarian = "vegetarian"
	TagPork       = "pork"
	TagSeafood    = "seafood"
	TagKids       = "kids"
)

var byID = func() map[string]Recipe {
	m := make(map[string]Recipe, len(recipes))
	for _, r := range recipes {
		m[r.ID] = r
	}
	return m
}()

// All returns every recipe in the catalog.
func All() []Recipe {
	out := make([]Recipe, len(recipes))
	copy(out, recipes)
	return out
}

// ByID looks up a recipe by its identifier.
func ByID(id string) (Recipe, bool) {
	r, ok := byID[id]
	return r, ok
}

// ByMealType returns all recipes of the given meal type, in catalog order.
func ByMealType(mt MealType) []Recipe {
	var out []Recipe
	for _, r := range recipes {
		if r.MealType == mt {
			out = append(out, r)
		}
	}
	return out
}

// KidFriendly reports whether the recipe id is in the curated kid-friendly
// set. Recipes tagged "kids" are kid-friendly regardless of this set.
func KidFriendly(id string) bool {
	_, ok := kidFriendlyIDs[id]
	return ok
}
