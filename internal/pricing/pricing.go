package pricing

import "weekly-menu-planner/internal/catalog"

// Entry is the reference price of one ingredient. A recipe line is priced
// only when its unit exactly matches the entry's unit.
type Entry struct {
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

// Lookup returns the price table entry for an ingredient name.
func Lookup(name string) (Entry, bool) {
	e, ok := priceTable[name]
	return e, ok
}

// LinePrice prices a single quantity of an ingredient. Unknown ingredients
// and unit mismatches price at zero.
func LinePrice(name, unit string, quantity float64) float64 {
	e, ok := priceTable[name]
	if !ok || e.Unit != unit {
		return 0
	}
	return quantity * e.UnitPrice
}

// CostPerPerson computes the per-person cost of a recipe from the price
// table. If any ingredient line cannot be priced the partial sum is
// discarded and the recipe's static fallback cost is returned instead.
func CostPerPerson(r catalog.Recipe) float64 {
	var total float64
	for _, line := range r.Ingredients {
		e, ok := priceTable[line.Name]
		if !ok || e.Unit != line.Unit {
			return r.FallbackCost
		}
		total += line.Quantity * e.UnitPrice
	}
	return total
}

// CostForFamily scales the per-person cost linearly by family size.
func CostForFamily(r catalog.Recipe, familySize int) float64 {
	return CostPerPerson(r) * float64(familySize)
}
