package pricing

// Category is one of the fixed grocery list sections.
type Category string

const (
	CategoryProduce Category = "produce"
	CategoryMeat    Category = "meat"
	CategorySeafood Category = "seafood"
	CategoryDairy   Category = "dairy/eggs"
	CategoryBakery  Category = "bakery"
	CategoryPantry  Category = "pantry"
	CategoryOther   Category = "other"
)

// CategoryOrder is the canonical ordering of grocery list sections.
var CategoryOrder = []Category{
	CategoryProduce,
	CategoryMeat,
	CategorySeafood,
	CategoryDairy,
	CategoryBakery,
	CategoryPantry,
	CategoryOther,
}

// Categorize maps an ingredient name to its grocery category. Unmapped
// ingredients fall into "other".
func Categorize(name string) Category {
	if c, ok := ingredientCategories[name]; ok {
		return c
	}
	return CategoryOther
}

var ingredientCategories = map[string]Category{
	// produce
	"banana":      CategoryProduce,
	"apple":       CategoryProduce,
	"avocado":     CategoryProduce,
	"lemon":       CategoryProduce,
	"lime":        CategoryProduce,
	"strawberry":  CategoryProduce,
	"tomato":      CategoryProduce,
	"onion":       CategoryProduce,
	"garlic":      CategoryProduce,
	"potato":      CategoryProduce,
	"sweet potato": CategoryProduce,
	"carrot":      CategoryProduce,
	"lettuce":     CategoryProduce,
	"cabbage":     CategoryProduce,
	"cucumber":    CategoryProduce,
	"bell pepper": CategoryProduce,
	"zucchini":    CategoryProduce,
	"broccoli":    CategoryProduce,
	"spinach":     CategoryProduce,
	"mushroom":    CategoryProduce,
	"green beans": CategoryProduce,
	"cilantro":    CategoryProduce,
	"parsley":     CategoryProduce,
	"basil":       CategoryProduce,

	// meat
	"chicken breast": CategoryMeat,
	"chicken thigh":  CategoryMeat,
	"ground beef":    CategoryMeat,
	"beef steak":     CategoryMeat,
	"pork loin":      CategoryMeat,
	"pork sausage":   CategoryMeat,
	"bacon":          CategoryMeat,
	"ham":            CategoryMeat,

	// seafood
	"white fish fillet": CategorySeafood,
	"salmon fillet":     CategorySeafood,
	"smoked salmon":     CategorySeafood,
	"shrimp":            CategorySeafood,
	"canned tuna":       CategorySeafood,

	// dairy / eggs
	"egg":          CategoryDairy,
	"butter":       CategoryDairy,
	"milk":         CategoryDairy,
	"plain yogurt": CategoryDairy,
	"cream cheese": CategoryDairy,
	"mozzarella":   CategoryDairy,
	"cheddar":      CategoryDairy,
	"parmesan":     CategoryDairy,

	// bakery
	"bread":            CategoryBakery,
	"wholewheat bread": CategoryBakery,
	"bagel":            CategoryBakery,
	"burger bun":       CategoryBakery,
	"tortilla":         CategoryBakery,

	// pantry
	"oats":           CategoryPantry,
	"granola":        CategoryPantry,
	"flour":          CategoryPantry,
	"honey":          CategoryPantry,
	"peanut butter":  CategoryPantry,
	"rice":           CategoryPantry,
	"arborio rice":   CategoryPantry,
	"quinoa":         CategoryPantry,
	"penne":          CategoryPantry,
	"spaghetti":      CategoryPantry,
	"lasagna sheets": CategoryPantry,
	"lentils":        CategoryPantry,
	"chickpeas":      CategoryPantry,
	"black beans":    CategoryPantry,
	"olive oil":      CategoryPantry,
	"vegetable oil":  CategoryPantry,
	"soy sauce":      CategoryPantry,
	"tomato sauce":   CategoryPantry,
	"coconut milk":   CategoryPantry,
	"barbecue sauce": CategoryPantry,
	"caesar dressing": CategoryPantry,
	"maple syrup":    CategoryPantry,
	"curry paste":    CategoryPantry,
}
