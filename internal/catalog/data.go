package catalog

// The catalog is fixed reference data: loaded once, never mutated.
// Ingredient quantities are per person; the grocery aggregator scales them
// by family size.
var recipes = []Recipe{
	// --- Breakfast ---
	{
		ID: "scrambled-eggs-toast", Name: "Scrambled Eggs on Toast", MealType: Breakfast,
		Tags: []string{TagVegetarian, TagKids}, FallbackCost: 18,
		Ingredients: []IngredientLine{
			{Name: "egg", Quantity: 2, Unit: "unit"},
			{Name: "bread", Quantity: 2, Unit: "slice"},
			{Name: "butter", Quantity: 10, Unit: "g"},
			{Name: "milk", Quantity: 30, Unit: "ml"},
		},
	},
	{
		ID: "banana-oat-porridge", Name: "Banana Oat Porridge", MealType: Breakfast,
		Tags: []string{TagVegetarian, TagKids}, FallbackCost: 14,
		Ingredients: []IngredientLine{
			{Name: "oats", Quantity: 60, Unit: "g"},
			{Name: "milk", Quantity: 200, Unit: "ml"},
			{Name: "banana", Quantity: 1, Unit: "unit"},
			{Name: "honey", Quantity: 10, Unit: "g"},
		},
	},
	{
		ID: "avocado-toast", Name: "Avocado Toast with Egg", MealType: Breakfast,
		Tags: []string{TagVegetarian}, FallbackCost: 24,
		Ingredients: []IngredientLine{
			{Name: "wholewheat bread", Quantity: 2, Unit: "slice"},
			{Name: "avocado", Quantity: 0.5, Unit: "unit"},
			{Name: "egg", Quantity: 1, Unit: "unit"},
			{Name: "lime", Quantity: 0.5, Unit: "unit"},
		},
	},
	{
		ID: "yogurt-granola-bowl", Name: "Yogurt and Granola Bowl", MealType: Breakfast,
		Tags: []string{TagVegetarian, TagKids}, FallbackCost: 20,
		Ingredients: []IngredientLine{
			{Name: "plain yogurt", Quantity: 170, Unit: "g"},
			{Name: "granola", Quantity: 50, Unit: "g"},
			{Name: "strawberry", Quantity: 80, Unit: "g"},
			{Name: "honey", Quantity: 8, Unit: "g"},
		},
	},
	{
		ID: "ham-cheese-omelette", Name: "Ham and Cheese Omelette", MealType: Breakfast,
		Tags: []string{TagPork}, FallbackCost: 26,
		Ingredients: []IngredientLine{
			{Name: "egg", Quantity: 3, Unit: "unit"},
			{Name: "ham", Quantity: 40, Unit: "g"},
			{Name: "mozzarella", Quantity: 30, Unit: "g"},
			{Name: "butter", Quantity: 10, Unit: "g"},
		},
	},
	{
		ID: "bacon-pancakes", Name: "Pancakes with Bacon", MealType: Breakfast,
		Tags: []string{TagPork, TagKids}, FallbackCost: 28,
		Ingredients: []IngredientLine{
			{Name: "flour", Quantity: 80, Unit: "g"},
			{Name: "egg", Quantity: 1, Unit: "unit"},
			{Name: "milk", Quantity: 120, Unit: "ml"},
			{Name: "bacon", Quantity: 40, Unit: "g"},
			{Name: "maple syrup", Quantity: 20, Unit: "ml"},
		},
	},
	{
		ID: "fruit-smoothie", Name: "Fruit and Oat Smoothie", MealType: Breakfast,
		Tags: []string{TagVegetarian, TagKids}, FallbackCost: 16,
		Ingredients: []IngredientLine{
			{Name: "banana", Quantity: 1, Unit: "unit"},
			{Name: "strawberry", Quantity: 60, Unit: "g"},
			{Name: "milk", Quantity: 250, Unit: "ml"},
			{Name: "oats", Quantity: 20, Unit: "g"},
		},
	},
	{
		ID: "peanut-butter-banana-toast", Name: "Peanut Butter Banana Toast", MealType: Breakfast,
		Tags: []string{TagVegetarian, TagKids}, FallbackCost: 15,
		Ingredients: []IngredientLine{
			{Name: "bread", Quantity: 2, Unit: "slice"},
			{Name: "peanut butter", Quantity: 30, Unit: "g"},
			{Name: "banana", Quantity: 1, Unit: "unit"},
		},
	},
	{
		ID: "shakshuka", Name: "Shakshuka", MealType: Breakfast,
		Tags: []string{TagVegetarian}, FallbackCost: 25,
		Ingredients: []IngredientLine{
			{Name: "egg", Quantity: 2, Unit: "unit"},
			{Name: "tomato", Quantity: 200, Unit: "g"},
			{Name: "bell pepper", Quantity: 60, Unit: "g"},
			{Name: "onion", Quantity: 50, Unit: "g"},
			{Name: "olive oil", Quantity: 10, Unit: "ml"},
		},
	},
	{
		ID: "smoked-salmon-bagel", Name: "Smoked Salmon Bagel", MealType: Breakfast,
		Tags: []string{TagSeafood}, FallbackCost: 38,
		Ingredients: []IngredientLine{
			{Name: "bagel", Quantity: 1, Unit: "unit"},
			{Name: "smoked salmon", Quantity: 60, Unit: "g"},
			{Name: "cream cheese", Quantity: 30, Unit: "g"},
			{Name: "lemon", Quantity: 0.25, Unit: "unit"},
		},
	},

	// --- Lunch ---
	{
		ID: "grilled-chicken-rice", Name: "Grilled Chicken with Rice", MealType: Lunch,
		Tags: []string{TagKids}, FallbackCost: 42,
		Ingredients: []IngredientLine{
			{Name: "chicken breast", Quantity: 150, Unit: "g"},
			{Name: "rice", Quantity: 90, Unit: "g"},
			{Name: "broccoli", Quantity: 80, Unit: "g"},
			{Name: "olive oil", Quantity: 10, Unit: "ml"},
		},
	},
	{
		ID: "beef-burger", Name: "Homemade Beef Burger", MealType: Lunch,
		Tags: []string{TagKids}, FallbackCost: 48,
		Ingredients: []IngredientLine{
			{Name: "ground beef", Quantity: 130, Unit: "g"},
			{Name: "burger bun", Quantity: 1, Unit: "unit"},
			{Name: "cheddar", Quantity: 30, Unit: "g"},
			{Name: "lettuce", Quantity: 30, Unit: "g"},
			{Name: "tomato", Quantity: 50, Unit: "g"},
		},
	},
	{
		ID: "tuna-salad", Name: "Tuna Salad Bowl", MealType: Lunch,
		Tags: []string{TagSeafood}, FallbackCost: 35,
		Ingredients: []IngredientLine{
			{Name: "canned tuna", Quantity: 80, Unit: "g"},
			{Name: "lettuce", Quantity: 60, Unit: "g"},
			{Name: "tomato", Quantity: 80, Unit: "g"},
			{Name: "cucumber", Quantity: 60, Unit: "g"},
			{Name: "olive oil", Quantity: 15, Unit: "ml"},
		},
	},
	{
		ID: "veggie-stir-fry", Name: "Vegetable Stir-Fry with Rice", MealType: Lunch,
		Tags: []string{TagVegetarian}, FallbackCost: 30,
		Ingredients: []IngredientLine{
			{Name: "rice", Quantity: 90, Unit: "g"},
			{Name: "bell pepper", Quantity: 80, Unit: "g"},
			{Name: "zucchini", Quantity: 80, Unit: "g"},
			{Name: "carrot", Quantity: 60, Unit: "g"},
			{Name: "soy sauce", Quantity: 15, Unit: "ml"},
			{Name: "vegetable oil", Quantity: 10, Unit: "ml"},
		},
	},
	{
		ID: "pork-sandwich", Name: "Pulled Pork Sandwich", MealType: Lunch,
		Tags: []string{TagPork}, FallbackCost: 44,
		Ingredients: []IngredientLine{
			{Name: "pork loin", Quantity: 140, Unit: "g"},
			{Name: "burger bun", Quantity: 1, Unit: "unit"},
			{Name: "cabbage", Quantity: 50, Unit: "g"},
			{Name: "barbecue sauce", Quantity: 25, Unit: "g"},
		},
	},
	{
		ID: "lentil-soup", Name: "Hearty Lentil Soup", MealType: Lunch,
		Tags: []string{TagVegetarian}, FallbackCost: 22,
		Ingredients: []IngredientLine{
			{Name: "lentils", Quantity: 80, Unit: "g"},
			{Name: "carrot", Quantity: 60, Unit: "g"},
			{Name: "onion", Quantity: 50, Unit: "g"},
			{Name: "garlic", Quantity: 6, Unit: "g"},
			{Name: "olive oil", Quantity: 10, Unit: "ml"},
		},
	},
	{
		ID: "chicken-caesar-wrap", Name: "Chicken Caesar Wrap", MealType: Lunch,
		Tags: []string{TagKids}, FallbackCost: 38,
		Ingredients: []IngredientLine{
			{Name: "tortilla", Quantity: 1, Unit: "unit"},
			{Name: "chicken breast", Quantity: 110, Unit: "g"},
			{Name: "lettuce", Quantity: 40, Unit: "g"},
			{Name: "parmesan", Quantity: 15, Unit: "g"},
			{Name: "caesar dressing", Quantity: 25, Unit: "g"},
		},
	},
	{
		ID: "shrimp-tacos", Name: "Shrimp Tacos", MealType: Lunch,
		Tags: []string{TagSeafood}, FallbackCost: 52,
		Ingredients: []IngredientLine{
			{Name: "shrimp", Quantity: 120, Unit: "g"},
			{Name: "tortilla", Quantity: 2, Unit: "unit"},
			{Name: "cabbage", Quantity: 40, Unit: "g"},
			{Name: "lime", Quantity: 0.5, Unit: "unit"},
			{Name: "cilantro", Quantity: 5, Unit: "g"},
		},
	},
	{
		ID: "caprese-pasta-salad", Name: "Caprese Pasta Salad", MealType: Lunch,
		Tags: []string{TagVegetarian}, FallbackCost: 32,
		Ingredients: []IngredientLine{
			{Name: "penne", Quantity: 90, Unit: "g"},
			{Name: "mozzarella", Quantity: 60, Unit: "g"},
			{Name: "tomato", Quantity: 100, Unit: "g"},
			{Name: "basil", Quantity: 5, Unit: "g"},
			{Name: "olive oil", Quantity: 15, Unit: "ml"},
		},
	},
	{
		ID: "chickpea-curry", Name: "Chickpea Coconut Curry", MealType: Lunch,
		Tags: []string{TagVegetarian}, FallbackCost: 28,
		Ingredients: []IngredientLine{
			{Name: "chickpeas", Quantity: 100, Unit: "g"},
			{Name: "coconut milk", Quantity: 120, Unit: "ml"},
			{Name: "rice", Quantity: 80, Unit: "g"},
			{Name: "onion", Quantity: 50, Unit: "g"},
			{Name: "curry paste", Quantity: 20, Unit: "g"},
		},
	},
	{
		ID: "ham-cheese-toastie", Name: "Ham and Cheese Toastie", MealType: Lunch,
		Tags: []string{TagPork, TagKids}, FallbackCost: 25,
		Ingredients: []IngredientLine{
			{Name: "bread", Quantity: 2, Unit: "slice"},
			{Name: "ham", Quantity: 50, Unit: "g"},
			{Name: "cheddar", Quantity: 40, Unit: "g"},
			{Name: "butter", Quantity: 10, Unit: "g"},
		},
	},
	{
		ID: "quinoa-veggie-bowl", Name: "Quinoa Veggie Bowl", MealType: Lunch,
		Tags: []string{TagVegetarian}, FallbackCost: 36,
		Ingredients: []IngredientLine{
			{Name: "quinoa", Quantity: 80, Unit: "g"},
			{Name: "sweet potato", Quantity: 120, Unit: "g"},
			{Name: "spinach", Quantity: 50, Unit: "g"},
			{Name: "avocado", Quantity: 0.5, Unit: "unit"},
			{Name: "tahini", Quantity: 15, Unit: "g"},
		},
	},

	// --- Dinner ---
	{
		ID: "spaghetti-bolognese", Name: "Spaghetti Bolognese", MealType: Dinner,
		Tags: []string{TagKids}, FallbackCost: 45,
		Ingredients: []IngredientLine{
			{Name: "spaghetti", Quantity: 100, Unit: "g"},
			{Name: "ground beef", Quantity: 120, Unit: "g"},
			{Name: "tomato sauce", Quantity: 150, Unit: "g"},
			{Name: "onion", Quantity: 50, Unit: "g"},
			{Name: "parmesan", Quantity: 10, Unit: "g"},
		},
	},
	{
		ID: "roast-chicken-potatoes", Name: "Roast Chicken with Potatoes", MealType: Dinner,
		Tags: []string{TagKids}, FallbackCost: 48,
		Ingredients: []IngredientLine{
			{Name: "chicken thigh", Quantity: 180, Unit: "g"},
			{Name: "potato", Quantity: 200, Unit: "g"},
			{Name: "carrot", Quantity: 80, Unit: "g"},
			{Name: "olive oil", Quantity: 15, Unit: "ml"},
			{Name: "garlic", Quantity: 8, Unit: "g"},
		},
	},
	{
		ID: "grilled-salmon-veg", Name: "Grilled Salmon with Vegetables", MealType: Dinner,
		Tags: []string{TagSeafood}, FallbackCost: 65,
		Ingredients: []IngredientLine{
			{Name: "salmon fillet", Quantity: 150, Unit: "g"},
			{Name: "green beans", Quantity: 100, Unit: "g"},
			{Name: "potato", Quantity: 150, Unit: "g"},
			{Name: "lemon", Quantity: 0.5, Unit: "unit"},
			{Name: "olive oil", Quantity: 10, Unit: "ml"},
		},
	},
	{
		ID: "pork-chops-apple", Name: "Pork Chops with Apple", MealType: Dinner,
		Tags: []string{TagPork}, FallbackCost: 50,
		Ingredients: []IngredientLine{
			{Name: "pork loin", Quantity: 170, Unit: "g"},
			{Name: "apple", Quantity: 1, Unit: "unit"},
			{Name: "potato", Quantity: 180, Unit: "g"},
			{Name: "butter", Quantity: 15, Unit: "g"},
		},
	},
	{
		ID: "vegetable-lasagna", Name: "Vegetable Lasagna", MealType: Dinner,
		Tags: []string{TagVegetarian}, FallbackCost: 38,
		Ingredients: []IngredientLine{
			{Name: "lasagna sheets", Quantity: 80, Unit: "g"},
			{Name: "zucchini", Quantity: 100, Unit: "g"},
			{Name: "spinach", Quantity: 60, Unit: "g"},
			{Name: "tomato sauce", Quantity: 150, Unit: "g"},
			{Name: "mozzarella", Quantity: 60, Unit: "g"},
		},
	},
	{
		ID: "fish-and-chips", Name: "Oven Fish and Chips", MealType: Dinner,
		Tags: []string{TagSeafood, TagKids}, FallbackCost: 55,
		Ingredients: []IngredientLine{
			{Name: "white fish fillet", Quantity: 160, Unit: "g"},
			{Name: "potato", Quantity: 220, Unit: "g"},
			{Name: "flour", Quantity: 40, Unit: "g"},
			{Name: "vegetable oil", Quantity: 25, Unit: "ml"},
			{Name: "lemon", Quantity: 0.25, Unit: "unit"},
		},
	},
	{
		ID: "beef-stir-fry", Name: "Beef and Broccoli Stir-Fry", MealType: Dinner,
		Tags: nil, FallbackCost: 58,
		Ingredients: []IngredientLine{
			{Name: "beef steak", Quantity: 140, Unit: "g"},
			{Name: "broccoli", Quantity: 100, Unit: "g"},
			{Name: "rice", Quantity: 90, Unit: "g"},
			{Name: "soy sauce", Quantity: 20, Unit: "ml"},
			{Name: "garlic", Quantity: 6, Unit: "g"},
		},
	},
	{
		ID: "mushroom-risotto", Name: "Mushroom Risotto", MealType: Dinner,
		Tags: []string{TagVegetarian}, FallbackCost: 40,
		Ingredients: []IngredientLine{
			{Name: "arborio rice", Quantity: 90, Unit: "g"},
			{Name: "mushroom", Quantity: 100, Unit: "g"},
			{Name: "parmesan", Quantity: 25, Unit: "g"},
			{Name: "butter", Quantity: 15, Unit: "g"},
			{Name: "onion", Quantity: 40, Unit: "g"},
		},
	},
	{
		ID: "chicken-fajitas", Name: "Chicken Fajitas", MealType: Dinner,
		Tags: []string{TagKids}, FallbackCost: 46,
		Ingredients: []IngredientLine{
			{Name: "chicken breast", Quantity: 140, Unit: "g"},
			{Name: "tortilla", Quantity: 2, Unit: "unit"},
			{Name: "bell pepper", Quantity: 80, Unit: "g"},
			{Name: "onion", Quantity: 60, Unit: "g"},
			{Name: "vegetable oil", Quantity: 10, Unit: "ml"},
		},
	},
	{
		ID: "sausage-bean-stew", Name: "Sausage and Bean Stew", MealType: Dinner,
		Tags: []string{TagPork}, FallbackCost: 42,
		Ingredients: []IngredientLine{
			{Name: "pork sausage", Quantity: 130, Unit: "g"},
			{Name: "black beans", Quantity: 90, Unit: "g"},
			{Name: "tomato sauce", Quantity: 120, Unit: "g"},
			{Name: "onion", Quantity: 50, Unit: "g"},
			{Name: "garlic", Quantity: 6, Unit: "g"},
		},
	},
	{
		ID: "garlic-shrimp-spaghetti", Name: "Garlic Shrimp Spaghetti", MealType: Dinner,
		Tags: []string{TagSeafood}, FallbackCost: 60,
		Ingredients: []IngredientLine{
			{Name: "spaghetti", Quantity: 100, Unit: "g"},
			{Name: "shrimp", Quantity: 130, Unit: "g"},
			{Name: "garlic", Quantity: 10, Unit: "g"},
			{Name: "olive oil", Quantity: 20, Unit: "ml"},
			{Name: "parsley", Quantity: 5, Unit: "g"},
		},
	},
	{
		ID: "stuffed-peppers", Name: "Rice Stuffed Peppers", MealType: Dinner,
		Tags: []string{TagVegetarian}, FallbackCost: 34,
		Ingredients: []IngredientLine{
			{Name: "bell pepper", Quantity: 150, Unit: "g"},
			{Name: "rice", Quantity: 80, Unit: "g"},
			{Name: "tomato sauce", Quantity: 100, Unit: "g"},
			{Name: "mozzarella", Quantity: 40, Unit: "g"},
			{Name: "onion", Quantity: 40, Unit: "g"},
		},
	},
}

// Curated kid-friendly ids for recipes that are fine for children without
// carrying the "kids" tag.
var kidFriendlyIDs = map[string]struct{}{
	"lentil-soup":         {},
	"caprese-pasta-salad": {},
	"mushroom-risotto":    {},
	"stuffed-peppers":     {},
	"veggie-stir-fry":     {},
}
