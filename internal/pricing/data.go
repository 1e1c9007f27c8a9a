package pricing

// Reference prices, loaded once and never mutated. Prices are per unit in
// local currency. Ingredients missing from this table (or listed with a
// different unit in a recipe) are unpriced; the cost calculator then falls
// back to the recipe's static estimate.
var priceTable = map[string]Entry{
	// produce
	"banana":      {Unit: "unit", UnitPrice: 1.8},
	"apple":       {Unit: "unit", UnitPrice: 3.0},
	"avocado":     {Unit: "unit", UnitPrice: 8.0},
	"lemon":       {Unit: "unit", UnitPrice: 2.0},
	"lime":        {Unit: "unit", UnitPrice: 1.5},
	"strawberry":  {Unit: "g", UnitPrice: 0.05},
	"tomato":      {Unit: "g", UnitPrice: 0.012},
	"onion":       {Unit: "g", UnitPrice: 0.007},
	"garlic":      {Unit: "g", UnitPrice: 0.05},
	"potato":      {Unit: "g", UnitPrice: 0.008},
	"sweet potato": {Unit: "g", UnitPrice: 0.012},
	"carrot":      {Unit: "g", UnitPrice: 0.008},
	"lettuce":     {Unit: "g", UnitPrice: 0.018},
	"cabbage":     {Unit: "g", UnitPrice: 0.006},
	"cucumber":    {Unit: "g", UnitPrice: 0.011},
	"bell pepper": {Unit: "g", UnitPrice: 0.018},
	"zucchini":    {Unit: "g", UnitPrice: 0.013},
	"broccoli":    {Unit: "g", UnitPrice: 0.02},
	"spinach":     {Unit: "g", UnitPrice: 0.028},
	"mushroom":    {Unit: "g", UnitPrice: 0.032},
	"green beans": {Unit: "g", UnitPrice: 0.022},
	"cilantro":    {Unit: "g", UnitPrice: 0.06},
	"parsley":     {Unit: "g", UnitPrice: 0.06},
	"basil":       {Unit: "g", UnitPrice: 0.08},

	// meat
	"chicken breast": {Unit: "g", UnitPrice: 0.16},
	"chicken thigh":  {Unit: "g", UnitPrice: 0.11},
	"ground beef":    {Unit: "g", UnitPrice: 0.2},
	"beef steak":     {Unit: "g", UnitPrice: 0.3},
	"pork loin":      {Unit: "g", UnitPrice: 0.17},
	"pork sausage":   {Unit: "g", UnitPrice: 0.15},
	"bacon":          {Unit: "g", UnitPrice: 0.26},
	"ham":            {Unit: "g", UnitPrice: 0.2},

	// seafood
	"white fish fillet": {Unit: "g", UnitPrice: 0.27},
	"salmon fillet":     {Unit: "g", UnitPrice: 0.42},
	"smoked salmon":     {Unit: "g", UnitPrice: 0.55},
	"shrimp":            {Unit: "g", UnitPrice: 0.38},
	"canned tuna":       {Unit: "g", UnitPrice: 0.12},

	// dairy / eggs
	"egg":          {Unit: "unit", UnitPrice: 1.5},
	"butter":       {Unit: "g", UnitPrice: 0.09},
	"milk":         {Unit: "ml", UnitPrice: 0.007},
	"plain yogurt": {Unit: "g", UnitPrice: 0.025},
	"cream cheese": {Unit: "g", UnitPrice: 0.12},
	"mozzarella":   {Unit: "g", UnitPrice: 0.14},
	"cheddar":      {Unit: "g", UnitPrice: 0.13},
	"parmesan":     {Unit: "g", UnitPrice: 0.28},

	// bakery
	"bread":            {Unit: "slice", UnitPrice: 1.2},
	"wholewheat bread": {Unit: "slice", UnitPrice: 1.6},
	"bagel":            {Unit: "unit", UnitPrice: 5.5},
	"burger bun":       {Unit: "unit", UnitPrice: 3.5},
	"tortilla":         {Unit: "unit", UnitPrice: 3.0},

	// pantry
	"oats":            {Unit: "g", UnitPrice: 0.018},
	"granola":         {Unit: "g", UnitPrice: 0.055},
	"flour":           {Unit: "g", UnitPrice: 0.006},
	"honey":           {Unit: "g", UnitPrice: 0.07},
	"peanut butter":   {Unit: "g", UnitPrice: 0.08},
	"rice":            {Unit: "g", UnitPrice: 0.011},
	"arborio rice":    {Unit: "g", UnitPrice: 0.035},
	"quinoa":          {Unit: "g", UnitPrice: 0.045},
	"penne":           {Unit: "g", UnitPrice: 0.013},
	"spaghetti":       {Unit: "g", UnitPrice: 0.013},
	"lasagna sheets":  {Unit: "g", UnitPrice: 0.02},
	"lentils":         {Unit: "g", UnitPrice: 0.016},
	"chickpeas":       {Unit: "g", UnitPrice: 0.015},
	"black beans":     {Unit: "g", UnitPrice: 0.014},
	"olive oil":       {Unit: "ml", UnitPrice: 0.055},
	"vegetable oil":   {Unit: "ml", UnitPrice: 0.015},
	"soy sauce":       {Unit: "ml", UnitPrice: 0.03},
	"tomato sauce":    {Unit: "g", UnitPrice: 0.018},
	"coconut milk":    {Unit: "ml", UnitPrice: 0.022},
	"barbecue sauce":  {Unit: "g", UnitPrice: 0.04},
	"caesar dressing": {Unit: "g", UnitPrice: 0.06},

	// tahini, maple syrup and curry paste are deliberately absent: the
	// recipes using them price via their fallback cost.
}
