package recetario

import "slices"

// RecipeLine is one ingredient of a dish in the cookbook.
type RecipeLine struct {
	MealType    string
	Dish        string
	Ingredient  string
	DryQuantity Quantity
	Key         string // equivalence key of the substitutes
	Group       string
}

// Cookbook is the read-only recipes table.
type Cookbook struct {
	lines []RecipeLine
}

// NewCookbook returns a cookbook made of lines, kept in order.
func NewCookbook(lines ...RecipeLine) *Cookbook {
	return &Cookbook{lines: slices.Clone(lines)}
}

// Len returns the number of recipe lines.
func (c *Cookbook) Len() int { return len(c.lines) }

// MealTypes returns the meal types in order of first appearance.
func (c *Cookbook) MealTypes() []string {
	var res []string
	for _, l := range c.lines {
		if !slices.Contains(res, l.MealType) {
			res = append(res, l.MealType)
		}
	}
	return res
}

// Dishes returns the dishes of a meal type in order of first appearance.
// An empty mealType returns all dishes.
func (c *Cookbook) Dishes(mealType string) []string {
	var res []string
	for _, l := range c.lines {
		if mealType != "" && l.MealType != mealType {
			continue
		}
		if !slices.Contains(res, l.Dish) {
			res = append(res, l.Dish)
		}
	}
	return res
}

// Recipe returns the lines of a dish, or nil if the dish is unknown.
func (c *Cookbook) Recipe(dish string) []RecipeLine {
	var res []RecipeLine
	for _, l := range c.lines {
		if l.Dish == dish {
			res = append(res, l)
		}
	}
	return res
}
