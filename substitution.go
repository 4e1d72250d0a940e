package recetario

import (
	"errors"
	"fmt"
	"slices"
)

// NoSubstitutionLabel is how the default choice is displayed.
const NoSubstitutionLabel = "----"

// Choice is the user decision for one recipe line: keep the ingredient, or
// substitute it. The zero value keeps it.
type Choice struct {
	substitute string
}

// NoSubstitution keeps the original ingredient and quantity.
func NoSubstitution() Choice { return Choice{} }

// Substitute replaces the original ingredient by ingredient.
func Substitute(ingredient string) Choice { return Choice{substitute: ingredient} }

// Substitute returns the chosen substitute, ok is false for NoSubstitution.
func (c Choice) Substitute() (ingredient string, ok bool) {
	return c.substitute, c.substitute != ""
}

func (c Choice) String() string {
	if s, ok := c.Substitute(); ok {
		return s
	}
	return NoSubstitutionLabel
}

// MenuLine is a recipe line after the substitution choice is applied.
type MenuLine struct {
	Original    string // ingredient of the recipe
	Ingredient  string // ingredient actually cooked
	Quantity    Quantity
	Group       string
	Substituted bool
	// Warning is set when the quantity could not be converted.
	Warning string
}

// Options returns the substitutes of a recipe line: every ingredient sharing
// its equivalence key except the ingredient itself. NoSubstitution is always
// an option and not part of the result.
func (e *Equivalences) Options(line RecipeLine) []string {
	var res []string
	for _, r := range e.ByKey(line.Key) {
		if r.Ingredient != line.Ingredient {
			res = append(res, r.Ingredient)
		}
	}
	return res
}

// Resolve applies choice to line.
//
// NoSubstitution, or a line without options, returns the original ingredient
// and quantity unchanged. A substitute gets the converted quantity rounded to
// the centigram. Conversion problems are not errors, they are reported in
// MenuLine.Warning: a missing equivalence keeps the original quantity, a zero
// equivalence gives zero.
func (e *Equivalences) Resolve(line RecipeLine, choice Choice) (MenuLine, error) {
	m := MenuLine{
		Original:   line.Ingredient,
		Ingredient: line.Ingredient,
		Quantity:   line.DryQuantity,
		Group:      line.Group,
	}
	substitute, ok := choice.Substitute()
	if !ok {
		return m, nil
	}
	options := e.Options(line)
	if !slices.Contains(options, substitute) {
		return m, fmt.Errorf("%q for %q (options are %q): %w", substitute, line.Ingredient, options, ErrNotSubstitutable)
	}

	m.Ingredient, m.Substituted = substitute, true
	c, err := e.Convert(line.Ingredient, substitute, line.DryQuantity)
	switch {
	case errors.Is(err, ErrNotFound):
		m.Warning = fmt.Sprintf("no equivalence for %q, quantity kept", line.Ingredient)
	case err != nil:
		return m, err
	case c.Degenerate:
		m.Quantity = Q(0)
		m.Warning = fmt.Sprintf("%q has an equivalence of 0 and cannot be converted", line.Ingredient)
	default:
		m.Quantity = c.Target.Round()
	}
	return m, nil
}
