package recetario

import (
	"cmp"
	"fmt"
	"slices"
)

// Equivalence is the reference weight of an ingredient.
//
// Ingredients sharing a Key are substitutable: Value grams of one are worth
// Value grams of any other.
type Equivalence struct {
	Ingredient string
	Key        string
	Value      Quantity
	Group      string
}

// Equivalences is the read-only equivalences table, indexed by ingredient.
type Equivalences struct {
	rows  []Equivalence
	index map[string]int
}

// NewEquivalences returns the table of rows. When an ingredient appears twice, the first row wins.
func NewEquivalences(rows ...Equivalence) *Equivalences {
	e := &Equivalences{index: make(map[string]int, len(rows))}
	for _, r := range rows {
		if _, exists := e.index[r.Ingredient]; exists {
			continue
		}
		e.index[r.Ingredient] = len(e.rows)
		e.rows = append(e.rows, r)
	}
	return e
}

// Len returns the number of ingredients.
func (e *Equivalences) Len() int { return len(e.rows) }

// Lookup returns the equivalence of an ingredient.
func (e *Equivalences) Lookup(ingredient string) (Equivalence, bool) {
	i, ok := e.index[ingredient]
	if !ok {
		return Equivalence{}, false
	}
	return e.rows[i], true
}

// ByKey returns the rows sharing key, in table order.
func (e *Equivalences) ByKey(key string) []Equivalence {
	var res []Equivalence
	for _, r := range e.rows {
		if r.Key == key {
			res = append(res, r)
		}
	}
	return res
}

// Groups returns the sorted list of ingredient groups.
func (e *Equivalences) Groups() []string {
	var groups []string
	for _, r := range e.rows {
		if r.Group != "" && !slices.Contains(groups, r.Group) {
			groups = append(groups, r.Group)
		}
	}
	slices.Sort(groups)
	return groups
}

// InGroup returns the rows of a group sorted by ingredient.
func (e *Equivalences) InGroup(group string) []Equivalence {
	var res []Equivalence
	for _, r := range e.rows {
		if r.Group == group {
			res = append(res, r)
		}
	}
	slices.SortFunc(res, byIngredient)
	return res
}

// Targets returns the ingredients a source can be converted to, sorted by name.
//
// Targets belong to the source's group. Unless all is set, they also share the
// source's equivalence key. The source itself is part of the result.
func (e *Equivalences) Targets(source string, all bool) ([]Equivalence, error) {
	src, ok := e.Lookup(source)
	if !ok {
		return nil, fmt.Errorf("%q: %w", source, ErrNotFound)
	}
	var res []Equivalence
	for _, r := range e.InGroup(src.Group) {
		if all || r.Key == src.Key {
			res = append(res, r)
		}
	}
	return res, nil
}

func byIngredient(a, b Equivalence) int { return cmp.Compare(a.Ingredient, b.Ingredient) }

// Conversion is the result of converting a quantity of an ingredient into another.
type Conversion struct {
	From, To       string
	Source, Target Quantity
	// Degenerate is set when the source equivalence is zero, Target is then zero.
	Degenerate bool
}

// Convert computes how much of target weighs as much as q of source:
//
//	q * value(target) / value(source)
//
// It fails with ErrNotFound if either ingredient is missing from the table.
// A source equivalence of zero is not an error: the Conversion is degenerate and zero.
// The result is exact, use Quantity.Round for display or storage.
func (e *Equivalences) Convert(source, target string, q Quantity) (Conversion, error) {
	c := Conversion{From: source, To: target, Source: q}
	src, ok := e.Lookup(source)
	if !ok {
		return c, fmt.Errorf("cannot convert from %q: %w", source, ErrNotFound)
	}
	dst, ok := e.Lookup(target)
	if !ok {
		return c, fmt.Errorf("cannot convert to %q: %w", target, ErrNotFound)
	}
	if !src.Value.IsPositive() {
		c.Degenerate = true
		return c, nil
	}
	c.Target = q.Mul(dst.Value).Div(src.Value)
	return c, nil
}
