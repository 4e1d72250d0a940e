package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/recetario"
	md "github.com/nao1215/markdown"
)

// DishesMarkdown lists the dishes of the cookbook by meal type. A non empty
// mealType restricts the list to that meal type.
func DishesMarkdown(c *recetario.Cookbook, mealType string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dishes")
	mealTypes := c.MealTypes()
	if mealType != "" {
		mealTypes = []string{mealType}
	}
	for _, m := range mealTypes {
		dishes := c.Dishes(m)
		if len(dishes) == 0 {
			doc.PlainText(fmt.Sprintf("No dish for %q.", m))
			continue
		}
		doc.H2(m)
		doc.BulletList(dishes...)
	}
	return doc.String()
}

// GroupsMarkdown lists the ingredients of every group with their equivalence.
func GroupsMarkdown(e *recetario.Equivalences) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ingredient Groups")
	for _, g := range e.Groups() {
		doc.H2(g)
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Ingredient", "Key", "Equivalence"},
			Rows:      [][]string{},
		}
		for _, r := range e.InGroup(g) {
			table.Rows = append(table.Rows, []string{r.Ingredient, r.Key, r.Value.Grams()})
		}
		doc.Table(table)
	}
	return doc.String()
}

// PlanMarkdown renders a menu: the original recipe with the substitution
// options of every ingredient, then the final menu.
func PlanMarkdown(e *recetario.Equivalences, m *recetario.Menu) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", m.Dish, m.MealType))

	doc.H2("Recipe")
	recipe := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Ingredient", "Dry Quantity", "Group", "Options"},
		Rows:      [][]string{},
	}
	for _, l := range m.Recipe {
		options := append([]string{recetario.NoSubstitutionLabel}, e.Options(l)...)
		recipe.Rows = append(recipe.Rows, []string{l.Ingredient, l.DryQuantity.Grams(), l.Group, strings.Join(options, ", ")})
	}
	doc.Table(recipe)

	doc.H2("Menu")
	menu := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Ingredient", "Quantity", "Group"},
		Rows:      [][]string{},
	}
	for _, l := range m.Lines {
		name := l.Ingredient
		if l.Substituted {
			name = fmt.Sprintf("%s (%s)", md.Bold(l.Ingredient), l.Original)
		}
		menu.Rows = append(menu.Rows, []string{name, l.Quantity.Grams(), l.Group})
	}
	doc.Table(menu)

	if w := m.Warnings(); len(w) > 0 {
		doc.H2("Warnings")
		doc.BulletList(w...)
	}
	return doc.String()
}
