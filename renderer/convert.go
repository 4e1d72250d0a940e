package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/recetario"
	md "github.com/nao1215/markdown"
)

// ConversionMarkdown renders a single conversion.
func ConversionMarkdown(c recetario.Conversion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Equivalence")
	if c.Degenerate {
		doc.PlainText(fmt.Sprintf("%s has an equivalence of 0, it cannot be converted.", md.Bold(c.From)))
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%s g of %s weigh as much as %s g of %s.",
		c.Source.Grams(), md.Bold(c.From), md.Bold(c.Target.Round().Grams()), md.Bold(c.To)))
	return doc.String()
}

// TargetsMarkdown renders the conversions of a quantity into every possible target.
func TargetsMarkdown(source recetario.Equivalence, conversions []recetario.Conversion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Equivalences of %s", source.Ingredient))
	doc.PlainText(fmt.Sprintf("Group %s, key %s, equivalence %s.", md.Bold(source.Group), md.Bold(source.Key), source.Value.Grams()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Ingredient", "From", "Quantity"},
		Rows:      [][]string{},
	}
	for _, c := range conversions {
		q := c.Target.Round().Grams()
		if c.Degenerate {
			q = "n/a"
		}
		table.Rows = append(table.Rows, []string{c.To, c.Source.Grams() + " g of " + c.From, q})
	}
	doc.Table(table)
	return doc.String()
}
