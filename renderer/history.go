package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/date"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders history entries as a table, in the given order.
func HistoryMarkdown(entries []recetario.Entry, span date.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("History")
	if len(entries) == 0 {
		doc.PlainText("No meal matches the filters.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d entries from %s to %s.", len(entries), span.From, span.To))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Time", "Meal", "Dish", "Ingredient", "Quantity", "Group"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			e.Time.String(),
			e.MealType,
			e.Dish,
			e.Ingredient,
			e.Quantity.Grams(),
			e.Group,
		})
	}
	doc.Table(table)
	return doc.String()
}

// TotalsMarkdown renders the grams of an ingredient group per period.
func TotalsMarkdown(group string, p date.Period, totals *date.History[recetario.Quantity]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s per %s", group, periodName(p)))
	if totals.Len() == 0 {
		doc.PlainText(fmt.Sprintf("Nothing from %q was cooked.", group))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Period", "Quantity"},
		Rows:      [][]string{},
	}
	var sum recetario.Quantity
	for day, q := range totals.Values() {
		table.Rows = append(table.Rows, []string{p.Range(day).String(), q.Grams()})
		sum = sum.Add(q)
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(sum.Grams())})
	doc.Table(table)
	return doc.String()
}

func periodName(p date.Period) string {
	switch p {
	case date.Weekly:
		return "week"
	case date.Monthly:
		return "month"
	case date.Yearly:
		return "year"
	default:
		return "day"
	}
}
