package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/date"
	"github.com/etnz/recetario/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	start, end string
	period     string
	mealTypes  listFlag
	dishes     listFlag
	groups     listFlag
	query      string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the meals cooked" }
func (*historyCmd) Usage() string {
	return `history [-s <date>] [-e <date>] [-p <period>] [-m <meal type>]... [-d <dish>]... [-g <group>]... [-q <jsonpath>]

  Displays the history, most recent first. Filters are combined, repeated
  values of the same filter are alternatives.

  See 'rcp topic history'.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "first date, included (default the oldest meal)")
	f.StringVar(&c.end, "e", "", "last date, included (default the latest meal)")
	f.StringVar(&c.period, "p", "", "restrict to the current day, week, month or year")
	f.Var(&c.mealTypes, "m", "meal type (repeatable)")
	f.Var(&c.dishes, "d", "dish (repeatable)")
	f.Var(&c.groups, "g", "ingredient group (repeatable)")
	f.StringVar(&c.query, "q", "", "print the result of a JSONPath query over the filtered entries")
}

// dateRange resolves the date flags over span.
func dateRange(span date.Range, start, end, period string) (date.Range, error) {
	r := span
	if period != "" {
		p, err := date.ParsePeriod(period)
		if err != nil {
			return r, err
		}
		r = p.Range(date.Today())
	}
	if start != "" {
		d, err := date.ParseFlexible(start)
		if err != nil {
			return r, fmt.Errorf("invalid -s: %w", err)
		}
		r.From = d
	}
	if end != "" {
		d, err := date.ParseFlexible(end)
		if err != nil {
			return r, fmt.Errorf("invalid -e: %w", err)
		}
		r.To = d
	}
	return date.NewRange(r.From, r.To), nil
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, empty, err := LoadHistory()
	if err != nil {
		return failure("Error loading history: %v", err)
	}
	if empty {
		fmt.Fprintln(os.Stderr, "No meal saved yet, use 'rcp cook' to save one.")
		return subcommands.ExitSuccess
	}

	span, _ := h.Span()
	r, err := dateRange(span, c.start, c.end, c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	filter := recetario.Filter{Range: r, MealTypes: c.mealTypes, Dishes: c.dishes, Groups: c.groups}
	entries := h.Filter(filter)

	if c.query != "" {
		res, err := recetario.NewHistory(entries...).Query(c.query)
		if err != nil {
			return failure("Error querying history: %v", err)
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return failure("Error printing result: %v", err)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HistoryMarkdown(entries, r))
	return subcommands.ExitSuccess
}
