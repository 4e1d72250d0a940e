package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/date"
	"github.com/etnz/recetario/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct {
	group      string
	period     string
	start, end string
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "sum the grams of an ingredient group over time" }
func (*totalsCmd) Usage() string {
	return `totals -g <group> [-p <period>] [-s <date>] [-e <date>]

  Sums the grams of the ingredients of a group cooked per day, week, month
  or year.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "ingredient group")
	f.StringVar(&c.period, "p", "daily", "aggregation period: daily, weekly, monthly or yearly")
	f.StringVar(&c.start, "s", "", "first date, included")
	f.StringVar(&c.end, "e", "", "last date, included")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.group == "" {
		fmt.Fprintln(os.Stderr, "-g is required")
		return subcommands.ExitUsageError
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -p: %v\n", err)
		return subcommands.ExitUsageError
	}

	h, empty, err := LoadHistory()
	if err != nil {
		return failure("Error loading history: %v", err)
	}
	if empty {
		fmt.Fprintln(os.Stderr, "No meal saved yet, use 'rcp cook' to save one.")
		return subcommands.ExitSuccess
	}
	span, _ := h.Span()
	r, err := dateRange(span, c.start, c.end, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	totals := recetario.Aggregate(h.Totals(c.group, recetario.Filter{Range: r}), p)
	printMarkdown(renderer.TotalsMarkdown(c.group, p, totals))
	return subcommands.ExitSuccess
}
