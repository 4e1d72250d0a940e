package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/recetario/date"
	"github.com/etnz/recetario/renderer"
	"github.com/google/subcommands"
)

type cookCmd struct {
	dish    string
	choices choicesFlag
	on      string
	at      string
}

func (*cookCmd) Name() string     { return "cook" }
func (*cookCmd) Synopsis() string { return "save a meal in the history" }
func (*cookCmd) Usage() string {
	return `cook -d <dish> [-s <ingredient>=<substitute>]... [-date <date>] [-time <time>]

  Plans the dish like 'plan' and appends the final menu to the history, one
  row per ingredient. The date and time default to now.

  See 'rcp topic dates' for the accepted formats.
`
}

func (c *cookCmd) SetFlags(f *flag.FlagSet) {
	c.choices = choicesFlag{}
	f.StringVar(&c.dish, "d", "", "dish cooked")
	f.Var(c.choices, "s", "substitute an ingredient, <ingredient>=<substitute> (repeatable)")
	f.StringVar(&c.on, "date", "0d", "date of the meal")
	f.StringVar(&c.at, "time", "", "time of the meal, HH:MM[:SS] (default now)")
}

func (c *cookCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.ParseFlexible(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -date: %v\n", err)
		return subcommands.ExitUsageError
	}
	at := date.Now()
	if c.at != "" {
		if at, err = date.ParseClock(c.at); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -time: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	k, m, status := plan(c.dish, c.choices)
	if status != subcommands.ExitSuccess {
		return status
	}
	store := OpenStore()
	h, err := store.Append(m.Entries(on, at)...)
	if err != nil {
		return failure("Error saving meal: %v", err)
	}
	printMarkdown(renderer.PlanMarkdown(k.Equivalences, m))
	fmt.Fprintf(os.Stderr, "Saved %s on %s at %s in %s (%d entries)\n", m.Dish, on, at, store.Path, h.Len())
	return subcommands.ExitSuccess
}
