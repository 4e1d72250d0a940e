package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/renderer"
	"github.com/google/subcommands"
)

type planCmd struct {
	dish    string
	choices choicesFlag
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "show a dish with substitution options" }
func (*planCmd) Usage() string {
	return `plan -d <dish> [-s <ingredient>=<substitute>]...

  Shows the recipe of a dish, the substitutes of every ingredient and the
  final menu once substitutions are applied. '----' keeps an ingredient.

  See 'rcp topic substitutions'.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	c.choices = choicesFlag{}
	f.StringVar(&c.dish, "d", "", "dish to plan")
	f.Var(c.choices, "s", "substitute an ingredient, <ingredient>=<substitute> (repeatable)")
}

// plan loads the kitchen and plans dish, printing errors.
func plan(dish string, choices map[string]recetario.Choice) (*recetario.Kitchen, *recetario.Menu, subcommands.ExitStatus) {
	if dish == "" {
		fmt.Fprintln(os.Stderr, "-d is required")
		return nil, nil, subcommands.ExitUsageError
	}
	k, err := OpenKitchen()
	if err != nil {
		return nil, nil, failure("Error loading kitchen: %v", err)
	}
	m, err := k.Plan(dish, choices)
	if err != nil {
		return nil, nil, failure("Error planning %q: %v", dish, err)
	}
	return k, m, subcommands.ExitSuccess
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, m, status := plan(c.dish, c.choices)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.PlanMarkdown(k.Equivalences, m))
	return subcommands.ExitSuccess
}
