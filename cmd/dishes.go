package cmd

import (
	"context"
	"flag"

	"github.com/etnz/recetario/renderer"
	"github.com/google/subcommands"
)

type dishesCmd struct {
	mealType string
}

func (*dishesCmd) Name() string     { return "dishes" }
func (*dishesCmd) Synopsis() string { return "list the dishes of the cookbook" }
func (*dishesCmd) Usage() string {
	return `dishes [-m <meal type>]

  Lists the dishes of the cookbook grouped by meal type.
`
}

func (c *dishesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mealType, "m", "", "only list the dishes of this meal type")
}

func (c *dishesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := OpenKitchen()
	if err != nil {
		return failure("Error loading kitchen: %v", err)
	}
	printMarkdown(renderer.DishesMarkdown(k.Cookbook, c.mealType))
	return subcommands.ExitSuccess
}
