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

type convertCmd struct {
	from, to string
	weight   string
	all      bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a quantity between equivalent ingredients" }
func (*convertCmd) Usage() string {
	return `convert -from <ingredient> [-to <ingredient>] [-w <grams>] [-all]

  Computes the grams of -to weighing as much as -w grams of -from.
  Without -to, lists the conversion into every ingredient with the same
  equivalence key, or of the same group with -all.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "ingredient to convert from")
	f.StringVar(&c.to, "to", "", "ingredient to convert to")
	f.StringVar(&c.weight, "w", "", "grams to convert (default the equivalence of -from)")
	f.BoolVar(&c.all, "all", false, "list every ingredient of the group, not only the same key")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "-from is required")
		return subcommands.ExitUsageError
	}
	k, err := OpenKitchen()
	if err != nil {
		return failure("Error loading kitchen: %v", err)
	}
	source, ok := k.Equivalences.Lookup(c.from)
	if !ok {
		return failure("Unknown ingredient %q: %v", c.from, recetario.ErrNotFound)
	}
	q := source.Value
	if c.weight != "" {
		if q, err = recetario.ParseQuantity(c.weight); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -w: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if c.to != "" {
		conv, err := k.Equivalences.Convert(c.from, c.to, q)
		if err != nil {
			return failure("Error converting: %v", err)
		}
		printMarkdown(renderer.ConversionMarkdown(conv))
		return subcommands.ExitSuccess
	}

	targets, err := k.Equivalences.Targets(c.from, c.all)
	if err != nil {
		return failure("Error listing targets: %v", err)
	}
	conversions := make([]recetario.Conversion, 0, len(targets))
	for _, t := range targets {
		conv, err := k.Equivalences.Convert(c.from, t.Ingredient, q)
		if err != nil {
			return failure("Error converting: %v", err)
		}
		conversions = append(conversions, conv)
	}
	printMarkdown(renderer.TargetsMarkdown(source, conversions))
	return subcommands.ExitSuccess
}
