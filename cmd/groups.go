package cmd

import (
	"context"
	"flag"

	"github.com/etnz/recetario/renderer"
	"github.com/google/subcommands"
)

type groupsCmd struct{}

func (*groupsCmd) Name() string     { return "groups" }
func (*groupsCmd) Synopsis() string { return "list ingredient groups and equivalences" }
func (*groupsCmd) Usage() string {
	return `groups

  Lists every ingredient of the equivalences table, by group.
`
}

func (c *groupsCmd) SetFlags(f *flag.FlagSet) {}

func (c *groupsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := OpenKitchen()
	if err != nil {
		return failure("Error loading kitchen: %v", err)
	}
	printMarkdown(renderer.GroupsMarkdown(k.Equivalences))
	return subcommands.ExitSuccess
}
