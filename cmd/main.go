package cmd

import (
	"github.com/google/subcommands"
)

// groups of subcommands, in help order.
var groups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"kitchen", []subcommands.Command{&dishesCmd{}, &planCmd{}, &cookCmd{}, &convertCmd{}, &groupsCmd{}}},
	{"history", []subcommands.Command{&historyCmd{}, &totalsCmd{}, &exportCmd{}, &importCmd{}}},
	{"help", []subcommands.Command{&assistCmd{}, &topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Commands returns all the subcommands.
func Commands() []subcommands.Command {
	var res []subcommands.Command
	for _, g := range groups {
		res = append(res, g.commands...)
	}
	return res
}

// IsCommand reports whether name is a subcommand of rcp, or one of the help commands.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
