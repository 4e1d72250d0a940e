package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the history to a spreadsheet for editing" }
func (*exportCmd) Usage() string {
	return `export -o <file.xlsx>

  Writes the whole history, most recent first, to a spreadsheet. Edit it
  with any spreadsheet tool, then replace the history with 'rcp import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "spreadsheet to write")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "-o is required")
		return subcommands.ExitUsageError
	}
	h, err := OpenStore().Export(c.output)
	if err != nil {
		return failure("Error exporting history: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", h.Len(), c.output)
	return subcommands.ExitSuccess
}
