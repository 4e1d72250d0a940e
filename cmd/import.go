package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/recetario/xlsx"
	"github.com/google/subcommands"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the history with an edited spreadsheet" }
func (*importCmd) Usage() string {
	return `import -i <file.xlsx>

  Replaces the whole history with the content of a spreadsheet, typically
  one written by 'rcp export' then edited. Every row must have a valid date:
  on any error the history is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "spreadsheet to read")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i is required")
		return subcommands.ExitUsageError
	}
	t, err := xlsx.ReadFile(c.input)
	if err != nil {
		return failure("Error reading %q: %v", c.input, err)
	}
	store := OpenStore()
	h, err := store.BulkReplace(t)
	if err != nil {
		return failure("Error replacing history, nothing was changed: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Replaced %s with %d entries\n", store.Path, h.Len())
	return subcommands.ExitSuccess
}
