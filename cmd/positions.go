package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hweili/daybook/renderer"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	date string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the positions held on a date" }
func (*positionsCmd) Usage() string {
	return `dbk positions [-d <date>]

  Replays the journal and displays the positions held on a date with their
  weighted-average cost basis.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the positions. Defaults to the latest recorded day.")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := loadAccount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	on, err := parseDay(account, c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.PositionsMarkdown(on, account.PositionsOn(on)))

	return subcommands.ExitSuccess
}
