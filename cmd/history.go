package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hweili/daybook"
	"github.com/hweili/daybook/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display total assets and return for every recorded day" }
func (*historyCmd) Usage() string {
	return `dbk history

  Replays the journal and displays one row per recorded day with the total
  assets and the day-over-day return.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := loadAccount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(daybook.AssetHistory(account)))

	return subcommands.ExitSuccess
}
