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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	date string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the daily report for a date" }
func (*reportCmd) Usage() string {
	return `dbk report [-d <date>]

  Replays the journal and displays the daily report for a date: cash,
  position value, total assets, daily return, positions and trades.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the report. Defaults to the latest recorded day.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := daybook.NewDailyReport(account, on)
	printMarkdown(renderer.DailyMarkdown(report))

	return subcommands.ExitSuccess
}
