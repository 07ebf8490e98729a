// Package cmd implements the CLI application to inspect a daily ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hweili/daybook"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&positionsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", "journal.csv", "Path to the journal file to replay (CSV format)")
var currency = flag.String("currency", "CNY", "Currency all journal amounts are denominated in")

// loadAccount replays the journal file into a fresh account.
func loadAccount() (*daybook.Account, error) {
	f, err := os.Open(*journalFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open journal %q: %w", *journalFile, err)
	}
	defer f.Close()

	account, err := daybook.ImportJournal(f, *currency)
	if err != nil {
		return nil, fmt.Errorf("cannot replay journal %q: %w", *journalFile, err)
	}
	return account, nil
}

// printMarkdown renders markdown for the terminal and prints it.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// parseDay resolves the -d flag: an empty value defaults to the latest known
// day of the account.
func parseDay(account *daybook.Account, str string) (daybook.Date, error) {
	if str == "" {
		on, ok := account.LastDay()
		if !ok {
			return daybook.Date{}, fmt.Errorf("the journal records no days")
		}
		return on, nil
	}
	return daybook.ParseDate(str)
}
