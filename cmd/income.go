package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MatthewLM/gocryptax/renderer"
	"github.com/google/subcommands"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	baseCmd
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "summary of revenue and expenses per asset" }
func (*incomeCmd) Usage() string {
	return `cryptax income [-d <dir>] [-c <currency>] <start> <end>

  Sums the revenue and expenditure of the income transactions between the
  two dates, valued in the reporting currency.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := c.period(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	system, err := c.loadIncomeSystem()
	if err != nil {
		return c.fail(err)
	}

	report, err := system.Income(period)
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(os.Stderr, disclaimer)
	printMarkdown(renderer.IncomeMarkdown(report))
	return subcommands.ExitSuccess
}
