package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MatthewLM/gocryptax/renderer"
	"github.com/google/subcommands"
)

// txsCmd holds the flags for the 'txs' subcommand.
type txsCmd struct {
	baseCmd
}

func (*txsCmd) Name() string     { return "txs" }
func (*txsCmd) Synopsis() string { return "income calculation for each transaction as CSV" }
func (*txsCmd) Usage() string {
	return `cryptax txs [-d <dir>] [-c <currency>] <start> <end>

  Outputs the income calculation of every transaction between the two dates
  as CSV: the original asset amount, the price used, and the resulting
  revenue or expense in the reporting currency.
`
}

func (c *txsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *txsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := renderer.IncomeTxsCSV(os.Stdout, report); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
