package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	cryptax "github.com/MatthewLM/gocryptax"
	"github.com/MatthewLM/gocryptax/renderer"
	"github.com/google/subcommands"
)

// disposalsCmd holds the flags for the 'disposals' subcommand.
type disposalsCmd struct {
	baseCmd
}

func (*disposalsCmd) Name() string     { return "disposals" }
func (*disposalsCmd) Synopsis() string { return "list of asset disposals as CSV" }
func (*disposalsCmd) Usage() string {
	return `cryptax disposals [-d <dir>] [-c <currency>] <start> <end>

  Outputs every disposal realized between the two dates as CSV: date, asset,
  matched cost, proceeds and gain.
`
}

func (c *disposalsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *disposalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := c.period(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	system, err := c.loadGainsSystem()
	if err != nil {
		return c.fail(err)
	}

	report, err := system.CapitalGains(period, cryptax.GainsOptions{Disposals: true})
	if err != nil {
		return c.fail(err)
	}

	if err := renderer.DisposalsCSV(os.Stdout, report); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
