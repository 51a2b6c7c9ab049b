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

// gainCmd holds the flags for the 'gain' subcommand.
type gainCmd struct {
	baseCmd
}

func (*gainCmd) Name() string     { return "gain" }
func (*gainCmd) Synopsis() string { return "summary of asset gains, losses and Section 104 holdings" }
func (*gainCmd) Usage() string {
	return `cryptax gain [-d <dir>] [-c <currency>] <start> <end>

  Calculates the capital gain or loss realized per asset between the two
  dates, and the Section 104 holdings standing at the end date.
`
}

func (c *gainCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *gainCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := c.period(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	system, err := c.loadGainsSystem()
	if err != nil {
		return c.fail(err)
	}

	report, err := system.CapitalGains(period, cryptax.GainsOptions{Summary: true})
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(os.Stderr, disclaimer)
	printMarkdown(renderer.GainsMarkdown(report))
	return subcommands.ExitSuccess
}
