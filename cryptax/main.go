package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/MatthewLM/gocryptax/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: runs and exits only when invoked by the shell.
	calculation := &complete.Command{
		Flags: map[string]complete.Predictor{
			"d": predict.Dirs("*"),
			"c": predict.Nothing,
		},
	}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"gain":      calculation,
			"disposals": calculation,
			"income":    calculation,
			"txs":       calculation,
			"topic":     {Args: predict.Set{"readme", "formats", "rules"}},
		},
	}
	completion.Complete("cryptax")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
