package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/banking/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, active only when invoked by the shell's
	// completion machinery.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"session": {},
			"demo": {
				Flags: map[string]complete.Predictor{"pin": predict.Nothing},
			},
			"topic": {
				Args: predict.Set{"readme", "accounts", "security"},
			},
		},
		Flags: map[string]complete.Predictor{
			"config-file": predict.Files("*.yaml"),
		},
	}
	completion.Complete("bnk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
