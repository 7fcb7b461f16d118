package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/wicaksana/mkbd/cmd"
)

// completion describes the CLI for shell completion. It must be consulted
// before flag.Parse: in completion mode Complete exits the process.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"filing-file": predict.Files("*.jsonl"),
	},
	Sub: map[string]*complete.Command{
		"calc": {Flags: map[string]complete.Predictor{
			"f":    predict.Files("*.jsonl"),
			"json": predict.Nothing,
			"rate": predict.Something,
			"min":  predict.Something,
		}},
		"correct": {Flags: map[string]complete.Predictor{
			"f":     predict.Files("*.jsonl"),
			"o":     predict.Files("*.jsonl"),
			"audit": predict.Nothing,
		}},
		"audit": {Flags: map[string]complete.Predictor{
			"f": predict.Files("*.jsonl"),
		}},
		"import": {Flags: map[string]complete.Predictor{
			"o": predict.Files("*.jsonl"),
		}},
		"assist": {Flags: map[string]complete.Predictor{
			"f": predict.Files("*.jsonl"),
		}},
		"topic": {},
	},
}

func main() {
	name := path.Base(os.Args[0])
	completion.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
