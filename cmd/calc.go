package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wicaksana/mkbd"
	"github.com/wicaksana/mkbd/renderer"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	filing  string
	asJSON  bool
	rate    float64
	minimum float64
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the MKBD figures from a filing" }
func (*calcCmd) Usage() string {
	return `mkbdc calc [-f <filing>] [-json] [-rate <percent>] [-min <amount>]

  Computes the adjusted net working capital (MKBD) from the filing tables:
  base quantities, ranking liabilities, working capital, adjusted MKBD and
  the surplus or deficit. The filing is never modified.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filing, "f", "", "Filing to compute. Defaults to the -filing-file flag.")
	f.BoolVar(&c.asJSON, "json", false, "Emit the result as JSON instead of a report.")
	f.Float64Var(&c.rate, "rate", 0, "Concentration threshold as a percentage of equity. 0 keeps the default.")
	f.Float64Var(&c.minimum, "min", 0, "Statutory minimum required MKBD in IDR. 0 keeps the default.")
}

func (c *calcCmd) config() *mkbd.Config {
	var o mkbd.Overrides
	if c.rate > 0 {
		o.ConcentrationRate = mkbd.Percent(c.rate)
	}
	if c.minimum > 0 {
		o.StatutoryMinimum = mkbd.IDR(c.minimum)
	}
	return mkbd.DefaultConfig().With(o)
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tables, err := DecodeFiling(c.filing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result := mkbd.Calculate(tables, c.config())

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ResultMarkdown(result))
	return subcommands.ExitSuccess
}
