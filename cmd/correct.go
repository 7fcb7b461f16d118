package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wicaksana/mkbd"
	"github.com/wicaksana/mkbd/renderer"
)

// correctCmd holds the flags for the 'correct' subcommand.
type correctCmd struct {
	filing     string
	outputFile string
	audit      bool
}

func (*correctCmd) Name() string { return "correct" }
func (*correctCmd) Synopsis() string {
	return "write the computed figures back into a corrected copy of the filing"
}
func (*correctCmd) Usage() string {
	return `mkbdc correct [-f <filing>] [-o <output>] [-audit]

  Computes the MKBD figures and overwrites the derived cells in a copy of
  the filing: the ranking total, the working capital rows, the adjusted
  MKBD and the surplus or deficit. The input filing is never modified.
  The corrected tables are written as JSONL to the output (stdout by
  default); -audit prints the audit trail of overwritten cells to stderr.
`
}

func (c *correctCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filing, "f", "", "Filing to correct. Defaults to the -filing-file flag.")
	f.StringVar(&c.outputFile, "o", "", "Output file for the corrected tables. Defaults to stdout.")
	f.BoolVar(&c.audit, "audit", false, "Print the audit trail of corrected cells to stderr.")
}

func (c *correctCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tables, err := DecodeFiling(c.filing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	corrected, result := mkbd.ApplyCorrections(tables, nil)

	if err := EncodeFiling(c.outputFile, corrected); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.audit {
		fmt.Fprint(os.Stderr, renderer.CorrectionsMarkdown(result.Corrections))
	}
	return subcommands.ExitSuccess
}
