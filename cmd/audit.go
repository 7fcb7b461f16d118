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

// auditCmd holds the flags for the 'audit' subcommand.
type auditCmd struct {
	filing string
}

func (*auditCmd) Name() string { return "audit" }
func (*auditCmd) Synopsis() string {
	return "display the cells the correction pass would overwrite"
}
func (*auditCmd) Usage() string {
	return `mkbdc audit [-f <filing>]

  Runs the correction pass without writing anything and displays the audit
  trail: every cell that would be overwritten, with its current value, the
  corrected value and the formula behind it.
`
}

func (c *auditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filing, "f", "", "Filing to audit. Defaults to the -filing-file flag.")
}

func (c *auditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tables, err := DecodeFiling(c.filing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	_, result := mkbd.ApplyCorrections(tables, nil)

	printMarkdown(renderer.CorrectionsMarkdown(result.Corrections))
	return subcommands.ExitSuccess
}
