package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/wicaksana/mkbd"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	outputFile string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "fetch a workbook from the reporting service and emit it as a filing"
}
func (*importCmd) Usage() string {
	return `mkbdc import [-o <output>] <url>

  Fetches a workbook JSON payload from the reporting service, extracts the
  report tables and writes them as a JSONL filing (stdout by default).
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file for the imported filing. Defaults to stdout.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one workbook URL")
		return subcommands.ExitUsageError
	}

	tables, err := mkbd.FetchWorkbook(http.DefaultClient, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching workbook: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeFiling(c.outputFile, tables); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Imported %d tables.\n", len(tables))
	return subcommands.ExitSuccess
}
