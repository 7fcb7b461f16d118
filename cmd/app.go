// Package cmd implements the CLI application to compute and correct MKBD
// filings.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/wicaksana/mkbd"
)

// Commands lists the subcommands registered by the main package.
var Commands = []subcommands.Command{
	&calcCmd{},
	&correctCmd{},
	&auditCmd{},
	&importCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var filingFile = flag.String("filing-file", "filing.jsonl", "Path to the filing file containing the report tables (JSONL format)")

// DecodeFiling reads the filing tables from the given path, or from the
// application default when path is empty. A missing file is an empty filing.
func DecodeFiling(path string) ([]*mkbd.Table, error) {
	if path == "" {
		path = *filingFile
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("warning, filing file does not exist, computing over an empty filing instead")
			return nil, nil
		}
		return nil, fmt.Errorf("could not open filing file %q: %w", path, err)
	}
	defer f.Close()

	tables, err := mkbd.DecodeTables(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode filing file %q: %w", path, err)
	}
	return tables, nil
}

// EncodeFiling writes tables to the given path, or to stdout when path is
// empty or "-".
func EncodeFiling(path string, tables []*mkbd.Table) error {
	if path == "" || path == "-" {
		return mkbd.EncodeTables(os.Stdout, tables)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create filing file %q: %w", path, err)
	}
	defer f.Close()

	if err := mkbd.EncodeTables(f, tables); err != nil {
		return fmt.Errorf("could not write filing file %q: %w", path, err)
	}
	return nil
}
