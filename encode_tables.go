package mkbd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file handles the import/export format of extracted tables.
// It should remain human readable, single file, and easy to diff.

// DecodeTables reads tables from 'r' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one table: property 'name' holds the form name, 'columns' the ordered
// column labels, and 'rows' an array of objects mapping column label to cell
// value. Numbers are decoded as json.Number so large rupiah figures survive
// a round trip exactly.
func DecodeTables(r io.Reader) ([]*Table, error) {
	var tables []*Table
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(string(line)))
		dec.UseNumber()
		var t Table
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("cannot parse line for table import format: %q: %w", string(line), err)
		}
		tables = append(tables, &t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read table import format: %w", err)
	}
	return tables, nil
}

// EncodeTables writes the tables to 'w' in the import/export format, one
// JSON object per line. Corrected tables exported this way supersede the raw
// uploaded values of the corrected cells.
func EncodeTables(w io.Writer, tables []*Table) error {
	for _, t := range tables {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("cannot marshal table %q: %w", t.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write table format: %w", err)
		}
	}
	return nil
}
