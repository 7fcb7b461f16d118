package mkbd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// this file accepts workbook payloads from the spreadsheet ingestion
// service, which wraps the extracted tables in an envelope whose exact shape
// has changed across releases.

// workbookPaths are the jsonpath locations where ingestion releases have
// placed the table array, newest first.
var workbookPaths = []string{
	"$.data.tables",
	"$.tables",
	"$.workbook.tables",
}

// ImportWorkbook extracts the table list out of a decoded ingestion payload.
// The payload must have been decoded with json.Number for amounts to stay
// exact.
func ImportWorkbook(payload any) ([]*Table, error) {
	var jtables any
	for _, path := range workbookPaths {
		jval, err := jsonpath.Get(path, payload)
		if err != nil {
			continue
		}
		// because jsonpath is never clear about whether it returns a list of
		// one answer or a single answer, unwrap a single-element wrapper
		if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
			if _, inner := jlist[0].([]any); inner {
				jval = jlist[0]
			}
		}
		jtables = jval
		break
	}
	if jtables == nil {
		return nil, fmt.Errorf("no table array found in workbook payload (tried %v)", workbookPaths)
	}

	list, ok := jtables.([]any)
	if !ok {
		return nil, fmt.Errorf("workbook table array has unexpected type %T", jtables)
	}

	tables := make([]*Table, 0, len(list))
	for i, jt := range list {
		// round-trip through json to reuse the Table field mapping
		raw, err := json.Marshal(jt)
		if err != nil {
			return nil, fmt.Errorf("cannot re-encode workbook table %d: %w", i, err)
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var t Table
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("cannot decode workbook table %d: %w", i, err)
		}
		tables = append(tables, &t)
	}
	return tables, nil
}

// FetchWorkbook GETs a workbook payload from the ingestion service and
// extracts its tables.
func FetchWorkbook(client *http.Client, addr string) ([]*Table, error) {
	var payload any
	if err := jwget(client, addr, &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch workbook from %q: %w", addr, err)
	}
	return ImportWorkbook(payload)
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure, preserving numbers.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	return dec.Decode(data)
}
