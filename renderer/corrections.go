package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/wicaksana/mkbd"
)

// CorrectionsMarkdown renders the blind-overwrite audit trail: one line per
// corrected cell with the value it replaced.
func CorrectionsMarkdown(records []mkbd.CorrectionRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Correction Audit Trail")
	if len(records) == 0 {
		doc.PlainText("No cell was corrected: the target rows could not be located.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Row", "Column", "Before", "After", "Formula"},
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, []string{
			rec.Description,
			rec.Column,
			before(rec.Before),
			rec.After.String(),
			rec.Formula,
		})
	}
	doc.Table(table)
	return doc.String()
}

func before(cell any) string {
	if cell == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%v", cell)
}
