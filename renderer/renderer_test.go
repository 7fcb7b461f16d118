package renderer

import (
	"strings"
	"testing"

	"github.com/wicaksana/mkbd"
)

func sampleResult() *mkbd.Result {
	tables := []*mkbd.Table{
		{
			Name:    "VD5-1",
			Columns: []string{"Keterangan", "Saldo"},
			Rows: []mkbd.Row{
				{"Keterangan": "JUMLAH ASET LANCAR", "Saldo": 50_000_000_000.0},
			},
		},
		{
			Name:    "VD5-2",
			Columns: []string{"Keterangan", "Saldo"},
			Rows: []mkbd.Row{
				{"Keterangan": "JUMLAH LIABILITAS", "Saldo": 10_000_000_000.0},
				{"Keterangan": "JUMLAH EKUITAS", "Saldo": 2_000_000_000.0},
			},
		},
		{
			Name:    "VD5-10",
			Columns: []string{"Kode Efek", "Kelompok Usaha", "Nilai Pasar Wajar"},
			Rows: []mkbd.Row{
				{"Kode Efek": "BBCA", "Kelompok Usaha": "DJARUM", "Nilai Pasar Wajar": 1_000_000_000.0},
			},
		},
	}
	return mkbd.Calculate(tables, nil)
}

func TestResultMarkdown(t *testing.T) {
	got := ResultMarkdown(sampleResult())

	for _, want := range []string{
		"# Perhitungan MKBD",
		"## Calculation Steps",
		"TOTAL_CURRENT_ASSETS",
		"SURPLUS_DEFICIT",
		"## Ranking Liabilities",
		"BBCA",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ResultMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestResultMarkdownDeficit(t *testing.T) {
	r := sampleResult()
	r.SurplusDeficit = mkbd.IDR(-1_000_000)
	if got := ResultMarkdown(r); !strings.Contains(got, "DEFISIT") {
		t.Errorf("deficit verdict missing in:\n%s", got)
	}
}

func TestCorrectionsMarkdown(t *testing.T) {
	records := []mkbd.CorrectionRecord{
		{
			Row:         12,
			Description: "row 12: RANKING LIABILITIES",
			Column:      "Saldo",
			Before:      0.0,
			After:       mkbd.IDR(600_000_000),
			Formula:     "sum of concentration charges",
		},
	}
	got := CorrectionsMarkdown(records)
	for _, want := range []string{"# Correction Audit Trail", "row 12: RANKING LIABILITIES", "Saldo"} {
		if !strings.Contains(got, want) {
			t.Errorf("CorrectionsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestCorrectionsMarkdownEmpty(t *testing.T) {
	got := CorrectionsMarkdown(nil)
	if !strings.Contains(got, "No cell was corrected") {
		t.Errorf("empty trail notice missing in:\n%s", got)
	}
}
