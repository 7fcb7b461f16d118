package mkbd

import (
	"regexp"
	"testing"
)

func TestFindTableNameDrift(t *testing.T) {
	cfg := DefaultConfig()

	for _, name := range []string{"VD5-10", "VD5_10", "vd510", "Formulir 10", "LAMPIRAN VD5 10"} {
		tables := []*Table{{Name: name}}
		if _, ok := cfg.FindTable(tables, FormRanking); !ok {
			t.Errorf("FindTable(%q, ranking) not found", name)
		}
	}

	// VD5-1 must not be mistaken for VD5-10 and vice versa
	tables := []*Table{{Name: "VD5-1"}, {Name: "VD5-10"}}
	got, ok := cfg.FindTable(tables, FormAssets)
	if !ok || got.Name != "VD5-1" {
		t.Errorf("FindTable(assets) = %v, want VD5-1", got)
	}
	got, ok = cfg.FindTable(tables, FormRanking)
	if !ok || got.Name != "VD5-10" {
		t.Errorf("FindTable(ranking) = %v, want VD5-10", got)
	}

	if _, ok := cfg.FindTable([]*Table{{Name: "VD5-2"}}, FormRanking); ok {
		t.Error("FindTable must report absence, not guess")
	}
}

func TestFindColumn(t *testing.T) {
	cfg := DefaultConfig()
	form := &Table{Columns: []string{"No", "Keterangan", "Saldo Akhir"}}

	label, ok := cfg.FindColumn(form, ColBalance)
	if !ok || label != "Saldo Akhir" {
		t.Errorf("FindColumn(balance) = %q, %v", label, ok)
	}
	if _, ok := cfg.FindColumn(form, ColGroupMarketValue); ok {
		t.Error("FindColumn must not invent a group market value column")
	}
}

func TestFindRowPreferredFastPath(t *testing.T) {
	form := newWorkingCapitalForm(0)
	pattern := regexp.MustCompile(`(?i)mkbd\s+yang\s+diwajibkan`)

	pos, ok := FindRow(form, pattern, 103)
	if !ok || pos != 103 {
		t.Fatalf("FindRow(preferred 103) = %d, %v", pos, ok)
	}
}

func TestFindRowShiftedFallsBackToScan(t *testing.T) {
	form := newWorkingCapitalForm(0)
	// shift the filing by inserting a stray header row on top
	form.Rows = append([]Row{row(0, "PERHITUNGAN MKBD", nil)}, form.Rows...)

	pattern := regexp.MustCompile(`(?i)mkbd\s+yang\s+diwajibkan`)
	pos, ok := FindRow(form, pattern, 103)
	if !ok || pos != 104 {
		t.Fatalf("FindRow on shifted form = %d, %v, want 104", pos, ok)
	}

	if _, ok := FindRow(form, regexp.MustCompile(`tidak ada baris ini`), 5); ok {
		t.Error("FindRow must report absence when no row matches anywhere")
	}
}

func TestNormalizeName(t *testing.T) {
	if got := normalizeName("VD5-10 (Ranking)"); got != "vd510ranking" {
		t.Errorf("normalizeName = %q", got)
	}
}
