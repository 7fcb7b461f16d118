package mkbd

import "fmt"

// fixture builders for the VD5 forms used across the package tests.

// row is a shorthand Row constructor for a No/Keterangan/Saldo form line.
func row(no int, label string, saldo any) Row {
	r := Row{"No": float64(no), "Keterangan": label}
	if saldo != nil {
		r["Saldo"] = saldo
	}
	return r
}

// newAssetsForm builds a minimal VD5-1 with a current-assets total.
func newAssetsForm(total float64) *Table {
	return &Table{
		Name:    "VD5-1 Aset Lancar",
		Columns: []string{"No", "Keterangan", "Saldo"},
		Rows: []Row{
			row(1, "Kas dan Setara Kas", total/2),
			row(2, "Piutang Nasabah", total/2),
			row(3, "JUMLAH ASET LANCAR", total),
		},
	}
}

// newLiabilitiesForm builds a minimal VD5-2 with liabilities and equity totals.
func newLiabilitiesForm(liabilities, equity float64) *Table {
	return &Table{
		Name:    "VD5-2 Liabilitas dan Ekuitas",
		Columns: []string{"No", "Keterangan", "Saldo"},
		Rows: []Row{
			row(1, "Utang Nasabah", liabilities),
			row(2, "JUMLAH LIABILITAS", liabilities),
			row(3, "Modal Disetor", equity),
			row(4, "JUMLAH EKUITAS", equity),
		},
	}
}

// newWorkingCapitalForm builds a 104-row VD5-9 with the regulatory rows at
// their nominal positions and the haircut total spread over rows 33..92.
func newWorkingCapitalForm(haircutTotal float64) *Table {
	t := &Table{
		Name:    "VD5-9 Perhitungan MKBD",
		Columns: []string{"No", "Keterangan", "Saldo", "Total"},
	}
	for pos := 1; pos <= 104; pos++ {
		var r Row
		switch pos {
		case 12:
			r = row(pos, "RANKING LIABILITIES (RISIKO KONSENTRASI)", 0.0)
		case 13, 15, 18, 20:
			r = row(pos, "MODAL KERJA", 0.0)
		case 102:
			r = row(pos, "MODAL KERJA BERSIH DISESUAIKAN", 0.0)
		case 103:
			r = row(pos, "MKBD YANG DIWAJIBKAN", 25_000_000_000.0)
		case 104:
			r = row(pos, "LEBIH (KURANG) MKBD", 0.0)
		default:
			r = row(pos, fmt.Sprintf("Baris %d", pos), nil)
		}
		if pos >= 33 && pos <= 92 {
			r["Keterangan"] = fmt.Sprintf("Haircut Baris %d", pos)
			if pos == 33 {
				r["Total"] = haircutTotal
			} else {
				r["Total"] = 0.0
			}
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// rankingRow is one instrument line of the VD5-10 fixture.
type rankingRow struct {
	code   string
	group  string
	value  any // Nilai Pasar Wajar
	grpVal any // Nilai Pasar Wajar Kelompok, nil to omit
}

// newRankingForm builds a VD5-10 concentration form from instrument lines.
func newRankingForm(rows ...rankingRow) *Table {
	t := &Table{
		Name:    "VD5-10 Ranking Liabilities",
		Columns: []string{"Kode Efek", "Kelompok Usaha", "Nilai Pasar Wajar", "Nilai Pasar Wajar Kelompok"},
	}
	for _, r := range rows {
		jr := Row{"Kode Efek": r.code, "Kelompok Usaha": r.group}
		if r.value != nil {
			jr["Nilai Pasar Wajar"] = r.value
		}
		if r.grpVal != nil {
			jr["Nilai Pasar Wajar Kelompok"] = r.grpVal
		}
		t.Rows = append(t.Rows, jr)
	}
	t.Rows = append(t.Rows, Row{"Kode Efek": "", "Kelompok Usaha": "TOTAL PORTOFOLIO", "Nilai Pasar Wajar": 0.0})
	return t
}

// newFiling builds the full four-form fixture used by the orchestrator tests.
func newFiling() []*Table {
	return []*Table{
		newAssetsForm(50_000_000_000),
		newLiabilitiesForm(10_000_000_000, 2_000_000_000),
		newWorkingCapitalForm(5_000_000_000),
		newRankingForm(rankingRow{code: "BBCA", group: "Grup A", value: 1_000_000_000.0}),
	}
}
