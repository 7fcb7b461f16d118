package mkbd

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		cell any
		want Money
	}{
		{"absent", nil, IDR(0)},
		{"float", 1500.5, IDR(1500.5)},
		{"int", 25, IDR(25)},
		{"json number", json.Number("25000000000"), IDR(25_000_000_000)},
		{"plain string", "1234567", IDR(1_234_567)},
		{"grouped rupiah", "25.000.000.000", IDR(25_000_000_000)},
		{"grouping and decimal comma", "1.234.567,89", IDR(1234567.89)},
		{"decimal comma only", "1500,25", IDR(1500.25)},
		{"decimal point", "1500.25", IDR(1500.25)},
		{"currency prefix", "Rp 1.000.000", IDR(1_000_000)},
		{"idr prefix", "IDR 500", IDR(500)},
		{"accounting negative", "(2.500)", IDR(-2500)},
		{"dash placeholder", "-", IDR(0)},
		{"empty string", "", IDR(0)},
		{"garbage", "tidak ada", IDR(0)},
		{"bool", true, IDR(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAmount(tc.cell); !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%v) = %s, want %s", tc.cell, got, tc.want)
			}
		})
	}
}

func TestParseAmountIdempotent(t *testing.T) {
	first := ParseAmount("1.234.567,89")
	second := ParseAmount(first)
	if !first.Equal(second) {
		t.Errorf("ParseAmount is not idempotent: %s then %s", first, second)
	}
}

func TestParseAmountStrict(t *testing.T) {
	if _, ok := parseAmountStrict(nil); ok {
		t.Error("absent cell must not be parseable")
	}
	if _, ok := parseAmountStrict("keterangan"); ok {
		t.Error("label cell must not be parseable")
	}
	if v, ok := parseAmountStrict(0.0); !ok || !v.IsZero() {
		t.Error("a numeric zero cell is a real value")
	}
}
