package mkbd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const workbookPayload = `{
	"status": "ok",
	"data": {
		"tables": [
			{
				"name": "VD5-1",
				"columns": ["Keterangan", "Saldo"],
				"rows": [{"Keterangan": "JUMLAH ASET LANCAR", "Saldo": 50000000000}]
			},
			{
				"name": "VD5-2",
				"columns": ["Keterangan", "Saldo"],
				"rows": [{"Keterangan": "JUMLAH EKUITAS", "Saldo": 2000000000}]
			}
		]
	}
}`

func decodeWorkbookPayload(t *testing.T, payload string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return v
}

func TestImportWorkbook(t *testing.T) {
	tables, err := ImportWorkbook(decodeWorkbookPayload(t, workbookPayload))
	if err != nil {
		t.Fatalf("ImportWorkbook() error = %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("len(tables) = %d, want 2", len(tables))
	}
	if tables[0].Name != "VD5-1" {
		t.Errorf("tables[0].Name = %q", tables[0].Name)
	}

	base, _ := DefaultConfig().extractBase(tables)
	if want := IDR(50_000_000_000); !base.CurrentAssets.Equal(want) {
		t.Errorf("CurrentAssets = %s, want %s", base.CurrentAssets, want)
	}
	if want := IDR(2_000_000_000); !base.Equity.Equal(want) {
		t.Errorf("Equity = %s, want %s", base.Equity, want)
	}
}

func TestImportWorkbookLegacyEnvelope(t *testing.T) {
	legacy := `{"tables": [{"name": "VD5-9", "columns": ["Keterangan"], "rows": []}]}`
	tables, err := ImportWorkbook(decodeWorkbookPayload(t, legacy))
	if err != nil {
		t.Fatalf("ImportWorkbook() error = %v", err)
	}
	if len(tables) != 1 || tables[0].Name != "VD5-9" {
		t.Errorf("tables = %v", tables)
	}
}

func TestImportWorkbookRejectsUnknownEnvelope(t *testing.T) {
	if _, err := ImportWorkbook(decodeWorkbookPayload(t, `{"foo": 1}`)); err == nil {
		t.Error("ImportWorkbook must report an unknown envelope")
	}
}

func TestFetchWorkbook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(workbookPayload))
	}))
	defer srv.Close()

	tables, err := FetchWorkbook(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("FetchWorkbook() error = %v", err)
	}
	if len(tables) != 2 {
		t.Errorf("len(tables) = %d, want 2", len(tables))
	}
}

func TestFetchWorkbookStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := FetchWorkbook(srv.Client(), srv.URL); err == nil {
		t.Error("FetchWorkbook must surface HTTP errors")
	}
}
