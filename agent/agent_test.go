package agent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func writeFiling(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "filing.jsonl")
	content := `{"name":"VD5-1","columns":["Keterangan","Saldo"],"rows":[{"Keterangan":"JUMLAH ASET LANCAR","Saldo":50000000000}]}
{"name":"VD5-2","columns":["Keterangan","Saldo"],"rows":[{"Keterangan":"JUMLAH LIABILITAS","Saldo":10000000000},{"Keterangan":"JUMLAH EKUITAS","Saldo":2000000000}]}
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestAnalystDeclarations(t *testing.T) {
	analyst := NewAnalyst("filing.jsonl")
	decls := analyst.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 {
		t.Fatalf("analyst declares %d functions, want 2", len(decls))
	}
	names := map[string]bool{}
	for _, d := range decls {
		names[d.Name] = true
	}
	if !names["Calculation"] || !names["Ranking"] {
		t.Errorf("analyst functions = %v, want Calculation and Ranking", names)
	}
}

func TestFacilitatorKnowsExperts(t *testing.T) {
	facilitator := newFacilitator(NewAnalyst("filing.jsonl"), NewRegulator())
	decls := facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 {
		t.Fatalf("facilitator declares %d experts, want 2", len(decls))
	}
}

func TestCalculationFunc(t *testing.T) {
	file := writeFiling(t)
	fn := calculationFunc(file)

	resp := fn.Call(context.Background(), "call-1", nil)
	output, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("Calculation response = %v, want output string", resp.Response)
	}
	if !strings.Contains(output, "TOTAL_CURRENT_ASSETS") {
		t.Errorf("Calculation output missing base quantities:\n%s", output)
	}
}

func TestCalculationFuncMissingFiling(t *testing.T) {
	fn := calculationFunc(filepath.Join(t.TempDir(), "absent.jsonl"))

	// An absent filing is an empty filing: the calculation still runs and
	// reports the statutory floor.
	resp := fn.Call(context.Background(), "call-2", nil)
	output, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("Calculation response = %v, want output string", resp.Response)
	}
	if !strings.Contains(output, "REQUIRED_MKBD") {
		t.Errorf("Calculation output missing required MKBD step:\n%s", output)
	}
}

func TestLibraryDispatch(t *testing.T) {
	file := writeFiling(t)
	lib := NewLibrary([]Function{calculationFunc(file), rankingFunc(file)})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "c1", Name: "NoSuchFunction"})
	if _, ok := resp.Response["error"]; !ok {
		t.Error("unknown function must produce an error response")
	}

	resp = lib(context.Background(), &genai.FunctionCall{ID: "c2", Name: "Ranking"})
	if _, ok := resp.Response["output"]; !ok {
		t.Errorf("Ranking dispatch failed: %v", resp.Response)
	}
}
