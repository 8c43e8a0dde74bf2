package report

import (
	"strings"
	"testing"

	"nrclassify/internal/domain"
)

func TestRenderTableAndReasons(t *testing.T) {
	results := []domain.Result{
		{
			RecordID:      "2QQ1",
			IsComplex:     true,
			ReceptorChain: "A",
			CofactorChain: "B",
			Confidence:    0.8,
			Reasons:       []string{"Receptor (A): Specific NR: estrogen receptor"},
		},
		{RecordID: "0BAD", Reasons: []string{"Data not available"}},
	}
	out := Render(results)
	if !strings.Contains(out, "=== Nuclear Receptor-Cofactor Complex Classification Results ===") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "2QQ1") || !strings.Contains(out, "YES") || !strings.Contains(out, "0.80") {
		t.Fatalf("complex row missing:\n%s", out)
	}
	if !strings.Contains(out, "NO") || !strings.Contains(out, "N/A") {
		t.Fatalf("negative row should show N/A chains:\n%s", out)
	}
	if !strings.Contains(out, "    - Data not available") {
		t.Fatalf("reason lines missing:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	results := []domain.Result{
		{RecordID: "A", IsComplex: true},
		{RecordID: "B"},
		{RecordID: "C", IsComplex: true},
	}
	got := Summary(results)
	if got != "3 records classified, 2 NR/cofactor complexes" {
		t.Fatalf("unexpected summary: %q", got)
	}
}
