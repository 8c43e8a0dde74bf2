package report

import (
	"fmt"
	"strings"

	"nrclassify/internal/domain"
)

// Render formats batch results as a fixed-width table followed by the
// per-record reason lists.
func Render(results []domain.Result) string {
	var b strings.Builder
	b.WriteString("=== Nuclear Receptor-Cofactor Complex Classification Results ===\n")
	b.WriteString(fmt.Sprintf("%-8s %-10s %-12s %-15s %-15s\n",
		"PDB ID", "Complex?", "Confidence", "Receptor", "Cofactor"))
	b.WriteString(strings.Repeat("-", 80))
	b.WriteString("\n")

	for _, r := range results {
		verdict := "NO"
		if r.IsComplex {
			verdict = "YES"
		}
		b.WriteString(fmt.Sprintf("%-8s %-10s %-12s %-15s %-15s\n",
			r.RecordID, verdict, fmt.Sprintf("%.2f", r.Confidence),
			orNA(r.ReceptorChain), orNA(r.CofactorChain)))
		if len(r.Reasons) > 0 {
			b.WriteString("  Reasons:\n")
			for _, reason := range r.Reasons {
				b.WriteString("    - ")
				b.WriteString(reason)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Summary returns a one-line digest of a result set.
func Summary(results []domain.Result) string {
	complexes := 0
	for _, r := range results {
		if r.IsComplex {
			complexes++
		}
	}
	return fmt.Sprintf("%d records classified, %d NR/cofactor complexes", len(results), complexes)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
