package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// Subtype labels emitted by the cofactor scorer.
const (
	SubtypeCoactivator = "coactivator"
	SubtypeCorepressor = "corepressor"
	SubtypeUnknown     = "unknown"
)

const (
	genericWeight  = 1.0
	specificWeight = 0.8
	cofactorWeight = 0.8
	motifWeight    = 0.5
)

// nrBoxMotif is the canonical LXXLL nuclear-receptor-box pattern:
// leucine, any two residues, two leucines. Matched against the raw
// one-letter sequence, case-sensitively.
var nrBoxMotif = regexp.MustCompile(`L..LL`)

// Scorer computes per-chain evidence scores from immutable keyword
// tables. A Scorer is read-only after construction and safe for
// concurrent use.
type Scorer struct {
	tables Tables
}

// NewScorer builds a scorer from the given tables. Empty lists fall
// back to the built-in defaults, so a zero Tables yields the stock
// scorer.
func NewScorer(t Tables) *Scorer {
	def := DefaultTables()
	if len(t.NRGeneric) == 0 {
		t.NRGeneric = def.NRGeneric
	}
	if len(t.NRSpecific) == 0 {
		t.NRSpecific = def.NRSpecific
	}
	if len(t.Coactivator) == 0 {
		t.Coactivator = def.Coactivator
	}
	if len(t.Corepressor) == 0 {
		t.Corepressor = def.Corepressor
	}
	return &Scorer{tables: t}
}

// NuclearReceptor scores how likely a chain description names a nuclear
// receptor. Keyword hits are additive and the sum is clamped to 1.0, so
// redundant evidence saturates rather than inflates. One reason is
// recorded per hit, in table scan order.
func (s *Scorer) NuclearReceptor(description string) (float64, []string) {
	score := 0.0
	var reasons []string

	desc := strings.ToLower(description)
	for _, keyword := range s.tables.NRGeneric {
		if strings.Contains(desc, keyword) {
			score += genericWeight
			reasons = append(reasons, fmt.Sprintf("Generic NR term: %s", keyword))
		}
	}
	for _, keyword := range s.tables.NRSpecific {
		if strings.Contains(desc, keyword) {
			score += specificWeight
			reasons = append(reasons, fmt.Sprintf("Specific NR: %s", keyword))
		}
	}
	return clamp(score), reasons
}

// Cofactor scores how likely a chain is a cofactor, from its
// description and its amino-acid sequence, and infers the subtype.
// Coactivator and corepressor keyword lists accumulate independently;
// an LXXLL box in the sequence adds motif evidence to the coactivator
// total. The higher clamped total wins; an exact positive tie resolves
// to corepressor.
func (s *Scorer) Cofactor(description, sequence string) (float64, string, []string) {
	coactivator := 0.0
	corepressor := 0.0
	var reasons []string

	desc := strings.ToLower(description)
	for _, keyword := range s.tables.Coactivator {
		if strings.Contains(desc, keyword) {
			coactivator += cofactorWeight
			reasons = append(reasons, fmt.Sprintf("Coactivator keyword: %s", keyword))
		}
	}
	for _, keyword := range s.tables.Corepressor {
		if strings.Contains(desc, keyword) {
			corepressor += cofactorWeight
			reasons = append(reasons, fmt.Sprintf("Corepressor keyword: %s", keyword))
		}
	}

	if sequence != "" && nrBoxMotif.MatchString(sequence) {
		// Strong evidence of nuclear-receptor binding; scored toward
		// the coactivator total. The reason wording is kept as-is from
		// the reference ruleset even though it says corepressor.
		coactivator += motifWeight
		reasons = append(reasons, "Corepressor sequence motif 'LXXLL' found")
	}

	switch {
	case coactivator > corepressor:
		return clamp(coactivator), SubtypeCoactivator, reasons
	case corepressor > 0:
		return clamp(corepressor), SubtypeCorepressor, reasons
	default:
		return 0.0, SubtypeUnknown, reasons
	}
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
