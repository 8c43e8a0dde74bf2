package classify

import (
	"fmt"

	"nrclassify/internal/domain"
	"nrclassify/internal/extract"
	"nrclassify/internal/scoring"
)

// Classification thresholds. Both must hold for a complex verdict.
const (
	receptorThreshold = 0.5
	cofactorThreshold = 0.3

	// Fraction of a receptor candidate's own cofactor score subtracted
	// from its receptor score, so cofactor dimers don't pass as
	// receptor/cofactor pairs.
	selfCofactorPenalty = 0.5
)

// Fixed reasons for the short-circuit paths.
const (
	reasonNoData             = "Data not available"
	reasonInsufficientChains = "Insufficient number of chains"
)

// Service classifies records as nuclear-receptor/cofactor complexes.
// It implements domain.Classifier.
type Service struct {
	loader domain.RecordLoader
	scorer *scoring.Scorer
}

// New creates a classification service over the given record source
// and scorer.
func New(loader domain.RecordLoader, scorer *scoring.Scorer) *Service {
	return &Service{loader: loader, scorer: scorer}
}

// pair is the running best receptor/cofactor assignment. Only the
// highest-confidence candidate survives the search.
type pair struct {
	receptor   *domain.Chain
	cofactor   *domain.Chain
	nrScore    float64
	cofScore   float64
	confidence float64
	nrReasons  []string
	cofReasons []string
	cofType    string
}

// Classify resolves a record and decides whether it is a
// nuclear-receptor/cofactor complex. It never fails: missing records
// and sparse data degrade into a negative result with a fixed reason.
func (s *Service) Classify(id string) domain.Result {
	rec, err := s.loader.Load(id)
	if err != nil || rec == nil {
		return domain.Result{RecordID: id, Reasons: []string{reasonNoData}}
	}

	chains := extract.Chains(rec)
	if len(chains) < 2 {
		return domain.Result{RecordID: id, Reasons: []string{reasonInsufficientChains}}
	}

	best := s.bestPair(chains)
	isComplex := best.nrScore >= receptorThreshold && best.cofScore >= cofactorThreshold

	var reasons []string
	if best.receptor != nil {
		for _, r := range best.nrReasons {
			reasons = append(reasons, fmt.Sprintf("Receptor (%s): %s", best.receptor.ID, r))
		}
	}
	if best.cofactor != nil {
		for _, r := range best.cofReasons {
			reasons = append(reasons, fmt.Sprintf("Cofactor (%s): %s", best.cofactor.ID, r))
		}
	}
	if !isComplex && best.confidence > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Failed threshold check: NR_score(%.2f) >= %.1f, Cofactor_score(%.2f) >= %.1f",
			best.nrScore, receptorThreshold, best.cofScore, cofactorThreshold))
	}

	res := domain.Result{
		RecordID:   id,
		IsComplex:  isComplex,
		Confidence: best.confidence,
		Reasons:    reasons,
	}
	if best.receptor != nil {
		res.ReceptorChain = best.receptor.ID
		res.ReceptorType = best.receptor.Description
	}
	if best.cofactor != nil {
		res.CofactorChain = best.cofactor.ID
		res.CofactorType = best.cofType
	}
	return res
}

// bestPair runs the exhaustive search over every ordered pair of
// distinct chains, chain i as receptor candidate and chain j as
// cofactor candidate. Chain counts per record are single digits, so
// the O(n²) scan stays trivial. The best confidence starts at zero and
// only a strictly greater confidence replaces it: pairs that never
// score positive leave an all-nil pair, and ties keep the first-seen
// orientation.
func (s *Service) bestPair(chains []domain.Chain) pair {
	var best pair
	for i := range chains {
		for j := range chains {
			if i == j {
				continue
			}
			receptor := &chains[i]
			cofactor := &chains[j]

			nrScore, nrReasons := s.scorer.NuclearReceptor(receptor.Description)
			cofScore, cofType, cofReasons := s.scorer.Cofactor(cofactor.Description, cofactor.Sequence)

			// A receptor candidate that itself reads as a cofactor is
			// penalized; the penalty may push its score negative.
			penalty, _, _ := s.scorer.Cofactor(receptor.Description, receptor.Sequence)
			nrScore -= penalty * selfCofactorPenalty

			confidence := (nrScore + cofScore) / 2.0
			if confidence > best.confidence {
				best = pair{
					receptor:   receptor,
					cofactor:   cofactor,
					nrScore:    nrScore,
					cofScore:   cofScore,
					confidence: confidence,
					nrReasons:  nrReasons,
					cofReasons: cofReasons,
					cofType:    cofType,
				}
			}
		}
	}
	return best
}

// ClassifyBatch classifies each identifier in order and returns one
// result per input, order-preserving. Records are independent, so a
// failed lookup never interrupts the rest of the batch.
func (s *Service) ClassifyBatch(ids []string) []domain.Result {
	results := make([]domain.Result, 0, len(ids))
	for _, id := range ids {
		results = append(results, s.Classify(id))
	}
	return results
}
