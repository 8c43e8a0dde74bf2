package extract

import (
	"reflect"
	"testing"

	"nrclassify/internal/domain"
)

func TestChainsNilRecord(t *testing.T) {
	if got := Chains(nil); len(got) != 0 {
		t.Fatalf("expected no chains, got %v", got)
	}
	if got := Chains(&domain.Record{}); len(got) != 0 {
		t.Fatalf("expected no chains for missing entry, got %v", got)
	}
}

func TestChainsSkipsEntityWithoutChainIDs(t *testing.T) {
	rec := &domain.Record{Entry: &domain.Entry{PolymerEntities: []domain.PolymerEntity{
		{Polymer: &domain.PolymerInfo{Description: "Orphan entity"}},
		{
			Identifiers: &domain.EntityIdentifiers{AuthAsymIDs: []string{"A"}},
			Polymer:     &domain.PolymerInfo{Description: "Estrogen receptor"},
		},
	}}}
	got := Chains(rec)
	if len(got) != 1 || got[0].ID != "A" {
		t.Fatalf("expected single chain A, got %v", got)
	}
}

func TestChainsDefaultsAndCaseHandling(t *testing.T) {
	rec := &domain.Record{Entry: &domain.Entry{PolymerEntities: []domain.PolymerEntity{
		{
			Identifiers: &domain.EntityIdentifiers{AuthAsymIDs: []string{"A"}},
			Polymer:     &domain.PolymerInfo{Description: "Estrogen Receptor ALPHA"},
			EntityPoly:  &domain.EntityPoly{Type: "Polypeptide(L)", Sequence: "MkLLeLLas"},
		},
		{
			// description, type and sequence all absent
			Identifiers: &domain.EntityIdentifiers{AuthAsymIDs: []string{"B"}},
		},
	}}}
	got := Chains(rec)
	if len(got) != 2 {
		t.Fatalf("expected 2 chains, got %v", got)
	}
	if got[0].Description != "estrogen receptor alpha" {
		t.Fatalf("description must be lowercased: %q", got[0].Description)
	}
	if got[0].EntityType != "polypeptide(l)" {
		t.Fatalf("entity type must be lowercased: %q", got[0].EntityType)
	}
	if got[0].Sequence != "MkLLeLLas" {
		t.Fatalf("sequence case must be preserved: %q", got[0].Sequence)
	}
	if got[1].Description != "" || got[1].EntityType != "" || got[1].Sequence != "" {
		t.Fatalf("absent fields must default to empty: %+v", got[1])
	}
}

func TestChainsPreservesOrderAndDuplicatesEntityFields(t *testing.T) {
	rec := &domain.Record{Entry: &domain.Entry{PolymerEntities: []domain.PolymerEntity{
		{
			Identifiers: &domain.EntityIdentifiers{AuthAsymIDs: []string{"A", "B"}},
			Polymer:     &domain.PolymerInfo{Description: "Retinoid X receptor"},
			EntityPoly:  &domain.EntityPoly{Sequence: "MLLALL"},
		},
		{
			Identifiers: &domain.EntityIdentifiers{AuthAsymIDs: []string{"C"}},
			Polymer:     &domain.PolymerInfo{Description: "GRIP1"},
		},
	}}}
	got := Chains(rec)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []string{"A", "B", "C"}) {
		t.Fatalf("order not preserved: %v", ids)
	}
	if got[0].Description != got[1].Description || got[0].Sequence != got[1].Sequence {
		t.Fatalf("chains of one entity must share entity fields: %+v", got[:2])
	}
}
