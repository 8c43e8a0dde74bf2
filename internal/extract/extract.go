package extract

import (
	"strings"

	"nrclassify/internal/domain"
)

// Chains projects a loaded record into a flat ordered chain list.
// Entity order is preserved, then chain-id order within each entity.
// An entity without chain identifiers contributes nothing. Missing
// description/type/sequence fields default to empty strings; every
// chain of an entity shares the entity-level fields.
func Chains(rec *domain.Record) []domain.Chain {
	var chains []domain.Chain
	if rec == nil || rec.Entry == nil {
		return chains
	}
	for _, ent := range rec.Entry.PolymerEntities {
		var ids []string
		if ent.Identifiers != nil {
			ids = ent.Identifiers.AuthAsymIDs
		}
		if len(ids) == 0 {
			continue
		}
		var description, entityType, sequence string
		if ent.Polymer != nil {
			description = strings.ToLower(ent.Polymer.Description)
		}
		if ent.EntityPoly != nil {
			entityType = strings.ToLower(ent.EntityPoly.Type)
			sequence = ent.EntityPoly.Sequence
		}
		for _, id := range ids {
			chains = append(chains, domain.Chain{
				ID:          id,
				Description: description,
				EntityType:  entityType,
				Sequence:    sequence,
			})
		}
	}
	return chains
}
