package domain

// Record is one structural-biology entry as returned by a RecordLoader.
// Every field in the source data is optional; absent fields decode to
// zero values and are never an error.
type Record struct {
	Entry *Entry `json:"entry"`
}

// Entry holds the polymer entities of a record.
type Entry struct {
	PolymerEntities []PolymerEntity `json:"polymer_entities"`
}

// PolymerEntity is one polymer entity, possibly spanning several chains.
type PolymerEntity struct {
	Identifiers *EntityIdentifiers `json:"rcsb_polymer_entity_container_identifiers"`
	Polymer     *PolymerInfo       `json:"rcsb_polymer_entity"`
	EntityPoly  *EntityPoly        `json:"entity_poly"`
}

// EntityIdentifiers carries the chain identifiers of an entity.
type EntityIdentifiers struct {
	AuthAsymIDs []string `json:"auth_asym_ids"`
}

// PolymerInfo carries the free-text description of an entity.
type PolymerInfo struct {
	Description string `json:"pdbx_description"`
}

// EntityPoly carries the polymer type and one-letter sequence.
type EntityPoly struct {
	Type     string `json:"type"`
	Sequence string `json:"pdbx_seq_one_letter_code_can"`
}

// Chain describes one physical polymer chain extracted from a record.
// Description and EntityType are lowercased at extraction time; the
// sequence keeps its original case (motif matching is case-sensitive).
type Chain struct {
	ID          string
	Description string
	EntityType  string
	Sequence    string
}

// Result is the outcome of classifying one record. Optional fields are
// empty strings when no pairing was found. If IsComplex is true,
// ReceptorChain and CofactorChain are non-empty and distinct.
type Result struct {
	RecordID      string   `json:"record_id"`
	IsComplex     bool     `json:"is_nr_cofactor_complex"`
	ReceptorChain string   `json:"receptor_chain,omitempty"`
	CofactorChain string   `json:"cofactor_chain,omitempty"`
	ReceptorType  string   `json:"receptor_type,omitempty"`
	CofactorType  string   `json:"cofactor_type,omitempty"`
	Confidence    float64  `json:"confidence_score"`
	Reasons       []string `json:"reasons,omitempty"`
}

// RecordLoader resolves a record identifier to its structured record.
// Implementations signal absence with an error matching the loader
// package's ErrNotFound.
type RecordLoader interface {
	Load(id string) (*Record, error)
}

// Classifier decides whether a record is a nuclear-receptor/cofactor
// complex. Classify never fails: missing data is encoded in the result.
type Classifier interface {
	Classify(id string) Result
	ClassifyBatch(ids []string) []Result
}
