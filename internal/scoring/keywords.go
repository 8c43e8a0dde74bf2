package scoring

// Tables holds the keyword lists driving evidence scoring. A scorer
// copies them at construction; afterwards they are read-only and safe
// to share across concurrent classifications.
type Tables struct {
	NRGeneric   []string
	NRSpecific  []string
	Coactivator []string
	Corepressor []string
}

// DefaultTables returns the built-in keyword lists. The generic NR
// terms carry full weight; everything else names a specific receptor
// family or cofactor and carries the reduced weight. Entries are
// matched as plain lowercase substrings, so abbreviations that hide
// inside ordinary words (e.g. "tr", "activator") must stay out.
func DefaultTables() Tables {
	return Tables{
		NRGeneric: []string{
			"nuclear receptor", "steroid receptor",
		},
		NRSpecific: []string{
			"thyroid hormone receptor",
			"estrogen receptor", "androgen receptor", "glucocorticoid receptor",
			"mineralocorticoid receptor", "progesterone receptor",
			"peroxisome proliferator-activated receptor", "ppar",
			"retinoic acid receptor", "retinoid x receptor", "rar", "rxr",
			"liver x receptor", "lxr", "farnesoid x receptor", "fxr",
			"vitamin d receptor", "vdr",
			"hepatocyte nuclear factor", "hnf", "coup-tf", "nr2f",
			"testicular receptor", "tr2", "tr4", "tailless", "tlx",
			"photoreceptor cell-specific nuclear receptor", "pnr",
			"dosage-sensitive sex reversal", "dax1", "short heterodimer partner", "shp",
		},
		Coactivator: []string{
			// SRC family
			"steroid receptor coactivator", "src-1", "src-2", "src-3", "src1", "src2", "src3",
			"nuclear receptor coactivator", "ncoa1", "ncoa2", "ncoa3", "grip1", "tif2", "actr",
			// CBP/p300 family
			"creb-binding protein", "cbp", "p300", "ep300",
			// PGC family
			"peroxisome proliferator-activated receptor gamma coactivator", "pgc-1", "pgc1",
			"pgc-1alpha", "pgc-1beta", "pgc1a", "pgc1b",
			"mediator", "trap", "drip", "arc",
			"transcriptional intermediary factor", "receptor-associated protein",
		},
		Corepressor: []string{
			"nuclear receptor corepressor", "ncor", "smrt", "cornr",
			"silencing mediator", "corepressor", "repressor",
			"alien", "trip15", "csx", "hairless",
		},
	}
}
