package codon

func codons(ss ...string) []Codon {
	out := make([]Codon, len(ss))
	for i, s := range ss {
		out[i] = MustParse(s)
	}
	return out
}

// standardCatalog is NCBI translation table 1.
var standardCatalog = []Aminoacid{
	{Symbol: 'a', Name: "Alanine", Codons: codons("gcu", "gcc", "gca", "gcg")},
	{Symbol: 'c', Name: "Cysteine", Codons: codons("ugu", "ugc")},
	{Symbol: 'd', Name: "Aspartic acid", Codons: codons("gau", "gac")},
	{Symbol: 'e', Name: "Glutamic acid", Codons: codons("gaa", "gag")},
	{Symbol: 'f', Name: "Phenylalanine", Codons: codons("uuu", "uuc")},
	{Symbol: 'g', Name: "Glycine", Codons: codons("ggu", "ggc", "gga", "ggg")},
	{Symbol: 'h', Name: "Histidine", Codons: codons("cau", "cac")},
	{Symbol: 'i', Name: "Isoleucine", Codons: codons("auu", "auc", "aua")},
	{Symbol: 'k', Name: "Lysine", Codons: codons("aaa", "aag")},
	{Symbol: 'l', Name: "Leucine", Codons: codons("uua", "uug", "cuu", "cuc", "cua", "cug")},
	{Symbol: 'm', Name: "Methionine", Codons: codons("aug")},
	{Symbol: 'n', Name: "Asparagine", Codons: codons("aau", "aac")},
	{Symbol: 'p', Name: "Proline", Codons: codons("ccu", "ccc", "cca", "ccg")},
	{Symbol: 'q', Name: "Glutamine", Codons: codons("caa", "cag")},
	{Symbol: 'r', Name: "Arginine", Codons: codons("cgu", "cgc", "cga", "cgg", "aga", "agg")},
	{Symbol: 's', Name: "Serine", Codons: codons("ucu", "ucc", "uca", "ucg", "agu", "agc")},
	{Symbol: 't', Name: "Threonine", Codons: codons("acu", "acc", "aca", "acg")},
	{Symbol: 'v', Name: "Valine", Codons: codons("guu", "guc", "gua", "gug")},
	{Symbol: 'w', Name: "Tryptophan", Codons: codons("ugg")},
	{Symbol: 'y', Name: "Tyrosine", Codons: codons("uau", "uac")},
	{Symbol: Stop, Name: "Stop", Codons: codons("uaa", "uag", "uga")},
}

var standard = mustTable(standardCatalog)

func mustTable(catalog []Aminoacid) *Table {
	t, err := NewTable(catalog)
	if err != nil {
		panic("codon: standard table: " + err.Error())
	}
	return t
}

// Standard returns the standard genetic code. The table is built and checked
// once at package initialisation.
func Standard() *Table { return standard }
