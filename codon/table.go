package codon

import (
	"sort"

	"bitbucket.org/Davydov/gotrans/bio"
)

// assignments is the standard genetic code in DNA alphabet. Every
// amino acid also lists the ambiguity codons which translate to it
// unambiguously (e.g. GCN).
var assignments = map[bio.AminoAcid][]string{
	bio.Ala:  {"GCT", "GCC", "GCA", "GCG", "GCN"},
	bio.Leu:  {"TTA", "TTG", "CTT", "CTC", "CTA", "CTG", "YTR", "CTN"},
	bio.Arg:  {"CGT", "CGC", "CGA", "CGG", "AGA", "AGG", "CGN", "MGR"},
	bio.Lys:  {"AAA", "AAG", "AAR"},
	bio.Asn:  {"AAT", "AAC", "AAY"},
	bio.Met:  {"ATG"},
	bio.Asp:  {"GAT", "GAC", "GAY"},
	bio.Phe:  {"TTT", "TTC", "TTY"},
	bio.Cys:  {"TGT", "TGC", "TGY"},
	bio.Pro:  {"CCT", "CCC", "CCA", "CCG", "CCN"},
	bio.Gln:  {"CAA", "CAG", "CAR"},
	bio.Ser:  {"TCT", "TCC", "TCA", "TCG", "AGT", "AGC", "TCN", "AGY"},
	bio.Glu:  {"GAA", "GAG", "GAR"},
	bio.Thr:  {"ACT", "ACC", "ACA", "ACG", "ACN"},
	bio.Gly:  {"GGT", "GGC", "GGA", "GGG", "GGN"},
	bio.Trp:  {"TGG"},
	bio.His:  {"CAT", "CAC", "CAY"},
	bio.Tyr:  {"TAT", "TAC", "TAY"},
	bio.Ile:  {"ATT", "ATC", "ATA", "ATH"},
	bio.Val:  {"GTT", "GTC", "GTA", "GTG", "GTN"},
	bio.Stop: {"TAA", "TGA", "TAG", "TAR", "TRA"},
}

var (
	// dnaTable maps DNA codons (ambiguity codons included) to amino
	// acids.
	dnaTable map[Codon]bio.AminoAcid
	// rnaTable is dnaTable with T replaced by U.
	rnaTable map[Codon]bio.AminoAcid
	// rTable maps amino acids to their DNA codons.
	rTable map[bio.AminoAcid][]Codon
)

func init() {
	dnaTable = make(map[Codon]bio.AminoAcid, 100)
	rTable = make(map[bio.AminoAcid][]Codon, len(assignments))
	for aa, codons := range assignments {
		for _, s := range codons {
			c := MustParse(s)
			dnaTable[c] = aa
			rTable[aa] = append(rTable[aa], c)
		}
		sort.Slice(rTable[aa], func(i, j int) bool {
			return rTable[aa][i].String() < rTable[aa][j].String()
		})
	}

	// the RNA table is derived only after the DNA one is complete
	rnaTable = make(map[Codon]bio.AminoAcid, len(dnaTable))
	for c, aa := range dnaTable {
		rnaTable[c.ToRNA()] = aa
	}
}

// Translate translates three nucleotides into an amino acid. DNA table
// is tried first, then RNA table. The second value is false if the
// input is not exactly three nucleotides long or the codon is not in
// the tables. Ambiguity codons are only translated when listed
// explicitly, e.g. GCN is Ala but GCR is not translated.
func Translate(ns []bio.NucleicAcid) (bio.AminoAcid, bool) {
	c, ok := FromSlice(ns)
	if !ok {
		return bio.NoAminoAcid, false
	}
	return TranslateCodon(c)
}

// TranslateCodon translates a codon.
func TranslateCodon(c Codon) (bio.AminoAcid, bool) {
	if aa, ok := dnaTable[c]; ok {
		return aa, true
	}
	aa, ok := rnaTable[c]
	return aa, ok
}

// TranslateString translates a three letter string, e.g. "AUG".
func TranslateString(s string) (bio.AminoAcid, bool) {
	c, ok := Parse(s)
	if !ok {
		return bio.NoAminoAcid, false
	}
	return TranslateCodon(c)
}

// IsStop tests if the codon is a stop codon.
func IsStop(c Codon) bool {
	aa, ok := TranslateCodon(c)
	return ok && aa == bio.Stop
}

// Codons returns DNA codons translated into aa, sorted.
func Codons(aa bio.AminoAcid) []Codon {
	return append([]Codon(nil), rTable[aa]...)
}

// Len returns the number of DNA codons in the table.
func Len() int {
	return len(dnaTable)
}
