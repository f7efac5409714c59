package codon

import (
	"testing"

	"bitbucket.org/Davydov/gotrans/bio"
)

// standard is the standard genetic code in TCAG order.
const standard = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

func TestConcreteTotal(tst *testing.T) {
	codons := Concrete()
	if len(codons) != 64 {
		tst.Fatalf("Expected 64 codons, got %d", len(codons))
	}
	for i, c := range codons {
		aa, ok := TranslateCodon(c)
		if !ok {
			tst.Errorf("Codon %v is not translated", c)
			continue
		}
		if aa.Code() != standard[i] {
			tst.Errorf("Codon %v: expected %c, got %v", c, standard[i], aa)
		}
		aa2, _ := TranslateCodon(c)
		if aa2 != aa {
			tst.Errorf("Translation of %v is not deterministic", c)
		}
	}
}

func TestTranslateRNA(tst *testing.T) {
	for _, c := range Concrete() {
		dna, _ := TranslateCodon(c)
		rna, ok := TranslateCodon(c.ToRNA())
		if !ok || rna != dna {
			tst.Errorf("RNA codon %v: expected %v, got %v", c.ToRNA(), dna, rna)
		}
	}
	if aa, ok := TranslateString("aug"); !ok || aa != bio.Met {
		tst.Error("AUG should be methionine")
	}
	if aa, ok := TranslateString("UAR"); !ok || aa != bio.Stop {
		tst.Error("UAR should be stop")
	}
}

func TestTranslateAmbiguous(tst *testing.T) {
	tests := []struct {
		codon string
		aa    bio.AminoAcid
		ok    bool
	}{
		{"GCN", bio.Ala, true},
		{"YTR", bio.Leu, true},
		{"MGR", bio.Arg, true},
		{"ATH", bio.Ile, true},
		{"TRA", bio.Stop, true},
		{"GCU", bio.Ala, true},
		// not listed explicitly, no expansion
		{"GCR", bio.NoAminoAcid, false},
		{"ACY", bio.NoAminoAcid, false},
		{"NNN", bio.NoAminoAcid, false},
		{"A-G", bio.NoAminoAcid, false},
	}
	for _, t := range tests {
		aa, ok := TranslateString(t.codon)
		if ok != t.ok || aa != t.aa {
			tst.Errorf("%s: expected %v/%v, got %v/%v", t.codon, t.aa, t.ok, aa, ok)
		}
	}
}

func TestTranslateLength(tst *testing.T) {
	if _, ok := Translate(bio.ParseNucleic("AT")); ok {
		tst.Error("Two nucleotides can't be translated")
	}
	if _, ok := Translate(bio.ParseNucleic("ATGA")); ok {
		tst.Error("Four nucleotides can't be translated")
	}
	if _, ok := Translate(nil); ok {
		tst.Error("nil can't be translated")
	}
	if aa, ok := Translate(bio.ParseNucleic("ATG")); !ok || aa != bio.Met {
		tst.Error("ATG should be methionine")
	}
	if _, ok := Translate(bio.ParseNucleic("A?G")); ok {
		tst.Error("Absent nucleotide can't be translated")
	}
}

func TestCodons(tst *testing.T) {
	ms := Codons(bio.Met)
	if len(ms) != 1 || ms[0].String() != "ATG" {
		tst.Errorf("Unexpected methionine codons: %v", ms)
	}
	stops := Codons(bio.Stop)
	if len(stops) != 5 {
		tst.Errorf("Unexpected stop codons: %v", stops)
	}
	for _, c := range stops {
		if !IsStop(c) {
			tst.Errorf("%v should be a stop codon", c)
		}
	}
	if Len() != 87 {
		tst.Errorf("Unexpected table size %d", Len())
	}
}

func TestParse(tst *testing.T) {
	if _, ok := Parse("AC"); ok {
		tst.Error("Short codon parsed")
	}
	if _, ok := Parse("AXG"); ok {
		tst.Error("Invalid codon parsed")
	}
	c := MustParse("acg")
	if c.String() != "ACG" || !c.IsConcrete() {
		tst.Errorf("Unexpected codon %v", c)
	}
	if c := MustParse("UUG").ToDNA(); c.String() != "TTG" {
		tst.Errorf("Wrong DNA codon %v", c)
	}
	if c := MustParse("TTG").ToDNA(); c.String() != "TTG" {
		tst.Errorf("DNA codon changed to %v", c)
	}
	if MustParse("ACN").IsConcrete() {
		tst.Error("ACN is not concrete")
	}
}
