package bio

import (
	"testing"
)

func nucleicString(ns []NucleicAcid) string {
	return NucleicSequence(ns).String()
}

func aminoString(as []AminoAcid) string {
	return AminoSequence(as).String()
}

func TestNucleicAcidOf(tst *testing.T) {
	for _, n := range NucleicAcids() {
		got, ok := NucleicAcidOf(n.Code())
		if !ok || got != n {
			tst.Errorf("Lookup of %q gave %v", n.Code(), got)
		}
	}
	if n, ok := NucleicAcidOf('a'); !ok || n != A {
		tst.Error("Lower case lookup failed")
	}
	if n, ok := NucleicAcidOf('X'); ok || n != NoNucleicAcid {
		tst.Error("X is not a nucleotide")
	}
}

func TestNucleicMatchSelf(tst *testing.T) {
	for _, n := range NucleicAcids() {
		if !n.Matches(n) {
			tst.Errorf("%v doesn't match itself", n)
		}
	}
	if NoNucleicAcid.Matches(NoNucleicAcid) {
		tst.Error("Absent symbol matches")
	}
}

func TestNucleicMatchSet(tst *testing.T) {
	tests := []struct {
		n   NucleicAcid
		set string
	}{
		{A, "A"},
		{R, "AGR"},
		{Y, "CTUY"},
		{B, "CGTUYKSB"},
		{V, "ACGRMSV"},
		{N, "ACGTURYKMSWBDHVN"},
		{Gap, "-"},
	}
	for _, t := range tests {
		if s := nucleicString(t.n.MatchSet()); s != t.set {
			tst.Errorf("Match set of %v: expected %s, got %s", t.n, t.set, s)
		}
	}
}

func TestNucleicMatchingCodes(tst *testing.T) {
	if s := nucleicString(A.MatchingCodes()); s != "ARMWDHVN" {
		tst.Errorf("Codes matching A: %s", s)
	}
	if s := nucleicString(R.MatchingCodes()); s != "RDVN" {
		tst.Errorf("Codes matching R: %s", s)
	}
}

func TestNucleicMatchTransitive(tst *testing.T) {
	all := NucleicAcids()
	for _, x := range all {
		for _, y := range all {
			for _, z := range all {
				if x.Matches(y) && y.Matches(z) && !x.Matches(z) {
					tst.Errorf("%v>%v>%v is not transitive", x, y, z)
				}
			}
		}
	}
}

func TestAminoAcidOf(tst *testing.T) {
	for _, a := range AminoAcids() {
		got, ok := AminoAcidOf(a.Code())
		if !ok || got != a {
			tst.Errorf("Lookup of %q gave %v", a.Code(), got)
		}
	}
	if a, _ := AminoAcidOf('m'); a != Met || !a.IsStart() {
		tst.Error("m should be the start methionine")
	}
	if _, ok := AminoAcidOf('1'); ok {
		tst.Error("1 is not an amino acid")
	}
	if !Stop.IsStop() || Stop.Code() != '*' {
		tst.Error("Wrong stop symbol")
	}
}

func TestAminoStart(tst *testing.T) {
	for _, a := range AminoAcids() {
		if a.IsStart() != (a == Met) {
			tst.Errorf("Wrong start flag for %v", a)
		}
	}
}

func TestAminoMatch(tst *testing.T) {
	if s := aminoString(Leu.ExpandedMatchingCodes()); s != "LJX" {
		tst.Errorf("Codes matching L: %s", s)
	}
	if s := aminoString(Xle.MatchSet()); s != "ILJ" {
		tst.Errorf("J match set: %s", s)
	}
	if Xaa.Matches(Stop) || Xaa.Matches(AminoGap) {
		tst.Error("X matches stop or gap")
	}
	for _, a := range AminoAcids() {
		if !a.Matches(a) {
			tst.Errorf("%v doesn't match itself", a)
		}
		if a != Stop && a != AminoGap && !Xaa.Matches(a) {
			tst.Errorf("X doesn't match %v", a)
		}
	}
	if s := aminoString(Stop.ExpandedMatchingCodes()); s != "*" {
		tst.Errorf("Codes matching stop: %s", s)
	}
}
