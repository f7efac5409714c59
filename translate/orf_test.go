package translate

import (
	"testing"

	"bitbucket.org/Davydov/gotrans/bio"
)

func aminoStream(s string) bio.AminoSource {
	recs := make([]bio.AminoPos, len(s))
	for i := 0; i < len(s); i++ {
		recs[i] = bio.NewRawCode(s[i], i).AminoPos()
	}
	return bio.NewAminoCursor(recs)
}

func orfStrings(orfs []ORF) []string {
	var ss []string
	for _, o := range orfs {
		ss = append(ss, o.String())
	}
	return ss
}

func TestFindORFs(tst *testing.T) {
	tests := []struct {
		stream string
		orfs   []string
		pos    []int
	}{
		{"MPPV*KK", []string{"MPPV"}, []int{0}},
		{"KMPMQ*", []string{"MQ"}, []int{3}},
		{"P*MK*", []string{"MK"}, []int{2}},
		{"M-K*", []string{"MK"}, []int{0}},
		{"M*", []string{"M"}, []int{0}},
		{"MKK", nil, nil},
		{"**", nil, nil},
		{"MA*GMC*M", []string{"MA", "MC"}, []int{0, 4}},
		{"", nil, nil},
	}
	for _, t := range tests {
		orfs := FindORFs(aminoStream(t.stream))
		ss := orfStrings(orfs)
		if len(ss) != len(t.orfs) {
			tst.Errorf("%s: expected %v, got %v", t.stream, t.orfs, ss)
			continue
		}
		for i := range ss {
			if ss[i] != t.orfs[i] || orfs[i].Position != t.pos[i] {
				tst.Errorf("%s: expected %s at %d, got %s at %d",
					t.stream, t.orfs[i], t.pos[i], ss[i], orfs[i].Position)
			}
		}
	}
}

func TestORFFinderAbsent(tst *testing.T) {
	recs := []bio.AminoPos{
		{Code: bio.Met, Position: 0},
		{Code: bio.NoAminoAcid, Position: 1},
		{Code: bio.Lys, Position: 2},
		{Code: bio.Stop, Position: 3},
	}
	orfs := FindORFs(bio.NewAminoCursor(recs))
	if len(orfs) != 1 || orfs[0].String() != "MK" || orfs[0].End() != 2 {
		tst.Errorf("Unexpected ORFs: %v", orfs)
	}
}

func TestTranslationORFs(tst *testing.T) {
	t, _ := TranslateString(0, "ATGCCACCCGTTTAAAAGAAG")
	orfs, err := t.ORFs()
	if err != nil {
		tst.Fatal(err)
	}
	if len(orfs) != 1 || orfs[0].String() != "MPPV" {
		tst.Fatalf("Unexpected ORFs: %v", orfs)
	}
	o := orfs[0]
	if o.Position != 0 || o.End() != 3 {
		tst.Errorf("Unexpected ORF bounds %d-%d", o.Position, o.End())
	}
	if from, to := o.NucleicSpan(); from != 0 || to != 11 {
		tst.Errorf("Unexpected nucleotide span %d-%d", from, to)
	}
}

func TestReverseFrameORFs(tst *testing.T) {
	// the reverse strand of TTATTTCAT is ATGAAATAA
	t, err := TranslateReverse(0, bio.ParseNucleic("TTATTTCAT"), bio.DNA)
	if err != nil {
		tst.Fatal(err)
	}
	orfs, err := t.ORFs()
	if err != nil {
		tst.Fatal(err)
	}
	if len(orfs) != 1 || orfs[0].String() != "MK" || orfs[0].Position != 0 || orfs[0].End() != 1 {
		tst.Fatalf("Unexpected ORFs: %v", orfs)
	}
	if from, to := orfs[0].NucleicSpan(); from != 0 || to != 5 {
		tst.Errorf("Unexpected nucleotide span %d-%d", from, to)
	}
}

func TestORFsOf(tst *testing.T) {
	recs := []bio.AminoPos{
		{Code: bio.Stop, Position: 3},
		{Code: bio.Lys, Position: 2},
		{Code: bio.Met, Position: 1},
		{Code: bio.Stop, Position: 0},
	}
	if orfs := ORFsOf(recs, false); len(orfs) != 0 {
		tst.Errorf("Forward scan should find nothing, got %v", orfs)
	}
	orfs := ORFsOf(recs, true)
	if len(orfs) != 1 || orfs[0].String() != "MK" || orfs[0].Position != 1 {
		tst.Errorf("Unexpected ORFs: %v", orfs)
	}
	if recs[0].Code != bio.Stop {
		tst.Error("Records were modified")
	}
}
