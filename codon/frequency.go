package codon

import (
	"fmt"

	"bitbucket.org/Davydov/gotrans/bio"
)

// Usage counts concrete codons found in translated records.
type Usage struct {
	Counts map[Codon]int
	Total  int
	// Skipped is the number of records with ambiguity codons.
	Skipped int
}

// NewUsage creates an empty codon usage.
func NewUsage() *Usage {
	return &Usage{Counts: make(map[Codon]int, 64)}
}

// Add counts the source codon of a translated record. RNA codons are
// counted as DNA ones.
func (u *Usage) Add(ap bio.AminoPos) {
	c, ok := FromSlice(ap.Codons())
	if !ok {
		return
	}
	u.AddCount(c.ToDNA(), 1)
}

// AddCount adds n occurrences of a codon. Non-concrete codons are
// counted as skipped.
func (u *Usage) AddCount(c Codon, n int) {
	if !c.IsConcrete() {
		u.Skipped += n
		return
	}
	u.Counts[c] += n
	u.Total += n
}

// Frequency returns codon frequencies in the order of Concrete().
func (u *Usage) Frequency() []float64 {
	f := make([]float64, 64)
	if u.Total == 0 {
		return f
	}
	for i, c := range Concrete() {
		f[i] = float64(u.Counts[c]) / float64(u.Total)
	}
	return f
}

// F3X4 computes position specific nucleotide frequencies from the
// counted codons. Rows are codon positions, columns are T, C, A, G.
func (u *Usage) F3X4() (poscf [3][4]float64) {
	if u.Total == 0 {
		return
	}
	rAlphabet := map[bio.NucleicAcid]int{}
	for i, n := range alphabet {
		rAlphabet[n] = i
	}
	for c, n := range u.Counts {
		for pos := 0; pos < 3; pos++ {
			poscf[pos][rAlphabet[c[pos]]] += float64(n)
		}
	}
	for pos := 0; pos < 3; pos++ {
		for i := range poscf[pos] {
			poscf[pos][i] /= float64(u.Total)
		}
	}
	return
}

func (u *Usage) String() (s string) {
	s = "<Usage:"
	for _, c := range Concrete() {
		if u.Counts[c] > 0 {
			s += fmt.Sprintf(" %v: %v,", c, u.Counts[c])
		}
	}
	s = s[:len(s)-1] + ">"
	return
}
