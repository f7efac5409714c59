// Package codon implements the codon table used for translation.
package codon

import (
	"bitbucket.org/Davydov/gotrans/bio"
)

// Codon is a nucleotide triplet.
type Codon [3]bio.NucleicAcid

// alphabet is the concrete DNA alphabet in the usual codon table order.
var alphabet = [...]bio.NucleicAcid{bio.T, bio.C, bio.A, bio.G}

// Parse converts a three letter string into a codon. The second value
// is false if the string is not three valid nucleotides long.
func Parse(s string) (c Codon, ok bool) {
	if len(s) != 3 {
		return
	}
	for i := 0; i < 3; i++ {
		n, valid := bio.NucleicAcidOf(s[i])
		if !valid {
			return Codon{}, false
		}
		c[i] = n
	}
	return c, true
}

// MustParse is like Parse but panics on invalid input. It is meant
// for table initialization.
func MustParse(s string) Codon {
	c, ok := Parse(s)
	if !ok {
		panic("invalid codon: " + s)
	}
	return c
}

// FromSlice converts exactly three nucleotides into a codon.
func FromSlice(ns []bio.NucleicAcid) (c Codon, ok bool) {
	if len(ns) != 3 {
		return
	}
	copy(c[:], ns)
	return c, true
}

func (c Codon) String() string {
	return string([]byte{c[0].Code(), c[1].Code(), c[2].Code()})
}

// ToRNA replaces T with U.
func (c Codon) ToRNA() Codon {
	for i, n := range c {
		if n == bio.T {
			c[i] = bio.U
		}
	}
	return c
}

// ToDNA replaces U with T.
func (c Codon) ToDNA() Codon {
	for i, n := range c {
		if n == bio.U {
			c[i] = bio.T
		}
	}
	return c
}

// IsConcrete is true when the codon has no ambiguity codes.
func (c Codon) IsConcrete() bool {
	for _, n := range c {
		if !n.Valid() || n.IsAmbiguous() || n == bio.Gap {
			return false
		}
	}
	return true
}

// Concrete returns all 64 DNA codons in the TCAG order.
func Concrete() []Codon {
	cs := make([]Codon, 0, 64)
	for _, n1 := range alphabet {
		for _, n2 := range alphabet {
			for _, n3 := range alphabet {
				cs = append(cs, Codon{n1, n2, n3})
			}
		}
	}
	return cs
}
