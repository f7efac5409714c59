package bio

import (
	"errors"
	"fmt"
)

// Alphabet selects DNA or RNA base pairing.
type Alphabet int

const (
	DNA Alphabet = iota
	RNA
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	}
	return fmt.Sprintf("Alphabet(%d)", int(a))
}

// ErrNoComplement is returned when a symbol has no complement in the
// requested alphabet (ambiguity codes, gaps, U in DNA, T in RNA).
var ErrNoComplement = errors.New("no complement defined")

// ComplementError describes the symbol which couldn't be complemented.
type ComplementError struct {
	Code     NucleicAcid
	Alphabet Alphabet
}

func (e *ComplementError) Error() string {
	return fmt.Sprintf("%v: %s symbol %q", ErrNoComplement, e.Alphabet, e.Code.Code())
}

func (e *ComplementError) Unwrap() error {
	return ErrNoComplement
}

var complements = map[Alphabet]map[NucleicAcid]NucleicAcid{
	DNA: {A: T, T: A, G: C, C: G},
	RNA: {A: U, U: A, G: C, C: G},
}

// Complement returns the base pairing partner of n. An absent symbol
// stays absent.
func Complement(n NucleicAcid, a Alphabet) (NucleicAcid, error) {
	if n == NoNucleicAcid {
		return NoNucleicAcid, nil
	}
	c, ok := complements[a][n]
	if !ok {
		return NoNucleicAcid, &ComplementError{Code: n, Alphabet: a}
	}
	return c, nil
}
