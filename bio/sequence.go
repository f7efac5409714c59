package bio

import (
	"bytes"
)

// NucleicPos is a nucleotide with its position in the source sequence.
type NucleicPos struct {
	Code     NucleicAcid
	Position int
}

// AminoPos is a translated amino acid with its position in the
// translation and the three nucleotides it was translated from.
type AminoPos struct {
	Code     AminoAcid
	Position int
	Source   []NucleicPos
}

// Codons returns the source nucleotides as a sequence.
func (ap AminoPos) Codons() NucleicSequence {
	s := make(NucleicSequence, len(ap.Source))
	for i, np := range ap.Source {
		s[i] = np.Code
	}
	return s
}

// NucleicSource is a stream of positioned nucleotides.
type NucleicSource interface {
	Next() (NucleicPos, bool)
}

// AminoSource is a stream of positioned amino acids.
type AminoSource interface {
	Next() (AminoPos, bool)
}

// NucleicSequence is an ordered list of nucleotides. Positions are the
// 0-based indices. Methods never modify the receiver.
type NucleicSequence []NucleicAcid

// ParseNucleic converts a raw string into a nucleotide sequence,
// unknown characters become NoNucleicAcid.
func ParseNucleic(s string) NucleicSequence {
	return ParseNucleicWith(s, nil)
}

// ParseNucleicWith is like ParseNucleic, but calls h for every
// unknown character.
func ParseNucleicWith(s string, h InvalidCodeHandler) NucleicSequence {
	seq := make(NucleicSequence, len(s))
	for i := 0; i < len(s); i++ {
		seq[i] = NewRawCode(s[i], i).WithInvalidCodeHandler(h).NucleicAcid()
	}
	return seq
}

func (s NucleicSequence) String() string {
	var b bytes.Buffer
	b.Grow(len(s))
	for _, n := range s {
		b.WriteByte(n.Code())
	}
	return b.String()
}

// Equal tests if two sequences hold the same symbols.
func (s NucleicSequence) Equal(o NucleicSequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Reverse returns the sequence in the opposite order.
func (s NucleicSequence) Reverse() NucleicSequence {
	r := make(NucleicSequence, len(s))
	for i, n := range s {
		r[len(s)-1-i] = n
	}
	return r
}

// Sub returns a copy of length symbols starting at start.
func (s NucleicSequence) Sub(start, length int) NucleicSequence {
	return append(NucleicSequence(nil), s[start:start+length]...)
}

// ReverseStrand complements every symbol. It doesn't reverse the
// sequence, combined with Reverse it gives the antisense strand.
func (s NucleicSequence) ReverseStrand(a Alphabet) (NucleicSequence, error) {
	r := make(NucleicSequence, len(s))
	for i, n := range s {
		c, err := Complement(n, a)
		if err != nil {
			return nil, err
		}
		r[i] = c
	}
	return r, nil
}

// ToRNA swaps T and U.
func (s NucleicSequence) ToRNA() NucleicSequence {
	r := make(NucleicSequence, len(s))
	for i, n := range s {
		switch n {
		case T:
			r[i] = U
		case U:
			r[i] = T
		default:
			r[i] = n
		}
	}
	return r
}

// ToDNA swaps U and T, it is the inverse of ToRNA.
func (s NucleicSequence) ToDNA() NucleicSequence {
	return s.ToRNA()
}

// Positions returns every symbol with its index.
func (s NucleicSequence) Positions() []NucleicPos {
	ps := make([]NucleicPos, len(s))
	for i, n := range s {
		ps[i] = NucleicPos{n, i}
	}
	return ps
}

// Cursor returns a stream over the sequence.
func (s NucleicSequence) Cursor() *NucleicCursor {
	return &NucleicCursor{seq: s}
}

// NucleicCursor iterates over a sequence or over a list of positioned
// nucleotides.
type NucleicCursor struct {
	seq  NucleicSequence
	recs []NucleicPos
	i    int
}

// NewNucleicCursor returns a stream over already positioned records.
func NewNucleicCursor(recs []NucleicPos) *NucleicCursor {
	return &NucleicCursor{recs: recs}
}

func (c *NucleicCursor) Next() (np NucleicPos, ok bool) {
	if c.recs != nil {
		if c.i >= len(c.recs) {
			return
		}
		np = c.recs[c.i]
	} else {
		if c.i >= len(c.seq) {
			return
		}
		np = NucleicPos{c.seq[c.i], c.i}
	}
	c.i++
	return np, true
}

// AminoSequence is an ordered list of amino acids.
type AminoSequence []AminoAcid

// ParseAmino converts one-letter codes into an amino acid sequence,
// unknown characters become NoAminoAcid.
func ParseAmino(s string) AminoSequence {
	seq := make(AminoSequence, len(s))
	for i := 0; i < len(s); i++ {
		seq[i] = NewRawCode(s[i], i).AminoAcid()
	}
	return seq
}

// String skips absent symbols.
func (s AminoSequence) String() string {
	var b bytes.Buffer
	b.Grow(len(s))
	for _, a := range s {
		if a.Valid() {
			b.WriteByte(a.Code())
		}
	}
	return b.String()
}

// Equal tests if two sequences hold the same symbols.
func (s AminoSequence) Equal(o AminoSequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Contains tests if sub occurs in s as a contiguous run.
func (s AminoSequence) Contains(sub AminoSequence) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)].Equal(sub) {
			return true
		}
	}
	return false
}

// MatchesFuzzy tests o position by position against s using the
// ambiguity relation, e.g. "MX" matches "MK". o may be longer than s.
func (s AminoSequence) MatchesFuzzy(o AminoSequence) bool {
	if len(o) < len(s) {
		return false
	}
	for i, a := range s {
		if !a.Matches(o[i]) {
			return false
		}
	}
	return true
}

// Sub returns a copy of length symbols starting at start.
func (s AminoSequence) Sub(start, length int) AminoSequence {
	return append(AminoSequence(nil), s[start:start+length]...)
}

// Append returns a new sequence with o after s.
func (s AminoSequence) Append(o AminoSequence) AminoSequence {
	r := make(AminoSequence, 0, len(s)+len(o))
	r = append(r, s...)
	return append(r, o...)
}

// AminoCursor iterates over a list of positioned amino acids.
type AminoCursor struct {
	recs []AminoPos
	i    int
}

// NewAminoCursor returns a stream over recs.
func NewAminoCursor(recs []AminoPos) *AminoCursor {
	return &AminoCursor{recs: recs}
}

func (c *AminoCursor) Next() (ap AminoPos, ok bool) {
	if c.i >= len(c.recs) {
		return
	}
	ap = c.recs[c.i]
	c.i++
	return ap, true
}
