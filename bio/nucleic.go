package bio

// NucleicAcid is a nucleotide symbol, including IUPAC ambiguity codes
// and the gap. The zero value NoNucleicAcid is not a symbol, it marks
// a raw character which couldn't be recognized.
type NucleicAcid byte

const (
	NoNucleicAcid NucleicAcid = iota
	A
	C
	G
	T
	U
	R
	Y
	K
	M
	S
	W
	B
	D
	H
	V
	N
	Gap
	nNucleic
)

// concrete base bits
const (
	baseA = 1 << iota
	baseC
	baseG
	baseT
	baseU
)

type nucleicInfo struct {
	code  byte
	name  string
	bases uint8
}

var nucleicInfos = [nNucleic]nucleicInfo{
	NoNucleicAcid: {' ', "absent", 0},
	A:             {'A', "Adenine", baseA},
	C:             {'C', "Cytosine", baseC},
	G:             {'G', "Guanine", baseG},
	T:             {'T', "Thymine", baseT},
	U:             {'U', "Uracil", baseU},
	R:             {'R', "A or G; puRine", baseA | baseG},
	Y:             {'Y', "C, T or U; pYrimidines", baseC | baseT | baseU},
	K:             {'K', "G, T or U; bases which are Ketones", baseG | baseT | baseU},
	M:             {'M', "A or C; bases with aMino groups", baseA | baseC},
	S:             {'S', "C or G; Strong interaction", baseC | baseG},
	W:             {'W', "A, T or U; Weak interaction", baseA | baseT | baseU},
	B:             {'B', "not A (i.e. C, G, T or U)", baseC | baseG | baseT | baseU},
	D:             {'D', "not C (i.e. A, G, T or U)", baseA | baseG | baseT | baseU},
	H:             {'H', "not G (i.e. A, C, T or U)", baseA | baseC | baseT | baseU},
	V:             {'V', "neither T nor U (i.e. A, C or G)", baseA | baseC | baseG},
	N:             {'N', "A, C, G, T or U; any nucleic acid", baseA | baseC | baseG | baseT | baseU},
	Gap:           {'-', "gap of indeterminate length", 0},
}

var (
	// rNucleic maps an upper case raw character to the symbol.
	rNucleic [256]NucleicAcid
	// nucleicMatch[x][y] is true when x stands for y.
	nucleicMatch [nNucleic][nNucleic]bool
	nucleicSets  [nNucleic][]NucleicAcid
	nucleicCover [nNucleic][]NucleicAcid
)

func init() {
	for n := A; n < nNucleic; n++ {
		code := nucleicInfos[n].code
		rNucleic[code] = n
		if code >= 'A' && code <= 'Z' {
			rNucleic[code-'A'+'a'] = n
		}
	}
	for x := A; x < nNucleic; x++ {
		for y := A; y < nNucleic; y++ {
			bx, by := nucleicInfos[x].bases, nucleicInfos[y].bases
			nucleicMatch[x][y] = x == y || (by != 0 && bx&by == by)
		}
	}
	for x := A; x < nNucleic; x++ {
		for y := A; y < nNucleic; y++ {
			if nucleicMatch[x][y] {
				nucleicSets[x] = append(nucleicSets[x], y)
			}
			if nucleicMatch[y][x] {
				nucleicCover[x] = append(nucleicCover[x], y)
			}
		}
	}
}

// NucleicAcidOf returns the symbol for a raw character (case
// insensitive). The second value is false for unknown characters.
func NucleicAcidOf(code byte) (NucleicAcid, bool) {
	n := rNucleic[code]
	return n, n != NoNucleicAcid
}

// NucleicAcids returns all the symbols in the enumeration order.
func NucleicAcids() []NucleicAcid {
	ns := make([]NucleicAcid, 0, nNucleic-1)
	for n := A; n < nNucleic; n++ {
		ns = append(ns, n)
	}
	return ns
}

// Valid is false for NoNucleicAcid and out of range values.
func (n NucleicAcid) Valid() bool {
	return n > NoNucleicAcid && n < nNucleic
}

// Code returns the raw upper case character.
func (n NucleicAcid) Code() byte {
	if !n.Valid() {
		return ' '
	}
	return nucleicInfos[n].code
}

// Name returns a human readable name.
func (n NucleicAcid) Name() string {
	if !n.Valid() {
		return nucleicInfos[NoNucleicAcid].name
	}
	return nucleicInfos[n].name
}

func (n NucleicAcid) String() string {
	return string(n.Code())
}

// IsAmbiguous is true for IUPAC codes standing for more than one base.
func (n NucleicAcid) IsAmbiguous() bool {
	return n.Valid() && len(nucleicSets[n]) > 1
}

// Matches tests if n stands for other, e.g. N matches every base and
// every ambiguity code, R matches A, G and R.
func (n NucleicAcid) Matches(other NucleicAcid) bool {
	if !n.Valid() || !other.Valid() {
		return false
	}
	return nucleicMatch[n][other]
}

// MatchSet returns all the symbols n stands for, n included.
func (n NucleicAcid) MatchSet() []NucleicAcid {
	if !n.Valid() {
		return nil
	}
	return append([]NucleicAcid(nil), nucleicSets[n]...)
}

// MatchingCodes returns all the symbols standing for n, n included.
func (n NucleicAcid) MatchingCodes() []NucleicAcid {
	if !n.Valid() {
		return nil
	}
	return append([]NucleicAcid(nil), nucleicCover[n]...)
}
