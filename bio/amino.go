package bio

// AminoAcid is an amino acid symbol, including the ambiguity codes
// (B, J, Z, X), the translation stop and the gap. The zero value
// NoAminoAcid is not a symbol.
type AminoAcid byte

const (
	NoAminoAcid AminoAcid = iota
	Ala
	Cys
	Asp
	Glu
	Phe
	Gly
	His
	Ile
	Lys
	Leu
	Xle
	Met
	Asn
	Asx
	Pyl
	Pro
	Gln
	Arg
	Ser
	Thr
	Sec
	Val
	Trp
	Tyr
	Glx
	Stop
	AminoGap
	Xaa
	nAmino
)

type aminoInfo struct {
	code byte
	name string
	// ambiguity codes list what they stand for, the rest is concrete
	of []AminoAcid
}

var aminoInfos = [nAmino]aminoInfo{
	NoAminoAcid: {' ', "absent", nil},
	Ala:         {'A', "Alanine", nil},
	Cys:         {'C', "Cysteine", nil},
	Asp:         {'D', "Aspartic acid", nil},
	Glu:         {'E', "Glutamic acid", nil},
	Phe:         {'F', "Phenylalanine", nil},
	Gly:         {'G', "Glycine", nil},
	His:         {'H', "Histidine", nil},
	Ile:         {'I', "Isoleucine", nil},
	Lys:         {'K', "Lysine", nil},
	Leu:         {'L', "Leucine", nil},
	Xle:         {'J', "Leucine (L) or Isoleucine (I)", []AminoAcid{Leu, Ile}},
	Met:         {'M', "Methionine", nil},
	Asn:         {'N', "Asparagine", nil},
	Asx:         {'B', "Aspartic acid (D) or Asparagine (N)", []AminoAcid{Asp, Asn}},
	Pyl:         {'O', "Pyrrolysine", nil},
	Pro:         {'P', "Proline", nil},
	Gln:         {'Q', "Glutamine", nil},
	Arg:         {'R', "Arginine", nil},
	Ser:         {'S', "Serine", nil},
	Thr:         {'T', "Threonine", nil},
	Sec:         {'U', "Selenocysteine", nil},
	Val:         {'V', "Valine", nil},
	Trp:         {'W', "Tryptophan", nil},
	Tyr:         {'Y', "Tyrosine", nil},
	Glx:         {'Z', "Glutamic acid (E) or Glutamine (Q)", []AminoAcid{Glu, Gln}},
	Stop:        {'*', "Translation STOP", nil},
	AminoGap:    {'-', "Gap of indeterminate length", nil},
	Xaa:         {'X', "any", nil},
}

var (
	rAmino     [256]AminoAcid
	aminoBits  [nAmino]uint32
	aminoMatch [nAmino][nAmino]bool
	aminoSets  [nAmino][]AminoAcid
	aminoCover [nAmino][]AminoAcid
)

func init() {
	for a := Ala; a < nAmino; a++ {
		code := aminoInfos[a].code
		rAmino[code] = a
		if code >= 'A' && code <= 'Z' {
			rAmino[code-'A'+'a'] = a
		}
	}

	// every concrete residue gets its own bit; stop and gap get none
	var residues uint32
	for a := Ala; a < nAmino; a++ {
		if a == Stop || a == AminoGap || a == Xaa || aminoInfos[a].of != nil {
			continue
		}
		aminoBits[a] = 1 << uint(a)
		residues |= aminoBits[a]
	}
	for a := Ala; a < nAmino; a++ {
		for _, o := range aminoInfos[a].of {
			aminoBits[a] |= aminoBits[o]
		}
	}
	aminoBits[Xaa] = residues

	for x := Ala; x < nAmino; x++ {
		for y := Ala; y < nAmino; y++ {
			bx, by := aminoBits[x], aminoBits[y]
			aminoMatch[x][y] = x == y || (by != 0 && bx&by == by)
		}
	}
	for x := Ala; x < nAmino; x++ {
		for y := Ala; y < nAmino; y++ {
			if aminoMatch[x][y] {
				aminoSets[x] = append(aminoSets[x], y)
			}
			if aminoMatch[y][x] {
				aminoCover[x] = append(aminoCover[x], y)
			}
		}
	}
}

// AminoAcidOf returns the symbol for a raw character (case
// insensitive). The second value is false for unknown characters.
func AminoAcidOf(code byte) (AminoAcid, bool) {
	a := rAmino[code]
	return a, a != NoAminoAcid
}

// AminoAcids returns all the symbols in the enumeration order.
func AminoAcids() []AminoAcid {
	as := make([]AminoAcid, 0, nAmino-1)
	for a := Ala; a < nAmino; a++ {
		as = append(as, a)
	}
	return as
}

// Valid is false for NoAminoAcid and out of range values.
func (a AminoAcid) Valid() bool {
	return a > NoAminoAcid && a < nAmino
}

// Code returns the one-letter code.
func (a AminoAcid) Code() byte {
	if !a.Valid() {
		return ' '
	}
	return aminoInfos[a].code
}

// Name returns a human readable name.
func (a AminoAcid) Name() string {
	if !a.Valid() {
		return aminoInfos[NoAminoAcid].name
	}
	return aminoInfos[a].name
}

func (a AminoAcid) String() string {
	return string(a.Code())
}

// IsStart is true for methionine only.
func (a AminoAcid) IsStart() bool {
	return a == Met
}

// IsStop is true for the translation stop.
func (a AminoAcid) IsStop() bool {
	return a == Stop
}

// Matches tests if a stands for other. X matches anything except
// the stop and the gap.
func (a AminoAcid) Matches(other AminoAcid) bool {
	if !a.Valid() || !other.Valid() {
		return false
	}
	return aminoMatch[a][other]
}

// MatchSet returns every symbol a stands for, a included.
func (a AminoAcid) MatchSet() []AminoAcid {
	if !a.Valid() {
		return nil
	}
	return append([]AminoAcid(nil), aminoSets[a]...)
}

// ExpandedMatchingCodes returns every symbol standing for a,
// including the non specific ones, e.g. L gives L, J and X.
func (a AminoAcid) ExpandedMatchingCodes() []AminoAcid {
	if !a.Valid() {
		return nil
	}
	return append([]AminoAcid(nil), aminoCover[a]...)
}
