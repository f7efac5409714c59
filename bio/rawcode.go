package bio

// InvalidCodeHandler is called with a raw character which doesn't
// correspond to any symbol and its position.
type InvalidCodeHandler func(raw byte, position int)

// RawCode is a raw sequence character which can be read either as a
// nucleotide or as an amino acid.
type RawCode struct {
	Code     byte
	Position int
	handler  InvalidCodeHandler
}

// NewRawCode creates a RawCode which silently ignores invalid codes.
func NewRawCode(code byte, position int) RawCode {
	return RawCode{Code: code, Position: position}
}

// WithInvalidCodeHandler returns a copy of rc which reports invalid
// codes to h. A nil h disables reporting.
func (rc RawCode) WithInvalidCodeHandler(h InvalidCodeHandler) RawCode {
	rc.handler = h
	return rc
}

func (rc RawCode) invalid() {
	if rc.handler != nil {
		rc.handler(rc.Code, rc.Position)
	}
}

// NucleicAcid returns the nucleotide or NoNucleicAcid.
func (rc RawCode) NucleicAcid() NucleicAcid {
	n, ok := NucleicAcidOf(rc.Code)
	if !ok {
		rc.invalid()
	}
	return n
}

// AminoAcid returns the amino acid or NoAminoAcid.
func (rc RawCode) AminoAcid() AminoAcid {
	a, ok := AminoAcidOf(rc.Code)
	if !ok {
		rc.invalid()
	}
	return a
}

// NucleicPos returns the nucleotide together with the position.
func (rc RawCode) NucleicPos() NucleicPos {
	return NucleicPos{rc.NucleicAcid(), rc.Position}
}

// AminoPos returns the amino acid together with the position.
func (rc RawCode) AminoPos() AminoPos {
	return AminoPos{Code: rc.AminoAcid(), Position: rc.Position}
}

func (rc RawCode) String() string {
	return string(rc.Code)
}
