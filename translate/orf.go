package translate

import (
	"bitbucket.org/Davydov/gotrans/bio"
)

// ORF is a protein which starts with methionine and was terminated by
// a stop codon. The stop is not included.
type ORF struct {
	Protein bio.AminoSequence
	// Position is the position of the starting methionine.
	Position int
	Records  []bio.AminoPos
}

// End returns the position of the last amino acid before the stop.
func (o ORF) End() int {
	if len(o.Records) == 0 {
		return o.Position
	}
	return o.Records[len(o.Records)-1].Position
}

// NucleicSpan returns the smallest and the largest source nucleotide
// positions of the ORF.
func (o ORF) NucleicSpan() (from, to int) {
	first := true
	for _, ap := range o.Records {
		for _, np := range ap.Source {
			if first || np.Position < from {
				from = np.Position
			}
			if first || np.Position > to {
				to = np.Position
			}
			first = false
		}
	}
	return
}

func (o ORF) String() string {
	return o.Protein.String()
}

type orfState int

const (
	seekingStart orfState = iota
	inSequence
)

// ORFFinder extracts ORFs from an amino acid stream. A methionine
// (re)starts the ORF, so for nested starts the last one wins. A stop
// emits the ORF if one was started. Anything before the first start
// is ignored, as well as absent amino acids and gaps.
type ORFFinder struct {
	src   bio.AminoSource
	state orfState
	buf   []bio.AminoPos
}

// NewORFFinder creates a finder reading from src.
func NewORFFinder(src bio.AminoSource) *ORFFinder {
	return &ORFFinder{src: src}
}

// Next returns the next ORF.
func (f *ORFFinder) Next() (ORF, bool) {
	for {
		ap, ok := f.src.Next()
		if !ok {
			return ORF{}, false
		}
		switch {
		case !ap.Code.Valid() || ap.Code == bio.AminoGap:
			continue
		case ap.Code.IsStart():
			f.buf = []bio.AminoPos{ap}
			f.state = inSequence
		case ap.Code.IsStop():
			started := f.state == inSequence && len(f.buf) > 0
			recs := f.buf
			f.buf = nil
			f.state = seekingStart
			if started {
				return newORF(recs), true
			}
		default:
			if f.state == inSequence {
				f.buf = append(f.buf, ap)
			}
		}
	}
}

func newORF(recs []bio.AminoPos) ORF {
	o := ORF{
		Protein:  make(bio.AminoSequence, len(recs)),
		Position: recs[0].Position,
		Records:  recs,
	}
	for i, ap := range recs {
		o.Protein[i] = ap.Code
	}
	return o
}

// ORFsOf returns the ORFs of translated records. Records of a reverse
// frame follow the original sequence, so they are scanned backwards,
// in the order they were translated.
func ORFsOf(recs []bio.AminoPos, reverse bool) []ORF {
	if reverse {
		rev := make([]bio.AminoPos, len(recs))
		for i, ap := range recs {
			rev[len(recs)-1-i] = ap
		}
		recs = rev
	}
	return FindORFs(bio.NewAminoCursor(recs))
}

// FindORFs returns all ORFs of src.
func FindORFs(src bio.AminoSource) []ORF {
	var orfs []ORF
	f := NewORFFinder(src)
	for o, ok := f.Next(); ok; o, ok = f.Next() {
		orfs = append(orfs, o)
	}
	return orfs
}
