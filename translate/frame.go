// Package translate translates nucleotide sequences into amino acid
// sequences in any of the six reading frames and extracts open
// reading frames.
//
// Translations are lazy: nothing is computed until records are
// requested, and a translation can be consumed only once.
package translate

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/gotrans/bio"
	"bitbucket.org/Davydov/gotrans/codon"
)

// log is the global logging variable.
var log = logging.MustGetLogger("translate")

// NFrames is the number of reading frames on one strand.
const NFrames = 3

// ErrFrame is returned for reading frames outside of 0, 1, 2.
var ErrFrame = errors.New("reading frame should be 0, 1 or 2")

func checkFrame(frame int) error {
	if frame < 0 || frame >= NFrames {
		return fmt.Errorf("%w: %d", ErrFrame, frame)
	}
	return nil
}

// FrameTranslator translates a nucleotide stream in one reading
// frame. It skips the first frame nucleotides and translates every
// following complete triplet. Triplets which are not in the codon
// table and the incomplete trailing triplet produce no records.
type FrameTranslator struct {
	src    bio.NucleicSource
	frame  int
	window [3]bio.NucleicPos
	// pos is the position of the next produced amino acid.
	pos     int
	skipped int
	started bool
	done    bool
}

// NewFrameTranslator creates a translator of src in the given frame.
func NewFrameTranslator(src bio.NucleicSource, frame int) (*FrameTranslator, error) {
	if err := checkFrame(frame); err != nil {
		return nil, err
	}
	return &FrameTranslator{src: src, frame: frame}, nil
}

// Next returns the next translated amino acid with its source
// nucleotides. The second value is false when the input is exhausted.
func (ft *FrameTranslator) Next() (bio.AminoPos, bool) {
	if ft.done {
		return bio.AminoPos{}, false
	}
	if !ft.started {
		ft.started = true
		for i := 0; i < ft.frame; i++ {
			if _, ok := ft.src.Next(); !ok {
				return ft.finish()
			}
		}
	}
	for {
		for i := range ft.window {
			np, ok := ft.src.Next()
			if !ok {
				return ft.finish()
			}
			ft.window[i] = np
		}
		c := codon.Codon{ft.window[0].Code, ft.window[1].Code, ft.window[2].Code}
		aa, ok := codon.TranslateCodon(c)
		if !ok {
			ft.skipped++
			continue
		}
		ap := bio.AminoPos{
			Code:     aa,
			Position: ft.pos,
			Source:   append([]bio.NucleicPos(nil), ft.window[:]...),
		}
		ft.pos++
		return ap, true
	}
}

func (ft *FrameTranslator) finish() (bio.AminoPos, bool) {
	ft.done = true
	if ft.skipped > 0 {
		log.Debugf("frame %d: %d codons translated, %d untranslatable codons skipped",
			ft.frame, ft.pos, ft.skipped)
	}
	return bio.AminoPos{}, false
}

// Translate translates seq in the given frame.
func Translate(frame int, seq bio.NucleicSequence) (*Translation, error) {
	return TranslateSource(frame, seq.Cursor())
}

// TranslateString parses a raw nucleotide string and translates it
// in the given frame.
func TranslateString(frame int, s string) (*Translation, error) {
	return Translate(frame, bio.ParseNucleic(s))
}

// TranslateSource translates a positioned nucleotide stream. The
// source is consumed when the translation is read.
func TranslateSource(frame int, src bio.NucleicSource) (*Translation, error) {
	if err := checkFrame(frame); err != nil {
		return nil, err
	}
	return newTranslation(frame, false, func() (bio.AminoSource, error) {
		return NewFrameTranslator(src, frame)
	}), nil
}
