package translate

import (
	"fmt"

	"bitbucket.org/Davydov/gotrans/bio"
)

// Translation is a lazily computed translation of one reading frame.
// It is a finite stream which can't be restarted once consumed.
type Translation struct {
	// Frame is the reading frame (0, 1 or 2).
	Frame int
	// Reverse is true for frames of the reverse complement strand.
	Reverse bool

	open func() (bio.AminoSource, error)
	src  bio.AminoSource
	err  error
}

func newTranslation(frame int, reverse bool, open func() (bio.AminoSource, error)) *Translation {
	return &Translation{Frame: frame, Reverse: reverse, open: open}
}

// Next returns the next translated amino acid. It returns false when
// the translation is over or has failed, see Err.
func (t *Translation) Next() (bio.AminoPos, bool) {
	if t.src == nil && t.err == nil {
		t.src, t.err = t.open()
	}
	if t.err != nil {
		return bio.AminoPos{}, false
	}
	return t.src.Next()
}

// Started is true once the translation has been read from.
func (t *Translation) Started() bool {
	return t.src != nil || t.err != nil
}

// Err returns the error which stopped the translation.
func (t *Translation) Err() error {
	return t.err
}

// Records reads the rest of the translation.
func (t *Translation) Records() ([]bio.AminoPos, error) {
	var recs []bio.AminoPos
	for ap, ok := t.Next(); ok; ap, ok = t.Next() {
		recs = append(recs, ap)
	}
	return recs, t.err
}

// Sequence reads the rest of the translation as amino acids only.
func (t *Translation) Sequence() (bio.AminoSequence, error) {
	var seq bio.AminoSequence
	for ap, ok := t.Next(); ok; ap, ok = t.Next() {
		seq = append(seq, ap.Code)
	}
	return seq, t.err
}

// ORFs reads the rest of the translation and returns the open
// reading frames found in it.
func (t *Translation) ORFs() ([]ORF, error) {
	recs, err := t.Records()
	return ORFsOf(recs, t.Reverse), err
}

// Name returns a short frame name, e.g. "+1" or "-3".
func (t *Translation) Name() string {
	if t.Reverse {
		return fmt.Sprintf("-%d", t.Frame+1)
	}
	return fmt.Sprintf("+%d", t.Frame+1)
}
