package translate

import (
	"bitbucket.org/Davydov/gotrans/bio"
)

// Builder selects the frames to translate. Frames requested more than
// once are translated once, in the order of the first request.
type Builder struct {
	seq      bio.NucleicSequence
	frames   []int
	reverse  []int
	alphabet bio.Alphabet
	err      error
}

// New creates a builder for seq. The complement alphabet is DNA by
// default.
func New(seq bio.NucleicSequence) *Builder {
	return &Builder{seq: seq, alphabet: bio.DNA}
}

func addFrames(dst []int, frames []int) ([]int, error) {
outer:
	for _, f := range frames {
		if err := checkFrame(f); err != nil {
			return dst, err
		}
		for _, g := range dst {
			if g == f {
				continue outer
			}
		}
		dst = append(dst, f)
	}
	return dst, nil
}

// Frames requests forward frames.
func (b *Builder) Frames(frames ...int) *Builder {
	var err error
	b.frames, err = addFrames(b.frames, frames)
	if b.err == nil {
		b.err = err
	}
	return b
}

// AllFrames requests the three forward frames.
func (b *Builder) AllFrames() *Builder {
	return b.Frames(0, 1, 2)
}

// ReverseFrames requests frames of the reverse complement strand.
func (b *Builder) ReverseFrames(frames ...int) *Builder {
	var err error
	b.reverse, err = addFrames(b.reverse, frames)
	if b.err == nil {
		b.err = err
	}
	return b
}

// AllReverseFrames requests the three reverse frames.
func (b *Builder) AllReverseFrames() *Builder {
	return b.ReverseFrames(0, 1, 2)
}

// Alphabet sets base pairing used to build the reverse strand.
func (b *Builder) Alphabet(a bio.Alphabet) *Builder {
	b.alphabet = a
	return b
}

// Get returns one lazy translation per requested frame, forward frames
// first. Nothing is translated until a translation is read.
func (b *Builder) Get() ([]*Translation, error) {
	if b.err != nil {
		return nil, b.err
	}
	ts := make([]*Translation, 0, len(b.frames)+len(b.reverse))
	for _, f := range b.frames {
		t, err := Translate(f, b.seq)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	for _, f := range b.reverse {
		t, err := TranslateReverse(f, b.seq, b.alphabet)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// AnyMatch calls pred on the requested translations in order and
// stops at the first one it accepts. Translations after it are never
// computed.
func (b *Builder) AnyMatch(pred func(*Translation) bool) (bool, error) {
	ts, err := b.Get()
	if err != nil {
		return false, err
	}
	for _, t := range ts {
		ok := pred(t)
		if t.Err() != nil {
			return false, t.Err()
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Contains is an AnyMatch predicate which tests if the translation
// contains protein.
func Contains(protein bio.AminoSequence) func(*Translation) bool {
	return func(t *Translation) bool {
		seq, err := t.Sequence()
		return err == nil && seq.Contains(protein)
	}
}
