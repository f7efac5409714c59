package translate

import (
	"bitbucket.org/Davydov/gotrans/bio"
	"bitbucket.org/Davydov/gotrans/codon"
)

// FrameBundle is a snapshot of all three forward frames. For every
// frame it holds the amino acid translated since the previous bundle,
// if any.
type FrameBundle struct {
	Codes   [NFrames]bio.AminoPos
	Present [NFrames]bool
}

// ForFrame returns the amino acid of frame k.
func (b FrameBundle) ForFrame(k int) (bio.AminoPos, bool) {
	if k < 0 || k >= NFrames {
		return bio.AminoPos{}, false
	}
	return b.Codes[k], b.Present[k]
}

func (b FrameBundle) copy() FrameBundle {
	for k := range b.Codes {
		b.Codes[k].Source = append([]bio.NucleicPos(nil), b.Codes[k].Source...)
	}
	return b
}

// MultiFrameScanner translates all three forward frames in a single
// pass over the input. Frame k starts accumulating nucleotides once k
// nucleotides were read; every frame is translated as soon as it has
// a complete triplet. A bundle is emitted every three nucleotides,
// and once more at the end of input if any frame was translated
// after the last bundle.
type MultiFrameScanner struct {
	src     bio.NucleicSource
	read    int
	buffers [NFrames][]bio.NucleicPos
	counts  [NFrames]int
	current FrameBundle
	fresh   bool
	done    bool
}

// NewMultiFrameScanner creates a scanner of src.
func NewMultiFrameScanner(src bio.NucleicSource) *MultiFrameScanner {
	s := &MultiFrameScanner{src: src}
	for k := range s.buffers {
		s.buffers[k] = make([]bio.NucleicPos, 0, 3)
	}
	return s
}

// Next returns the next bundle.
func (s *MultiFrameScanner) Next() (FrameBundle, bool) {
	for !s.done {
		np, ok := s.src.Next()
		if !ok {
			s.done = true
			if s.fresh {
				return s.emit(), true
			}
			break
		}
		for k := 0; k < NFrames; k++ {
			if s.read < k {
				continue
			}
			s.buffers[k] = append(s.buffers[k], np)
			if len(s.buffers[k]) == 3 {
				s.flush(k)
			}
		}
		s.read++
		if s.read%3 == 0 {
			return s.emit(), true
		}
	}
	return FrameBundle{}, false
}

func (s *MultiFrameScanner) flush(k int) {
	buf := s.buffers[k]
	c := codon.Codon{buf[0].Code, buf[1].Code, buf[2].Code}
	if aa, ok := codon.TranslateCodon(c); ok {
		s.current.Codes[k] = bio.AminoPos{
			Code:     aa,
			Position: s.counts[k],
			Source:   append([]bio.NucleicPos(nil), buf...),
		}
		s.current.Present[k] = true
		s.counts[k]++
		s.fresh = true
	}
	s.buffers[k] = buf[:0]
}

func (s *MultiFrameScanner) emit() FrameBundle {
	b := s.current.copy()
	s.current = FrameBundle{}
	s.fresh = false
	return b
}

// MultiTranslation holds the three forward frames translated in a
// single scan. The scan happens on the first access.
type MultiTranslation struct {
	src     bio.NucleicSource
	frames  [NFrames][]bio.AminoPos
	scanned bool
}

// MultiTranslate creates a multi-frame translation of seq.
func MultiTranslate(seq bio.NucleicSequence) *MultiTranslation {
	return MultiTranslateSource(seq.Cursor())
}

// MultiTranslateSource creates a multi-frame translation of a stream.
func MultiTranslateSource(src bio.NucleicSource) *MultiTranslation {
	return &MultiTranslation{src: src}
}

func (mt *MultiTranslation) scan() {
	if mt.scanned {
		return
	}
	mt.scanned = true
	s := NewMultiFrameScanner(mt.src)
	for b, ok := s.Next(); ok; b, ok = s.Next() {
		for k := 0; k < NFrames; k++ {
			if ap, ok := b.ForFrame(k); ok {
				mt.frames[k] = append(mt.frames[k], ap)
			}
		}
	}
}

// ForFrame returns the translation of frame k. Every call returns a
// new stream over the same records.
func (mt *MultiTranslation) ForFrame(k int) (*Translation, error) {
	if err := checkFrame(k); err != nil {
		return nil, err
	}
	return newTranslation(k, false, func() (bio.AminoSource, error) {
		mt.scan()
		return bio.NewAminoCursor(mt.frames[k]), nil
	}), nil
}

// Frames returns translations of all three frames.
func (mt *MultiTranslation) Frames() []*Translation {
	ts := make([]*Translation, NFrames)
	for k := range ts {
		ts[k], _ = mt.ForFrame(k)
	}
	return ts
}
