package translate

import (
	"bitbucket.org/Davydov/gotrans/bio"
)

// TranslateReverse translates a frame of the reverse complement
// strand. The sequence is reversed and complemented using the given
// alphabet, translated, and the translation is reversed back so it
// follows the order of the original sequence. Positions are the ones
// assigned while translating the reversed strand.
func TranslateReverse(frame int, seq bio.NucleicSequence, a bio.Alphabet) (*Translation, error) {
	if err := checkFrame(frame); err != nil {
		return nil, err
	}
	return newTranslation(frame, true, func() (bio.AminoSource, error) {
		rs, err := seq.Reverse().ReverseStrand(a)
		if err != nil {
			log.Debugf("reverse frame %d: %v", frame, err)
			return nil, err
		}
		ft, err := NewFrameTranslator(rs.Cursor(), frame)
		if err != nil {
			return nil, err
		}
		var recs []bio.AminoPos
		for ap, ok := ft.Next(); ok; ap, ok = ft.Next() {
			recs = append(recs, ap)
		}
		for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
			recs[i], recs[j] = recs[j], recs[i]
		}
		return bio.NewAminoCursor(recs), nil
	}), nil
}

// TranslateAll returns translations of the three forward frames.
func TranslateAll(seq bio.NucleicSequence) []*Translation {
	ts, _ := New(seq).AllFrames().Get()
	return ts
}

// TranslateAllReverse returns translations of the three reverse frames.
func TranslateAllReverse(seq bio.NucleicSequence, a bio.Alphabet) []*Translation {
	ts, _ := New(seq).Alphabet(a).AllReverseFrames().Get()
	return ts
}

// TranslateAllFramesAndReverse returns translations of all six frames,
// forward ones first.
func TranslateAllFramesAndReverse(seq bio.NucleicSequence, a bio.Alphabet) []*Translation {
	ts, _ := New(seq).Alphabet(a).AllFrames().AllReverseFrames().Get()
	return ts
}
