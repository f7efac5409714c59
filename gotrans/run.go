package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"bitbucket.org/Davydov/gotrans/bio"
	"bitbucket.org/Davydov/gotrans/checkpoint"
	"bitbucket.org/Davydov/gotrans/codon"
	"bitbucket.org/Davydov/gotrans/report"
	"bitbucket.org/Davydov/gotrans/translate"
)

// options are the translation settings of a run.
type options struct {
	frames   []int
	reverse  []int
	alphabet bio.Alphabet
	orf      bool
	minLen   int
	width    int
}

func (o options) builder(seq bio.NucleicSequence) *translate.Builder {
	return translate.New(seq).
		Frames(o.frames...).
		ReverseFrames(o.reverse...).
		Alphabet(o.alphabet)
}

// key identifies the run in the checkpoint database. Runs with
// different settings never share processed records.
func (o options) key(fn string) []byte {
	if abs, err := filepath.Abs(fn); err == nil {
		fn = abs
	}
	return []byte(fmt.Sprintf("%s frames=%v reverse=%v alphabet=%v orf=%v minlen=%d width=%d",
		fn, o.frames, o.reverse, o.alphabet, o.orf, o.minLen, o.width))
}

// recordResult is everything computed for a single input sequence.
// It is saved to the checkpoint database.
type recordResult struct {
	Summary    report.RecordSummary `json:"summary"`
	Output     string               `json:"output"`
	ORFLengths []int                `json:"orfLengths"`
	Codons     map[string]int       `json:"codons"`
}

// runner translates sequences one by one.
type runner struct {
	opts    options
	cio     *checkpoint.CheckpointIO
	runID   string
	summary *report.RunSummary

	usage      *codon.Usage
	orfLengths []int
}

func newRunner(opts options, cio *checkpoint.CheckpointIO, runID string, summary *report.RunSummary) *runner {
	return &runner{
		opts:    opts,
		cio:     cio,
		runID:   runID,
		summary: summary,
		usage:   codon.NewUsage(),
	}
}

// translateRecord translates all the requested frames of seq.
func (r *runner) translateRecord(seq bio.Sequence) (res recordResult) {
	invalid := 0
	nseq := seq.Nucleic(func(raw byte, pos int) {
		if invalid == 0 {
			log.Debugf("%s: unknown character %q at %d", seq.Name, raw, pos)
		}
		invalid++
	})
	if invalid > 0 {
		log.Warningf("%s: %d unknown characters", seq.Name, invalid)
	}

	res.Summary = report.RecordSummary{Name: seq.Name, Length: len(nseq)}
	usage := codon.NewUsage()

	ts, err := r.opts.builder(nseq).Get()
	if err != nil {
		// frames were checked on start
		log.Fatal(err)
	}
	for _, t := range ts {
		recs, err := t.Records()
		if err != nil {
			log.Warningf("%s frame %s: %v", seq.Name, t.Name(), err)
		}
		prot := make(bio.AminoSequence, len(recs))
		for i, ap := range recs {
			prot[i] = ap.Code
			usage.Add(ap)
		}
		orfs := translate.ORFsOf(recs, t.Reverse)
		res.Summary.Frames = append(res.Summary.Frames, report.Frame(t, len(recs), orfs))

		if !r.opts.orf {
			if err == nil {
				s := bio.Sequence{Name: seq.Name + " frame=" + t.Name(), Sequence: prot.String()}
				res.Output += ">" + s.Name + "\n" + bio.Wrap(s.Sequence, r.opts.width)
			}
			continue
		}
		for i, o := range orfs {
			if len(o.Protein) < r.opts.minLen {
				continue
			}
			from, to := o.NucleicSpan()
			name := fmt.Sprintf("%s frame=%s orf=%d aa=%d-%d nt=%d-%d",
				seq.Name, t.Name(), i+1, o.Position, o.End(), from, to)
			res.Output += ">" + name + "\n" + bio.Wrap(o.Protein.String(), r.opts.width)
			res.ORFLengths = append(res.ORFLengths, len(o.Protein))
		}
	}

	res.Codons = make(map[string]int, len(usage.Counts))
	for c, n := range usage.Counts {
		res.Codons[c.String()] = n
	}
	return
}

// add merges a record result into the run totals.
func (r *runner) add(res recordResult) {
	r.summary.Add(res.Summary)
	r.orfLengths = append(r.orfLengths, res.ORFLengths...)
	for s, n := range res.Codons {
		c, ok := codon.Parse(s)
		if !ok {
			log.Warningf("Wrong codon in checkpoint: %s", s)
			continue
		}
		r.usage.AddCount(c, n)
	}
}

// run processes all the sequences, writes the output to w and fills
// the summary. Records saved in the checkpoint are not recomputed.
func (r *runner) run(seqs bio.Sequences, w io.Writer) error {
	startTime := time.Now()
	resumed := 0
	for i, seq := range seqs {
		var res recordResult
		ok, err := r.cio.LoadRecord(r.runID, i, seq.Name, &res)
		if err != nil {
			log.Error("Error loading record from checkpoint:", err)
		}
		if ok {
			res.Summary.Resumed = true
			resumed++
		} else {
			res = r.translateRecord(seq)
			if err := r.cio.SaveRecord(r.runID, i, seq.Name, res); err != nil {
				log.Error("Error saving record to checkpoint:", err)
			}
		}
		if _, err := io.WriteString(w, res.Output); err != nil {
			return err
		}
		r.add(res)
		if r.cio.Old() {
			r.cio.Save(&checkpoint.CheckpointData{RunID: r.runID, Records: i + 1})
		}
	}
	r.cio.Save(&checkpoint.CheckpointData{RunID: r.runID, Records: len(seqs), Final: true})

	if resumed > 0 {
		log.Noticef("%d of %d records taken from checkpoint", resumed, len(seqs))
	}

	r.summary.Translations = report.NewStats(r.summary.Lengths())
	r.summary.ORFLengths = report.NewStats(r.orfLengths)
	r.summary.CodonUsage = make(map[string]int, len(r.usage.Counts))
	for c, n := range r.usage.Counts {
		r.summary.CodonUsage[c.String()] = n
	}
	log.Infof("Translation lengths: %v", r.summary.Translations)
	if r.opts.orf {
		log.Infof("ORF lengths: %v", r.summary.ORFLengths)
	}
	log.Debug(r.usage)
	log.Debugf("F3X4: %v", r.usage.F3X4())

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	r.summary.Time = deltaT.Seconds()
	return nil
}
