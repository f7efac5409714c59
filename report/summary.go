package report

import (
	"encoding/json"
	"io"

	"bitbucket.org/Davydov/gotrans/translate"
)

// FrameSummary describes one translated frame of a record.
type FrameSummary struct {
	// Frame is the frame name, e.g. "+1" or "-2".
	Frame string `json:"frame"`
	// Length is the number of translated amino acids.
	Length int `json:"length"`
	// ORFs is the number of open reading frames found.
	ORFs int `json:"orfs"`
	// Error is set when the frame couldn't be translated.
	Error string `json:"error,omitempty"`
}

// RecordSummary describes one input sequence.
type RecordSummary struct {
	Name   string         `json:"name"`
	Length int            `json:"length"`
	Frames []FrameSummary `json:"frames"`
	// Resumed is true if the record was taken from a checkpoint.
	Resumed bool `json:"resumed,omitempty"`
}

// RunSummary is storing gotrans run summary information.
type RunSummary struct {
	// Version stores gotrans version.
	Version string `json:"version"`
	// RunID identifies the run, it is also used as the checkpoint key.
	RunID string `json:"runID"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
	// Records stores per sequence summaries.
	Records []RecordSummary `json:"records"`
	// Translations are amino acid length statistics over all frames.
	Translations Stats `json:"translations"`
	// ORFLengths are ORF length statistics.
	ORFLengths Stats `json:"orfLengths"`
	// CodonUsage maps codons to their counts in the translated frames.
	CodonUsage map[string]int `json:"codonUsage,omitempty"`
}

// Frame summarizes a consumed translation.
func Frame(t *translate.Translation, length int, orfs []translate.ORF) FrameSummary {
	fs := FrameSummary{Frame: t.Name(), Length: length, ORFs: len(orfs)}
	if err := t.Err(); err != nil {
		fs.Error = err.Error()
	}
	return fs
}

// Add appends a record and returns it.
func (s *RunSummary) Add(rs RecordSummary) *RecordSummary {
	s.Records = append(s.Records, rs)
	return &s.Records[len(s.Records)-1]
}

// Lengths returns translation lengths of all frames of all records.
func (s *RunSummary) Lengths() []int {
	var ls []int
	for _, r := range s.Records {
		for _, f := range r.Frames {
			if f.Error == "" {
				ls = append(ls, f.Length)
			}
		}
	}
	return ls
}

// WriteJSON writes the summary as indented JSON.
func (s *RunSummary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
