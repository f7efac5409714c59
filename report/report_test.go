package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitbucket.org/Davydov/gotrans/translate"
)

func TestStats(tst *testing.T) {
	s := NewStats([]int{4, 2, 6, 8, 10})
	if s.N != 5 || s.Min != 2 || s.Max != 10 {
		tst.Errorf("Wrong range: %v", s)
	}
	if math.Abs(s.Mean-6) > 1e-9 {
		tst.Errorf("Expected mean 6, got %v", s.Mean)
	}
	// sample standard deviation
	if math.Abs(s.StdDev-math.Sqrt(10)) > 1e-9 {
		tst.Errorf("Expected sd %v, got %v", math.Sqrt(10), s.StdDev)
	}
	if s.Median != 6 {
		tst.Errorf("Expected median 6, got %v", s.Median)
	}
}

func TestStatsDegenerate(tst *testing.T) {
	if s := NewStats(nil); s != (Stats{}) || s.String() != "n=0" {
		tst.Errorf("Expected zero stats, got %v", s)
	}
	s := NewStats([]int{7})
	if s.Mean != 7 || s.StdDev != 0 || s.Median != 7 {
		tst.Errorf("Unexpected stats for a single value: %v", s)
	}
	if _, err := json.Marshal(s); err != nil {
		tst.Error("Stats should be serializable:", err)
	}
}

func TestWriteLengths(tst *testing.T) {
	var buf bytes.Buffer
	err := WriteLengths(&buf, "svg", "ORF lengths", []int{3, 5, 5, 8, 13, 21}, 4)
	if err != nil {
		tst.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		tst.Error("Expected svg output")
	}
	if err := WriteLengths(&buf, "svg", "", nil, 0); !errors.Is(err, ErrNoData) {
		tst.Errorf("Expected ErrNoData, got %v", err)
	}
}

func TestPlotLengths(tst *testing.T) {
	fn := filepath.Join(tst.TempDir(), "lengths")
	if err := PlotLengths(fn, "ORF lengths", []int{1, 2, 2, 3}, 0); err != nil {
		tst.Fatal(err)
	}
	fi, err := os.Stat(fn + ".png")
	if err != nil {
		tst.Fatal(err)
	}
	if fi.Size() == 0 {
		tst.Error("Empty plot file")
	}
}

func TestRunSummary(tst *testing.T) {
	t, _ := translate.TranslateString(0, "ATGCCACCCGTTTAAAAGAAG")
	seq, _ := t.Sequence()
	var s RunSummary
	r := s.Add(RecordSummary{Name: "seq1", Length: 21})
	r.Frames = append(r.Frames, Frame(t, len(seq), nil))
	r.Frames = append(r.Frames, FrameSummary{Frame: "-1", Error: "no complement"})
	if ls := s.Lengths(); len(ls) != 1 || ls[0] != 7 {
		tst.Errorf("Unexpected lengths: %v", ls)
	}

	var buf bytes.Buffer
	if err := s.WriteJSON(&buf); err != nil {
		tst.Fatal(err)
	}
	var back RunSummary
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		tst.Fatal(err)
	}
	if len(back.Records) != 1 || back.Records[0].Frames[0].Frame != "+1" {
		tst.Errorf("Unexpected summary: %s", buf.String())
	}
}
