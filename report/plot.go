package report

import (
	"errors"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no lengths to plot")

// Plot size.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// lengthsPlot creates a histogram of lengths. Non-positive bins means
// the default number of bins.
func lengthsPlot(title string, lengths []int, bins int) (*plot.Plot, error) {
	if len(lengths) == 0 {
		return nil, ErrNoData
	}
	vals := make(plotter.Values, len(lengths))
	for i, l := range lengths {
		vals[i] = float64(l)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Length (amino acids)"
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(h)
	return p, nil
}

// WriteLengths writes a histogram of lengths in the given format
// ("png", "svg", "pdf", "eps", ...).
func WriteLengths(w io.Writer, format, title string, lengths []int, bins int) error {
	p, err := lengthsPlot(title, lengths, bins)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// PlotLengths saves a histogram of lengths to fn, the format is
// chosen by the file extension.
func PlotLengths(fn, title string, lengths []int, bins int) error {
	p, err := lengthsPlot(title, lengths, bins)
	if err != nil {
		return err
	}
	if strings.TrimPrefix(filepath.Ext(fn), ".") == "" {
		fn += ".png"
	}
	return p.Save(plotWidth, plotHeight, fn)
}
