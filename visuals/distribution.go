package visuals

import (
	"fmt"

	"github.com/hscells/census/dataset"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	skewedTitle      = "Skewed Distributions of Continuous Census Data Features"
	transformedTitle = "Log-transformed Distributions of Continuous Census Data Features"

	histogramBins = 25
	histogramMax  = 2000
)

// recordTicks cap the y axis so the long tail of the skewed features stays visible.
var recordTicks = plot.ConstantTicks([]plot.Tick{
	{Value: 0, Label: "0"},
	{Value: 500, Label: "500"},
	{Value: 1000, Label: "1000"},
	{Value: 1500, Label: "1500"},
	{Value: 2000, Label: ">2000"},
})

// Distribution draws histograms of two numeric columns side by side. transformed only changes the title; it
// declares whether the caller has already log-transformed the columns.
func Distribution(t *dataset.Table, col1, col2 string, transformed bool) (*Figure, error) {
	title := skewedTitle
	if transformed {
		title = transformedTitle
	}

	f := NewFigure(title, 11*vg.Inch, 5*vg.Inch, 1, 2)
	for i, column := range []string{col1, col2} {
		vs, err := t.Floats(column)
		if err != nil {
			return nil, err
		}
		if len(vs) == 0 {
			return nil, errors.Wrap(ErrNoData, column)
		}

		h, err := plotter.NewHist(plotter.Values(vs), histogramBins)
		if err != nil {
			return nil, errors.Wrapf(err, "binning %s", column)
		}
		h.FillColor = hex("#00A0A0")
		h.LineStyle.Color = hex("#FFFFFF")

		p := plot.New()
		p.Title.Text = fmt.Sprintf("'%s' Feature Distribution", column)
		p.X.Label.Text = "Value"
		p.Y.Label.Text = "Number of Records"
		p.Add(h)
		p.Y.Min = 0
		p.Y.Max = histogramMax
		p.Y.Tick.Marker = recordTicks

		f.Panels[0][i] = p
	}
	return f, nil
}
