package visuals

import (
	"math"

	"github.com/hscells/census/analysis"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Panel names the column a bar chart counts and the title it is shown under.
type Panel struct {
	Column string
	Name   string
}

// ComparePanels are the columns compared across income, in grid order.
var ComparePanels = []Panel{
	{Column: "sex", Name: "Gender"},
	{Column: "workclass", Name: "Workclass"},
	{Column: "race", Name: "Race"},
	{Column: "marital-status", Name: "Marital Status"},
	{Column: "hours-per-week", Name: "Income Per Weekly Hours Rate"},
	{Column: "relationship", Name: "Relationship"},
	{Column: "education_level", Name: "Education Level"},
	{Column: "occupation", Name: "Occupation"},
}

var traceColours = []string{"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A", "#19D3F3", "#FF6692", "#B6E880"}

// CompareVisually charts, for each of the ComparePanels, how often each value occurs among the counted records.
func CompareVisually(c *analysis.Counter) (*Figure, error) {
	const cols = 2
	f := NewFigure("Features per Income", pixels(1000), pixels(700), int(math.Ceil(float64(len(ComparePanels))/cols)), cols)

	for i, panel := range ComparePanels {
		labels, counts, err := c.Count(panel.Column)
		if err != nil {
			return nil, errors.Wrapf(err, "counting %s", panel.Column)
		}
		p, err := countPlot(panel.Name, labels, counts, f.Width/cols, traceColours[i%len(traceColours)])
		if err != nil {
			return nil, errors.Wrapf(err, "charting %s", panel.Column)
		}
		f.Panels[i/cols][i%cols] = p
	}
	return f, nil
}

func countPlot(name string, labels []string, counts []float64, width vg.Length, colour string) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = name

	bars, err := plotter.NewBarChart(plotter.Values(counts), barWidth(width, float64(len(counts)), 0.8))
	if err != nil {
		return nil, err
	}
	bars.Color = hex(colour)
	bars.LineStyle.Width = 0
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}
