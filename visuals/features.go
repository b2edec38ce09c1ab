package visuals

import (
	"github.com/hscells/census/rank"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// TopK is how many features the feature plot shows.
const TopK = 5

// FeaturePlot charts the weights of the five most important features next to their running total. importances
// are aligned with columns, the columns of the training matrix.
func FeaturePlot(importances []float64, columns []string) (*Figure, error) {
	features, err := rank.TopFeatures(importances, columns, TopK)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return nil, errors.Wrap(ErrNoData, "no features")
	}

	weights := make(plotter.Values, len(features))
	cumulative := make(plotter.Values, len(features))
	for i, feature := range features {
		weights[i] = feature.Weight
		cumulative[i] = feature.Cumulative
	}

	f := NewFigure("Normalized Weights for First Five Most Predictive Features", 20*vg.Inch, 5*vg.Inch, 1, 1)
	span := float64(TopK)

	w, err := plotter.NewBarChart(weights, barWidth(f.Width, span, 0.6))
	if err != nil {
		return nil, err
	}
	w.Color = hex("#00A000")
	w.LineStyle.Width = 0

	c, err := plotter.NewBarChart(cumulative, barWidth(f.Width, span, 0.2))
	if err != nil {
		return nil, err
	}
	c.XMin = -0.3
	c.Color = hex("#00A0A0")
	c.LineStyle.Width = 0

	p := plot.New()
	p.Add(w, c)
	p.Legend.Add("Feature Weight", w)
	p.Legend.Add("Cumulative Feature Weight", c)
	p.Legend.Top = true
	p.NominalX(rank.Names(features)...)
	p.X.Min = -0.5
	p.X.Max = float64(TopK) - 0.5
	p.X.Label.Text = "Feature"
	p.Y.Label.Text = "Weight"

	f.Panels[0][0] = p
	return f, nil
}
