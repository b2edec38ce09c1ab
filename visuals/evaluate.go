package visuals

import (
	"image/color"

	"github.com/hscells/census/eval"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	evaluateTitle = "Performance Metrics for Three Supervised Learning Models"

	// barStride is the distance between the bars of neighbouring learners in a group.
	barStride = 0.3
	xMin      = -0.1
	xMax      = 3.0
)

// LearnerColours are assigned to learners in the order they appear in the results.
var LearnerColours = []string{"#A00000", "#00A0A0", "#00A000"}

type metricPanel struct {
	metric eval.Metric
	title  string
	yLabel string
}

var metricPanels = []metricPanel{
	{eval.TrainTime, "Model Training", "Time (in seconds)"},
	{eval.AccTrain, "Accuracy Score on Training Subset", "Accuracy Score"},
	{eval.FTrain, "F-score on Training Subset", "F-score"},
	{eval.PredTime, "Model Predicting", "Time (in seconds)"},
	{eval.AccTest, "Accuracy Score on Testing Set", "Accuracy Score"},
	{eval.FTest, "F-score on Testing Set", "F-score"},
}

// Evaluate compares learners across the training set sizes: time spent training and predicting, and accuracy
// and f-score on the training subset and testing set. accuracy and f1 are the scores of the naive predictor,
// drawn as dashed lines on the score panels.
func Evaluate(results eval.Results, accuracy, f1 float64) (*Figure, error) {
	if len(results) == 0 {
		return nil, errors.Wrap(ErrNoData, "no learners")
	}
	if len(results) > len(LearnerColours) {
		return nil, errors.Errorf("%d learners but only %d colours", len(results), len(LearnerColours))
	}
	if err := results.Validate(); err != nil {
		return nil, err
	}

	const cols = 3
	f := NewFigure(evaluateTitle, 11*vg.Inch, 7*vg.Inch, len(metricPanels)/cols, cols)
	width := barWidth(f.Width/cols, xMax-xMin, barStride)

	ticks := make([]plot.Tick, len(eval.SampleSizes))
	for i, size := range eval.SampleSizes {
		ticks[i] = plot.Tick{Value: float64(i) + barStride*float64(len(results)-1)/2, Label: size}
	}

	for j, panel := range metricPanels {
		p := plot.New()
		p.Title.Text = panel.title
		p.X.Label.Text = "Training Set Size"
		p.Y.Label.Text = panel.yLabel

		for k, learner := range results {
			vs := make(plotter.Values, len(eval.SampleSizes))
			for i := range vs {
				v, err := learner.Measurements[i].Value(panel.metric)
				if err != nil {
					return nil, err
				}
				vs[i] = v
			}

			bars, err := plotter.NewBarChart(vs, width)
			if err != nil {
				return nil, errors.Wrapf(err, "charting %s", learner.Learner)
			}
			bars.XMin = float64(k) * barStride
			bars.Color = hex(LearnerColours[k])
			bars.LineStyle.Width = 0
			p.Add(bars)

			if j == 0 {
				p.Legend.Add(learner.Learner, bars)
			}
		}

		switch panel.metric {
		case eval.AccTrain, eval.AccTest:
			if err := addBaseline(p, accuracy); err != nil {
				return nil, err
			}
		case eval.FTrain, eval.FTest:
			if err := addBaseline(p, f1); err != nil {
				return nil, err
			}
		}

		p.X.Tick.Marker = plot.ConstantTicks(ticks)
		p.X.Min = xMin
		p.X.Max = xMax
		if panel.metric != eval.TrainTime && panel.metric != eval.PredTime {
			p.Y.Min = 0
			p.Y.Max = 1
		}

		f.Panels[j/cols][j%cols] = p
	}

	f.Panels[0][0].Legend.Top = true
	f.Panels[0][0].Legend.Left = true
	return f, nil
}

// addBaseline draws a dashed horizontal line across the panel at y.
func addBaseline(p *plot.Plot, y float64) error {
	l, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: y}, {X: xMax, Y: y}})
	if err != nil {
		return errors.Wrap(err, "drawing baseline")
	}
	l.LineStyle.Color = color.Black
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(l)
	return nil
}
