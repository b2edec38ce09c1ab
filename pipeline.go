// Package census draws the charts of the census income exercise from a dataset, the measurements of the
// learners trained on it, and the feature importances of the chosen model.
package census

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hscells/census/analysis"
	"github.com/hscells/census/dataset"
	"github.com/hscells/census/eval"
	"github.com/hscells/census/output"
	"github.com/hscells/census/rank"
	"github.com/hscells/census/visuals"
	"github.com/pkg/errors"
)

// Names of the figures a pipeline can draw.
const (
	CompareFigure      = "compare"
	DistributionFigure = "distribution"
	EvaluateFigure     = "evaluate"
	FeaturesFigure     = "features"
)

var (
	// AllFigures lists every figure in the order they are drawn by default.
	AllFigures = []string{CompareFigure, DistributionFigure, EvaluateFigure, FeaturesFigure}

	// ErrUnknownFigure is returned for a figure name the pipeline cannot draw.
	ErrUnknownFigure = errors.New("unknown figure")
	// ErrMissingInput is returned when a figure is asked for without the data it is drawn from.
	ErrMissingInput = errors.New("missing input")
)

// Pipeline contains everything needed to draw a set of figures.
type Pipeline struct {
	Config      Config
	Data        *dataset.Table
	Results     eval.Results
	Naive       *eval.Naive
	Columns     []string
	Importances []float64
	Transform   bool
	Figures     []string

	CountFormatters      []output.CountFormatter
	EvaluationFormatters []output.EvaluationFormatter
	FeatureFormatters    []output.FeatureFormatter

	counter *analysis.Counter
}

type figureNames []string

type logTransform bool

type importances struct {
	columns []string
	weights []float64
}

// Data adds the census records to the pipeline.
func Data(t *dataset.Table) func() interface{} {
	return func() interface{} {
		return t
	}
}

// LearnerResults adds the measurements of the trained learners to the pipeline.
func LearnerResults(results eval.Results) func() interface{} {
	return func() interface{} {
		return results
	}
}

// NaiveBaseline sets the scores of the naive predictor. Without it, they are computed from the data.
func NaiveBaseline(accuracy, fscore float64) func() interface{} {
	return func() interface{} {
		return eval.Naive{Accuracy: accuracy, FScore: fscore}
	}
}

// Importances adds the feature importances of a model, aligned with the columns it was trained on.
func Importances(columns []string, weights []float64) func() interface{} {
	return func() interface{} {
		return importances{columns: columns, weights: weights}
	}
}

// Figures chooses which figures are drawn.
func Figures(names ...string) func() interface{} {
	return func() interface{} {
		return figureNames(names)
	}
}

// LogTransform log-transforms the distribution columns before they are drawn.
func LogTransform(transform bool) func() interface{} {
	return func() interface{} {
		return logTransform(transform)
	}
}

// CountOutput adds formatters for the counts behind the comparison figure.
func CountOutput(formatters ...output.CountFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// EvaluationOutput adds formatters for the learner measurements.
func EvaluationOutput(formatters ...output.EvaluationFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// FeatureOutput adds formatters for the ranked features.
func FeatureOutput(formatters ...output.FeatureFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// NewPipeline creates a new census pipeline. Inputs and outputs are provided via the optional functional
// arguments; by default every figure is drawn.
func NewPipeline(config Config, components ...func() interface{}) Pipeline {
	p := Pipeline{
		Config:  config,
		Figures: AllFigures,
	}

	for _, component := range components {
		switch v := component().(type) {
		case *dataset.Table:
			p.Data = v
		case eval.Results:
			p.Results = v
		case eval.Naive:
			naive := v
			p.Naive = &naive
		case importances:
			p.Columns = v.columns
			p.Importances = v.weights
		case figureNames:
			p.Figures = v
		case logTransform:
			p.Transform = bool(v)
		case []output.CountFormatter:
			p.CountFormatters = v
		case []output.EvaluationFormatter:
			p.EvaluationFormatters = v
		case []output.FeatureFormatter:
			p.FeatureFormatters = v
		}
	}

	return p
}

// Execute draws each figure in turn, writing it to the output directory. One result is sent per figure (plus one
// per formatted output), and a figure that cannot be drawn is reported without stopping the others. The channel is
// closed once a Done result has been sent.
func (p Pipeline) Execute(c chan PipelineResult) {
	defer close(c)
	log.Println("starting census pipeline...")

	if err := p.Config.Validate(); err != nil {
		c <- PipelineResult{Error: err, Type: Error}
		c <- PipelineResult{Type: Done}
		return
	}
	if err := os.MkdirAll(p.Config.OutputDir, 0755); err != nil {
		c <- PipelineResult{Error: err, Type: Error}
		c <- PipelineResult{Type: Done}
		return
	}

	for _, name := range p.Figures {
		log.Printf("drawing %s...\n", name)
		f, dumps, err := p.draw(name)
		if err != nil {
			c <- PipelineResult{Name: name, Error: err, Type: Error}
			continue
		}

		path := filepath.Join(p.Config.OutputDir, name+"."+p.Config.Format)
		if err := f.Save(path); err != nil {
			c <- PipelineResult{Name: name, Error: err, Type: Error}
			continue
		}
		log.Printf("%s written to %s\n", name, path)
		c <- PipelineResult{Name: name, Path: path, Type: Figure}

		for _, dump := range dumps {
			c <- PipelineResult{Name: name, Output: dump, Type: Dump}
		}
	}

	c <- PipelineResult{Type: Done}
}

func (p *Pipeline) draw(name string) (*visuals.Figure, []string, error) {
	switch name {
	case CompareFigure:
		return p.compare()
	case DistributionFigure:
		return p.distribution()
	case EvaluateFigure:
		return p.evaluate()
	case FeaturesFigure:
		return p.features()
	}
	return nil, nil, errors.Wrap(ErrUnknownFigure, name)
}

func (p *Pipeline) compare() (*visuals.Figure, []string, error) {
	if p.Data == nil {
		return nil, nil, errors.Wrap(ErrMissingInput, "comparing features needs data")
	}
	if p.counter == nil {
		counter, err := analysis.NewCounter(p.Data,
			analysis.CounterTarget(p.Config.TargetColumn, p.Config.TargetLabel),
			analysis.CounterCacheSize(p.Config.CacheSize))
		if err != nil {
			return nil, nil, err
		}
		p.counter = counter
	}

	f, err := visuals.CompareVisually(p.counter)
	if err != nil {
		return nil, nil, err
	}

	if len(p.CountFormatters) == 0 {
		return f, nil, nil
	}
	columns := make([]string, len(visuals.ComparePanels))
	labels := make(map[string][]string)
	counts := make(map[string][]float64)
	for i, panel := range visuals.ComparePanels {
		columns[i] = panel.Column
		labels[panel.Column], counts[panel.Column], err = p.counter.Count(panel.Column)
		if err != nil {
			return nil, nil, err
		}
	}
	dumps := make([]string, len(p.CountFormatters))
	for i, formatter := range p.CountFormatters {
		dumps[i], err = formatter(columns, labels, counts)
		if err != nil {
			return nil, nil, err
		}
	}
	return f, dumps, nil
}

func (p *Pipeline) distribution() (*visuals.Figure, []string, error) {
	if p.Data == nil {
		return nil, nil, errors.Wrap(ErrMissingInput, "distributions need data")
	}
	columns := p.Config.DistributionColumns

	data := p.Data
	if p.Transform {
		var err error
		data, err = dataset.LogTransform(data, columns...)
		if err != nil {
			return nil, nil, err
		}
	}

	for _, column := range columns {
		skew, err := analysis.Skewness(data, column)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("skewness of %s: %.3f\n", column, skew)
	}

	f, err := visuals.Distribution(data, columns[0], columns[1], p.Transform)
	return f, nil, err
}

func (p *Pipeline) evaluate() (*visuals.Figure, []string, error) {
	if len(p.Results) == 0 {
		return nil, nil, errors.Wrap(ErrMissingInput, "evaluating learners needs results")
	}

	naive, err := p.naive()
	if err != nil {
		return nil, nil, err
	}
	log.Printf("naive predictor: accuracy %.4f, f-score %.4f\n", naive.Accuracy, naive.FScore)

	f, err := visuals.Evaluate(p.Results, naive.Accuracy, naive.FScore)
	if err != nil {
		return nil, nil, err
	}

	dumps := make([]string, len(p.EvaluationFormatters))
	for i, formatter := range p.EvaluationFormatters {
		dumps[i], err = formatter(p.Results)
		if err != nil {
			return nil, nil, err
		}
	}
	return f, dumps, nil
}

func (p *Pipeline) naive() (eval.Naive, error) {
	if p.Naive != nil {
		return *p.Naive, nil
	}
	if p.Data == nil {
		return eval.Naive{}, errors.Wrap(ErrMissingInput, "the naive predictor needs either scores or data")
	}
	truth, err := eval.Labels(p.Data, p.Config.TargetColumn, p.Config.TargetLabel)
	if err != nil {
		return eval.Naive{}, err
	}
	naive := eval.NaivePredictor(truth, p.Config.Beta)
	p.Naive = &naive
	return naive, nil
}

func (p *Pipeline) features() (*visuals.Figure, []string, error) {
	if len(p.Importances) == 0 {
		return nil, nil, errors.Wrap(ErrMissingInput, "the feature plot needs importances")
	}

	f, err := visuals.FeaturePlot(p.Importances, p.Columns)
	if err != nil {
		return nil, nil, err
	}

	if len(p.FeatureFormatters) == 0 {
		return f, nil, nil
	}
	top, err := rank.TopFeatures(p.Importances, p.Columns, visuals.TopK)
	if err != nil {
		return nil, nil, err
	}
	dumps := make([]string, len(p.FeatureFormatters))
	for i, formatter := range p.FeatureFormatters {
		dumps[i], err = formatter(top)
		if err != nil {
			return nil, nil, err
		}
	}
	return f, dumps, nil
}
