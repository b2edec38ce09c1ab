package census_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hscells/census"
	"github.com/hscells/census/dataset"
	"github.com/hscells/census/eval"
	"github.com/hscells/census/output"
	"github.com/pkg/errors"
)

func collect(p census.Pipeline) []census.PipelineResult {
	c := make(chan census.PipelineResult)
	go p.Execute(c)
	var results []census.PipelineResult
	for result := range c {
		results = append(results, result)
	}
	return results
}

func TestPipeline(t *testing.T) {
	data, err := dataset.ReadCSVFile("dataset/testdata/census.csv")
	if err != nil {
		t.Fatal(err)
	}

	dir, err := os.MkdirTemp("", "census")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	config := census.DefaultConfig()
	config.OutputDir = dir
	config.Format = "svg"

	m := []eval.Measurement{
		{TrainTime: 0.01, PredTime: 0.01, AccTrain: 0.8, AccTest: 0.79, FTrain: 0.6, FTest: 0.58},
		{TrainTime: 0.1, PredTime: 0.01, AccTrain: 0.83, AccTest: 0.82, FTrain: 0.66, FTest: 0.64},
		{TrainTime: 1.2, PredTime: 0.02, AccTrain: 0.85, AccTest: 0.84, FTrain: 0.7, FTest: 0.69},
	}

	p := census.NewPipeline(config,
		census.Data(data),
		census.LearnerResults(eval.Results{{Learner: "AdaBoostClassifier", Measurements: m}}),
		census.Importances([]string{"age", "capital-gain", "capital-loss", "hours-per-week", "education-num", "sex_ Male"},
			[]float64{0.24, 0.18, 0.09, 0.07, 0.16, 0.02}),
		census.LogTransform(true),
		census.CountOutput(output.CsvCountFormatter),
		census.EvaluationOutput(output.JsonEvaluationFormatter, output.CsvEvaluationFormatter),
		census.FeatureOutput(output.CsvFeatureFormatter),
	)

	figures := map[string]bool{}
	dumps := 0
	done := false
	for _, result := range collect(p) {
		switch result.Type {
		case census.Error:
			t.Errorf("%s: %v", result.Name, result.Error)
		case census.Figure:
			figures[result.Name] = true
			if _, err := os.Stat(result.Path); err != nil {
				t.Error(err)
			}
			if filepath.Ext(result.Path) != ".svg" {
				t.Errorf("expected an svg, got %s", result.Path)
			}
		case census.Dump:
			dumps++
		case census.Done:
			done = true
		}
	}

	for _, name := range census.AllFigures {
		if !figures[name] {
			t.Errorf("figure %s was not drawn", name)
		}
	}
	if dumps != 4 {
		t.Errorf("expected 4 formatted outputs, got %d", dumps)
	}
	if !done {
		t.Error("pipeline did not report completion")
	}
}

func TestPipelineMissingInputs(t *testing.T) {
	dir, err := os.MkdirTemp("", "census")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	config := census.DefaultConfig()
	config.OutputDir = dir

	p := census.NewPipeline(config, census.Figures(census.EvaluateFigure, census.FeaturesFigure, "pie"))

	var errs []error
	for _, result := range collect(p) {
		if result.Type == census.Error {
			errs = append(errs, result.Error)
		}
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	if errors.Cause(errs[0]) != census.ErrMissingInput || errors.Cause(errs[1]) != census.ErrMissingInput {
		t.Errorf("expected ErrMissingInput, got %v", errs[:2])
	}
	if errors.Cause(errs[2]) != census.ErrUnknownFigure {
		t.Errorf("expected ErrUnknownFigure, got %v", errs[2])
	}
}

func TestNaiveBaselineFromData(t *testing.T) {
	data, err := dataset.ReadCSVFile("dataset/testdata/census.csv")
	if err != nil {
		t.Fatal(err)
	}
	dir, err := os.MkdirTemp("", "census")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	config := census.DefaultConfig()
	config.OutputDir = dir

	m := []eval.Measurement{
		{TrainTime: 0.2, PredTime: 0.1, AccTrain: 0.7, AccTest: 0.7, FTrain: 0.5, FTest: 0.5},
		{TrainTime: 0.4, PredTime: 0.1, AccTrain: 0.8, AccTest: 0.8, FTrain: 0.6, FTest: 0.6},
		{TrainTime: 0.8, PredTime: 0.2, AccTrain: 0.9, AccTest: 0.9, FTrain: 0.7, FTest: 0.7},
	}
	p := census.NewPipeline(config,
		census.Data(data),
		census.LearnerResults(eval.Results{{Learner: "SVC", Measurements: m}}),
		census.Figures(census.EvaluateFigure))
	for _, result := range collect(p) {
		if result.Type == census.Error {
			t.Error(result.Error)
		}
	}

	p = census.NewPipeline(config,
		census.LearnerResults(eval.Results{{Learner: "SVC", Measurements: m}}),
		census.NaiveBaseline(0.2478, 0.2917),
		census.Figures(census.EvaluateFigure))
	if p.Naive == nil || p.Naive.Accuracy != 0.2478 {
		t.Errorf("naive baseline not set: %v", p.Naive)
	}
}

func TestConfig(t *testing.T) {
	c, err := census.ParseConfig("census.output.format = SVG\ncensus.target.label = <=50K\ncensus.distribution.columns = age, hours-per-week\n")
	if err != nil {
		t.Fatal(err)
	}
	if c.Format != "svg" || c.TargetLabel != "<=50K" || c.TargetColumn != "income" {
		t.Errorf("unexpected config %+v", c)
	}
	if strings.Join(c.DistributionColumns, "|") != "age|hours-per-week" {
		t.Errorf("unexpected columns %v", c.DistributionColumns)
	}

	if _, err := census.ParseConfig("census.distribution.columns = age\n"); err == nil {
		t.Error("expected an error for a single distribution column")
	}
	if _, err := census.LoadConfig("testdata/missing.properties"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
