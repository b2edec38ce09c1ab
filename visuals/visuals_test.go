package visuals_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hscells/census/analysis"
	"github.com/hscells/census/dataset"
	"github.com/hscells/census/eval"
	"github.com/hscells/census/visuals"
	"github.com/pkg/errors"
)

func load(t *testing.T) *dataset.Table {
	data, err := dataset.ReadCSVFile("../dataset/testdata/census.csv")
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func results() eval.Results {
	m := func(scale float64) []eval.Measurement {
		return []eval.Measurement{
			{TrainTime: 0.01 * scale, PredTime: 0.02 * scale, AccTrain: 0.8, AccTest: 0.78, FTrain: 0.6, FTest: 0.55},
			{TrainTime: 0.1 * scale, PredTime: 0.05 * scale, AccTrain: 0.84, AccTest: 0.83, FTrain: 0.68, FTest: 0.66},
			{TrainTime: 1 * scale, PredTime: 0.1 * scale, AccTrain: 0.86, AccTest: 0.85, FTrain: 0.72, FTest: 0.7},
		}
	}
	return eval.Results{
		{Learner: "SVC", Measurements: m(10)},
		{Learner: "AdaBoostClassifier", Measurements: m(1)},
		{Learner: "DecisionTreeClassifier", Measurements: m(0.1)},
	}
}

func render(t *testing.T, f *visuals.Figure) {
	for _, format := range []string{"png", "svg"} {
		var b bytes.Buffer
		if err := f.Render(&b, format); err != nil {
			t.Fatalf("rendering %s: %v", format, err)
		}
		if b.Len() == 0 {
			t.Errorf("rendering %s produced no output", format)
		}
	}
}

func TestCompareVisually(t *testing.T) {
	c, err := analysis.NewCounter(load(t))
	if err != nil {
		t.Fatal(err)
	}
	f, err := visuals.CompareVisually(c)
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 4 || f.Cols() != 2 {
		t.Errorf("expected a 4x2 grid, got %dx%d", f.Rows(), f.Cols())
	}
	if f.Panels[0][0].Title.Text != "Gender" || f.Panels[3][1].Title.Text != "Occupation" {
		t.Errorf("unexpected panel titles %q, %q", f.Panels[0][0].Title.Text, f.Panels[3][1].Title.Text)
	}
	render(t, f)
}

func TestCompareVisuallyMissingColumn(t *testing.T) {
	data := dataset.NewTable("sex", "income")
	if err := data.AddRow("Male", ">50K"); err != nil {
		t.Fatal(err)
	}
	c, err := analysis.NewCounter(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := visuals.CompareVisually(c); errors.Cause(err) != dataset.ErrNoColumn {
		t.Errorf("expected ErrNoColumn, got %v", err)
	}
}

func TestDistribution(t *testing.T) {
	data := load(t)
	f, err := visuals.Distribution(data, "capital-gain", "capital-loss", false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(f.Title, "Skewed") {
		t.Errorf("unexpected title %q", f.Title)
	}
	if f.Panels[0][1].Y.Max != 2000 {
		t.Errorf("expected the y axis to stop at 2000, got %f", f.Panels[0][1].Y.Max)
	}
	render(t, f)

	transformed, err := dataset.LogTransform(data, "capital-gain", "capital-loss")
	if err != nil {
		t.Fatal(err)
	}
	f, err = visuals.Distribution(transformed, "capital-gain", "capital-loss", true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(f.Title, "Log-transformed") {
		t.Errorf("unexpected title %q", f.Title)
	}
	render(t, f)

	if _, err := visuals.Distribution(data, "capital-gain", "sex", false); err == nil {
		t.Error("expected an error for a categorical column")
	}
}

func TestEvaluate(t *testing.T) {
	f, err := visuals.Evaluate(results(), 0.2478, 0.2917)
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 2 || f.Cols() != 3 {
		t.Errorf("expected a 2x3 grid, got %dx%d", f.Rows(), f.Cols())
	}
	if f.Panels[1][2].Title.Text != "F-score on Testing Set" {
		t.Errorf("unexpected title %q", f.Panels[1][2].Title.Text)
	}
	if f.Panels[0][1].Y.Max != 1 {
		t.Errorf("expected score panels to stop at 1, got %f", f.Panels[0][1].Y.Max)
	}
	render(t, f)
}

func TestEvaluateBadResults(t *testing.T) {
	r := results()
	r[1].Measurements = r[1].Measurements[:2]
	if _, err := visuals.Evaluate(r, 0.25, 0.29); errors.Cause(err) != eval.ErrMissingMeasurement {
		t.Errorf("expected ErrMissingMeasurement, got %v", err)
	}

	r = append(results(), eval.LearnerResults{Learner: "GaussianNB", Measurements: results()[0].Measurements})
	if _, err := visuals.Evaluate(r, 0.25, 0.29); err == nil {
		t.Error("expected an error for more learners than colours")
	}

	if _, err := visuals.Evaluate(nil, 0.25, 0.29); errors.Cause(err) != visuals.ErrNoData {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestFeaturePlot(t *testing.T) {
	columns := []string{"age", "education-num", "capital-gain", "capital-loss", "hours-per-week", "sex_ Male"}
	importances := []float64{0.2, 0.15, 0.3, 0.1, 0.05, 0.2}
	f, err := visuals.FeaturePlot(importances, columns)
	if err != nil {
		t.Fatal(err)
	}
	render(t, f)

	if _, err := visuals.FeaturePlot(importances[:2], columns); err == nil {
		t.Error("expected an error for mismatched lengths")
	}
}

func TestSaveAndShow(t *testing.T) {
	f, err := visuals.FeaturePlot([]float64{0.7, 0.3}, []string{"capital-gain", "age"})
	if err != nil {
		t.Fatal(err)
	}

	dir, err := os.MkdirTemp("", "census")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "features.svg")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
	if err := f.Save(filepath.Join(dir, "features")); err == nil {
		t.Error("expected an error for a path without an extension")
	}
	if err := f.Save(filepath.Join(dir, "features.bmp")); err == nil {
		t.Error("expected an error for an unsupported format")
	}

	shown, err := visuals.Show(f, "")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(shown)
	if filepath.Ext(shown) != ".png" {
		t.Errorf("expected a png, got %s", shown)
	}
}
