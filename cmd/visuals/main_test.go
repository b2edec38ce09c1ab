package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/hscells/census"
)

func parse(t *testing.T, argv ...string) args {
	var a args
	p, err := arg.NewParser(arg.Config{}, &a)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Parse(argv); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestRepeatedFigures(t *testing.T) {
	a := parse(t, "-d", "census.csv", "-f", "compare", "-f", "distribution")
	if len(a.Figures) != 2 || a.Figures[0] != "compare" || a.Figures[1] != "distribution" {
		t.Errorf("expected both figures, got %v", a.Figures)
	}
}

func TestZeroBaseline(t *testing.T) {
	a := parse(t, "--accuracy", "0", "--fscore", "0")
	if a.Accuracy == nil || a.FScore == nil {
		t.Fatal("a zero baseline was treated as not set")
	}

	components, err := inputs(a)
	if err != nil {
		t.Fatal(err)
	}
	p := census.NewPipeline(census.DefaultConfig(), components...)
	if p.Naive == nil || p.Naive.Accuracy != 0 || p.Naive.FScore != 0 {
		t.Errorf("expected a zero naive baseline, got %v", p.Naive)
	}

	a = parse(t)
	if a.Accuracy != nil || a.FScore != nil {
		t.Errorf("expected no baseline, got %v %v", a.Accuracy, a.FScore)
	}
	components, err = inputs(a)
	if err != nil {
		t.Fatal(err)
	}
	if p := census.NewPipeline(census.DefaultConfig(), components...); p.Naive != nil {
		t.Errorf("expected the baseline to be left to the data, got %v", p.Naive)
	}
}

func TestHalfBaseline(t *testing.T) {
	if _, err := inputs(parse(t, "--accuracy", "0.25")); err == nil {
		t.Error("expected an error for an accuracy without an f-score")
	}
}

func TestInputs(t *testing.T) {
	dir, err := os.MkdirTemp("", "census")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	results := filepath.Join(dir, "results.json")
	if err := os.WriteFile(results, []byte(`{"SVC": [
		{"train_time": 0.01, "pred_time": 0.1, "acc_train": 0.76, "acc_test": 0.75, "f_train": 0.1, "f_test": 0.1},
		{"train_time": 0.9, "pred_time": 1.2, "acc_train": 0.83, "acc_test": 0.83, "f_train": 0.67, "f_test": 0.67},
		{"train_time": 90.1, "pred_time": 14.6, "acc_train": 0.85, "acc_test": 0.84, "f_train": 0.71, "f_test": 0.68}
	]}`), 0644); err != nil {
		t.Fatal(err)
	}
	importances := filepath.Join(dir, "importances.csv")
	if err := os.WriteFile(importances, []byte("feature,weight\nage,0.3\ncapital-gain,0.7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	components, err := inputs(parse(t, "-d", "../../dataset/testdata/census.csv", "-r", results, "-i", importances))
	if err != nil {
		t.Fatal(err)
	}
	p := census.NewPipeline(census.DefaultConfig(), components...)
	if p.Data == nil || p.Data.Len() != 20 {
		t.Errorf("expected 20 census records, got %v", p.Data)
	}
	if len(p.Results) != 1 || p.Results[0].Learner != "SVC" {
		t.Errorf("unexpected results %v", p.Results)
	}
	if len(p.Importances) != 2 || p.Columns[1] != "capital-gain" {
		t.Errorf("unexpected importances %v %v", p.Columns, p.Importances)
	}

	if _, err := inputs(parse(t, "-d", filepath.Join(dir, "missing.csv"))); err == nil {
		t.Error("expected an error for a missing data file")
	}
	if _, err := inputs(parse(t, "-r", importances)); err == nil {
		t.Error("expected an error for results that are not json")
	}
}
