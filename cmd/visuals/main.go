package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/census"
	"github.com/hscells/census/dataset"
	"github.com/hscells/census/eval"
	"github.com/hscells/census/output"
	"github.com/hscells/census/rank"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	name    = "visuals"
	version = "17.Oct.2026"
	author  = "Harry Scells"
)

type args struct {
	Data         string   `help:"census records (csv)" arg:"-d"`
	Results      string   `help:"learner measurements (json)" arg:"-r"`
	Importances  string   `help:"feature importances (csv of feature,weight)" arg:"-i"`
	Figures      []string `help:"figures to draw (compare, distribution, evaluate, features)" arg:"-f,separate"`
	Config       string   `help:"properties file" arg:"-c"`
	Output       string   `help:"directory to write figures to" arg:"-o"`
	Format       string   `help:"image format (png, svg, pdf, eps, jpg, tif)"`
	LogTransform bool     `help:"log-transform the distribution columns" arg:"--log-transform"`
	Accuracy     *float64 `help:"accuracy of the naive predictor (computed from the data if not set)"`
	FScore       *float64 `help:"f-score of the naive predictor (computed from the data if not set)"`
	Dump         string   `help:"also print the data behind each figure (json/csv)"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`draws the charts of the census income exercise
%s
@ %s
# %s`, name, author, version)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, errors.Wrap(err, 1).ErrorStack())
	os.Exit(1)
}

func main() {
	var args args
	arg.MustParse(&args)

	config := census.DefaultConfig()
	if len(args.Config) > 0 {
		var err error
		config, err = census.LoadConfig(args.Config)
		if err != nil {
			fatal(err)
		}
	}
	if len(args.Output) > 0 {
		config.OutputDir = args.Output
	}
	if len(args.Format) > 0 {
		config.Format = args.Format
	}

	components, err := inputs(args)
	if err != nil {
		fatal(err)
	}
	if len(args.Figures) > 0 {
		components = append(components, census.Figures(args.Figures...))
	}
	components = append(components, census.LogTransform(args.LogTransform))

	switch args.Dump {
	case "":
	case "json":
		components = append(components,
			census.CountOutput(output.JsonCountFormatter),
			census.EvaluationOutput(output.JsonEvaluationFormatter),
			census.FeatureOutput(output.JsonFeatureFormatter))
	case "csv":
		components = append(components,
			census.CountOutput(output.CsvCountFormatter),
			census.EvaluationOutput(output.CsvEvaluationFormatter),
			census.FeatureOutput(output.CsvFeatureFormatter))
	default:
		fatal(errors.Errorf("unknown dump format %s", args.Dump))
	}

	p := census.NewPipeline(config, components...)

	bar := pb.StartNew(len(p.Figures))
	c := make(chan census.PipelineResult)
	go p.Execute(c)

	failed := false
	for result := range c {
		switch result.Type {
		case census.Figure:
			bar.Increment()
		case census.Dump:
			fmt.Println(result.Output)
		case census.Error:
			bar.Increment()
			failed = true
			log.Printf("could not draw %s: %v\n", result.Name, result.Error)
		case census.Done:
			bar.Finish()
		}
	}

	if failed {
		os.Exit(1)
	}
}

// inputs loads whatever the figures are to be drawn from.
func inputs(args args) ([]func() interface{}, error) {
	var components []func() interface{}

	if len(args.Data) > 0 {
		log.Println("loading census records...")
		data, err := dataset.ReadCSVFile(args.Data)
		if err != nil {
			return nil, err
		}
		components = append(components, census.Data(data))
	}

	if len(args.Results) > 0 {
		f, err := os.Open(args.Results)
		if err != nil {
			return nil, err
		}
		results, err := eval.ReadResults(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		components = append(components, census.LearnerResults(results))
	}

	switch {
	case args.Accuracy != nil && args.FScore != nil:
		components = append(components, census.NaiveBaseline(*args.Accuracy, *args.FScore))
	case args.Accuracy != nil || args.FScore != nil:
		return nil, errors.New("the naive predictor needs both an accuracy and an f-score")
	}

	if len(args.Importances) > 0 {
		f, err := os.Open(args.Importances)
		if err != nil {
			return nil, err
		}
		columns, weights, err := rank.ReadImportances(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		components = append(components, census.Importances(columns, weights))
	}

	return components, nil
}
