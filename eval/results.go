// Package eval models the measurements taken of supervised learners and the scores used as baselines.
package eval

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Metric names a measurement taken of a learner.
type Metric string

const (
	TrainTime Metric = "train_time"
	PredTime  Metric = "pred_time"
	AccTrain  Metric = "acc_train"
	AccTest   Metric = "acc_test"
	FTrain    Metric = "f_train"
	FTest     Metric = "f_test"
)

var (
	// Metrics lists every metric in the order they are charted.
	Metrics = []Metric{TrainTime, AccTrain, FTrain, PredTime, AccTest, FTest}
	// SampleSizes are the training set sizes each learner is measured at.
	SampleSizes = []string{"1%", "10%", "100%"}

	// ErrUnknownMetric is returned when a measurement is asked for a metric it does not have.
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrMissingMeasurement is returned when a learner has fewer measurements than sample sizes.
	ErrMissingMeasurement = errors.New("missing measurement")
)

// Measurement is what was recorded after training a learner on one sample size.
type Measurement struct {
	TrainTime float64 `json:"train_time"`
	PredTime  float64 `json:"pred_time"`
	AccTrain  float64 `json:"acc_train"`
	AccTest   float64 `json:"acc_test"`
	FTrain    float64 `json:"f_train"`
	FTest     float64 `json:"f_test"`
}

// Value looks up a metric.
func (m Measurement) Value(metric Metric) (float64, error) {
	switch metric {
	case TrainTime:
		return m.TrainTime, nil
	case PredTime:
		return m.PredTime, nil
	case AccTrain:
		return m.AccTrain, nil
	case AccTest:
		return m.AccTest, nil
	case FTrain:
		return m.FTrain, nil
	case FTest:
		return m.FTest, nil
	}
	return 0, errors.Wrap(ErrUnknownMetric, string(metric))
}

// LearnerResults are the measurements of one learner, one per sample size.
type LearnerResults struct {
	Learner      string
	Measurements []Measurement
}

// Results are the measurements of every learner, in the order the learners were added.
type Results []LearnerResults

// Learners returns the learner names.
func (r Results) Learners() []string {
	names := make([]string, len(r))
	for i, l := range r {
		names[i] = l.Learner
	}
	return names
}

// Value looks up a metric for a learner at the i-th sample size.
func (r Results) Value(learner string, i int, metric Metric) (float64, error) {
	for _, l := range r {
		if l.Learner != learner {
			continue
		}
		if i < 0 || i >= len(l.Measurements) {
			return 0, errors.Wrapf(ErrMissingMeasurement, "%s has no measurement %d", learner, i)
		}
		return l.Measurements[i].Value(metric)
	}
	return 0, errors.Errorf("no results for learner %s", learner)
}

// Validate checks that every learner has a measurement for every sample size.
func (r Results) Validate() error {
	for _, l := range r {
		if len(l.Measurements) < len(SampleSizes) {
			return errors.Wrapf(ErrMissingMeasurement, "%s has %d measurements, expected %d", l.Learner, len(l.Measurements), len(SampleSizes))
		}
	}
	return nil
}

// UnmarshalJSON reads an object of learner name to measurements, keeping the order the learners appear in.
func (r *Results) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("results must be a json object")
	}

	var results Results
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		learner, ok := tok.(string)
		if !ok {
			return errors.Errorf("unexpected token %v", tok)
		}
		var measurements []Measurement
		if err := dec.Decode(&measurements); err != nil {
			return errors.Wrapf(err, "decoding results of %s", learner)
		}
		results = append(results, LearnerResults{Learner: learner, Measurements: measurements})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = results
	return nil
}

// MarshalJSON writes the results as an object of learner name to measurements, in learner order.
func (r Results) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, l := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(l.Learner)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		measurements := l.Measurements
		if measurements == nil {
			measurements = []Measurement{}
		}
		v, err := json.Marshal(measurements)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// ReadResults decodes results from JSON.
func ReadResults(r io.Reader) (Results, error) {
	var results Results
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "reading results")
	}
	return results, nil
}
