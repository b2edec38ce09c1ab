package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/hscells/census/eval"
)

// EvaluationFormatter is used to output the measurements of learners.
type EvaluationFormatter func(results eval.Results) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results eval.Results) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs results in CSV format, one row per learner and sample size.
func CsvEvaluationFormatter(results eval.Results) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	h := []string{"Learner", "SampleSize"}
	for _, metric := range eval.Metrics {
		h = append(h, string(metric))
	}
	if err := w.Write(h); err != nil {
		return "", err
	}
	for _, learner := range results {
		for i, m := range learner.Measurements {
			size := strconv.Itoa(i)
			if i < len(eval.SampleSizes) {
				size = eval.SampleSizes[i]
			}
			record := []string{learner.Learner, size}
			for _, metric := range eval.Metrics {
				v, err := m.Value(metric)
				if err != nil {
					return "", err
				}
				record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			}
			if err := w.Write(record); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
