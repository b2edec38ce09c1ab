package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/hscells/census/rank"
)

// FeatureFormatter is used to output ranked features.
type FeatureFormatter func(features []rank.Feature) (string, error)

type feature struct {
	Name       string  `json:"name"`
	Weight     float64 `json:"weight"`
	Cumulative float64 `json:"cumulative"`
}

// JsonFeatureFormatter outputs features in a JSON format.
func JsonFeatureFormatter(features []rank.Feature) (string, error) {
	fs := make([]feature, len(features))
	for i, f := range features {
		fs[i] = feature(f)
	}
	v, err := json.MarshalIndent(fs, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvFeatureFormatter outputs features in CSV format.
func CsvFeatureFormatter(features []rank.Feature) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write([]string{"Feature", "Weight", "Cumulative"}); err != nil {
		return "", err
	}
	for _, f := range features {
		record := []string{f.Name, strconv.FormatFloat(f.Weight, 'f', -1, 64), strconv.FormatFloat(f.Cumulative, 'f', -1, 64)}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
