// Package output provides different formats for the data behind the charts.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
)

// CountFormatter is used to output the category counts of columns. Each column maps to parallel labels and counts,
// as they are returned by analysis.Count; columns lists the order the columns are written in.
type CountFormatter func(columns []string, labels map[string][]string, counts map[string][]float64) (string, error)

// JsonCountFormatter outputs counts in a JSON format.
func JsonCountFormatter(columns []string, labels map[string][]string, counts map[string][]float64) (string, error) {
	m := map[string]map[string]float64{}
	for _, column := range columns {
		m[column] = map[string]float64{}
		for i, label := range labels[column] {
			m[column][label] = counts[column][i]
		}
	}

	v, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvCountFormatter outputs counts in CSV format.
func CsvCountFormatter(columns []string, labels map[string][]string, counts map[string][]float64) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write([]string{"Column", "Label", "Count"}); err != nil {
		return "", err
	}
	for _, column := range columns {
		for i, label := range labels[column] {
			record := []string{column, label, strconv.FormatFloat(counts[column][i], 'f', -1, 64)}
			if err := w.Write(record); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
