// Package rank orders the features of a trained model by their importance.
package rank

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrBadWeight is returned for an importance that is NaN or infinite.
var ErrBadWeight = errors.New("importance is not a finite number")

// Feature is a feature of the training matrix with its weight and the weight of every feature ranked above it
// plus its own.
type Feature struct {
	Name       string
	Weight     float64
	Cumulative float64
}

// TopFeatures ranks features by importance and returns the k most important. importances and columns are aligned
// positionally, as a model's importances are with the columns it was trained on.
func TopFeatures(importances []float64, columns []string, k int) ([]Feature, error) {
	if len(importances) != len(columns) {
		return nil, errors.Errorf("%d importances for %d columns", len(importances), len(columns))
	}
	for i, w := range importances {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.Wrapf(ErrBadWeight, "%s has weight %v", columns[i], w)
		}
	}
	if k > len(importances) {
		k = len(importances)
	}
	if k <= 0 {
		return nil, nil
	}

	sorted := make([]float64, len(importances))
	copy(sorted, importances)
	indices := make([]int, len(importances))
	floats.Argsort(sorted, indices)

	weights := make([]float64, k)
	features := make([]Feature, k)
	for i := 0; i < k; i++ {
		j := indices[len(indices)-1-i]
		weights[i] = importances[j]
		features[i] = Feature{Name: columns[j], Weight: importances[j]}
	}

	cumulative := floats.CumSum(make([]float64, k), weights)
	for i := range features {
		features[i].Cumulative = cumulative[i]
	}
	return features, nil
}

// Names returns the names of the features.
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name
	}
	return names
}

// ReadImportances reads a feature,weight CSV. A header row is skipped if its weight is not a number.
func ReadImportances(r io.Reader) (columns []string, weights []float64, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "reading importances line %d", line)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, nil, errors.Wrapf(err, "importances line %d", line)
		}
		columns = append(columns, strings.TrimSpace(record[0]))
		weights = append(weights, w)
	}
	return columns, weights, nil
}
