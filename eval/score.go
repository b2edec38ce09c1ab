package eval

import (
	"math"

	"github.com/hscells/census/dataset"
	"github.com/pkg/errors"
)

// DefaultBeta weighs precision over recall, as the census exercise does.
const DefaultBeta = 0.5

// Naive holds the scores of a predictor that labels every record positive.
type Naive struct {
	Accuracy float64
	FScore   float64
}

// Accuracy is the fraction of predictions that match the truth.
func Accuracy(truth, predicted []bool) float64 {
	if len(truth) == 0 {
		return 0
	}
	correct := 0.0
	for i := range truth {
		if i < len(predicted) && truth[i] == predicted[i] {
			correct++
		}
	}
	return correct / float64(len(truth))
}

func confusion(truth, predicted []bool) (tp, fp, fn float64) {
	for i := range truth {
		p := i < len(predicted) && predicted[i]
		switch {
		case p && truth[i]:
			tp++
		case p && !truth[i]:
			fp++
		case !p && truth[i]:
			fn++
		}
	}
	return
}

// FBeta computes f-measure, with the beta parameter controlling the precision and recall trade-off.
func FBeta(truth, predicted []bool, beta float64) float64 {
	tp, fp, fn := confusion(truth, predicted)
	if tp == 0 {
		return 0
	}
	precision := tp / (tp + fp)
	recall := tp / (tp + fn)
	return fMeasure(precision, recall, beta)
}

func fMeasure(precision, recall, beta float64) float64 {
	if precision == 0 || recall == 0 {
		return 0
	}
	betaSquared := math.Pow(beta, 2)
	return ((1 + betaSquared) * (precision * recall)) / ((betaSquared * precision) + recall)
}

// NaivePredictor scores a predictor that says every record is positive.
func NaivePredictor(truth []bool, beta float64) Naive {
	predicted := make([]bool, len(truth))
	for i := range predicted {
		predicted[i] = true
	}
	return Naive{
		Accuracy: Accuracy(truth, predicted),
		FScore:   FBeta(truth, predicted, beta),
	}
}

// Labels marks each record whose column equals positive.
func Labels(t *dataset.Table, column, positive string) ([]bool, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, errors.Wrap(err, "labelling records")
	}
	labels := make([]bool, len(col))
	for i, v := range col {
		labels[i] = v == positive
	}
	return labels, nil
}
