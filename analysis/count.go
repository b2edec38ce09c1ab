// Package analysis provides the aggregations that sit behind the census charts.
package analysis

import (
	"sort"

	"github.com/hashicorp/golang-lru"
	"github.com/hscells/census/dataset"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

const (
	// IncomeColumn is the column holding the classification target.
	IncomeColumn = "income"
	// HighIncome is the label of the records the counts are taken over.
	HighIncome = ">50K"
)

// Count tallies the values of column over the records earning more than 50K. The labels and counts are parallel
// and ordered from the most to the least frequent value.
func Count(t *dataset.Table, column string) (labels []string, counts []float64, err error) {
	return count(t, IncomeColumn, HighIncome, column)
}

func count(t *dataset.Table, targetColumn, targetLabel, column string) ([]string, []float64, error) {
	subset, err := t.Filter(targetColumn, targetLabel)
	if err != nil {
		return nil, nil, err
	}
	values, err := subset.Column(column)
	if err != nil {
		return nil, nil, err
	}

	tally := make(map[string]float64)
	for _, v := range values {
		tally[v]++
	}

	labels := make([]string, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if tally[labels[i]] == tally[labels[j]] {
			return labels[i] < labels[j]
		}
		return tally[labels[i]] > tally[labels[j]]
	})

	counts := make([]float64, len(labels))
	for i, label := range labels {
		counts[i] = tally[label]
	}
	return labels, counts, nil
}

type tally struct {
	labels []string
	counts []float64
}

// Counter counts column values for a target label and remembers the result per column.
type Counter struct {
	table        *dataset.Table
	targetColumn string
	targetLabel  string
	cacheSize    int
	cache        *lru.Cache
}

// CounterTarget sets which records are counted.
func CounterTarget(column, label string) func(c *Counter) {
	return func(c *Counter) {
		c.targetColumn = column
		c.targetLabel = label
	}
}

// CounterCacheSize sets how many column tallies are kept.
func CounterCacheSize(size int) func(c *Counter) {
	return func(c *Counter) {
		c.cacheSize = size
	}
}

// NewCounter creates a counter over t. By default it counts the records earning more than 50K.
func NewCounter(t *dataset.Table, options ...func(c *Counter)) (*Counter, error) {
	c := &Counter{
		table:        t,
		targetColumn: IncomeColumn,
		targetLabel:  HighIncome,
		cacheSize:    16,
	}
	for _, option := range options {
		option(c)
	}

	cache, err := lru.New(c.cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "creating tally cache")
	}
	c.cache = cache
	return c, nil
}

// Table is the table being counted.
func (c *Counter) Table() *dataset.Table {
	return c.table
}

// Count tallies the values of column for the target label. The slices returned are the caller's to modify.
func (c *Counter) Count(column string) (labels []string, counts []float64, err error) {
	if v, ok := c.cache.Get(column); ok {
		return v.(tally).clone()
	}
	labels, counts, err = count(c.table, c.targetColumn, c.targetLabel, column)
	if err != nil {
		return nil, nil, err
	}
	t := tally{labels: labels, counts: counts}
	c.cache.Add(column, t)
	return t.clone()
}

func (t tally) clone() ([]string, []float64, error) {
	labels := make([]string, len(t.labels))
	copy(labels, t.labels)
	counts := make([]float64, len(t.counts))
	copy(counts, t.counts)
	return labels, counts, nil
}

// Skewness is the sample skewness of a numeric column.
func Skewness(t *dataset.Table, column string) (float64, error) {
	vs, err := t.Floats(column)
	if err != nil {
		return 0, err
	}
	if len(vs) == 0 {
		return 0, errors.Errorf("column %s is empty", column)
	}
	return stat.Skew(vs, nil), nil
}
