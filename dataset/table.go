// Package dataset provides an in-memory table of census records.
package dataset

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrNoColumn is returned when a column is looked up that the table does not have.
var ErrNoColumn = errors.New("no such column")

// Table is a column-major table of raw string cells. Cells are parsed on demand, so the same table can serve
// categorical counts and numeric histograms.
type Table struct {
	names []string
	index map[string]int
	cells [][]string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	t := &Table{
		names: make([]string, len(columns)),
		index: make(map[string]int, len(columns)),
		cells: make([][]string, len(columns)),
	}
	copy(t.names, columns)
	for i, c := range columns {
		t.index[c] = i
	}
	return t
}

// AddRow appends a record. There must be one value per column.
func (t *Table) AddRow(values ...string) error {
	if len(values) != len(t.names) {
		return errors.Errorf("row has %d values, table has %d columns", len(values), len(t.names))
	}
	for i, v := range values {
		t.cells[i] = append(t.cells[i], v)
	}
	return nil
}

// Len is the number of rows.
func (t *Table) Len() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	c := make([]string, len(t.names))
	copy(c, t.names)
	return c
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the cells of a column. The returned slice must not be modified.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Wrap(ErrNoColumn, name)
	}
	return t.cells[i], nil
}

// Floats parses a column as floating point numbers.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	vs := make([]float64, len(col))
	for i, c := range col {
		vs[i], err = strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "column %s row %d", name, i)
		}
	}
	return vs, nil
}

// Filter returns a new table with the rows whose cell in column equals value.
func (t *Table) Filter(column, value string) (*Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	f := NewTable(t.names...)
	for row, c := range col {
		if c != value {
			continue
		}
		for i := range t.cells {
			f.cells[i] = append(f.cells[i], t.cells[i][row])
		}
	}
	return f, nil
}

// SetFloats replaces the cells of a column with the formatted values.
func (t *Table) SetFloats(name string, vs []float64) error {
	i, ok := t.index[name]
	if !ok {
		return errors.Wrap(ErrNoColumn, name)
	}
	if len(vs) != t.Len() {
		return errors.Errorf("column %s: %d values for %d rows", name, len(vs), t.Len())
	}
	col := make([]string, len(vs))
	for j, v := range vs {
		col[j] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	t.cells[i] = col
	return nil
}

// Clone makes a copy of the table that shares no column slices with the original.
func (t *Table) Clone() *Table {
	c := NewTable(t.names...)
	for i := range t.cells {
		c.cells[i] = make([]string, len(t.cells[i]))
		copy(c.cells[i], t.cells[i])
	}
	return c
}
