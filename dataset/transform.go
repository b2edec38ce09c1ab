package dataset

import "math"

// LogTransform returns a copy of the table where each of the named columns has had log(x+1) applied. The original
// table is left untouched.
func LogTransform(t *Table, columns ...string) (*Table, error) {
	c := t.Clone()
	for _, column := range columns {
		vs, err := c.Floats(column)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			vs[i] = math.Log1p(v)
		}
		if err := c.SetFloats(column, vs); err != nil {
			return nil, err
		}
	}
	return c, nil
}
