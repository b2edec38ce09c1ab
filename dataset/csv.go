package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadCSV reads a table from CSV. The first record names the columns. Whitespace around cells is removed, since
// the census data is written as "39, State-gov, ...".
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("csv has no header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading csv header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := NewTable(header...)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading csv line %d", line)
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if err := t.AddRow(record...); err != nil {
			return nil, errors.Wrapf(err, "csv line %d", line)
		}
	}
	return t, nil
}

// ReadCSVFile reads a table from the CSV file at path.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
