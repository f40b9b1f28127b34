package photometry

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is one parsed AstroImageJ measurement table: a tab-separated header
// row of column names followed by data rows. The first column is the row
// label AstroImageJ writes with an empty header.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// ReadTable parses the tab-delimited measurement table at path.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("table %s has no data rows", path)
	}

	t := &Table{
		columns: records[0],
		index:   make(map[string]int, len(records[0])),
		rows:    records[1:],
	}
	for i, name := range t.columns {
		t.index[strings.TrimSpace(name)] = i
	}
	return t, nil
}

// NumRows returns the number of data rows (the observation sample count).
func (t *Table) NumRows() int { return len(t.rows) }

// HasColumn reports whether the table carries a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// FloatColumn returns the named column parsed as floats, one value per data
// row. Cells that do not parse come back as NaN so downstream statistics can
// skip them without aborting the read.
func (t *Table) FloatColumn(name string) ([]float64, bool) {
	col, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		if col >= len(row) {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			v = math.NaN()
		}
		out[i] = v
	}
	return out, true
}
