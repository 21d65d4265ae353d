// dataset.go
package sparkline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Dataset is a column-oriented table with an ordered set of named, nullable
// numeric columns. It is consulted read-only during generation.
type Dataset struct {
	names []string
	cols  map[string][]*float64
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{cols: make(map[string][]*float64)}
}

// AddColumn appends a column; nil entries represent nulls. Adding a column
// that already exists replaces its values and keeps its position.
func (d *Dataset) AddColumn(name string, values []*float64) *Dataset {
	if _, ok := d.cols[name]; !ok {
		d.names = append(d.names, name)
	}
	d.cols[name] = values
	return d
}

// Columns returns the column names in declaration order.
func (d *Dataset) Columns() []string { return d.names }

// HasColumn reports whether name exists in the schema.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.cols[name]
	return ok
}

// Column returns the raw nullable values of a column, or nil if absent.
func (d *Dataset) Column(name string) []*float64 { return d.cols[name] }

// NonNull returns the non-null values of a column, in row order.
func (d *Dataset) NonNull(name string) []float64 {
	var out []float64
	for _, v := range d.cols[name] {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Rows returns the number of rows (the longest column wins).
func (d *Dataset) Rows() int {
	max := 0
	for _, col := range d.cols {
		if len(col) > max {
			max = len(col)
		}
	}
	return max
}

// Floats builds a nullable column from plain values.
func Floats(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		v := vs[i]
		out[i] = &v
	}
	return out
}

// --- Loaders ---

type columnJSON struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

// DatasetFromJSON parses a dataset from JSON. The primary shape is an array
// of {"name": ..., "values": [...]} objects, which preserves column order.
// As a fallback a plain {"name": [values...]} object is accepted, with
// columns ordered by name since JSON objects carry no order of their own.
func DatasetFromJSON(data []byte) (*Dataset, error) {
	var cols []columnJSON
	if err := json.Unmarshal(data, &cols); err == nil {
		ds := NewDataset()
		for _, c := range cols {
			if c.Name == "" {
				return nil, fmt.Errorf("dataset column %d has no name", len(ds.names))
			}
			ds.AddColumn(c.Name, c.Values)
		}
		return ds, nil
	}

	var obj map[string][]*float64
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing dataset JSON: %w", err)
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	ds := NewDataset()
	for _, name := range names {
		ds.AddColumn(name, obj[name])
	}
	return ds, nil
}

// DatasetFromCSV reads a dataset from CSV. The first record is the header;
// cells that are empty or not numeric become nulls.
func DatasetFromCSV(r io.Reader) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing dataset CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset CSV has no header row")
	}
	return datasetFromRows(records[0], records[1:]), nil
}

// DatasetFromXLSX reads a dataset from a workbook sheet via excelize. An
// empty sheet name selects the first sheet. Layout follows the CSV loader:
// header row first, non-numeric cells become nulls.
func DatasetFromXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}
	return datasetFromRows(rows[0], rows[1:]), nil
}

func datasetFromRows(header []string, rows [][]string) *Dataset {
	ds := NewDataset()
	for i, name := range header {
		values := make([]*float64, len(rows))
		for j, row := range rows {
			if i >= len(row) {
				continue
			}
			if v, err := strconv.ParseFloat(row[i], 64); err == nil {
				values[j] = &v
			}
		}
		ds.AddColumn(name, values)
	}
	return ds
}
