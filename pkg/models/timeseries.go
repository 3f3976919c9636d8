package models

import "fmt"

// ColumnNotFoundError reports a measurement column name that does not
// exist in a time series.
type ColumnNotFoundError struct {
	Column  string
	Series  string
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in %s (available: %v)",
		e.Column, e.Series, e.Columns)
}

// Column is one named measurement column of a time series.
type Column struct {
	Name   string
	Values []float64
}

// TimeSeries is an ordered sequence of timestamped measurement rows as
// parsed from a mission data file. Time values are in the file's native
// time scale (e.g. BTJD days for TESS); rows keep file order, which is
// monotonically non-decreasing in time.
type TimeSeries struct {
	Name    string // source file or target label
	Time    []float64
	Columns []Column
}

// Len returns the number of rows.
func (ts *TimeSeries) Len() int {
	return len(ts.Time)
}

// ColumnNames lists the measurement column names in file order.
func (ts *TimeSeries) ColumnNames() []string {
	names := make([]string, 0, len(ts.Columns))
	for _, c := range ts.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Column returns the values of a named measurement column.
func (ts *TimeSeries) Column(name string) ([]float64, error) {
	for _, c := range ts.Columns {
		if c.Name == name {
			return c.Values, nil
		}
	}
	return nil, &ColumnNotFoundError{
		Column:  name,
		Series:  ts.Name,
		Columns: ts.ColumnNames(),
	}
}
