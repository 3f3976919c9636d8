// Package lightcurve reads mission time-series (light curve) files into
// tabular form and computes summary statistics over them.
package lightcurve

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"

	"github.com/astrolab/starcurve/pkg/models"
)

// ParseError reports a file that does not match its declared format.
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// formatSpec describes where a mission format keeps its time-series
// table and which columns to pull out of it.
type formatSpec struct {
	hduName  string
	timeCol  string
	fluxCols []string
}

var formats = map[string]formatSpec{
	"tess.fits": {
		hduName:  "LIGHTCURVE",
		timeCol:  "TIME",
		fluxCols: []string{"SAP_FLUX", "PDCSAP_FLUX"},
	},
	"kepler.fits": {
		hduName:  "LIGHTCURVE",
		timeCol:  "TIME",
		fluxCols: []string{"SAP_FLUX", "PDCSAP_FLUX"},
	},
}

// Formats lists the supported format tags.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	return names
}

// Read parses a downloaded time-series file according to a format tag
// such as "tess.fits". A file that does not match the declared format
// yields a ParseError and no partial series.
func Read(path, format string) (*models.TimeSeries, error) {
	spec, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (supported: %v)", format, Formats())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fits, err := fitsio.Open(f)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}
	defer fits.Close()

	tbl, err := findTable(fits, spec.hduName)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	n := int(tbl.NumRows())
	ts := &models.TimeSeries{
		Name: path,
		Time: make([]float64, 0, n),
	}
	for _, name := range spec.fluxCols {
		ts.Columns = append(ts.Columns, models.Column{
			Name:   name,
			Values: make([]float64, 0, n),
		})
	}

	rows, err := tbl.Read(0, tbl.NumRows())
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.Scan(&row); err != nil {
			return nil, &ParseError{Path: path, Format: format, Err: err}
		}

		t, err := cellFloat(row, spec.timeCol)
		if err != nil {
			return nil, &ParseError{Path: path, Format: format, Err: err}
		}
		ts.Time = append(ts.Time, t)

		for i, name := range spec.fluxCols {
			v, err := cellFloat(row, name)
			if err != nil {
				return nil, &ParseError{Path: path, Format: format, Err: err}
			}
			ts.Columns[i].Values = append(ts.Columns[i].Values, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	return ts, nil
}

// findTable locates the named binary-table HDU.
func findTable(fits *fitsio.File, name string) (*fitsio.Table, error) {
	for _, hdu := range fits.HDUs() {
		tbl, ok := hdu.(*fitsio.Table)
		if !ok {
			continue
		}
		if tbl.Name() == name {
			return tbl, nil
		}
	}
	return nil, fmt.Errorf("no %q table HDU", name)
}

// cellFloat pulls a numeric cell out of a scanned row.
func cellFloat(row map[string]interface{}, name string) (float64, error) {
	cell, ok := row[name]
	if !ok {
		return 0, fmt.Errorf("missing column %q", name)
	}
	switch v := cell.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("column %q has non-numeric type %T", name, cell)
	}
}
