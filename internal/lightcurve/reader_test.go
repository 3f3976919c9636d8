package lightcurve

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/astrogo/fitsio"

	"github.com/astrolab/starcurve/pkg/models"
)

type lcRow struct {
	Time float64 `fits:"TIME"`
	Sap  float32 `fits:"SAP_FLUX"`
	Pdc  float32 `fits:"PDCSAP_FLUX"`
}

// writeLightCurve writes a minimal TESS-shaped FITS file.
func writeLightCurve(t *testing.T, path string, rows []lcRow) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	fits, err := fitsio.Create(f)
	if err != nil {
		t.Fatalf("creating FITS file: %v", err)
	}
	defer fits.Close()

	phdu, err := fitsio.NewPrimaryHDU(nil)
	if err != nil {
		t.Fatalf("creating primary HDU: %v", err)
	}
	if err := fits.Write(phdu); err != nil {
		t.Fatalf("writing primary HDU: %v", err)
	}

	tbl, err := fitsio.NewTable("LIGHTCURVE", []fitsio.Column{
		{Name: "TIME", Format: "D"},
		{Name: "SAP_FLUX", Format: "E"},
		{Name: "PDCSAP_FLUX", Format: "E"},
	}, fitsio.BINARY_TBL)
	if err != nil {
		t.Fatalf("creating table: %v", err)
	}
	defer tbl.Close()

	for i := range rows {
		if err := tbl.Write(&rows[i]); err != nil {
			t.Fatalf("writing row %d: %v", i, err)
		}
	}

	if err := fits.Write(tbl); err != nil {
		t.Fatalf("writing table HDU: %v", err)
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lc-0001.fits")
	writeLightCurve(t, path, []lcRow{
		{Time: 1325.30, Sap: 14150.2, Pdc: 14210.9},
		{Time: 1325.31, Sap: 14148.7, Pdc: 14209.4},
		{Time: 1325.33, Sap: float32(math.NaN()), Pdc: float32(math.NaN())},
		{Time: 1325.34, Sap: 14151.0, Pdc: 14211.5},
	})

	ts, err := Read(path, "tess.fits")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	if ts.Len() != 4 {
		t.Fatalf("Read returned %d rows; want 4", ts.Len())
	}
	if ts.Time[0] != 1325.30 || ts.Time[3] != 1325.34 {
		t.Fatalf("time column = %v; want file order preserved", ts.Time)
	}
	for i := 1; i < ts.Len(); i++ {
		if ts.Time[i] < ts.Time[i-1] {
			t.Fatalf("timestamps not monotonically non-decreasing: %v", ts.Time)
		}
	}

	pdc, err := ts.Column("PDCSAP_FLUX")
	if err != nil {
		t.Fatalf("Column(PDCSAP_FLUX) error: %v", err)
	}
	if math.Abs(pdc[0]-14210.9) > 0.1 {
		t.Fatalf("PDCSAP_FLUX[0] = %v; want 14210.9", pdc[0])
	}
	if !math.IsNaN(pdc[2]) {
		t.Fatalf("PDCSAP_FLUX[2] = %v; want NaN gap preserved", pdc[2])
	}

	_, err = ts.Column("BJD")
	var notFound *models.ColumnNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Column(BJD) error = %v; want ColumnNotFoundError", err)
	}
}

func TestReadUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lc.fits")
	writeLightCurve(t, path, []lcRow{{Time: 1, Sap: 2, Pdc: 3}})

	if _, err := Read(path, "sdss.fits"); err == nil {
		t.Fatal("Read with unknown format tag succeeded; want error")
	}
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a.fits")
	if err := os.WriteFile(path, []byte("this is not a FITS file at all"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	_, err := Read(path, "tess.fits")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Read error = %v; want ParseError", err)
	}
}

func TestReadMissingTable(t *testing.T) {
	// A FITS file whose table HDU has the wrong name must not yield a
	// partially populated series.
	path := filepath.Join(t.TempDir(), "wrong-table.fits")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	fits, err := fitsio.Create(f)
	if err != nil {
		t.Fatalf("creating FITS file: %v", err)
	}
	defer fits.Close()

	phdu, err := fitsio.NewPrimaryHDU(nil)
	if err != nil {
		t.Fatalf("creating primary HDU: %v", err)
	}
	if err := fits.Write(phdu); err != nil {
		t.Fatalf("writing primary HDU: %v", err)
	}

	tbl, err := fitsio.NewTable("TARGETTABLE", []fitsio.Column{
		{Name: "TIME", Format: "D"},
	}, fitsio.BINARY_TBL)
	if err != nil {
		t.Fatalf("creating table: %v", err)
	}
	defer tbl.Close()
	if err := fits.Write(tbl); err != nil {
		t.Fatalf("writing table HDU: %v", err)
	}
	fits.Close()
	f.Close()

	_, readErr := Read(path, "tess.fits")
	var parseErr *ParseError
	if !errors.As(readErr, &parseErr) {
		t.Fatalf("Read error = %v; want ParseError for missing LIGHTCURVE table", readErr)
	}
}

func TestSummarize(t *testing.T) {
	ts := &models.TimeSeries{
		Name: "lc-0001.fits",
		Time: []float64{10, 11, 12, 13},
		Columns: []models.Column{
			{Name: "SAP_FLUX", Values: []float64{100, 200, math.NaN(), 300}},
		},
	}

	s := Summarize(ts)
	if s.Points != 4 || s.TimeStart != 10 || s.TimeEnd != 13 {
		t.Fatalf("Summarize header = %+v; want 4 points over [10, 13]", s)
	}
	if len(s.Columns) != 1 {
		t.Fatalf("Summarize returned %d columns; want 1", len(s.Columns))
	}

	col := s.Columns[0]
	if col.Count != 3 {
		t.Fatalf("valid count = %d; want 3 (NaN excluded)", col.Count)
	}
	if col.Min != 100 || col.Max != 300 || col.Mean != 200 {
		t.Fatalf("stats = min %v mean %v max %v; want 100/200/300", col.Min, col.Mean, col.Max)
	}
}
