package plot

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/astrolab/starcurve/pkg/models"
)

func testSeries() *models.TimeSeries {
	return &models.TimeSeries{
		Name: "lc-0001.fits",
		Time: []float64{1325.30, 1325.31, 1325.33, 1325.34},
		Columns: []models.Column{
			{Name: "PDCSAP_FLUX", Values: []float64{14210.9, 14209.4, math.NaN(), 14211.5}},
		},
	}
}

func TestAddMarkers(t *testing.T) {
	p := New("pi Men")
	p.SetXLabel("Time (BTJD days)")
	p.SetYLabel("Flux (e-/s)")

	layer, err := p.AddMarkers(testSeries(), "PDCSAP_FLUX", "PDCSAP", 1.5)
	if err != nil {
		t.Fatalf("AddMarkers error: %v", err)
	}
	if layer.Points != 3 {
		t.Fatalf("layer has %d points; want 3 (NaN gap skipped)", layer.Points)
	}
	if layer.Label != "PDCSAP" {
		t.Fatalf("layer label = %q; want PDCSAP", layer.Label)
	}
}

func TestAddMarkersUnknownColumn(t *testing.T) {
	p := New("pi Men")
	_, err := p.AddMarkers(testSeries(), "SAP_FLUX", "", 1)
	var notFound *models.ColumnNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("AddMarkers error = %v; want ColumnNotFoundError", err)
	}
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lightcurve.png")

	p := New("pi Men")
	if _, err := p.AddMarkers(testSeries(), "PDCSAP_FLUX", "PDCSAP", 1.5); err != nil {
		t.Fatalf("AddMarkers error: %v", err)
	}
	if err := p.Render(out); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat rendered file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("rendered file is empty")
	}
}
