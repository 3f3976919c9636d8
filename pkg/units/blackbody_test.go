package units

import (
	"errors"
	"testing"
)

func TestRayleighJeans(t *testing.T) {
	radiance, err := RayleighJeans(New(5800, Kelvin), New(10, Gigahertz))
	if err != nil {
		t.Fatalf("RayleighJeans(5800 K, 10 GHz) error: %v", err)
	}

	si := radiance.SI()

	// Spectral radiance decomposes to W/m2/Hz = kg/s2 (per sr implicit).
	if si.Unit.Dim != (Dimension{Mass: 1, Time: -2}) {
		t.Fatalf("radiance dimension = %v; want kg/s2", si.Unit.Dim)
	}
	if si.Unit.Dim != Jansky.Dim {
		t.Fatalf("radiance dimension = %v; want the Jy dimension %v", si.Unit.Dim, Jansky.Dim)
	}

	want := 2 * 1e10 * 1e10 * 1.380649e-23 * 5800 / (2.99792458e8 * 2.99792458e8)
	if !closeTo(si.Value, want, 1e-9) {
		t.Fatalf("RayleighJeans(5800 K, 10 GHz) = %v; want %v", si.Value, want)
	}

	jy, err := radiance.To(Jansky)
	if err != nil {
		t.Fatalf("converting radiance to Jy: %v", err)
	}
	if !closeTo(jy.Value, want/1e-26, 1e-9) {
		t.Fatalf("radiance = %v Jy; want %v", jy.Value, want/1e-26)
	}
}

func TestRayleighJeansInvalidUnits(t *testing.T) {
	tcs := []struct {
		name    string
		temp    Quantity
		freq    Quantity
		wantArg string
	}{
		{"temperature in meters", New(5800, Meter), New(10, Gigahertz), "temperature"},
		{"temperature dimensionless", New(5800, Dimensionless), New(10, Gigahertz), "temperature"},
		{"frequency in meters", New(5800, Kelvin), New(10, Meter), "frequency"},
		{"frequency in kelvins", New(5800, Kelvin), New(10, Kelvin), "frequency"},
	}

	for _, tc := range tcs {
		_, err := RayleighJeans(tc.temp, tc.freq)
		var invalid *InvalidArgumentUnitError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: error = %v; want InvalidArgumentUnitError", tc.name, err)
		}
		if invalid.Argument != tc.wantArg {
			t.Fatalf("%s: argument = %q; want %q", tc.name, invalid.Argument, tc.wantArg)
		}
	}
}
