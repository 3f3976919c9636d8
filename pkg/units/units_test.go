package units

import (
	"errors"
	"math"
	"testing"
)

func closeTo(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

func TestConvertRoundTrip(t *testing.T) {
	tcs := []struct {
		value float64
		from  Unit
		to    Unit
	}{
		{1500, Meter, Kilometer},
		{0.02, Degree, Arcminute},
		{5800, Kelvin, Kelvin},
		{10, Gigahertz, Hertz},
		{86399, Second, Day},
		{1.5, Jansky, Jansky},
	}

	for _, tc := range tcs {
		q := New(tc.value, tc.from)
		there, err := q.To(tc.to)
		if err != nil {
			t.Fatalf("To(%s, %s) error: %v", q, tc.to, err)
		}
		back, err := there.To(tc.from)
		if err != nil {
			t.Fatalf("To(%s, %s) error: %v", there, tc.from, err)
		}
		if !closeTo(back.Value, tc.value, 1e-12) {
			t.Fatalf("round trip %s -> %s -> %s = %v; want %v",
				tc.from, tc.to, tc.from, back.Value, tc.value)
		}
	}
}

func TestConvertValues(t *testing.T) {
	tcs := []struct {
		q    Quantity
		to   Unit
		want float64
	}{
		{New(1, Kilometer), Meter, 1000},
		{New(1, Degree), Arcminute, 60},
		{New(10, Gigahertz), Megahertz, 10000},
		{New(2, Hour), Minute, 120},
	}

	for _, tc := range tcs {
		got, err := tc.q.To(tc.to)
		if err != nil {
			t.Fatalf("To(%s, %s) error: %v", tc.q, tc.to, err)
		}
		if !closeTo(got.Value, tc.want, 1e-12) {
			t.Fatalf("To(%s, %s) = %v; want %v", tc.q, tc.to, got.Value, tc.want)
		}
	}
}

func TestConvertIncompatible(t *testing.T) {
	_, err := New(1, Meter).To(Kelvin)
	var incompatible *IncompatibleUnitsError
	if !errors.As(err, &incompatible) {
		t.Fatalf("To(m, K) error = %v; want IncompatibleUnitsError", err)
	}
}

func TestAdd(t *testing.T) {
	sum, err := New(1, Kilometer).Add(New(500, Meter))
	if err != nil {
		t.Fatalf("Add(1 km, 500 m) error: %v", err)
	}
	if sum.Unit != Kilometer || !closeTo(sum.Value, 1.5, 1e-12) {
		t.Fatalf("Add(1 km, 500 m) = %s; want 1.5 km", sum)
	}
}

func TestAddIncompatible(t *testing.T) {
	tcs := []struct {
		name string
		a, b Quantity
	}{
		{"length plus time", New(1, Meter), New(1, Second)},
		{"length plus dimensionless", New(1, Meter), New(1, Dimensionless)},
		{"angle plus temperature", New(1, Degree), New(1, Kelvin)},
	}

	for _, tc := range tcs {
		_, err := tc.a.Add(tc.b)
		var incompatible *IncompatibleUnitsError
		if !errors.As(err, &incompatible) {
			t.Fatalf("%s: error = %v; want IncompatibleUnitsError", tc.name, err)
		}
	}
}

func TestMulCompose(t *testing.T) {
	area := New(2, Meter).Mul(New(3, Meter))
	if area.Unit.Dim != (Dimension{Length: 2}) {
		t.Fatalf("m*m dimension = %v; want L2", area.Unit.Dim)
	}
	if !closeTo(area.SI().Value, 6, 1e-12) {
		t.Fatalf("2m * 3m = %v m2; want 6", area.SI().Value)
	}

	speed := New(6, Kilometer).Div(New(2, Hour))
	si := speed.SI()
	if si.Unit.Dim != (Dimension{Length: 1, Time: -1}) {
		t.Fatalf("km/h dimension = %v; want L/T", si.Unit.Dim)
	}
	if !closeTo(si.Value, 3000.0/3600.0, 1e-12) {
		t.Fatalf("6 km / 2 h = %v m/s; want %v", si.Value, 3000.0/3600.0)
	}

	// Multiplying by a dimensionless quantity keeps the dimension.
	scaled := New(2, Dimensionless).Mul(New(5, Kelvin))
	if scaled.Unit.Dim != Kelvin.Dim || !closeTo(scaled.Value, 10, 1e-12) {
		t.Fatalf("2 * 5 K = %s; want 10 K", scaled)
	}
}

func TestSIDecompose(t *testing.T) {
	si := New(1, Jansky).SI()
	if si.Unit.Dim != (Dimension{Mass: 1, Time: -2}) {
		t.Fatalf("Jy decomposed dimension = %v; want kg/s2", si.Unit.Dim)
	}
	if !closeTo(si.Value, 1e-26, 1e-12) {
		t.Fatalf("1 Jy = %v kg/s2; want 1e-26", si.Value)
	}
	if si.Unit.Name != "kg / s2" {
		t.Fatalf("Jy decomposed name = %q; want %q", si.Unit.Name, "kg / s2")
	}
}

func TestParseQuantity(t *testing.T) {
	tcs := []struct {
		in    string
		value float64
		unit  Unit
		ok    bool
	}{
		{"5800K", 5800, Kelvin, true},
		{"0.02 deg", 0.02, Degree, true},
		{"10GHz", 10, Gigahertz, true},
		{"-3.5e2 m", -350, Meter, true},
		{"42", 42, Dimensionless, true},
		{"2erg", 2, Erg, true},
		{"10 parsnips", 0, Unit{}, false},
		{"fast", 0, Unit{}, false},
	}

	for _, tc := range tcs {
		q, err := ParseQuantity(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseQuantity(%q) error = %v; want ok=%v", tc.in, err, tc.ok)
		}
		if !tc.ok {
			continue
		}
		if q.Unit != tc.unit || !closeTo(q.Value, tc.value, 1e-12) {
			t.Fatalf("ParseQuantity(%q) = %v %v; want %v %v",
				tc.in, q.Value, q.Unit, tc.value, tc.unit)
		}
	}
}

func TestParseUnitUnknown(t *testing.T) {
	_, err := ParseUnit("cubits")
	var unknown *UnknownUnitError
	if !errors.As(err, &unknown) {
		t.Fatalf("ParseUnit(cubits) error = %v; want UnknownUnitError", err)
	}
}
