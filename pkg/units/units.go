// Package units provides numeric quantities tagged with physical units.
// Arithmetic between quantities is checked dimensionally: adding or
// converting across different physical dimensions is an error, while
// multiplication and division compose dimensions.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimension is the exponent vector of a unit over the base physical
// dimensions. Two units are compatible when their dimensions are equal.
// Angle is tracked as its own dimension so that degrees and kelvins can
// never be mixed up even though SI treats angles as dimensionless.
type Dimension struct {
	Length      int8
	Mass        int8
	Time        int8
	Temperature int8
	Current     int8
	Amount      int8
	Luminosity  int8
	Angle       int8
}

// Mul returns the dimension of a product of two units.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length + o.Length,
		Mass:        d.Mass + o.Mass,
		Time:        d.Time + o.Time,
		Temperature: d.Temperature + o.Temperature,
		Current:     d.Current + o.Current,
		Amount:      d.Amount + o.Amount,
		Luminosity:  d.Luminosity + o.Luminosity,
		Angle:       d.Angle + o.Angle,
	}
}

// Div returns the dimension of a quotient of two units.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length - o.Length,
		Mass:        d.Mass - o.Mass,
		Time:        d.Time - o.Time,
		Temperature: d.Temperature - o.Temperature,
		Current:     d.Current - o.Current,
		Amount:      d.Amount - o.Amount,
		Luminosity:  d.Luminosity - o.Luminosity,
		Angle:       d.Angle - o.Angle,
	}
}

// IsZero reports whether the dimension is dimensionless.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// baseSymbols pairs each base dimension with its SI-coherent symbol, in
// the conventional print order.
func (d Dimension) baseSymbols() []struct {
	sym string
	exp int8
} {
	return []struct {
		sym string
		exp int8
	}{
		{"kg", d.Mass},
		{"m", d.Length},
		{"s", d.Time},
		{"A", d.Current},
		{"K", d.Temperature},
		{"mol", d.Amount},
		{"cd", d.Luminosity},
		{"rad", d.Angle},
	}
}

// String renders the dimension in SI base symbols, e.g. "kg / s2".
func (d Dimension) String() string {
	var num, den []string
	for _, b := range d.baseSymbols() {
		switch {
		case b.exp > 0:
			num = append(num, powString(b.sym, b.exp))
		case b.exp < 0:
			den = append(den, powString(b.sym, -b.exp))
		}
	}
	switch {
	case len(num) == 0 && len(den) == 0:
		return "1"
	case len(den) == 0:
		return strings.Join(num, " ")
	case len(num) == 0:
		return "1 / " + strings.Join(den, " ")
	default:
		return strings.Join(num, " ") + " / " + strings.Join(den, " ")
	}
}

func powString(sym string, exp int8) string {
	if exp == 1 {
		return sym
	}
	return fmt.Sprintf("%s%d", sym, exp)
}

// Unit is a named, linearly scaled unit of some dimension. Scale is the
// factor converting a magnitude in this unit to the SI-coherent unit of
// the same dimension (e.g. km has Scale 1000).
type Unit struct {
	Name  string
	Dim   Dimension
	Scale float64
}

// Mul composes two units into their product unit.
func (u Unit) Mul(o Unit) Unit {
	return Unit{
		Name:  composeName(u.Name, o.Name, "·"),
		Dim:   u.Dim.Mul(o.Dim),
		Scale: u.Scale * o.Scale,
	}
}

// Div composes two units into their quotient unit.
func (u Unit) Div(o Unit) Unit {
	return Unit{
		Name:  composeName(u.Name, o.Name, "/"),
		Dim:   u.Dim.Div(o.Dim),
		Scale: u.Scale / o.Scale,
	}
}

func composeName(a, b, sep string) string {
	if b == "" {
		return a
	}
	if strings.ContainsAny(b, "·/") {
		b = "(" + b + ")"
	}
	if a == "" {
		if sep == "/" {
			return "1/" + b
		}
		return b
	}
	return a + sep + b
}

func (u Unit) String() string {
	if u.Name == "" {
		return "(dimensionless)"
	}
	return u.Name
}

// IncompatibleUnitsError reports an operation between units of different
// physical dimensions.
type IncompatibleUnitsError struct {
	From Unit
	To   Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units: %s (%s) and %s (%s)",
		e.From, e.From.Dim, e.To, e.To.Dim)
}

// UnknownUnitError reports an unrecognized unit name.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit: %q", e.Name)
}

// Quantity is an immutable magnitude tagged with a unit. Operations
// return new quantities and never mutate their receivers.
type Quantity struct {
	Value float64
	Unit  Unit
}

// New creates a quantity from a magnitude and a unit.
func New(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// To converts the quantity to a compatible target unit.
func (q Quantity) To(unit Unit) (Quantity, error) {
	if q.Unit.Dim != unit.Dim {
		return Quantity{}, &IncompatibleUnitsError{From: q.Unit, To: unit}
	}
	return Quantity{Value: q.Value * q.Unit.Scale / unit.Scale, Unit: unit}, nil
}

// Add returns q + o in q's unit. The operands must share a dimension.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	conv, err := o.To(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value + conv.Value, Unit: q.Unit}, nil
}

// Sub returns q - o in q's unit. The operands must share a dimension.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	conv, err := o.To(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value - conv.Value, Unit: q.Unit}, nil
}

// Mul returns the product q × o with a composed unit.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Value: q.Value * o.Value, Unit: q.Unit.Mul(o.Unit)}
}

// Div returns the quotient q ÷ o with a composed unit.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{Value: q.Value / o.Value, Unit: q.Unit.Div(o.Unit)}
}

// SI decomposes the quantity into SI-coherent base units.
func (q Quantity) SI() Quantity {
	dim := q.Unit.Dim
	name := dim.String()
	if name == "1" {
		name = ""
	}
	return Quantity{
		Value: q.Value * q.Unit.Scale,
		Unit:  Unit{Name: name, Dim: dim, Scale: 1},
	}
}

func (q Quantity) String() string {
	if q.Unit.Name == "" {
		return strconv.FormatFloat(q.Value, 'g', -1, 64)
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(q.Value, 'g', -1, 64), q.Unit.Name)
}

// Predefined units. Scales are relative to the SI-coherent unit of each
// dimension.
var (
	Dimensionless = Unit{Scale: 1}

	Meter      = Unit{Name: "m", Dim: Dimension{Length: 1}, Scale: 1}
	Kilometer  = Unit{Name: "km", Dim: Dimension{Length: 1}, Scale: 1e3}
	Centimeter = Unit{Name: "cm", Dim: Dimension{Length: 1}, Scale: 1e-2}
	Millimeter = Unit{Name: "mm", Dim: Dimension{Length: 1}, Scale: 1e-3}
	Nanometer  = Unit{Name: "nm", Dim: Dimension{Length: 1}, Scale: 1e-9}

	Second = Unit{Name: "s", Dim: Dimension{Time: 1}, Scale: 1}
	Minute = Unit{Name: "min", Dim: Dimension{Time: 1}, Scale: 60}
	Hour   = Unit{Name: "h", Dim: Dimension{Time: 1}, Scale: 3600}
	Day    = Unit{Name: "d", Dim: Dimension{Time: 1}, Scale: 86400}

	Kilogram = Unit{Name: "kg", Dim: Dimension{Mass: 1}, Scale: 1}
	Gram     = Unit{Name: "g", Dim: Dimension{Mass: 1}, Scale: 1e-3}

	Kelvin = Unit{Name: "K", Dim: Dimension{Temperature: 1}, Scale: 1}

	Hertz     = Unit{Name: "Hz", Dim: Dimension{Time: -1}, Scale: 1}
	Kilohertz = Unit{Name: "kHz", Dim: Dimension{Time: -1}, Scale: 1e3}
	Megahertz = Unit{Name: "MHz", Dim: Dimension{Time: -1}, Scale: 1e6}
	Gigahertz = Unit{Name: "GHz", Dim: Dimension{Time: -1}, Scale: 1e9}

	Joule = Unit{Name: "J", Dim: Dimension{Mass: 1, Length: 2, Time: -2}, Scale: 1}
	Erg   = Unit{Name: "erg", Dim: Dimension{Mass: 1, Length: 2, Time: -2}, Scale: 1e-7}
	Watt  = Unit{Name: "W", Dim: Dimension{Mass: 1, Length: 2, Time: -3}, Scale: 1}

	// Jansky: the usual flux-density unit, 1e-26 W/m²/Hz.
	Jansky = Unit{Name: "Jy", Dim: Dimension{Mass: 1, Time: -2}, Scale: 1e-26}

	Radian    = Unit{Name: "rad", Dim: Dimension{Angle: 1}, Scale: 1}
	Degree    = Unit{Name: "deg", Dim: Dimension{Angle: 1}, Scale: 0.017453292519943295}
	Arcminute = Unit{Name: "arcmin", Dim: Dimension{Angle: 1}, Scale: 0.017453292519943295 / 60}
	Arcsecond = Unit{Name: "arcsec", Dim: Dimension{Angle: 1}, Scale: 0.017453292519943295 / 3600}
	Steradian = Unit{Name: "sr", Dim: Dimension{Angle: 2}, Scale: 1}
)

var unitsByName = map[string]Unit{
	"":       Dimensionless,
	"m":      Meter,
	"km":     Kilometer,
	"cm":     Centimeter,
	"mm":     Millimeter,
	"nm":     Nanometer,
	"s":      Second,
	"min":    Minute,
	"h":      Hour,
	"d":      Day,
	"kg":     Kilogram,
	"g":      Gram,
	"K":      Kelvin,
	"Hz":     Hertz,
	"kHz":    Kilohertz,
	"MHz":    Megahertz,
	"GHz":    Gigahertz,
	"J":      Joule,
	"erg":    Erg,
	"W":      Watt,
	"Jy":     Jansky,
	"rad":    Radian,
	"deg":    Degree,
	"arcmin": Arcminute,
	"arcsec": Arcsecond,
	"sr":     Steradian,
}

// ParseUnit resolves a unit name from the registry.
func ParseUnit(name string) (Unit, error) {
	u, ok := unitsByName[strings.TrimSpace(name)]
	if !ok {
		return Unit{}, &UnknownUnitError{Name: name}
	}
	return u, nil
}

// ParseQuantity parses strings like "5800K", "0.02 deg" or "42". A bare
// number yields a dimensionless quantity.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	split := len(s)
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' ||
			r == 'e' || r == 'E' {
			// 'e' is only numeric when followed by a digit or sign,
			// otherwise it starts a unit name like "erg".
			if r == 'e' || r == 'E' {
				rest := s[i+1:]
				if rest == "" || !strings.ContainsAny(rest[:1], "0123456789+-") {
					split = i
					break
				}
			}
			continue
		}
		split = i
		break
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s[:split]), 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing quantity %q: %w", s, err)
	}
	unit, err := ParseUnit(s[split:])
	if err != nil {
		return Quantity{}, err
	}
	return New(value, unit), nil
}
