package units

import "fmt"

// InvalidArgumentUnitError reports an argument whose unit has the wrong
// physical dimension for the function it was passed to.
type InvalidArgumentUnitError struct {
	Argument string
	Unit     Unit
	Want     string
}

func (e *InvalidArgumentUnitError) Error() string {
	return fmt.Sprintf("argument %s has unit %s (%s), want a %s unit",
		e.Argument, e.Unit, e.Unit.Dim, e.Want)
}

// RayleighJeans computes the Rayleigh–Jeans approximation of blackbody
// spectral radiance, 2 f² k_B T / c², for a temperature and a frequency.
// The result keeps the composed unit of the operands; SI() decomposes it
// to W/m²/Hz (kg/s², per steradian implicit).
func RayleighJeans(temperature, frequency Quantity) (Quantity, error) {
	if temperature.Unit.Dim != Kelvin.Dim {
		return Quantity{}, &InvalidArgumentUnitError{
			Argument: "temperature",
			Unit:     temperature.Unit,
			Want:     "temperature",
		}
	}
	if frequency.Unit.Dim != Hertz.Dim {
		return Quantity{}, &InvalidArgumentUnitError{
			Argument: "frequency",
			Unit:     frequency.Unit,
			Want:     "frequency",
		}
	}
	two := New(2, Dimensionless)
	cSquared := SpeedOfLight.Mul(SpeedOfLight)
	return two.Mul(frequency).Mul(frequency).
		Mul(Boltzmann).Mul(temperature).
		Div(cSquared), nil
}
