package units

// Physical constants carried as quantities so that derived results keep
// their unit composition. CODATA 2018 exact values.
var (
	// Boltzmann is the Boltzmann constant k_B.
	Boltzmann = New(1.380649e-23, Joule.Div(Kelvin))

	// SpeedOfLight is the speed of light in vacuum c.
	SpeedOfLight = New(2.99792458e8, Meter.Div(Second))
)
