// Package cigre601 computes the steady-state thermal rating of bare overhead
// conductors following CIGRE Technical Brochure 601 (2014).
//
// Every stage of the heat balance is exported so it can be checked against
// the worked examples of the brochure on its own. All functions are pure.
package cigre601

const (
	// StefanBoltzmann is the Stefan-Boltzmann constant in W/(m²·K⁴).
	StefanBoltzmann = 5.6697e-8

	// Gravity is the gravitational acceleration in m/s².
	Gravity = 9.807

	// AirSpecificHeat is the specific heat of air at constant pressure in
	// J/(kg·K), used for the Prandtl number.
	AirSpecificHeat = 1005.0

	// CelsiusToKelvin is the offset used by the brochure. It is rounded to
	// 273, not 273.15.
	CelsiusToKelvin = 273.0

	// DefaultConductorTemperature is the target conductor temperature in °C.
	DefaultConductorTemperature = 80.0

	// DefaultHorizontalAngle is the inclination of the conductor to the
	// horizontal in degrees.
	DefaultHorizontalAngle = 0.0

	// DefaultElevation is the height above sea level in meters.
	DefaultElevation = 500.0
)
