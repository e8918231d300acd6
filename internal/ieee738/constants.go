// Package ieee738 computes the steady-state thermal rating of bare overhead
// conductors following IEEE Std 738-2012, SI units.
//
// The air property fits and heat terms are independent of package cigre601
// even where the formulas coincide.
package ieee738

const (
	// CelsiusToKelvin is the offset used by the standard.
	CelsiusToKelvin = 273.0

	// DefaultConductorTemperature is the target conductor temperature in °C.
	DefaultConductorTemperature = 80.0

	// DefaultHorizontalAngle is accepted for signature parity with cigre601
	// and has no effect.
	DefaultHorizontalAngle = 0.0

	// DefaultElevation is the height above sea level in meters.
	DefaultElevation = 500.0
)

func filmTemperature(ambientTemperature, conductorTemperature float64) float64 {
	return (conductorTemperature + ambientTemperature) / 2
}
