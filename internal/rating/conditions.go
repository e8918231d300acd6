package rating

import "github.com/tommz9/linerating/internal/cigre601"

// Conditions is one operating point of a conductor.
type Conditions struct {
	// AmbientTemperature is the air temperature in °C.
	AmbientTemperature float64 `json:"ambient_temperature" yaml:"ambient_temperature"`

	// WindSpeed is in m/s.
	WindSpeed float64 `json:"wind_speed" yaml:"wind_speed"`

	// AngleOfAttack is the angle between wind and conductor in degrees,
	// 0° parallel, 90° perpendicular.
	AngleOfAttack float64 `json:"angle_of_attack" yaml:"angle_of_attack"`

	// SolarIrradiation is in W/m². IEEE 738 expects the effective value.
	SolarIrradiation float64 `json:"solar_irradiation" yaml:"solar_irradiation"`

	// ConductorTemperature is the target conductor temperature in °C.
	ConductorTemperature float64 `json:"conductor_temperature" yaml:"conductor_temperature"`

	// HorizontalAngle is the conductor inclination in degrees. Only CIGRE 601
	// uses it.
	HorizontalAngle float64 `json:"horizontal_angle" yaml:"horizontal_angle"`

	// Elevation is the height above sea level in meters.
	Elevation float64 `json:"elevation" yaml:"elevation"`
}

// DefaultConditions returns the defaults for the optional fields
// (conductor temperature 80 °C, horizontal angle 0°, elevation 500 m) with
// no wind, sun or ambient temperature set.
func DefaultConditions() Conditions {
	return Conditions{
		ConductorTemperature: cigre601.DefaultConductorTemperature,
		HorizontalAngle:      cigre601.DefaultHorizontalAngle,
		Elevation:            cigre601.DefaultElevation,
	}
}
