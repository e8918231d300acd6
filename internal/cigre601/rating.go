package cigre601

import (
	"math"

	"github.com/tommz9/linerating/internal/angle"
	"github.com/tommz9/linerating/internal/conductor"
)

// ThermalRating returns the steady-state rating in amperes of conductor c
// held at conductorTemperature.
//
// Inputs:
//   - ambientTemperature: air temperature in °C
//   - windSpeed: in m/s
//   - angleOfAttack: angle between wind and conductor in degrees, 0° is
//     parallel and 90° perpendicular. Any real value is accepted.
//   - solarIrradiation: global irradiation in W/m²
//   - conductorTemperature: target conductor temperature in °C
//   - horizontalAngle: inclination of the conductor in degrees
//   - elevation: height above sea level in meters
//
// The calculation solves the steady-state heat balance:
//  1. Fold the angle of attack onto [0°, 90°]
//  2. Pc = max(forced, natural convection)
//  3. Pr = radiative cooling, Ps = solar heating
//  4. I = sqrt((Pr + Pc − Ps) / R(Tc))
//
// When solar heating exceeds the cooling the result is NaN.
func ThermalRating(
	ambientTemperature, windSpeed, angleOfAttack, solarIrradiation float64,
	c conductor.Conductor,
	conductorTemperature, horizontalAngle, elevation float64,
) float64 {
	attack := angle.Fold(angleOfAttack)

	pc := PowerConvective(ambientTemperature, windSpeed, attack, c, conductorTemperature, horizontalAngle, elevation)
	pr := PowerRadiation(ambientTemperature, c, conductorTemperature)
	ps := PowerSolar(solarIrradiation, c)

	return math.Sqrt((pr + pc - ps) / c.Resistance(conductorTemperature))
}

// ThermalRatingDefaults is ThermalRating with the default conductor
// temperature, horizontal angle and elevation.
func ThermalRatingDefaults(ambientTemperature, windSpeed, angleOfAttack, solarIrradiation float64, c conductor.Conductor) float64 {
	return ThermalRating(
		ambientTemperature, windSpeed, angleOfAttack, solarIrradiation, c,
		DefaultConductorTemperature, DefaultHorizontalAngle, DefaultElevation,
	)
}
