package ieee738

import (
	"math"

	"github.com/tommz9/linerating/internal/angle"
	"github.com/tommz9/linerating/internal/conductor"
)

// ThermalRating returns the steady-state rating in amperes of conductor c
// held at conductorTemperature.
//
// The arguments match cigre601.ThermalRating. angleOfAttack is in degrees
// and folded onto [0°, 90°] before it is converted to radians.
// horizontalAngle is not used by IEEE 738.
//
// I = sqrt((qc + qr − qs) / R(Tc)); an infeasible operating point yields NaN.
func ThermalRating(
	ambientTemperature, windSpeed, angleOfAttack, solarIrradiation float64,
	c conductor.Conductor,
	conductorTemperature, horizontalAngle, elevation float64,
) float64 {
	phi := angle.Radians(angle.Fold(angleOfAttack))

	qc := ConvectiveHeatLoss(ambientTemperature, windSpeed, phi, c, conductorTemperature, elevation)
	qr := RadiatedHeatLoss(ambientTemperature, c, conductorTemperature)
	qs := SolarHeatGain(solarIrradiation, c)

	return math.Sqrt((qc + qr - qs) / c.Resistance(conductorTemperature))
}

// ThermalRatingDefaults is ThermalRating with the default conductor
// temperature and elevation.
func ThermalRatingDefaults(ambientTemperature, windSpeed, angleOfAttack, solarIrradiation float64, c conductor.Conductor) float64 {
	return ThermalRating(
		ambientTemperature, windSpeed, angleOfAttack, solarIrradiation, c,
		DefaultConductorTemperature, DefaultHorizontalAngle, DefaultElevation,
	)
}
