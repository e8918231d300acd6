package ieee738

import (
	"math"

	"github.com/tommz9/linerating/internal/conductor"
)

// ReynoldsNumber returns NRe = D·ρf·Vw/μf (section 4.4.3, eq. 2c).
func ReynoldsNumber(
	ambientTemperature, windSpeed float64,
	c conductor.Conductor,
	conductorTemperature, elevation float64,
) float64 {
	return c.Diameter *
		AirDensity(ambientTemperature, conductorTemperature, elevation) *
		windSpeed /
		DynamicViscosity(ambientTemperature, conductorTemperature)
}

// KAngle returns the wind direction factor for an angle of attack φ in
// radians (eq. 4a).
func KAngle(angleOfAttack float64) float64 {
	return 1.194 -
		math.Cos(angleOfAttack) +
		0.194*math.Cos(2*angleOfAttack) +
		0.368*math.Sin(2*angleOfAttack)
}

// Forced holds the forced convection result together with its parts.
type Forced struct {
	// Qc is the forced convection cooling in W/m, max(Qc1, Qc2).
	Qc float64

	// Qc1 is the low wind speed correlation (eq. 3a).
	Qc1 float64

	// Qc2 is the high wind speed correlation (eq. 3b).
	Qc2 float64

	// KAngle is the wind direction factor applied to both correlations.
	KAngle float64
}

// ForcedConvectionParts computes the forced convection cooling (section
// 4.4.3.1) and returns both candidate correlations. angleOfAttack is in
// radians.
func ForcedConvectionParts(
	ambientTemperature, windSpeed, angleOfAttack float64,
	c conductor.Conductor,
	conductorTemperature, elevation float64,
) Forced {
	k := KAngle(angleOfAttack)
	re := ReynoldsNumber(ambientTemperature, windSpeed, c, conductorTemperature, elevation)
	kf := ThermalConductivityOfAir(ambientTemperature, conductorTemperature)
	dt := conductorTemperature - ambientTemperature

	qc1 := k * (1.01 + 1.35*math.Pow(re, 0.52)) * kf * dt
	qc2 := k * 0.754 * math.Pow(re, 0.6) * kf * dt

	return Forced{
		Qc:     math.Max(qc1, qc2),
		Qc1:    qc1,
		Qc2:    qc2,
		KAngle: k,
	}
}

// ForcedConvection returns the forced convection cooling in W/m.
// angleOfAttack is in radians.
func ForcedConvection(
	ambientTemperature, windSpeed, angleOfAttack float64,
	c conductor.Conductor,
	conductorTemperature, elevation float64,
) float64 {
	return ForcedConvectionParts(ambientTemperature, windSpeed, angleOfAttack, c, conductorTemperature, elevation).Qc
}

// NaturalConvection returns the natural convection cooling in W/m
// (section 4.4.3.2, eq. 5a).
func NaturalConvection(
	ambientTemperature float64,
	c conductor.Conductor,
	conductorTemperature, elevation float64,
) float64 {
	return 3.645 *
		math.Sqrt(AirDensity(ambientTemperature, conductorTemperature, elevation)) *
		math.Pow(c.Diameter, 0.75) *
		math.Pow(conductorTemperature-ambientTemperature, 1.25)
}

// ConvectiveHeatLoss returns the larger of forced and natural convection
// (section 4.4.3).
func ConvectiveHeatLoss(
	ambientTemperature, windSpeed, angleOfAttack float64,
	c conductor.Conductor,
	conductorTemperature, elevation float64,
) float64 {
	forced := ForcedConvection(ambientTemperature, windSpeed, angleOfAttack, c, conductorTemperature, elevation)
	natural := NaturalConvection(ambientTemperature, c, conductorTemperature, elevation)

	return math.Max(forced, natural)
}

// RadiatedHeatLoss returns the radiative cooling in W/m (section 4.4.4,
// eq. 7a).
func RadiatedHeatLoss(ambientTemperature float64, c conductor.Conductor, conductorTemperature float64) float64 {
	tc := (conductorTemperature + CelsiusToKelvin) / 100
	ta := (ambientTemperature + CelsiusToKelvin) / 100

	return 17.8 * c.Diameter * c.Emissivity * (math.Pow(tc, 4) - math.Pow(ta, 4))
}

// SolarHeatGain returns the solar heating in W/m for an effective
// irradiation in W/m² (the incidence angle already applied).
func SolarHeatGain(solarIrradiation float64, c conductor.Conductor) float64 {
	return c.Absorptivity * solarIrradiation * c.Diameter
}
