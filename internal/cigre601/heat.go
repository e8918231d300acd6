package cigre601

import (
	"math"

	"github.com/tommz9/linerating/internal/conductor"
)

// Gr·Pr regimes of the natural convection Nusselt number (table 5).
var naturalNusselt = []coefficients{
	{upper: 1e2, a: 1.02, m: 0.148},
	{upper: 1e4, a: 0.850, m: 0.188},
	{upper: 1e7, a: 0.480, m: 0.250},
	{upper: 1e12, a: 0.125, m: 0.333},
}

// HorizontalCorrection returns the natural convection correction for a
// conductor inclined by horizontalAngle degrees (eq. 24).
func HorizontalCorrection(c conductor.Conductor, horizontalAngle float64) float64 {
	if c.Stranded {
		return 1 - 1.76e-6*math.Pow(horizontalAngle, 2.5)
	}
	return 1 - 1.58e-4*math.Pow(horizontalAngle, 1.5)
}

// ForcedConvection returns the forced convective cooling in W/m (eq. 17):
// Pc = π·λf·(Tc − Ta)·Nu.
func ForcedConvection(
	ambientTemperature, windSpeed, angleOfAttack float64,
	c conductor.Conductor,
	conductorTemperature, elevation float64,
) float64 {
	tf := FilmTemperature(conductorTemperature, ambientTemperature)

	re := ReynoldsNumber(windSpeed, c, tf, elevation)
	nu := NusseltForConductor(c)(re, angleOfAttack)

	return math.Pi * ThermalConductivityOfAir(tf) * (conductorTemperature - ambientTemperature) * nu
}

// NaturalConvection returns the natural convective cooling in W/m. The
// Nusselt number is A·(Gr·Pr)^m corrected for the conductor inclination.
func NaturalConvection(
	ambientTemperature float64,
	c conductor.Conductor,
	conductorTemperature, horizontalAngle, elevation float64,
) float64 {
	tf := FilmTemperature(conductorTemperature, ambientTemperature)

	gp := Grashof(c, conductorTemperature, ambientTemperature, tf, elevation) *
		Prandtl(c, conductorTemperature, tf)

	a, m := selectCoefficients(gp, naturalNusselt)
	nu := a * math.Pow(gp, m) * HorizontalCorrection(c, horizontalAngle)

	return math.Pi * ThermalConductivityOfAir(tf) * (conductorTemperature - ambientTemperature) * nu
}

// PowerConvective returns the convective cooling in W/m, the larger of
// forced and natural convection ("low wind speeds", page 28).
func PowerConvective(
	ambientTemperature, windSpeed, angleOfAttack float64,
	c conductor.Conductor,
	conductorTemperature, horizontalAngle, elevation float64,
) float64 {
	forced := ForcedConvection(ambientTemperature, windSpeed, angleOfAttack, c, conductorTemperature, elevation)
	natural := NaturalConvection(ambientTemperature, c, conductorTemperature, horizontalAngle, elevation)

	return math.Max(forced, natural)
}

// PowerRadiation returns the radiative cooling in W/m (eq. 27).
func PowerRadiation(ambientTemperature float64, c conductor.Conductor, conductorTemperature float64) float64 {
	tc := conductorTemperature + CelsiusToKelvin
	ta := ambientTemperature + CelsiusToKelvin

	return math.Pi * c.Diameter * StefanBoltzmann * c.Emissivity *
		(math.Pow(tc, 4) - math.Pow(ta, 4))
}

// PowerSolar returns the solar heating in W/m (section 3.3, eq. 8).
func PowerSolar(solarIrradiation float64, c conductor.Conductor) float64 {
	return c.Absorptivity * solarIrradiation * c.Diameter
}
