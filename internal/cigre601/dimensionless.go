package cigre601

import "github.com/tommz9/linerating/internal/conductor"

// ReynoldsNumber returns Re = v·D/νf.
func ReynoldsNumber(windSpeed float64, c conductor.Conductor, tf, elevation float64) float64 {
	return windSpeed * c.Diameter / KinematicViscosity(tf, elevation)
}

// Grashof returns Gr = D³·(Tc − Ta)·g / ((Tf + 273)·νf²).
func Grashof(c conductor.Conductor, conductorTemperature, ambientTemperature, tf, elevation float64) float64 {
	nu := KinematicViscosity(tf, elevation)

	return c.Diameter * c.Diameter * c.Diameter *
		(conductorTemperature - ambientTemperature) * Gravity /
		((tf + CelsiusToKelvin) * nu * nu)
}

// Prandtl returns Pr = c·μf/λf.
//
// c is the specific heat of air (AirSpecificHeat). The conductor and its
// temperature do not enter the result; conductor.SpecificHeat is a different
// quantity and the brochure examples are reproduced without it.
func Prandtl(c conductor.Conductor, conductorTemperature, tf float64) float64 {
	return AirSpecificHeat * DynamicViscosity(tf) / ThermalConductivityOfAir(tf)
}
