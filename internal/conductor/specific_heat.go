package conductor

// SpecificHeat returns the mass weighted specific heat of the conductor at
// the given temperature in J/(kg·K).
//
// Each material contributes c20 × (1 + β × (T − 20)). The rating solvers do
// not use this value; the Prandtl number is computed with the specific heat
// of air. A conductor without mass returns NaN.
func SpecificHeat(c Conductor, temperature float64) float64 {
	totalMass := 0.0
	totalHeat := 0.0

	for _, m := range c.Materials {
		modified := m.SpecificHeat20 * (1 + m.Beta*(temperature-20.0))

		totalMass += m.MassPerUnitLength
		totalHeat += m.MassPerUnitLength * modified
	}

	return totalHeat / totalMass
}

// HeatCapacity returns the heat capacity per unit length in J/(m·K) at the
// given temperature, i.e. Σ m × c(T).
func HeatCapacity(c Conductor, temperature float64) float64 {
	total := 0.0
	for _, m := range c.Materials {
		total += m.MassPerUnitLength * m.SpecificHeat20 * (1 + m.Beta*(temperature-20.0))
	}
	return total
}
