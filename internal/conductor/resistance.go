package conductor

// LinearResistance returns a ResistanceFunc that interpolates linearly
// between two reference points (t1, r1) and (t2, r2) and extrapolates
// outside of them.
//
// Temperatures are in °C, resistances in Ω/m. t1 and t2 must differ.
func LinearResistance(t1, r1, t2, r2 float64) ResistanceFunc {
	perDegree := (r2 - r1) / (t2 - t1)

	return func(temperature float64) float64 {
		return r1 + (temperature-t1)*perDegree
	}
}
