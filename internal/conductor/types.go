// Package conductor describes bare overhead conductors: geometry, surface
// properties, heat capacity of the constituent metals and the temperature
// dependent electrical resistance.
package conductor

// ResistanceFunc maps conductor temperature in °C to the AC resistance per
// unit length in Ω/m.
type ResistanceFunc func(temperature float64) float64

// HeatMaterial is one metal of a composite conductor (e.g. the steel core or
// the aluminum strands of an ACSR conductor).
type HeatMaterial struct {
	// Name is informational only (e.g., "steel", "aluminum").
	Name string

	// MassPerUnitLength is the mass of this material per meter of conductor in kg/m.
	MassPerUnitLength float64

	// SpecificHeat20 is the specific heat at 20 °C in J/(kg·K).
	SpecificHeat20 float64

	// Beta is the temperature coefficient of the specific heat in 1/K.
	Beta float64
}

// Conductor holds the constants of a conductor type. Values are treated as
// immutable once constructed and may be shared between goroutines.
type Conductor struct {
	// Name identifies the conductor in the catalog (e.g., "drake").
	Name string

	// Diameter is the outer diameter in meters.
	Diameter float64

	// CrossSection is the total cross-section in m², nil when not known.
	CrossSection *float64

	// Absorptivity is the solar absorptivity (0 to 1).
	Absorptivity float64

	// Emissivity is the emissivity (0 to 1).
	Emissivity float64

	// Stranded is true for stranded conductors, false for smooth ones.
	Stranded bool

	// HighRoughness marks a high surface roughness (Rs > 0.05). Only the
	// CIGRE 601 Nusselt selection uses it.
	HighRoughness bool

	// Materials lists the metals of the conductor, outermost last.
	Materials []HeatMaterial

	// Resistance returns the resistance per unit length at a temperature.
	Resistance ResistanceFunc
}
