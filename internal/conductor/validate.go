package conductor

import "fmt"

// Validate checks the invariants of a conductor definition: positive
// diameter, absorptivity and emissivity within [0, 1], positive material
// masses and a resistance function.
//
// The rating functions never call Validate; malformed constants surface as
// NaN or Inf at the point of use.
func Validate(c Conductor) error {
	if !(c.Diameter > 0) {
		return fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidConductor, c.Diameter)
	}
	if c.Absorptivity < 0 || c.Absorptivity > 1 {
		return fmt.Errorf("%w: absorptivity must be within [0, 1], got %g", ErrInvalidConductor, c.Absorptivity)
	}
	if c.Emissivity < 0 || c.Emissivity > 1 {
		return fmt.Errorf("%w: emissivity must be within [0, 1], got %g", ErrInvalidConductor, c.Emissivity)
	}
	if c.CrossSection != nil && !(*c.CrossSection > 0) {
		return fmt.Errorf("%w: cross-section must be positive, got %g", ErrInvalidConductor, *c.CrossSection)
	}
	for _, m := range c.Materials {
		if !(m.MassPerUnitLength > 0) {
			return fmt.Errorf("%w: material %q mass must be positive, got %g", ErrInvalidConductor, m.Name, m.MassPerUnitLength)
		}
	}
	if c.Resistance == nil {
		return fmt.Errorf("%w: resistance function is required", ErrInvalidConductor)
	}
	return nil
}
