package conductor

// Drake reference resistances, Ω/m.
const (
	drakeResistanceAt25 = 7.283e-5
	drakeResistanceAt75 = 8.688e-5
)

// DrakeResistance is the resistance of the 26/7 ACSR "Drake" conductor,
// interpolated between the published values at 25 °C and 75 °C.
var DrakeResistance = LinearResistance(25, drakeResistanceAt25, 75, drakeResistanceAt75)

func drakeMaterials() []HeatMaterial {
	return []HeatMaterial{
		{Name: "steel", MassPerUnitLength: 0.5119, SpecificHeat20: 481, Beta: 1.00e-4},
		{Name: "aluminum", MassPerUnitLength: 1.116, SpecificHeat20: 897, Beta: 3.80e-4},
	}
}

// Drake returns the Drake conductor as used in the CIGRE 601 worked
// example A.
func Drake() Conductor {
	return Conductor{
		Name:          "drake",
		Diameter:      28.1e-3,
		Absorptivity:  0.8,
		Emissivity:    0.8,
		Stranded:      true,
		HighRoughness: true,
		Materials:     drakeMaterials(),
		Resistance:    DrakeResistance,
	}
}

// DrakeIEEE738 returns the Drake conductor with the diameter used in the
// IEEE 738 worked example.
func DrakeIEEE738() Conductor {
	c := Drake()
	c.Name = "drake-ieee738"
	c.Diameter = 28.14e-3
	return c
}

// DrakeExampleB returns the Drake conductor with the weathered surface
// (absorptivity and emissivity 0.9) of the CIGRE 601 worked example B.
func DrakeExampleB() Conductor {
	c := Drake()
	c.Name = "drake-example-b"
	c.Absorptivity = 0.9
	c.Emissivity = 0.9
	return c
}
