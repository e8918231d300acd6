package conductor

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/conductors.yaml
var catalogYAML []byte

// catalogFile is the YAML layout of a conductor catalog.
type catalogFile struct {
	Conductors []catalogEntry `yaml:"conductors"`
}

type catalogEntry struct {
	Name          string            `yaml:"name"`
	Diameter      float64           `yaml:"diameter"`
	CrossSection  *float64          `yaml:"cross_section"`
	Absorptivity  float64           `yaml:"absorptivity"`
	Emissivity    float64           `yaml:"emissivity"`
	Stranded      bool              `yaml:"stranded"`
	HighRoughness bool              `yaml:"high_roughness"`
	Resistance    []resistancePoint `yaml:"resistance"`
	Materials     []materialEntry   `yaml:"materials"`
}

type resistancePoint struct {
	Temperature float64 `yaml:"temperature"`
	OhmPerMeter float64 `yaml:"ohm_per_meter"`
}

type materialEntry struct {
	Name              string  `yaml:"name"`
	MassPerUnitLength float64 `yaml:"mass_per_unit_length"`
	SpecificHeat20    float64 `yaml:"specific_heat_20"`
	Beta              float64 `yaml:"beta"`
}

var (
	catalog     map[string]Conductor
	catalogOnce sync.Once
)

// conductor converts a catalog entry into a validated Conductor.
func (e catalogEntry) conductor() (Conductor, error) {
	name := normalizeName(e.Name)
	if name == "" {
		return Conductor{}, fmt.Errorf("%w: name is required", ErrInvalidConductor)
	}
	if len(e.Resistance) != 2 {
		return Conductor{}, fmt.Errorf("%w: %s: exactly two resistance points are required, got %d",
			ErrInvalidConductor, name, len(e.Resistance))
	}
	p1, p2 := e.Resistance[0], e.Resistance[1]
	if p1.Temperature == p2.Temperature {
		return Conductor{}, fmt.Errorf("%w: %s: resistance points must be at different temperatures",
			ErrInvalidConductor, name)
	}

	materials := make([]HeatMaterial, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, HeatMaterial(m))
	}

	c := Conductor{
		Name:          name,
		Diameter:      e.Diameter,
		CrossSection:  e.CrossSection,
		Absorptivity:  e.Absorptivity,
		Emissivity:    e.Emissivity,
		Stranded:      e.Stranded,
		HighRoughness: e.HighRoughness,
		Materials:     materials,
		Resistance:    LinearResistance(p1.Temperature, p1.OhmPerMeter, p2.Temperature, p2.OhmPerMeter),
	}
	if err := Validate(c); err != nil {
		return Conductor{}, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// parseCatalog initializes the package-level catalog from the embedded YAML.
// Invalid entries are logged and skipped.
func parseCatalog() {
	catalog = make(map[string]Conductor)

	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		logger.Error().Err(err).Msg("failed to parse embedded conductor catalog")
		return
	}

	for i, entry := range file.Conductors {
		c, err := entry.conductor()
		if err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("skipping invalid conductor catalog entry")
			continue
		}
		catalog[c.Name] = c
	}
}

// LoadCatalog reads a YAML conductor catalog from r. Unlike the embedded
// catalog, any invalid entry fails the whole load.
func LoadCatalog(r io.Reader) (map[string]Conductor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read conductor catalog: %w", err)
	}

	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse conductor catalog: %w", err)
	}

	out := make(map[string]Conductor, len(file.Conductors))
	for _, entry := range file.Conductors {
		c, err := entry.conductor()
		if err != nil {
			return nil, err
		}
		if _, dup := out[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate conductor %q", ErrInvalidConductor, c.Name)
		}
		out[c.Name] = c
	}
	return out, nil
}

// Lookup returns the catalog conductor with the given name. Names are
// matched case-insensitively.
func Lookup(name string) (Conductor, bool) {
	catalogOnce.Do(parseCatalog)
	c, ok := catalog[normalizeName(name)]
	if ok {
		c.Materials = append([]HeatMaterial(nil), c.Materials...)
	}
	return c, ok
}

// Get is like Lookup but returns ErrUnknownConductor for unknown names.
func Get(name string) (Conductor, error) {
	c, ok := Lookup(name)
	if !ok {
		return Conductor{}, fmt.Errorf("%w: %q", ErrUnknownConductor, name)
	}
	return c, nil
}

// Names returns the sorted names of the catalog conductors.
func Names() []string {
	catalogOnce.Do(parseCatalog)
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
