package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tommz9/linerating/internal/conductor"
	"github.com/tommz9/linerating/internal/rating"
)

// agreementTolerance is the relative difference up to which the two
// standards are considered to agree.
const agreementTolerance = 0.05

type ratingResult struct {
	Standard   string            `json:"standard"`
	Conductor  string            `json:"conductor"`
	Conditions rating.Conditions `json:"conditions"`
	Current    *float64          `json:"current"`
	Feasible   bool              `json:"feasible"`
}

type comparisonResult struct {
	Conductor          string            `json:"conductor"`
	Conditions         rating.Conditions `json:"conditions"`
	CIGRE601           *float64          `json:"cigre601"`
	IEEE738            *float64          `json:"ieee738"`
	RelativeDifference *float64          `json:"relative_difference"`
	Agree              bool              `json:"agree"`
}

type materialResult struct {
	Name              string  `json:"name"`
	MassPerUnitLength float64 `json:"mass_per_unit_length"`
	SpecificHeat20    float64 `json:"specific_heat_20"`
	Beta              float64 `json:"beta"`
}

type conductorResult struct {
	Name          string           `json:"name"`
	Diameter      float64          `json:"diameter"`
	CrossSection  *float64         `json:"cross_section"`
	Absorptivity  float64          `json:"absorptivity"`
	Emissivity    float64          `json:"emissivity"`
	Stranded      bool             `json:"stranded"`
	HighRoughness bool             `json:"high_roughness"`
	Temperature   float64          `json:"temperature"`
	Resistance    float64          `json:"resistance"`
	SpecificHeat  *float64         `json:"specific_heat"`
	HeatCapacity  float64          `json:"heat_capacity"`
	Materials     []materialResult `json:"materials"`
}

// finite returns nil for NaN and infinities, which JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func loadCatalogFile(path string) (map[string]conductor.Conductor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open conductor catalog: %w", err)
	}
	defer f.Close()

	return conductor.LoadCatalog(f)
}

// resolveConductor finds the configured conductor in the custom catalog if
// one is configured, otherwise in the embedded catalog.
func resolveConductor(config *Config) (conductor.Conductor, error) {
	if config.Catalog == "" {
		return conductor.Get(config.Conductor)
	}

	catalog, err := loadCatalogFile(config.Catalog)
	if err != nil {
		return conductor.Conductor{}, err
	}
	c, ok := catalog[strings.ToLower(strings.TrimSpace(config.Conductor))]
	if !ok {
		return conductor.Conductor{}, fmt.Errorf("%w: %q in %s", conductor.ErrUnknownConductor, config.Conductor, config.Catalog)
	}
	return c, nil
}

func newRatingResult(s rating.Standard, c conductor.Conductor, cond rating.Conditions, current float64) ratingResult {
	v := finite(current)
	return ratingResult{
		Standard:   s.String(),
		Conductor:  c.Name,
		Conditions: cond,
		Current:    v,
		Feasible:   v != nil,
	}
}

func runRate(config *Config, out io.Writer, logger zerolog.Logger) error {
	c, err := resolveConductor(config)
	if err != nil {
		return err
	}

	current, err := rating.ThermalRating(config.Conditions, c, config.Standard)
	if err != nil {
		return err
	}
	if math.IsNaN(current) {
		logger.Warn().Msg("operating point is thermally infeasible: solar gain exceeds cooling")
	}

	return writeJSON(out, newRatingResult(config.Standard, c, config.Conditions, current))
}

func runBatch(config *Config, out io.Writer, logger zerolog.Logger) error {
	c, err := resolveConductor(config)
	if err != nil {
		return err
	}
	r, err := rating.For(config.Standard)
	if err != nil {
		return err
	}

	points, err := readBatchFile(config.Input, config.Conditions)
	if err != nil {
		return err
	}

	currents := rating.RateAll(r, points, c)

	results := make([]ratingResult, len(points))
	infeasible := 0
	for i, p := range points {
		results[i] = newRatingResult(config.Standard, c, p, currents[i])
		if !results[i].Feasible {
			infeasible++
		}
	}

	logger.Info().
		Int("points", len(points)).
		Int("infeasible", infeasible).
		Str("standard", config.Standard.String()).
		Msg("batch rated")

	return writeJSON(out, results)
}

func runCompare(config *Config, out io.Writer, logger zerolog.Logger) error {
	c, err := resolveConductor(config)
	if err != nil {
		return err
	}

	cmp := rating.Compare(config.Conditions, c)
	agree := cmp.Within(agreementTolerance)
	if !agree {
		logger.Warn().
			Float64("relative_difference", cmp.RelativeDifference).
			Msg("standards disagree by more than 5%")
	}

	return writeJSON(out, comparisonResult{
		Conductor:          c.Name,
		Conditions:         config.Conditions,
		CIGRE601:           finite(cmp.CIGRE601),
		IEEE738:            finite(cmp.IEEE738),
		RelativeDifference: finite(cmp.RelativeDifference),
		Agree:              agree,
	})
}

func runConductors(config *Config, out io.Writer, _ zerolog.Logger) error {
	if config.Catalog == "" {
		return writeJSON(out, conductor.Names())
	}

	catalog, err := loadCatalogFile(config.Catalog)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return writeJSON(out, names)
}

func runDescribe(config *Config, out io.Writer, _ zerolog.Logger) error {
	c, err := resolveConductor(config)
	if err != nil {
		return err
	}

	temperature := config.Conditions.ConductorTemperature
	materials := make([]materialResult, len(c.Materials))
	for i, m := range c.Materials {
		materials[i] = materialResult(m)
	}

	return writeJSON(out, conductorResult{
		Name:          c.Name,
		Diameter:      c.Diameter,
		CrossSection:  c.CrossSection,
		Absorptivity:  c.Absorptivity,
		Emissivity:    c.Emissivity,
		Stranded:      c.Stranded,
		HighRoughness: c.HighRoughness,
		Temperature:   temperature,
		Resistance:    c.Resistance(temperature),
		SpecificHeat:  finite(conductor.SpecificHeat(c, temperature)),
		HeatCapacity:  conductor.HeatCapacity(c, temperature),
		Materials:     materials,
	})
}
