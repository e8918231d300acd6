package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tommz9/linerating/internal/rating"
)

// batchFile is the layout of a batch input document. Omitted optional
// fields of a point take the configured conditions.
type batchFile struct {
	Points []pointInput `json:"points" yaml:"points"`
}

type pointInput struct {
	AmbientTemperature   *float64 `json:"ambient_temperature" yaml:"ambient_temperature"`
	WindSpeed            *float64 `json:"wind_speed" yaml:"wind_speed"`
	AngleOfAttack        *float64 `json:"angle_of_attack" yaml:"angle_of_attack"`
	SolarIrradiation     *float64 `json:"solar_irradiation" yaml:"solar_irradiation"`
	ConductorTemperature *float64 `json:"conductor_temperature" yaml:"conductor_temperature"`
	HorizontalAngle      *float64 `json:"horizontal_angle" yaml:"horizontal_angle"`
	Elevation            *float64 `json:"elevation" yaml:"elevation"`
}

func (p pointInput) conditions(base rating.Conditions) (rating.Conditions, error) {
	required := []struct {
		name  string
		value *float64
	}{
		{"ambient_temperature", p.AmbientTemperature},
		{"wind_speed", p.WindSpeed},
		{"angle_of_attack", p.AngleOfAttack},
		{"solar_irradiation", p.SolarIrradiation},
	}
	for _, r := range required {
		if r.value == nil {
			return rating.Conditions{}, fmt.Errorf("%s is required", r.name)
		}
	}

	cond := base
	cond.AmbientTemperature = *p.AmbientTemperature
	cond.WindSpeed = *p.WindSpeed
	cond.AngleOfAttack = *p.AngleOfAttack
	cond.SolarIrradiation = *p.SolarIrradiation
	if p.ConductorTemperature != nil {
		cond.ConductorTemperature = *p.ConductorTemperature
	}
	if p.HorizontalAngle != nil {
		cond.HorizontalAngle = *p.HorizontalAngle
	}
	if p.Elevation != nil {
		cond.Elevation = *p.Elevation
	}
	return cond, nil
}

// decodeBatch parses a batch document. format is "json" or "yaml".
func decodeBatch(r io.Reader, format string, base rating.Conditions) ([]rating.Conditions, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	var file batchFile
	switch format {
	case "json":
		err = json.Unmarshal(data, &file)
	case "yaml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported batch format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch input: %w", err)
	}

	points := make([]rating.Conditions, 0, len(file.Points))
	for i, p := range file.Points {
		cond, err := p.conditions(base)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, cond)
	}
	return points, nil
}

// formatForPath picks the batch format from the file extension.
func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", fmt.Errorf("unsupported batch file extension %q", filepath.Ext(path))
}

// readBatchFile opens and decodes the batch file at path.
func readBatchFile(path string, base rating.Conditions) ([]rating.Conditions, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch input: %w", err)
	}
	defer f.Close()

	return decodeBatch(f, format, base)
}
