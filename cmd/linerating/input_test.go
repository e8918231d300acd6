package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommz9/linerating/internal/rating"
)

func TestDecodeBatch(t *testing.T) {
	base := rating.DefaultConditions()

	yamlDoc := `
points:
  - {ambient_temperature: 40, wind_speed: 0.61, angle_of_attack: 60, solar_irradiation: 1210, conductor_temperature: 100, elevation: 0}
  - ambient_temperature: 20
    wind_speed: 1.66
    angle_of_attack: 80
    solar_irradiation: 540.6
    horizontal_angle: 10
`
	jsonDoc := `{"points": [
  {"ambient_temperature": 40, "wind_speed": 0.61, "angle_of_attack": 60, "solar_irradiation": 1210, "conductor_temperature": 100, "elevation": 0},
  {"ambient_temperature": 20, "wind_speed": 1.66, "angle_of_attack": 80, "solar_irradiation": 540.6, "horizontal_angle": 10}
]}`

	want := []rating.Conditions{
		{
			AmbientTemperature:   40,
			WindSpeed:            0.61,
			AngleOfAttack:        60,
			SolarIrradiation:     1210,
			ConductorTemperature: 100,
			HorizontalAngle:      0,
			Elevation:            0,
		},
		{
			AmbientTemperature:   20,
			WindSpeed:            1.66,
			AngleOfAttack:        80,
			SolarIrradiation:     540.6,
			ConductorTemperature: base.ConductorTemperature,
			HorizontalAngle:      10,
			Elevation:            base.Elevation,
		},
	}

	for format, doc := range map[string]string{"yaml": yamlDoc, "json": jsonDoc} {
		t.Run(format, func(t *testing.T) {
			got, err := decodeBatch(strings.NewReader(doc), format, base)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeBatch_MissingRequiredField(t *testing.T) {
	doc := `points: [{ambient_temperature: 40, wind_speed: 1, angle_of_attack: 90}]`

	_, err := decodeBatch(strings.NewReader(doc), "yaml", rating.DefaultConditions())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "point 0: solar_irradiation is required")
}

func TestDecodeBatch_Malformed(t *testing.T) {
	_, err := decodeBatch(strings.NewReader(`{"points": [`), "json", rating.DefaultConditions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse batch input")

	_, err = decodeBatch(strings.NewReader(`points: []`), "toml", rating.DefaultConditions())
	require.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"points.json", "json", false},
		{"points.YAML", "yaml", false},
		{"dir/points.yml", "yaml", false},
		{"points.csv", "", true},
		{"points", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := formatForPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
