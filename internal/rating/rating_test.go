package rating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommz9/linerating/internal/cigre601"
	"github.com/tommz9/linerating/internal/conductor"
	"github.com/tommz9/linerating/internal/ieee738"
)

func TestParseStandard(t *testing.T) {
	tests := []struct {
		key  string
		want Standard
	}{
		{"cigre", CIGRE601},
		{"CIGRE", CIGRE601},
		{" cigre601 ", CIGRE601},
		{"ieee", IEEE738},
		{"IEEE738", IEEE738},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseStandard(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStandard_Invalid(t *testing.T) {
	for _, key := range []string{"", "something", "iec", "cigre 601"} {
		_, err := ParseStandard(key)
		require.Error(t, err, key)
		assert.ErrorIs(t, err, ErrUnknownStandard)
	}
}

func TestStandard_String(t *testing.T) {
	assert.Equal(t, "cigre", CIGRE601.String())
	assert.Equal(t, "ieee", IEEE738.String())
	assert.Equal(t, "Standard(9)", Standard(9).String())

	for _, s := range Standards {
		parsed, err := ParseStandard(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestFor(t *testing.T) {
	for _, s := range Standards {
		r, err := For(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.Standard())
	}

	_, err := For(Standard(42))
	assert.ErrorIs(t, err, ErrUnknownStandard)
}

func pointOne() Conditions {
	cond := DefaultConditions()
	cond.AmbientTemperature = 40
	cond.WindSpeed = 0.61
	cond.AngleOfAttack = 90
	cond.SolarIrradiation = 1000
	cond.ConductorTemperature = 85
	cond.HorizontalAngle = 0
	cond.Elevation = 0
	return cond
}

func pointTwo() Conditions {
	cond := DefaultConditions()
	cond.AmbientTemperature = 20
	cond.WindSpeed = 1.66
	cond.AngleOfAttack = 90
	cond.SolarIrradiation = 0
	cond.ConductorTemperature = 85
	cond.HorizontalAngle = 10
	cond.Elevation = 500
	return cond
}

func TestThermalRating_DispatchesToStandard(t *testing.T) {
	c := conductor.Drake()
	cond := pointOne()

	cigre, err := ThermalRating(cond, c, CIGRE601)
	require.NoError(t, err)
	assert.Equal(t, cigre601.ThermalRating(40, 0.61, 90, 1000, c, 85, 0, 0), cigre)

	ieee, err := ThermalRating(cond, c, IEEE738)
	require.NoError(t, err)
	assert.Equal(t, ieee738.ThermalRating(40, 0.61, 90, 1000, c, 85, 0, 0), ieee)

	byKey, err := ThermalRatingKey(cond, c, "ieee")
	require.NoError(t, err)
	assert.Equal(t, ieee, byKey)
}

func TestThermalRating_InvalidStandard(t *testing.T) {
	// The conductor has no resistance function, so any computation would panic.
	broken := conductor.Conductor{}

	_, err := ThermalRatingKey(pointOne(), broken, "something")
	assert.ErrorIs(t, err, ErrUnknownStandard)

	_, err = ThermalRating(pointOne(), broken, Standard(3))
	assert.ErrorIs(t, err, ErrUnknownStandard)

	_, err = Evaluate(Batch{AmbientTemperature: []float64{1}}, broken, Standard(3))
	assert.ErrorIs(t, err, ErrUnknownStandard)
}

func TestDefaultConditions(t *testing.T) {
	d := DefaultConditions()

	assert.Equal(t, 80.0, d.ConductorTemperature)
	assert.Equal(t, 0.0, d.HorizontalAngle)
	assert.Equal(t, 500.0, d.Elevation)
}

func TestCompare_StandardsAgree(t *testing.T) {
	for name, cond := range map[string]Conditions{"point one": pointOne(), "point two": pointTwo()} {
		t.Run(name, func(t *testing.T) {
			cmp := Compare(cond, conductor.Drake())

			assert.InEpsilon(t, cmp.CIGRE601, cmp.IEEE738, 0.05)
			assert.True(t, cmp.Within(0.05))
			assert.InDelta(t, math.Abs(cmp.IEEE738-cmp.CIGRE601)/cmp.CIGRE601, cmp.RelativeDifference, 1e-15)
		})
	}
}

func TestCompare_NaNNeverAgrees(t *testing.T) {
	cond := pointOne()
	cond.ConductorTemperature = 41
	cond.WindSpeed = 0
	cond.SolarIrradiation = 5000

	cmp := Compare(cond, conductor.Drake())
	assert.True(t, math.IsNaN(cmp.CIGRE601))
	assert.False(t, cmp.Within(1))
}

func TestRating_Symmetry(t *testing.T) {
	c := conductor.Drake()

	for _, s := range Standards {
		r, err := For(s)
		require.NoError(t, err)

		for a := -180.0; a <= 360; a += 15 {
			cond := pointOne()
			cond.WindSpeed = 3

			cond.AngleOfAttack = a
			base := r.Rate(cond, c)

			cond.AngleOfAttack = -a
			assert.Equal(t, base, r.Rate(cond, c), "%s: rating(%g) == rating(%g)", s, a, -a)

			cond.AngleOfAttack = 180 - a
			assert.InDelta(t, base, r.Rate(cond, c), 1e-9, "%s: rating(%g) == rating(%g)", s, a, 180-a)

			cond.AngleOfAttack = 90
			assert.GreaterOrEqual(t, r.Rate(cond, c), base, "%s: rating(90) >= rating(%g)", s, a)
		}
	}
}
