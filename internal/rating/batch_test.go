package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommz9/linerating/internal/cigre601"
	"github.com/tommz9/linerating/internal/conductor"
)

func TestBatch_Len(t *testing.T) {
	tests := []struct {
		name    string
		batch   Batch
		want    int
		wantErr bool
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name: "equal lengths",
			batch: Batch{
				AmbientTemperature: []float64{5, 5, 5, 5},
				WindSpeed:          []float64{0, 2, 5, 10},
				AngleOfAttack:      []float64{0, 91, 181, 359},
				SolarIrradiation:   []float64{0, 400, 600, 1100},
			},
			want: 4,
		},
		{
			name: "length one broadcasts",
			batch: Batch{
				AmbientTemperature: []float64{40},
				WindSpeed:          []float64{5},
				AngleOfAttack:      []float64{0, 45, 90},
				SolarIrradiation:   []float64{1000},
				Elevation:          []float64{0},
			},
			want: 3,
		},
		{
			name: "mismatched lengths",
			batch: Batch{
				AmbientTemperature: []float64{40, 41},
				WindSpeed:          []float64{5, 5, 5},
				AngleOfAttack:      []float64{0, 45, 90},
				SolarIrradiation:   []float64{1000},
			},
			wantErr: true,
		},
		{
			name: "missing required input",
			batch: Batch{
				AmbientTemperature: []float64{40, 41},
				WindSpeed:          []float64{5, 5},
				AngleOfAttack:      []float64{0, 45},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.batch.Len()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBatch_DefaultsOptionalInputs(t *testing.T) {
	b := Batch{
		AmbientTemperature: []float64{5},
		WindSpeed:          []float64{2},
		AngleOfAttack:      []float64{45},
		SolarIrradiation:   []float64{400},
	}

	points, err := b.Points()
	require.NoError(t, err)
	require.Len(t, points, 1)

	want := DefaultConditions()
	want.AmbientTemperature = 5
	want.WindSpeed = 2
	want.AngleOfAttack = 45
	want.SolarIrradiation = 400
	assert.Equal(t, want, points[0])
}

func TestEvaluate_MatchesScalarPath(t *testing.T) {
	c := conductor.Drake()
	b := Batch{
		AmbientTemperature: []float64{5, 5, 5, 5},
		WindSpeed:          []float64{0, 2, 5, 10},
		AngleOfAttack:      []float64{0, 91, 181, 359},
		SolarIrradiation:   []float64{0, 400, 600, 1100},
	}

	got, err := Evaluate(b, c, CIGRE601)
	require.NoError(t, err)
	require.Len(t, got, 4)

	for i := range got {
		want := cigre601.ThermalRatingDefaults(
			b.AmbientTemperature[i], b.WindSpeed[i], b.AngleOfAttack[i], b.SolarIrradiation[i], c)
		assert.Equal(t, want, got[i], "element %d", i)
		assert.Greater(t, got[i], 0.0)
	}
}

func TestEvaluate_ShapeMismatchBeforeComputation(t *testing.T) {
	b := Batch{
		AmbientTemperature: []float64{5, 5},
		WindSpeed:          []float64{0, 2, 5},
		AngleOfAttack:      []float64{0},
		SolarIrradiation:   []float64{0},
	}

	// No resistance function: computing anything would panic.
	_, err := Evaluate(b, conductor.Conductor{}, IEEE738)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestEvaluate_AngleSymmetry(t *testing.T) {
	b := Batch{
		AmbientTemperature:   []float64{40},
		WindSpeed:            []float64{5},
		AngleOfAttack:        []float64{0, 45, 89, 90, 91, 135, 180, 15, -15},
		SolarIrradiation:     []float64{1000},
		ConductorTemperature: []float64{100},
		HorizontalAngle:      []float64{0},
		Elevation:            []float64{0},
	}

	for _, s := range Standards {
		a, err := Evaluate(b, conductor.DrakeIEEE738(), s)
		require.NoError(t, err)

		assert.Less(t, a[2], a[3], s.String())
		assert.Less(t, a[4], a[3], s.String())
		assert.Equal(t, a[2], a[4], s.String())
		assert.Equal(t, a[7], a[8], s.String())
		assert.Equal(t, a[0], a[6], s.String())
		for _, i := range []int{1, 2, 3, 4, 5} {
			assert.Less(t, a[0], a[i], s.String())
		}
	}
}
