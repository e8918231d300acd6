package rating

import (
	"fmt"

	"github.com/tommz9/linerating/internal/conductor"
)

// Batch holds operating conditions as parallel slices. Every non-empty slice
// must have either the common length or length one; a length-one slice is
// repeated for every element. Empty optional slices take the values of
// DefaultConditions.
type Batch struct {
	AmbientTemperature []float64
	WindSpeed          []float64
	AngleOfAttack      []float64
	SolarIrradiation   []float64

	// Optional.
	ConductorTemperature []float64
	HorizontalAngle      []float64
	Elevation            []float64
}

type column struct {
	name     string
	values   []float64
	required bool
}

func (b Batch) columns() []column {
	return []column{
		{"ambient_temperature", b.AmbientTemperature, true},
		{"wind_speed", b.WindSpeed, true},
		{"angle_of_attack", b.AngleOfAttack, true},
		{"solar_irradiation", b.SolarIrradiation, true},
		{"conductor_temperature", b.ConductorTemperature, false},
		{"horizontal_angle", b.HorizontalAngle, false},
		{"elevation", b.Elevation, false},
	}
}

// Len returns the broadcast length of the batch, or ErrShapeMismatch when
// the slices cannot be broadcast together.
func (b Batch) Len() (int, error) {
	cols := b.columns()

	n := 0
	for _, col := range cols {
		if len(col.values) > n {
			n = len(col.values)
		}
	}
	if n == 0 {
		return 0, nil
	}

	for _, col := range cols {
		switch l := len(col.values); {
		case l == 0 && col.required:
			return 0, fmt.Errorf("%w: %s is empty, want length %d", ErrShapeMismatch, col.name, n)
		case l == 0, l == 1, l == n:
		default:
			return 0, fmt.Errorf("%w: %s has length %d, want 1 or %d", ErrShapeMismatch, col.name, l, n)
		}
	}
	return n, nil
}

func broadcast(values []float64, i int, fallback float64) float64 {
	switch len(values) {
	case 0:
		return fallback
	case 1:
		return values[0]
	default:
		return values[i]
	}
}

// At returns the i-th operating point. The batch must have been checked with Len.
func (b Batch) At(i int) Conditions {
	d := DefaultConditions()

	return Conditions{
		AmbientTemperature:   broadcast(b.AmbientTemperature, i, d.AmbientTemperature),
		WindSpeed:            broadcast(b.WindSpeed, i, d.WindSpeed),
		AngleOfAttack:        broadcast(b.AngleOfAttack, i, d.AngleOfAttack),
		SolarIrradiation:     broadcast(b.SolarIrradiation, i, d.SolarIrradiation),
		ConductorTemperature: broadcast(b.ConductorTemperature, i, d.ConductorTemperature),
		HorizontalAngle:      broadcast(b.HorizontalAngle, i, d.HorizontalAngle),
		Elevation:            broadcast(b.Elevation, i, d.Elevation),
	}
}

// Points expands the batch into one Conditions per element.
func (b Batch) Points() ([]Conditions, error) {
	n, err := b.Len()
	if err != nil {
		return nil, err
	}

	points := make([]Conditions, n)
	for i := range points {
		points[i] = b.At(i)
	}
	return points, nil
}

// Evaluate rates every element of the batch under standard s. Shapes and
// the standard are validated before any rating is computed.
func Evaluate(b Batch, c conductor.Conductor, s Standard) ([]float64, error) {
	r, err := For(s)
	if err != nil {
		return nil, err
	}

	points, err := b.Points()
	if err != nil {
		return nil, err
	}

	return RateAll(r, points, c), nil
}
