package rating

import (
	"math"

	"github.com/tommz9/linerating/internal/conductor"
)

// ThermalRating returns the rating in amperes of c at cond under standard s.
// An unsupported standard fails before any computation.
func ThermalRating(cond Conditions, c conductor.Conductor, s Standard) (float64, error) {
	r, err := For(s)
	if err != nil {
		return 0, err
	}
	return r.Rate(cond, c), nil
}

// ThermalRatingKey is ThermalRating with the standard given by its
// configuration key ("cigre" or "ieee").
func ThermalRatingKey(cond Conditions, c conductor.Conductor, key string) (float64, error) {
	r, err := ForKey(key)
	if err != nil {
		return 0, err
	}
	return r.Rate(cond, c), nil
}

// RateAll rates every operating point with r.
func RateAll(r Rater, points []Conditions, c conductor.Conductor) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = r.Rate(p, c)
	}
	return out
}

// Comparison holds the ratings of both standards for one operating point.
type Comparison struct {
	CIGRE601 float64 `json:"cigre601"`
	IEEE738  float64 `json:"ieee738"`

	// RelativeDifference is |IEEE738 − CIGRE601| / CIGRE601.
	RelativeDifference float64 `json:"relative_difference"`
}

// Compare rates cond with both standards.
func Compare(cond Conditions, c conductor.Conductor) Comparison {
	cigre := cigreRater{}.Rate(cond, c)
	ieee := ieeeRater{}.Rate(cond, c)

	return Comparison{
		CIGRE601:           cigre,
		IEEE738:            ieee,
		RelativeDifference: math.Abs(ieee-cigre) / cigre,
	}
}

// Within reports whether both ratings agree within the relative tolerance.
// Comparisons involving NaN never agree.
func (c Comparison) Within(tolerance float64) bool {
	return c.RelativeDifference <= tolerance
}
