package cigre601

import (
	"math"

	"github.com/tommz9/linerating/internal/angle"
	"github.com/tommz9/linerating/internal/conductor"
)

// NusseltFunc returns the forced convection Nusselt number for a Reynolds
// number and an angle of attack in degrees (0° to 90°).
type NusseltFunc func(reynoldsNumber, angleOfAttack float64) float64

// coefficients is one regime of an empirical correlation: values below
// upper use y = a·x^m.
type coefficients struct {
	upper float64
	a     float64
	m     float64
}

// selectCoefficients returns the first regime whose upper bound exceeds x.
// Values past the last bound use the last regime.
func selectCoefficients(x float64, table []coefficients) (float64, float64) {
	for _, c := range table {
		if x < c.upper {
			return c.a, c.m
		}
	}
	last := table[len(table)-1]
	return last.a, last.m
}

// Reynolds regimes of the perpendicular flow Nusselt correlations (page 25).
var (
	smoothNusselt = []coefficients{
		{upper: 5000, a: 0.583, m: 0.471},
		{upper: 50000, a: 0.148, m: 0.633},
		{upper: 200000, a: 0.0208, m: 0.814},
	}

	strandedLowRoughnessNusselt = []coefficients{
		{upper: 2650, a: 0.641, m: 0.471},
		{upper: 50000, a: 0.178, m: 0.633},
		{upper: 200000, a: 0.0208, m: 0.814},
	}

	strandedHighRoughnessNusselt = []coefficients{
		{upper: 2650, a: 0.641, m: 0.471},
		{upper: 50000, a: 0.048, m: 0.800},
		{upper: 200000, a: 0.0208, m: 0.814},
	}
)

// WindDirectionCorrectionSmooth returns the wind direction factor for smooth
// conductors, (sin²δ + 0.0169·cos²δ)^0.225.
func WindDirectionCorrectionSmooth(angleOfAttack float64) float64 {
	s := math.Sin(angle.Radians(angleOfAttack))
	c := math.Cos(angle.Radians(angleOfAttack))

	return math.Pow(s*s+0.0169*c*c, 0.225)
}

// WindDirectionCorrectionStranded returns the wind direction factor for
// stranded conductors (eq. 21), which changes form at 24°.
func WindDirectionCorrectionStranded(angleOfAttack float64) float64 {
	s := math.Sin(angle.Radians(angleOfAttack))

	if angleOfAttack <= 24 {
		return 0.42 + 0.68*math.Pow(s, 1.08)
	}
	return 0.42 + 0.58*math.Pow(s, 0.90)
}

// NusseltSmooth is the correlation for smooth conductors.
func NusseltSmooth(reynoldsNumber, angleOfAttack float64) float64 {
	b, n := selectCoefficients(reynoldsNumber, smoothNusselt)
	return b * math.Pow(reynoldsNumber, n) * WindDirectionCorrectionSmooth(angleOfAttack)
}

// NusseltStrandedLowRoughness is the correlation for stranded conductors
// with surface roughness Rs ≤ 0.05.
func NusseltStrandedLowRoughness(reynoldsNumber, angleOfAttack float64) float64 {
	b, n := selectCoefficients(reynoldsNumber, strandedLowRoughnessNusselt)
	return b * math.Pow(reynoldsNumber, n) * WindDirectionCorrectionStranded(angleOfAttack)
}

// NusseltStrandedHighRoughness is the correlation for stranded conductors
// with surface roughness Rs > 0.05.
func NusseltStrandedHighRoughness(reynoldsNumber, angleOfAttack float64) float64 {
	b, n := selectCoefficients(reynoldsNumber, strandedHighRoughnessNusselt)
	return b * math.Pow(reynoldsNumber, n) * WindDirectionCorrectionStranded(angleOfAttack)
}

// NusseltFor returns the correlation for a surface class (pages 25 and 26).
// The roughness flag only matters for stranded conductors.
func NusseltFor(stranded, highRoughness bool) NusseltFunc {
	switch {
	case !stranded:
		return NusseltSmooth
	case highRoughness:
		return NusseltStrandedHighRoughness
	default:
		return NusseltStrandedLowRoughness
	}
}

// NusseltForConductor returns the correlation matching the surface of c.
func NusseltForConductor(c conductor.Conductor) NusseltFunc {
	return NusseltFor(c.Stranded, c.HighRoughness)
}
