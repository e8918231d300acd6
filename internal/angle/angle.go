// Package angle holds the angle-of-attack handling shared by the rating
// standards.
package angle

import "math"

// Fold maps an angle of attack in degrees onto [0°, 90°].
//
// Convective cooling is symmetric about 0° (parallel wind) and about 90°
// (perpendicular wind), so any real angle, including negative ones and
// values beyond 180°, folds as 90 − |((δ mod 180) − 90)| with a floored
// modulo.
func Fold(degrees float64) float64 {
	m := math.Mod(degrees, 180)
	if m < 0 {
		m += 180
	}
	return 90 - math.Abs(m-90)
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees / 180.0 * math.Pi
}
