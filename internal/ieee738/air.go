package ieee738

import "math"

// DynamicViscosity returns μf in Pa·s (section 4.5.1, eq. 13a).
func DynamicViscosity(ambientTemperature, conductorTemperature float64) float64 {
	tf := filmTemperature(ambientTemperature, conductorTemperature)

	return 1.458e-6 * math.Pow(tf+CelsiusToKelvin, 1.5) / (tf + 383.4)
}

// AirDensity returns ρf in kg/m³ at the given elevation in meters
// (section 4.5.2, eq. 14a).
func AirDensity(ambientTemperature, conductorTemperature, elevation float64) float64 {
	tf := filmTemperature(ambientTemperature, conductorTemperature)

	return (1.293 - 1.525e-4*elevation + 6.379e-9*elevation*elevation) /
		(1 + 0.00367*tf)
}

// ThermalConductivityOfAir returns kf in W/(m·K) (section 4.5.3, eq. 15a).
func ThermalConductivityOfAir(ambientTemperature, conductorTemperature float64) float64 {
	tf := filmTemperature(ambientTemperature, conductorTemperature)

	return 2.424e-2 + 7.477e-5*tf - 4.407e-9*tf*tf
}
