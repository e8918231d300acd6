package cigre601

// FilmTemperature returns the mean of conductor and ambient temperature in °C.
func FilmTemperature(conductorTemperature, ambientTemperature float64) float64 {
	return 0.5 * (conductorTemperature + ambientTemperature)
}

// ThermalConductivityOfAir returns λf in W/(m·K) at film temperature tf
// (section 3.5, eq. 18).
func ThermalConductivityOfAir(tf float64) float64 {
	return 2.368e-2 + 7.23e-5*tf - 2.763e-8*tf*tf
}

// DynamicViscosity returns μf in Pa·s at film temperature tf (eq. 19).
func DynamicViscosity(tf float64) float64 {
	return (17.239 + 4.635e-2*tf - 2.03e-5*tf*tf) * 1e-6
}

// AirDensity returns γ in kg/m³ at film temperature tf and elevation in
// meters (eq. 20).
func AirDensity(tf, elevation float64) float64 {
	return (1.293 - 1.525e-4*elevation + 6.379e-9*elevation*elevation) /
		(1 + 0.00367*tf)
}

// KinematicViscosity returns νf = μf / γ in m²/s.
func KinematicViscosity(tf, elevation float64) float64 {
	return DynamicViscosity(tf) / AirDensity(tf, elevation)
}
