package utils

import "math"

// RoundDecimal rounds a float64 value to the specified number of decimal places,
// halves away from zero. For example, RoundDecimal(3.14159, 2) returns 3.14.
// NaN and infinities are returned unchanged.
func RoundDecimal(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	pow := math.Pow10(decimals)
	return math.Round(value*pow) / pow
}
