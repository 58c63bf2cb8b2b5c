package utils

import "math"

// ClampFloat64 clamps a float64 value between min and max
func ClampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Normalize01 maps value from [min, max] onto [0, 1].
// A degenerate interval maps to 0.
func Normalize01(value, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return ClampFloat64((value-min)/(max-min), 0, 1)
}

// Round rounds a float64 to the specified number of decimal places
func Round(value float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(value*multiplier) / multiplier
}
