package utils

import "math"

// Round2 rounds x to 2 decimal places (used for rates, never for money).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ToMinor converts a decimal major-unit amount to integer minor units,
// rounding half-up. Form inputs arrive as decimals; everything stored and
// computed is minor units.
func ToMinor(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinor converts integer minor units back to a decimal major-unit amount.
func FromMinor(minor int64) float64 {
	return float64(minor) / 100
}
