package entity

import "math"

// RoundAmount rounds a major-unit amount to two decimal places, the precision
// used both for display and for the persisted total_price.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinorUnits converts a major-unit amount to the integer minor units required
// by the payment processor (kobo, cents), rounding to the nearest unit.
func MinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}
