package utils

import "math"

// RoundWithOneDecimalPlace rounds to one decimal, the precision used for all
// percentage deltas on the dashboard.
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// RoundWithTwoDecimalPlace rounds to two decimals, used for rates such as
// target achievement.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
