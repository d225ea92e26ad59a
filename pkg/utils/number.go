package utils

import "math"

// RoundCents arredonda valores monetários para centavos. NaN, infinito e -0 viram 0.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		return 0
	}

	return rounded
}
