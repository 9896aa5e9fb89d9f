package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDiv divide devolviendo 0 cuando el denominador es 0, NaN o
// infinito. Todas las razones del reporte usan esta convención.
func SafeDiv(num, den float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0
	}

	result := num / den
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}
