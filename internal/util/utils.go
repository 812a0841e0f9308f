package util

import "math"

// Round2 rounds v to 2 decimal places. Derived metric values are rounded at
// this precision as part of the engine contract, so equality-based consumers
// see stable numbers.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
