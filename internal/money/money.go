package money

import "math"

// Round2 rounds a monetary amount half-up to 2 decimal places.
// All amounts in the system are decimal UAH, which is what both the
// carrier pricing API and the payment provider exchange.
func Round2(value float64) float64 {
	if value >= 0 {
		return math.Floor(value*100+0.5) / 100
	}
	return -math.Floor(-value*100+0.5) / 100
}
