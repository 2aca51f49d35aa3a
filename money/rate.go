package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// RateScale is the number of FixedRate units in a rate of 1.0 (100%).
// One unit is a millionth of a percentage point.
const RateScale int64 = 100_000_000

// FixedRate is an interest rate in fixed point so schedule arithmetic stays
// in integers.
type FixedRate int64

// RateFromFraction converts a fractional rate (0.05 = 5%) to fixed point.
func RateFromFraction(fraction float64) FixedRate {
	scaled := math.Round(fraction * float64(RateScale))
	if !isFinite(scaled) || scaled >= math.MaxInt64 || scaled <= math.MinInt64 {
		return 0
	}
	return FixedRate(scaled)
}

// ParseRate reads a percentage as typed in a form ("5.25", "5.25%") and
// returns it as a fraction.
func ParseRate(raw string) float64 {
	return SanitizeNumeric(raw) / 100
}

// Monthly divides an annual rate by twelve, rounding half up.
func (r FixedRate) Monthly() FixedRate {
	if r < 0 {
		return -FixedRate((int64(-r) + 6) / 12)
	}
	return FixedRate((int64(r) + 6) / 12)
}

// Decimal returns the rate as an exact decimal fraction.
func (r FixedRate) Decimal() decimal.Decimal {
	return decimal.New(int64(r), -8)
}

func (r FixedRate) Fraction() float64 {
	return float64(r) / float64(RateScale)
}
