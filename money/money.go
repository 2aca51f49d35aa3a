package money

import (
	"math"
	"regexp"
	"strconv"
)

// roundingEpsilon compensa el error binario de literales como 1.005 antes de redondear.
const roundingEpsilon = 1e-6

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// SanitizeNumeric strips every character except digits, '.' and '-' and parses
// what is left. Empty or unparseable input yields 0; it never fails.
func SanitizeNumeric(raw string) float64 {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || !isFinite(value) {
		return 0
	}
	return value
}

// SanitizeInt is SanitizeNumeric truncated toward zero, for counts such as terms.
// Values outside the int32 range yield 0 so that int arithmetic on terms
// (years * 12) cannot overflow on 32-bit platforms.
func SanitizeInt(raw string) int {
	value := math.Trunc(SanitizeNumeric(raw))
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0
	}
	return int(value)
}

// RoundToCents rounds half away from zero to two decimals after adding
// roundingEpsilon to the magnitude, so RoundToCents(1.005) == 1.01.
func RoundToCents(value float64) float64 {
	if !isFinite(value) {
		return 0
	}

	rounded := math.Round((math.Abs(value)+roundingEpsilon)*100) / 100
	if rounded == 0 {
		return 0
	}
	return math.Copysign(rounded, value)
}

// ToCents converts a decimal amount to integer cents.
func ToCents(value float64) int64 {
	cents := math.Round(value * 100)
	// float64(math.MaxInt64) es 2^63, que ya no cabe en int64
	if !isFinite(cents) || cents >= math.MaxInt64 || cents <= math.MinInt64 {
		return 0
	}
	return int64(cents)
}

// FromCents converts integer cents back to a decimal amount for display.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// ParseCents runs raw form text through the full pipeline:
// sanitize, round to cents, convert to integer cents.
func ParseCents(raw string) int64 {
	return ToCents(RoundToCents(SanitizeNumeric(raw)))
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
