package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateFromFraction(t *testing.T) {
	assert.Equal(t, FixedRate(5_000_000), RateFromFraction(0.05))
	assert.Equal(t, FixedRate(6_125_000), RateFromFraction(0.06125))
	assert.Equal(t, FixedRate(0), RateFromFraction(0))
	assert.Equal(t, FixedRate(0), RateFromFraction(math.Exp2(63)/1e8))
}

func TestFixedRateMonthly(t *testing.T) {
	// 5% / 12 = 416666.67 unidades
	assert.Equal(t, FixedRate(416_667), FixedRate(5_000_000).Monthly())
	assert.Equal(t, FixedRate(1_000_000), FixedRate(12_000_000).Monthly())
	assert.Equal(t, FixedRate(0), FixedRate(0).Monthly())
	assert.Equal(t, FixedRate(-416_667), FixedRate(-5_000_000).Monthly())
}

func TestFixedRateDecimal(t *testing.T) {
	assert.Equal(t, "0.00416667", FixedRate(416_667).Decimal().String())
	assert.InDelta(t, 0.05, FixedRate(5_000_000).Fraction(), 1e-12)
}

func TestParseRate(t *testing.T) {
	assert.InDelta(t, 0.0525, ParseRate("5.25%"), 1e-12)
	assert.Equal(t, 0.0, ParseRate("abc"))
}
