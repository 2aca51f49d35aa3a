package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNumeric(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "currency text", raw: "$1,234.56", want: 1234.56},
		{name: "empty", raw: "", want: 0},
		{name: "letters only", raw: "abc", want: 0},
		{name: "negative", raw: "-42.5", want: -42.5},
		{name: "percent sign", raw: "5.25%", want: 5.25},
		{name: "spaces and symbols", raw: " USD 1 200.50 ", want: 1200.50},
		{name: "lone minus", raw: "-", want: 0},
		{name: "two dots", raw: "1.2.3", want: 0},
		{name: "infinity text", raw: "Infinity", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeNumeric(tt.raw))
		})
	}
}

func TestSanitizeInt(t *testing.T) {
	assert.Equal(t, 30, SanitizeInt("30 years"))
	assert.Equal(t, 15, SanitizeInt("15.9"))
	assert.Equal(t, -5, SanitizeInt("-5"))
	assert.Equal(t, 0, SanitizeInt("n/a"))
	assert.Equal(t, 0, SanitizeInt("99999999999999"))
}

func TestRoundToCents(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{value: 1.005, want: 1.01},
		{value: 2.675, want: 2.68},
		{value: 1234.56, want: 1234.56},
		{value: 0.004, want: 0},
		{value: -1.005, want: -1.01},
		{value: 10, want: 10},
		{value: math.NaN(), want: 0},
		{value: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundToCents(tt.value), "RoundToCents(%v)", tt.value)
	}
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(123456), ToCents(1234.56))
	assert.Equal(t, int64(-150), ToCents(-1.5))
	assert.Equal(t, int64(0), ToCents(math.NaN()))
	assert.Equal(t, int64(0), ToCents(math.Exp2(63)/100), "2^63 cents does not fit in int64")
	assert.Equal(t, int64(0), ToCents(-math.Exp2(63)/100))
	assert.Equal(t, int64(0), ToCents(1e300))
	assert.Equal(t, 1234.56, FromCents(123456))
}

func TestParseCents(t *testing.T) {
	assert.Equal(t, int64(120050), ParseCents("$1,200.50"))
	assert.Equal(t, int64(0), ParseCents(""))
	assert.Equal(t, int64(101), ParseCents("1.005"))
	assert.Equal(t, int64(20000000), ParseCents("200,000"))
	assert.Equal(t, int64(0), ParseCents("$92,233,720,368,547,758.08"))
	assert.Equal(t, int64(0), ParseCents("-92233720368547758.08"))
}
