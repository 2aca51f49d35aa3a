package money

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	f := DefaultFormatter()

	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 107365, want: "$1,073.65"},
		{cents: 0, want: "$0.00"},
		{cents: 5, want: "$0.05"},
		{cents: 20000000, want: "$200,000.00"},
		{cents: -500, want: "-$5.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Format(tt.cents))
	}
}

func TestNewFormatter_Defaults(t *testing.T) {
	f, err := NewFormatter("", "")
	require.NoError(t, err)

	assert.Equal(t, "en-US", f.Locale())
	assert.Equal(t, "USD", f.Currency())
	assert.Equal(t, "$1,918.56", f.Format(191856))
}

func TestNewFormatter_Invalid(t *testing.T) {
	_, err := NewFormatter("en-US", "NOPE")
	assert.Error(t, err)

	_, err = NewFormatter("!!", "USD")
	assert.Error(t, err)
}

func TestFormatMoney_FallsBack(t *testing.T) {
	assert.Equal(t, "$2,100.00", FormatMoney(210000, "en-US", "USD"))
	assert.Equal(t, "$2,100.00", FormatMoney(210000, "", "bogus"))
}

func TestFormatter_Concurrent(t *testing.T) {
	f := DefaultFormatter()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "$1,234.56", f.Format(123456))
		}()
	}
	wg.Wait()
}
