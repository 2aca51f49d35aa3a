package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-calc/domain"
	"mortgage-calc/money"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestAmortizeCommand(t *testing.T) {
	out, err := run(t, "amortize", "--principal", "200000", "--term", "30", "--rate", "5", "--start", "2024-01-01")
	require.NoError(t, err)

	assert.Contains(t, out, "$1,073.65")
	assert.Contains(t, out, "Jan 2024")
	assert.Contains(t, out, "Dec 2053")
	assert.Contains(t, out, "$186,509.06")
}

func TestAmortizeCommand_Yearly(t *testing.T) {
	out, err := run(t, "amortize", "--principal", "200000", "--term", "30", "--rate", "5", "--start", "2024-01-01", "--yearly")
	require.NoError(t, err)

	assert.Contains(t, out, "2024")
	assert.Contains(t, out, "$197,049.20")
	assert.NotContains(t, out, "Jan 2024")
}

func TestAmortizeCommand_NoSchedule(t *testing.T) {
	_, err := run(t, "amortize", "--principal", "200000", "--term", "0", "--rate", "5")
	assert.Error(t, err)
}

func TestAmortizeCommand_MissingFlag(t *testing.T) {
	_, err := run(t, "amortize", "--principal", "200000")
	assert.Error(t, err)
}

func TestMortgageCommand(t *testing.T) {
	out, err := run(t, "mortgage", "--price", "400,000", "--down", "80000", "--rate", "6", "--term", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "$320,000.00")
	assert.Contains(t, out, "$1,918.56")
	assert.Contains(t, out, "360")
}

func TestDeedStampsCommand(t *testing.T) {
	out, err := run(t, "deed-stamps", "--price", "300000", "--loan", "250000",
		"--jurisdiction", "miami-dade", "--property-type", "condo")
	require.NoError(t, err)

	assert.Contains(t, out, "miami-dade, other")
	assert.Contains(t, out, "$1,800.00")
	assert.Contains(t, out, "$1,350.00")
	assert.NotContains(t, out, "not owed")
}

func TestRenderDeedStamps_SurtaxNotOwed(t *testing.T) {
	out := renderDeedStamps(money.DefaultFormatter(), domain.DeedStampInput{
		Jurisdiction: domain.OtherJurisdiction,
		PropertyType: domain.SingleFamily,
	}, domain.TaxResult{Surtax: 135000})

	assert.Contains(t, out, "$1,350.00 (not owed)")
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "5%", formatRate(0.05))
	assert.Equal(t, "6.125%", formatRate(0.06125))
	assert.Equal(t, "0%", formatRate(0))
}
