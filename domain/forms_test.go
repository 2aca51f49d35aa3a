package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValue_UnmarshalJSON(t *testing.T) {
	var form MortgageForm
	body := `{"homePrice": "$400,000", "downPayment": 80000, "annualRate": 6.5, "termYears": null}`

	require.NoError(t, json.Unmarshal([]byte(body), &form))

	assert.Equal(t, FormValue("$400,000"), form.HomePrice)
	assert.Equal(t, FormValue("80000"), form.DownPayment)
	assert.Equal(t, FormValue("6.5"), form.AnnualRate)
	assert.Equal(t, FormValue(""), form.TermYears)
}

func TestFormValue_RejectsObjects(t *testing.T) {
	var form MortgageForm
	err := json.Unmarshal([]byte(`{"homePrice": {"value": 1}}`), &form)
	assert.Error(t, err)
}

func TestParseJurisdiction(t *testing.T) {
	assert.Equal(t, MiamiDade, ParseJurisdiction(" Miami-Dade "))
	assert.Equal(t, MiamiDade, ParseJurisdiction("miami dade"))
	assert.Equal(t, OtherJurisdiction, ParseJurisdiction("broward"))
	assert.Equal(t, OtherJurisdiction, ParseJurisdiction(""))
}

func TestParsePropertyType(t *testing.T) {
	assert.Equal(t, SingleFamily, ParsePropertyType(""))
	assert.Equal(t, SingleFamily, ParsePropertyType("single-family"))
	assert.Equal(t, OtherProperty, ParsePropertyType("Condo"))
}
