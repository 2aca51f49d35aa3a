package domain

import (
	"bytes"
	"encoding/json"
)

// FormValue is raw text from a calculator form field. JSON numbers are
// accepted too and kept as their literal text.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

func (v FormValue) String() string {
	return string(v)
}

type AmortizationForm struct {
	Principal        FormValue `json:"principal" validate:"required"`
	TermYears        FormValue `json:"termYears" validate:"required"`
	AnnualRate       FormValue `json:"annualRate" validate:"required"`
	FirstPaymentDate FormValue `json:"firstPaymentDate" validate:"required"`
	GroupByYear      bool      `json:"groupByYear"`
}

type MortgageForm struct {
	HomePrice   FormValue `json:"homePrice" validate:"required"`
	DownPayment FormValue `json:"downPayment" validate:"required"`
	AnnualRate  FormValue `json:"annualRate" validate:"required"`
	TermYears   FormValue `json:"termYears" validate:"required"`
}

type DeedStampForm struct {
	SalesPrice   FormValue `json:"salesPrice" validate:"required"`
	LoanAmount   FormValue `json:"loanAmount" validate:"required"`
	Jurisdiction FormValue `json:"jurisdiction" validate:"required"`
	PropertyType FormValue `json:"propertyType"`
}

// ScenarioForm compares every combination of TermYears and AnnualRates for
// the same price and down payment.
type ScenarioForm struct {
	HomePrice   FormValue   `json:"homePrice" validate:"required"`
	DownPayment FormValue   `json:"downPayment" validate:"required"`
	TermYears   []FormValue `json:"termYears" validate:"required,min=1,dive,required"`
	AnnualRates []FormValue `json:"annualRates" validate:"required,min=1,dive,required"`
}
