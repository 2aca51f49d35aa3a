package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// Formatter renders cents as a localized currency string. It is immutable and
// safe for concurrent use; a printer is built per call.
type Formatter struct {
	tag  language.Tag
	unit currency.Unit
}

// NewFormatter parses a BCP 47 locale and an ISO-4217 code. Empty values fall
// back to en-US / USD.
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", currencyCode, err)
	}

	return &Formatter{tag: tag, unit: unit}, nil
}

// DefaultFormatter returns the en-US / USD formatter.
func DefaultFormatter() *Formatter {
	return &Formatter{tag: language.AmericanEnglish, unit: currency.USD}
}

// Format renders cents with grouping separators, the currency symbol and two
// fraction digits, e.g. 107365 -> "$1,073.65".
func (f *Formatter) Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	p := message.NewPrinter(f.tag)
	symbol := p.Sprint(currency.Symbol(f.unit.Amount(nil)))
	amount := p.Sprint(number.Decimal(FromCents(cents), number.Scale(2)))

	return sign + symbol + amount
}

func (f *Formatter) Locale() string {
	return f.tag.String()
}

func (f *Formatter) Currency() string {
	return f.unit.String()
}

// FormatMoney formats cents with the given locale and currency, falling back
// to en-US / USD when either cannot be parsed.
func FormatMoney(cents int64, locale, currencyCode string) string {
	f, err := NewFormatter(locale, currencyCode)
	if err != nil {
		f = DefaultFormatter()
	}
	return f.Format(cents)
}
