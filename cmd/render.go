package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"mortgage-calc/domain"
	"mortgage-calc/money"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return amountStyle
			}
		})
}

func renderLoanSummary(f *money.Formatter, input domain.LoanInput, result *domain.AmortizationResult) string {
	t := newTable("", "").
		Row("Principal", f.Format(input.Principal)).
		Row("Term", strconv.Itoa(input.TermYears)+" years").
		Row("Annual rate", formatRate(input.AnnualRate)).
		Row("Monthly payment", f.Format(result.MonthlyPayment)).
		Row("Yearly payment", f.Format(result.TotalYearlyPayment)).
		Row("Total payments", f.Format(result.TotalLifetimePayments)).
		Row("Total interest", f.Format(result.TotalLifetimeInterest))

	return titleStyle.Render("Loan summary") + "\n" + t.String()
}

func renderSchedule(f *money.Formatter, schedule []domain.ScheduleEntry) string {
	t := newTable("#", "Period", "Payment", "Interest", "Principal", "Balance")
	for _, e := range schedule {
		t.Row(
			strconv.Itoa(e.PaymentNumber),
			e.Label,
			f.Format(e.PaymentAmount),
			f.Format(e.InterestPortion),
			f.Format(e.PrincipalPortion),
			f.Format(e.RemainingBalance),
		)
	}
	return t.String()
}

func renderMortgage(f *money.Formatter, result domain.MortgageResult) string {
	t := newTable("", "").
		Row("Financed amount", f.Format(result.FinancedAmount)).
		Row("Payments", strconv.Itoa(result.NumPayments)).
		Row("Monthly payment", f.Format(result.MonthlyPayment)).
		Row("Total payments", f.Format(result.TotalPayments)).
		Row("Total interest", f.Format(result.TotalInterest))

	return titleStyle.Render("Mortgage") + "\n" + t.String()
}

func renderDeedStamps(f *money.Formatter, input domain.DeedStampInput, result domain.TaxResult) string {
	surtax := f.Format(result.Surtax)
	if !result.SurtaxApplies {
		surtax += " (not owed)"
	}

	t := newTable("Tax", "Amount").
		Row("Transfer tax (deed stamps)", f.Format(result.TransferTax)).
		Row("Discretionary surtax", surtax).
		Row("Mortgage doc stamps", f.Format(result.MortgageDocStamps)).
		Row("Intangible tax", f.Format(result.IntangibleTax)).
		Row("Total", f.Format(result.Total))

	title := fmt.Sprintf("Florida closing taxes: %s, %s", input.Jurisdiction, input.PropertyType)
	return titleStyle.Render(title) + "\n" + t.String()
}

// formatRate prints a fractional rate as a percentage without trailing zeros.
func formatRate(fraction float64) string {
	s := strconv.FormatFloat(fraction*100, 'f', 6, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "%"
}
