package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mortgage-calc/domain"
	"mortgage-calc/service"
)

func amortizeCmd() *cobra.Command {
	var form domain.AmortizationForm
	var principal, term, rate, start string

	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Print a level-payment amortization schedule",
		Example: "  mortgage-calc amortize --principal 200000 --term 30 --rate 5 --start 2024-01-01\n" +
			"  mortgage-calc amortize --principal 200000 --term 30 --rate 5 --yearly",
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" {
				start = time.Now().Format("2006-01") + "-01"
			}
			form.Principal = domain.FormValue(principal)
			form.TermYears = domain.FormValue(term)
			form.AnnualRate = domain.FormValue(rate)
			form.FirstPaymentDate = domain.FormValue(start)

			result, input, err := service.NewAmortizationService(nil).Calculate(cmd.Context(), form)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderLoanSummary(formatter, input, result))
			fmt.Fprintln(out, renderSchedule(formatter, result.Schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "loan principal, e.g. 200000 or $200,000.00")
	cmd.Flags().StringVar(&term, "term", "", "term in years")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent")
	cmd.Flags().StringVar(&start, "start", "", "first payment date (default: first of this month)")
	cmd.Flags().BoolVar(&form.GroupByYear, "yearly", false, "group rows by calendar year")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("term")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func mortgageCmd() *cobra.Command {
	var price, down, rate, term string

	cmd := &cobra.Command{
		Use:     "mortgage",
		Short:   "Estimate the monthly payment of a home purchase",
		Example: "  mortgage-calc mortgage --price 400000 --down 80000 --rate 6 --term 30",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.NewMortgageService(nil).Calculate(cmd.Context(), domain.MortgageForm{
				HomePrice:   domain.FormValue(price),
				DownPayment: domain.FormValue(down),
				AnnualRate:  domain.FormValue(rate),
				TermYears:   domain.FormValue(term),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderMortgage(formatter, result))
			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "home price")
	cmd.Flags().StringVar(&down, "down", "0", "down payment")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent")
	cmd.Flags().StringVar(&term, "term", "30", "term in years")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func deedStampsCmd() *cobra.Command {
	var price, loan, jurisdiction, propertyType string

	cmd := &cobra.Command{
		Use:     "deed-stamps",
		Short:   "Compute Florida documentary stamp and intangible taxes",
		Example: "  mortgage-calc deed-stamps --price 300000 --loan 250000 --jurisdiction miami-dade --property-type condo",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, input, err := service.NewDeedStampService(nil).Calculate(cmd.Context(), domain.DeedStampForm{
				SalesPrice:   domain.FormValue(price),
				LoanAmount:   domain.FormValue(loan),
				Jurisdiction: domain.FormValue(jurisdiction),
				PropertyType: domain.FormValue(propertyType),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderDeedStamps(formatter, input, result))
			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "sales price")
	cmd.Flags().StringVar(&loan, "loan", "0", "mortgage loan amount")
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", string(domain.OtherJurisdiction), "miami-dade or other")
	cmd.Flags().StringVar(&propertyType, "property-type", string(domain.SingleFamily), "single-family or other")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
