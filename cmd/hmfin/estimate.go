package main

import (
	"fmt"

	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/finance"
	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/spf13/cobra"
)

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Preview loan or deposit figures offline",
		Long: `Compute EMI and maturity estimates locally without contacting the
server. Useful in the field when walking a member through plan terms.`,
	}

	cmd.AddCommand(estimateLoanCmd())
	cmd.AddCommand(estimateDepositCmd())

	return cmd
}

func estimateLoanCmd() *cobra.Command {
	var (
		principal    string
		rate         string
		installments int64
		interestFreq string
		emiFreq      string
	)

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Estimate EMI, interest, and total payable for a loan",
		RunE: func(_ *cobra.Command, _ []string) error {
			principalAmount, err := parseAmount(principal)
			if err != nil {
				return err
			}
			annualRate, err := parseAmount(rate)
			if err != nil {
				return err
			}
			parsedInterestFreq, err := finance.ParseFrequency(interestFreq)
			if err != nil {
				return err
			}
			parsedEMIFreq, err := finance.ParseFrequency(emiFreq)
			if err != nil {
				return err
			}

			schedule, err := finance.CalculateLoanSchedule(finance.LoanTerms{
				Principal:         principalAmount,
				AnnualRatePercent: annualRate,
				InstallmentCount:  installments,
				InterestFrequency: parsedInterestFreq,
				EMIFrequency:      parsedEMIFreq,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Loan estimate"))
			fmt.Printf("EMI amount:       %s\n", cli.AmountStyle.Render(format.Currency(schedule.EMIAmount)))
			fmt.Printf("Interest payable: %s\n", format.Currency(schedule.TotalInterest))
			fmt.Printf("Total payable:    %s\n", cli.AmountStyle.Render(format.Currency(schedule.TotalPayable)))
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "principal amount")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate percent (e.g. 12.5)")
	cmd.Flags().Int64Var(&installments, "installments", 0, "number of installments")
	cmd.Flags().StringVar(&interestFreq, "interest-frequency", "Yearly", "interest frequency (Daily, Weekly, Monthly, Quarterly, HalfYearly, Yearly)")
	cmd.Flags().StringVar(&emiFreq, "emi-frequency", "Monthly", "EMI frequency")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("installments")
	return cmd
}

func estimateDepositCmd() *cobra.Command {
	var (
		paid   string
		rate   string
		tenure int64
	)

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Estimate the maturity return of a deposit",
		RunE: func(_ *cobra.Command, _ []string) error {
			totalPaid, err := parseAmount(paid)
			if err != nil {
				return err
			}
			annualRate, err := parseAmount(rate)
			if err != nil {
				return err
			}

			projection, err := finance.CalculateDepositReturn(finance.DepositTerms{
				TotalPaid:         totalPaid,
				AnnualRatePercent: annualRate,
				TenureMonths:      tenure,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Deposit estimate"))
			fmt.Printf("Paid in:          %s\n", format.Currency(totalPaid))
			fmt.Printf("Projected return: %s\n", cli.AmountStyle.Render(format.Currency(projection.TotalReturn)))
			return nil
		},
	}

	cmd.Flags().StringVar(&paid, "paid", "", "total amount paid in")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate percent")
	cmd.Flags().Int64Var(&tenure, "tenure", 0, "tenure in months")
	_ = cmd.MarkFlagRequired("paid")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("tenure")
	return cmd
}
