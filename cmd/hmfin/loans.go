package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/himalayanmicrofin/hmfin/internal/api"
	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/finance"
	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/himalayanmicrofin/hmfin/internal/model"
	"github.com/spf13/cobra"
)

func loansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "View and apply for loans",
	}

	cmd.AddCommand(listLoansCmd())
	cmd.AddCommand(showLoanCmd())
	cmd.AddCommand(applyLoanCmd())
	cmd.AddCommand(loanRepaymentsCmd())
	cmd.AddCommand(loanDueCmd())
	cmd.AddCommand(loanAgentsCmd())

	return cmd
}

func listLoansCmd() *cobra.Command {
	var (
		skip  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your loans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			loans, err := client.Loans(ctx, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get loans: %w", err)
			}
			if len(loans) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No loans yet. Use 'hmfin loans apply' to apply."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				header.Render("Code"),
				header.Render("Amount"),
				header.Render("EMI"),
				header.Render("Paid"),
				header.Render("Payable"),
				header.Render("Status"))

			for _, loan := range loans {
				code, err := format.RecordID(loan.ID, format.CategoryLoan)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					code,
					format.Currency(loan.Amount),
					format.Currency(loan.EMIAmount),
					format.Currency(loan.TotalPaid),
					format.Currency(loan.TotalPayable),
					loan.LoanStatus)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of loans to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum loans to list")
	return cmd
}

func printLoan(loan *model.Loan) error {
	code, err := format.RecordID(loan.ID, format.CategoryLoan)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Loan %s", code)))
	if loan.User != nil {
		fmt.Printf("Member:        %s (%s)\n", loan.User.Name, format.Phone(loan.User.Phone))
	}
	fmt.Printf("Status:        %s\n", loan.LoanStatus)
	fmt.Printf("Principal:     %s\n", cli.AmountStyle.Render(format.Currency(loan.Amount)))
	fmt.Printf("Rate:          %s%% %s\n", loan.InterestRate, loan.InterestFrequency)
	fmt.Printf("Installments:  %d\n", loan.Installments())
	fmt.Printf("EMI:           %s\n", cli.AmountStyle.Render(format.Currency(loan.EMIAmount)))
	fmt.Printf("Total payable: %s\n", format.Currency(loan.TotalPayable))
	fmt.Printf("Paid so far:   %s\n", format.Currency(loan.TotalPaid))
	return nil
}

func showLoanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			loan, err := client.LoanDetails(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get loan: %w", err)
			}
			return printLoan(loan)
		},
	}
}

func applyLoanCmd() *cobra.Command {
	var (
		planID                int64
		principal             string
		installments          int64
		referralID            string
		guarantorName         string
		guarantorPhone        string
		guarantorAddress      string
		guarantorRelationship string
		yes                   bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for a loan with an EMI preview",
		Long: `Apply for a loan against a plan. The EMI, interest, and total payable
shown before submission are estimates computed locally from the plan's
terms; the server computes the authoritative figures from the same raw
inputs once the application is approved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			principalAmount, err := parseAmount(principal)
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			plan, err := client.LoanPlanDetails(ctx, planID)
			if err != nil {
				return fmt.Errorf("failed to get plan: %w", err)
			}

			interestFreq, err := finance.ParseFrequency(plan.InterestFrequency)
			if err != nil {
				return fmt.Errorf("plan %d has an unusable interest frequency: %w", plan.ID, err)
			}
			emiFreq, err := finance.ParseFrequency(plan.AllowedEMIFrequency)
			if err != nil {
				return fmt.Errorf("plan %d has an unusable EMI frequency: %w", plan.ID, err)
			}

			schedule, err := finance.CalculateLoanSchedule(finance.LoanTerms{
				Principal:         principalAmount,
				AnnualRatePercent: plan.InterestRate,
				InstallmentCount:  installments,
				InterestFrequency: interestFreq,
				EMIFrequency:      emiFreq,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Loan preview — %s", plan.PlanName)))
			fmt.Printf("Principal:        %s\n", format.Currency(principalAmount))
			fmt.Printf("Rate:             %s%% %s, repaid %s\n", plan.InterestRate, plan.InterestFrequency, plan.AllowedEMIFrequency)
			fmt.Printf("Installments:     %d\n", installments)
			fmt.Printf("EMI amount:       %s\n", cli.AmountStyle.Render(format.Currency(schedule.EMIAmount)))
			fmt.Printf("Interest payable: %s\n", format.Currency(schedule.TotalInterest))
			fmt.Printf("Total payable:    %s\n", cli.AmountStyle.Render(format.Currency(schedule.TotalPayable)))
			fmt.Println(cli.SubtleStyle.Render("Estimates only; final figures are computed by the server."))

			if !yes {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx, "Submit this application?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatWarning("Application not submitted."))
					return nil
				}
			}

			loan, err := client.ApplyForLoan(ctx, api.LoanApplication{
				PlanID:                planID,
				ReferralID:            referralID,
				PrincipalAmount:       principalAmount,
				PreferedInstallments:  installments,
				GuarantorName:         guarantorName,
				GuarantorPhone:        guarantorPhone,
				GuarantorAddress:      guarantorAddress,
				GuarantorRelationship: guarantorRelationship,
			})
			if err != nil {
				return err
			}

			code, err := format.RecordID(loan.ID, format.CategoryLoan)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Application submitted as %s (%s)", code, loan.LoanStatus)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&planID, "plan", 0, "loan plan id")
	cmd.Flags().StringVar(&principal, "principal", "", "principal amount")
	cmd.Flags().Int64Var(&installments, "installments", 0, "preferred number of installments")
	cmd.Flags().StringVar(&referralID, "referral", "", "referral id (optional)")
	cmd.Flags().StringVar(&guarantorName, "guarantor-name", "", "guarantor full name")
	cmd.Flags().StringVar(&guarantorPhone, "guarantor-phone", "", "guarantor phone")
	cmd.Flags().StringVar(&guarantorAddress, "guarantor-address", "", "guarantor address")
	cmd.Flags().StringVar(&guarantorRelationship, "guarantor-relationship", "", "relationship to guarantor")
	cmd.Flags().BoolVar(&yes, "yes", false, "submit without confirmation")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("installments")
	_ = cmd.MarkFlagRequired("guarantor-name")
	_ = cmd.MarkFlagRequired("guarantor-phone")
	_ = cmd.MarkFlagRequired("guarantor-address")
	_ = cmd.MarkFlagRequired("guarantor-relationship")
	return cmd
}

func printRepayments(repayments []model.Repayment) {
	if len(repayments) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No repayments recorded."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	header := cli.TableHeaderStyle
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		header.Render("ID"),
		header.Render("Date"),
		header.Render("Amount"),
		header.Render("Late Fee"),
		header.Render("Status"),
		header.Render("Collector"))

	for _, r := range repayments {
		collector := r.CollectedBy
		if r.Collector != nil {
			collector = r.Collector.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.PayDate.Format("2006-01-02"),
			format.Currency(r.Amount),
			format.Currency(r.LateFee),
			r.Status,
			collector)
	}
}

func loanRepaymentsCmd() *cobra.Command {
	var (
		skip  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "repayments <id>",
		Short: "List repayments on a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			repayments, err := client.LoanRepayments(ctx, id, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get repayments: %w", err)
			}
			printRepayments(repayments)
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of repayments to skip")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum repayments to list")
	return cmd
}

func printAgents(agents []model.UserRef) {
	if len(agents) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No collection agents assigned."))
		return
	}
	for _, agent := range agents {
		fmt.Printf("%s (%s)\n", agent.Name, format.Phone(agent.Phone))
	}
}

func loanAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents <id>",
		Short: "List collection agents assigned to a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			agents, err := client.LoanAgents(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get agents: %w", err)
			}
			printAgents(agents)
			return nil
		},
	}
}

func printDue(due *model.DueInfo) {
	fmt.Printf("Due:             %s\n", cli.AmountStyle.Render(format.Currency(due.TotalDue)))
	fmt.Printf("Overdue:         %s\n", format.Currency(due.TotalOverdue))
	fmt.Printf("Partial remain:  %s\n", format.Currency(due.TotalPartialRemain))
	fmt.Printf("Late fee:        %s\n", format.Currency(due.TotalLateFee))
}

func loanDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due <id>",
		Short: "Show the current due on a loan",
		Long:  `Show the server-computed due for a loan. Figures are displayed verbatim, never recomputed locally.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			due, err := client.LoanDue(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get due: %w", err)
			}
			printDue(due)
			return nil
		},
	}
}
