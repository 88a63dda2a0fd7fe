package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/himalayanmicrofin/hmfin/internal/api"
	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/spf13/cobra"
)

func assignmentsCmd() *cobra.Command {
	var (
		assignmentType string
		skip           int
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "List accounts assigned to you for collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if assignmentType != "Loan" && assignmentType != "Deposit" {
				return fmt.Errorf("invalid type %q: must be Loan or Deposit", assignmentType)
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			assignments, err := client.Assignments(ctx, assignmentType, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get assignments: %w", err)
			}
			if len(assignments) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No assignments."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				header.Render("Account"),
				header.Render("Member"),
				header.Render("Phone"),
				header.Render("Amount"),
				header.Render("Collected"),
				header.Render("Status"))

			for _, a := range assignments {
				code, err := assignmentCode(a.ID, a.Category)
				if err != nil {
					return err
				}
				name, phone := "", ""
				if a.User != nil {
					name = a.User.Name
					phone = format.Phone(a.User.Phone)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					code,
					name,
					phone,
					format.Currency(a.Amount),
					format.Currency(a.TotalPaid),
					a.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&assignmentType, "type", "Loan", "assignment type: Loan or Deposit")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of assignments to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum assignments to list")
	return cmd
}

// assignmentCode renders the display code for an assigned account.
func assignmentCode(id int64, category string) (string, error) {
	switch category {
	case "FD":
		return format.RecordID(id, format.CategoryFD)
	case "RD":
		return format.RecordID(id, format.CategoryRD)
	default:
		return format.RecordID(id, format.CategoryLoan)
	}
}

func collectCmd() *cobra.Command {
	var (
		amount  string
		fee     string
		payDate string
		remark  string
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "collect loan|deposit <id>",
		Short: "Record a collected installment",
		Long: `Record an installment collected in the field against an assigned loan
or deposit. The entry lands in the agent's pending report until the
office marks it settled.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind := args[0]
			if kind != "loan" && kind != "deposit" {
				return fmt.Errorf("invalid account type %q: must be loan or deposit", kind)
			}

			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			totalPaid, err := parseAmount(amount)
			if err != nil {
				return err
			}
			totalFee, err := parseAmount(fee)
			if err != nil {
				return err
			}
			if payDate == "" {
				payDate = time.Now().Format("2006-01-02")
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			emi := api.EMICollection{
				PayDate:      payDate,
				Remark:       remark,
				TotalPaid:    totalPaid,
				TotalFeePaid: totalFee,
			}

			if !yes {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx,
					fmt.Sprintf("Record %s collected against %s %d on %s?",
						format.Currency(totalPaid), kind, id, payDate))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatWarning("Collection not recorded."))
					return nil
				}
			}

			if kind == "loan" {
				err = client.CollectLoanEMI(ctx, id, emi)
			} else {
				err = client.CollectDepositEMI(ctx, id, emi)
			}
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Collection recorded."))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "installment amount collected")
	cmd.Flags().StringVar(&fee, "fee", "0", "late fee collected")
	cmd.Flags().StringVar(&payDate, "date", "", "collection date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&remark, "remark", "", "free-form note")
	cmd.Flags().BoolVar(&yes, "yes", false, "record without confirmation")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func correctCmd() *cobra.Command {
	var (
		amount  string
		fee     string
		payDate string
		remark  string
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "correct <repayment-id>",
		Short: "Correct a wrongly entered collection",
		Long: `Replace a wrongly entered collection. The server reverses the old
ledger entry and posts the corrected one; nothing is edited in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			totalPaid, err := parseAmount(amount)
			if err != nil {
				return err
			}
			totalFee, err := parseAmount(fee)
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			existing, err := client.Repayment(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get repayment: %w", err)
			}

			if payDate == "" {
				payDate = existing.PayDate.Format("2006-01-02")
			}

			fmt.Printf("Recorded:  %s paid, %s late fee, on %s\n",
				format.Currency(existing.TotalPaid),
				format.Currency(existing.LateFee),
				existing.PayDate.Format("2006-01-02"))
			fmt.Printf("Corrected: %s paid, %s late fee, on %s\n",
				format.Currency(totalPaid),
				format.Currency(totalFee),
				payDate)

			if !yes {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx, "Submit this correction?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatWarning("Correction not submitted."))
					return nil
				}
			}

			emi := api.EMICollection{
				PayDate:      payDate,
				Remark:       remark,
				TotalPaid:    totalPaid,
				TotalFeePaid: totalFee,
			}
			if err := client.CorrectRepayment(ctx, id, emi); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Correction submitted."))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "corrected installment amount")
	cmd.Flags().StringVar(&fee, "fee", "0", "corrected late fee")
	cmd.Flags().StringVar(&payDate, "date", "", "corrected collection date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&remark, "remark", "", "reason for the correction")
	cmd.Flags().BoolVar(&yes, "yes", false, "submit without confirmation")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
