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

func depositsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposits",
		Short: "View and apply for FD/RD deposits",
	}

	cmd.AddCommand(listDepositsCmd())
	cmd.AddCommand(showDepositCmd())
	cmd.AddCommand(applyDepositCmd())
	cmd.AddCommand(depositRepaymentsCmd())
	cmd.AddCommand(depositDueCmd())
	cmd.AddCommand(depositAgentsCmd())
	cmd.AddCommand(updateDepositCmd())

	return cmd
}

func depositCategory(category string) (format.IDCategory, error) {
	switch category {
	case "FD":
		return format.CategoryFD, nil
	case "RD":
		return format.CategoryRD, nil
	default:
		return "", fmt.Errorf("invalid category %q: must be FD or RD", category)
	}
}

func listDepositsCmd() *cobra.Command {
	var (
		category string
		skip     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your deposits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			idCategory, err := depositCategory(category)
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			deposits, err := client.Deposits(ctx, category, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get deposits: %w", err)
			}
			if len(deposits) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No deposits yet. Use 'hmfin deposits apply' to open one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				header.Render("Code"),
				header.Render("Amount"),
				header.Render("Paid"),
				header.Render("Rate"),
				header.Render("Status"))

			for _, dep := range deposits {
				code, err := format.RecordID(dep.ID, idCategory)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\n",
					code,
					format.Currency(dep.Amount),
					format.Currency(dep.TotalPaid),
					dep.InterestRate,
					dep.DepositStatus)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "FD", "deposit category (FD or RD)")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of deposits to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum deposits to list")
	return cmd
}

func printDeposit(dep *model.Deposit) error {
	idCategory, err := depositCategory(dep.Category)
	if err != nil {
		// Unknown categories still render, just without a code.
		idCategory = ""
	}

	title := fmt.Sprintf("%s Deposit", dep.Category)
	if idCategory != "" {
		code, err := format.RecordID(dep.ID, idCategory)
		if err != nil {
			return err
		}
		title = fmt.Sprintf("%s Deposit %s", dep.Category, code)
	}

	fmt.Println(cli.FormatTitle(title))
	if dep.User != nil {
		fmt.Printf("Member:          %s (%s)\n", dep.User.Name, format.Phone(dep.User.Phone))
	}
	fmt.Printf("Status:          %s\n", dep.DepositStatus)
	fmt.Printf("Amount:          %s\n", format.Currency(dep.Amount))
	fmt.Printf("Paid so far:     %s\n", cli.AmountStyle.Render(format.Currency(dep.TotalPaid)))
	fmt.Printf("Rate:            %s%% (interest %s)\n", dep.InterestRate, dep.InterestCreditFrequency)
	fmt.Printf("Tenure:          %d months\n", dep.PreferedTenure)
	if dep.MaturityDate != nil {
		fmt.Printf("Maturity date:   %s\n", dep.MaturityDate.Format("2006-01-02"))
	}

	// Projected return is a client-side estimate over what has been
	// paid so far; server accrual remains authoritative.
	projection, err := finance.CalculateDepositReturn(finance.DepositTerms{
		TotalPaid:         dep.TotalPaid,
		AnnualRatePercent: dep.InterestRate,
		TenureMonths:      dep.PreferedTenure,
	})
	if err == nil {
		fmt.Printf("Projected value: %s %s\n",
			cli.AmountStyle.Render(format.Currency(projection.TotalReturn)),
			cli.SubtleStyle.Render("(estimate)"))
	}
	return nil
}

func showDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one deposit with its projected return",
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

			dep, err := client.DepositDetails(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get deposit: %w", err)
			}
			return printDeposit(dep)
		},
	}
}

func applyDepositCmd() *cobra.Command {
	var (
		planID              int64
		amount              string
		tenure              int64
		referralID          string
		nomineeName         string
		nomineePhone        string
		nomineeAddress      string
		nomineeRelationship string
		yes                 bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for a deposit with a maturity preview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			depositAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			plan, err := client.DepositPlanDetails(ctx, planID)
			if err != nil {
				return fmt.Errorf("failed to get plan: %w", err)
			}

			// Preview assumes the full amount paid in; for an RD the
			// paid total grows over time and the figure shown is the
			// value if fully paid up.
			projection, err := finance.CalculateDepositReturn(finance.DepositTerms{
				TotalPaid:         depositAmount,
				AnnualRatePercent: plan.InterestRate,
				TenureMonths:      tenure,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Deposit preview — %s", plan.PlanName)))
			fmt.Printf("Amount:           %s\n", format.Currency(depositAmount))
			fmt.Printf("Rate:             %s%% (interest %s)\n", plan.InterestRate, plan.InterestCreditFrequency)
			fmt.Printf("Tenure:           %d months\n", tenure)
			fmt.Printf("Projected return: %s\n", cli.AmountStyle.Render(format.Currency(projection.TotalReturn)))
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

			dep, err := client.ApplyForDeposit(ctx, api.DepositApplication{
				PlanID:         planID,
				ReferralID:     referralID,
				Amount:         depositAmount,
				PreferedTenure: tenure,
				Nominee: api.Nominee{
					Name:         nomineeName,
					Phone:        nomineePhone,
					Address:      nomineeAddress,
					Relationship: nomineeRelationship,
				},
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Application submitted (%s, id %d)", dep.DepositStatus, dep.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&planID, "plan", 0, "deposit plan id")
	cmd.Flags().StringVar(&amount, "amount", "", "deposit amount")
	cmd.Flags().Int64Var(&tenure, "tenure", 0, "preferred tenure in months")
	cmd.Flags().StringVar(&referralID, "referral", "", "referral id (optional)")
	cmd.Flags().StringVar(&nomineeName, "nominee-name", "", "nominee full name")
	cmd.Flags().StringVar(&nomineePhone, "nominee-phone", "", "nominee phone")
	cmd.Flags().StringVar(&nomineeAddress, "nominee-address", "", "nominee address")
	cmd.Flags().StringVar(&nomineeRelationship, "nominee-relationship", "", "relationship to nominee")
	cmd.Flags().BoolVar(&yes, "yes", false, "submit without confirmation")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("tenure")
	_ = cmd.MarkFlagRequired("nominee-name")
	_ = cmd.MarkFlagRequired("nominee-phone")
	_ = cmd.MarkFlagRequired("nominee-address")
	_ = cmd.MarkFlagRequired("nominee-relationship")
	return cmd
}

func depositRepaymentsCmd() *cobra.Command {
	var (
		skip  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "repayments <id>",
		Short: "List installments paid into a deposit",
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

			repayments, err := client.DepositRepayments(ctx, id, skip, limit)
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

func depositAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents <id>",
		Short: "List collection agents assigned to a deposit",
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

			agents, err := client.DepositAgents(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get agents: %w", err)
			}
			printAgents(agents)
			return nil
		},
	}
}

func updateDepositCmd() *cobra.Command {
	var (
		nomineeName         string
		nomineePhone        string
		nomineeAddress      string
		nomineeRelationship string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the nominee on a deposit",
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

			err = client.UpdateDeposit(ctx, id, api.Nominee{
				Name:         nomineeName,
				Phone:        nomineePhone,
				Address:      nomineeAddress,
				Relationship: nomineeRelationship,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Nominee updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&nomineeName, "nominee-name", "", "nominee full name")
	cmd.Flags().StringVar(&nomineePhone, "nominee-phone", "", "nominee phone")
	cmd.Flags().StringVar(&nomineeAddress, "nominee-address", "", "nominee address")
	cmd.Flags().StringVar(&nomineeRelationship, "nominee-relationship", "", "relationship to nominee")
	_ = cmd.MarkFlagRequired("nominee-name")
	_ = cmd.MarkFlagRequired("nominee-phone")
	_ = cmd.MarkFlagRequired("nominee-address")
	_ = cmd.MarkFlagRequired("nominee-relationship")
	return cmd
}

func depositDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due <id>",
		Short: "Show the current due on a deposit",
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

			due, err := client.DepositDue(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get due: %w", err)
			}
			printDue(due)
			return nil
		},
	}
}
