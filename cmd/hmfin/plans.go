package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/spf13/cobra"
)

func plansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Browse loan and deposit plans",
	}

	cmd.AddCommand(loanPlansCmd())
	cmd.AddCommand(depositPlansCmd())

	return cmd
}

func loanPlansCmd() *cobra.Command {
	var (
		skip  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "List loan plans open for application",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			plans, err := client.LoanPlans(ctx, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get loan plans: %w", err)
			}
			if len(plans) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No loan plans available."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				header.Render("ID"),
				header.Render("Plan"),
				header.Render("Rate"),
				header.Render("Interest"),
				header.Render("EMI"),
				header.Render("Amount Range"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 20), strings.Repeat("-", 6),
				strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 24))

			for _, plan := range plans {
				fmt.Fprintf(w, "%d\t%s\t%s%%\t%s\t%s\t%s – %s\n",
					plan.ID,
					plan.PlanName,
					plan.InterestRate,
					plan.InterestFrequency,
					plan.AllowedEMIFrequency,
					format.Currency(plan.MinAmount),
					format.Currency(plan.MaxAmount))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of plans to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum plans to list")
	return cmd
}

func depositPlansCmd() *cobra.Command {
	var (
		category string
		skip     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "List FD/RD plans open for application",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if category != "FD" && category != "RD" {
				return fmt.Errorf("invalid category %q: must be FD or RD", category)
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			plans, err := client.DepositPlans(ctx, category, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get deposit plans: %w", err)
			}
			if len(plans) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No deposit plans available."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				header.Render("ID"),
				header.Render("Plan"),
				header.Render("Rate"),
				header.Render("Interest Credit"),
				header.Render("Amount Range"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 20), strings.Repeat("-", 6),
				strings.Repeat("-", 15), strings.Repeat("-", 24))

			for _, plan := range plans {
				fmt.Fprintf(w, "%d\t%s\t%s%%\t%s\t%s – %s\n",
					plan.ID,
					plan.PlanName,
					plan.InterestRate,
					plan.InterestCreditFrequency,
					format.Currency(plan.MinAmount),
					format.Currency(plan.MaxAmount))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "FD", "deposit category (FD or RD)")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of plans to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum plans to list")
	return cmd
}
