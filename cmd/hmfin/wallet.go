package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/himalayanmicrofin/hmfin/internal/api"
	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/spf13/cobra"
)

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet balance, transactions, and withdrawals",
	}

	cmd.AddCommand(walletShowCmd())
	cmd.AddCommand(walletTxnsCmd())
	cmd.AddCommand(walletWithdrawalsCmd())
	cmd.AddCommand(walletWithdrawCmd())
	cmd.AddCommand(walletVPAsCmd())

	return cmd
}

func walletShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the wallet balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			wallet, err := client.Wallet(ctx)
			if err != nil {
				return fmt.Errorf("failed to get wallet: %w", err)
			}

			fmt.Printf("Balance: %s\n", cli.AmountStyle.Render(format.Currency(wallet.Balance)))
			return nil
		},
	}
}

func walletTxnsCmd() *cobra.Command {
	var (
		skip  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "txns",
		Short: "List wallet transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			txns, err := client.WalletTransactions(ctx, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No wallet transactions."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				header.Render("Date"),
				header.Render("Type"),
				header.Render("Amount"),
				header.Render("Balance"),
				header.Render("Note"))

			for _, txn := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					txn.CreatedAt.Format("2006-01-02"),
					txn.TxnType,
					format.Currency(txn.Amount),
					format.Currency(txn.Balance),
					txn.TxnNote)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of transactions to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum transactions to list")
	return cmd
}

func walletWithdrawalsCmd() *cobra.Command {
	var (
		skip   int
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "withdrawals",
		Short: "List withdrawal requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			withdrawals, err := client.Withdrawals(ctx, skip, limit, search)
			if err != nil {
				return fmt.Errorf("failed to get withdrawals: %w", err)
			}
			if len(withdrawals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No withdrawal requests."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				header.Render("Code"),
				header.Render("Date"),
				header.Render("Amount"),
				header.Render("Status"),
				header.Render("Note"))

			for _, wd := range withdrawals {
				code, err := format.RecordID(wd.ID, format.CategoryWithdrawal)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					code,
					wd.CreatedAt.Format("2006-01-02"),
					format.Currency(wd.Amount),
					wd.Status,
					wd.Note)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of withdrawals to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum withdrawals to list")
	cmd.Flags().StringVar(&search, "search", "", "filter by search term")
	return cmd
}

func walletVPAsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vpas",
		Short: "List UPI addresses for paying in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			vpas, err := client.CompanyVPAs(ctx)
			if err != nil {
				return fmt.Errorf("failed to get UPI addresses: %w", err)
			}
			if len(vpas) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No UPI addresses published."))
				return nil
			}
			for _, vpa := range vpas {
				fmt.Println(vpa)
			}
			return nil
		},
	}
}

func walletWithdrawCmd() *cobra.Command {
	var (
		amount string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Request a withdrawal from the wallet",
		Long:  `Request a payout from the wallet. Approval is a back-office workflow; the request is created as Pending.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			withdrawalAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			if !yes {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx,
					fmt.Sprintf("Request withdrawal of %s?", format.Currency(withdrawalAmount)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatWarning("Withdrawal not requested."))
					return nil
				}
			}

			if err := client.RequestWithdrawal(ctx, api.WithdrawalRequest{WithdrawalAmount: withdrawalAmount}); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Withdrawal requested; pending approval."))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount to withdraw")
	cmd.Flags().BoolVar(&yes, "yes", false, "request without confirmation")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
