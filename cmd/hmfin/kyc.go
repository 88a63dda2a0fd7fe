package main

import (
	"fmt"
	"os"

	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/spf13/cobra"
)

func kycCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kyc",
		Short: "KYC verification status",
	}

	cmd.AddCommand(kycStatusCmd())
	cmd.AddCommand(kycResetCmd())

	return cmd
}

func kycStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show verification state of submitted proofs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			kyc, err := client.Kyc(ctx)
			if err != nil {
				return fmt.Errorf("failed to get KYC status: %w", err)
			}

			fmt.Printf("ID proof:      %s\n", kyc.IDProofStatus)
			fmt.Printf("Address proof: %s\n", kyc.AddressProofStatus)
			fmt.Printf("Selfie:        %s\n", kyc.SelfieStatus)
			if kyc.Remark != "" {
				fmt.Printf("Remark:        %s\n", kyc.Remark)
			}
			if kyc.Verified {
				fmt.Println(cli.FormatSuccess("KYC verified."))
			} else {
				fmt.Println(cli.FormatWarning("KYC not yet verified."))
			}
			return nil
		},
	}
}

func kycResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard submitted proofs and start over",
		Long: `Discard all submitted proofs so fresh documents can be uploaded.
Verification restarts from scratch.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			if !yes {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx, "Discard all submitted KYC proofs?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatWarning("KYC left unchanged."))
					return nil
				}
			}

			if err := client.ResetKyc(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("KYC reset; submit fresh proofs from the app."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "reset without confirmation")
	return cmd
}
