package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your member profile",
	}

	cmd.AddCommand(profileViewCmd())
	cmd.AddCommand(profileUpdateCmd())
	cmd.AddCommand(profileDashCmd())
	cmd.AddCommand(profileReferralsCmd())

	return cmd
}

func profileViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the full profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			profile, err := client.Profile(ctx)
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			memberCode, err := format.RecordID(profile.ID, format.CategoryUser)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(profile.Name))
			fmt.Printf("Member:  %s\n", memberCode)
			fmt.Printf("Phone:   %s\n", format.Phone(profile.Phone))
			if profile.AlternatePhone != "" {
				fmt.Printf("Alt:     %s\n", format.Phone(profile.AlternatePhone))
			}
			fmt.Printf("Email:   %s\n", profile.Email)
			fmt.Printf("Address: %s, %s, %s %s\n", profile.Address, profile.City, profile.State, profile.Pincode)
			fmt.Printf("Role:    %s\n", profile.Role)
			fmt.Printf("Since:   %s\n", profile.CreatedAt.Format("2006-01-02"))
			if !profile.Activated {
				fmt.Println(cli.FormatWarning("Account not yet activated."))
			}
			return nil
		},
	}
}

func profileUpdateCmd() *cobra.Command {
	var (
		altPhone string
		email    string
		address  string
		city     string
		state    string
		pincode  string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update contact details",
		Long: `Update contact details on the profile. Only the flags you pass are
sent; everything else is left unchanged. Name and primary phone are
fixed once KYC is verified and can only be changed by the office.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			fields := map[string]any{}
			if cmd.Flags().Changed("alt-phone") {
				fields["alternate_phone"] = altPhone
			}
			if cmd.Flags().Changed("email") {
				fields["email"] = email
			}
			if cmd.Flags().Changed("address") {
				fields["address"] = address
			}
			if cmd.Flags().Changed("city") {
				fields["city"] = city
			}
			if cmd.Flags().Changed("state") {
				fields["state"] = state
			}
			if cmd.Flags().Changed("pincode") {
				fields["pincode"] = pincode
			}
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update; pass at least one field flag")
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			if err := client.UpdateProfile(ctx, fields); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Profile updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&altPhone, "alt-phone", "", "alternate phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&state, "state", "", "state")
	cmd.Flags().StringVar(&pincode, "pincode", "", "postal code")
	return cmd
}

func profileDashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Show the account summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, session, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			dash, err := client.DashData(ctx)
			if err != nil {
				return fmt.Errorf("failed to get summary: %w", err)
			}

			fmt.Println(cli.FormatTitle(session.Name))
			fmt.Printf("Wallet balance:  %s\n", cli.AmountStyle.Render(format.Currency(dash.WalletBalance)))
			fmt.Printf("Active loans:    %d\n", dash.ActiveLoans)
			fmt.Printf("Active FDs:      %d\n", dash.ActiveFDs)
			fmt.Printf("Active RDs:      %d\n", dash.ActiveRDs)
			fmt.Printf("Total due:       %s\n", format.Currency(dash.TotalDue))
			return nil
		},
	}
}

func profileReferralsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "referrals",
		Short: "List members you referred",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			referrals, err := client.Referrals(ctx)
			if err != nil {
				return fmt.Errorf("failed to get referrals: %w", err)
			}
			if len(referrals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No referrals yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			header := cli.TableHeaderStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				header.Render("Member"),
				header.Render("Name"),
				header.Render("Phone"),
				header.Render("Status"),
				header.Render("Joined"))

			for _, ref := range referrals {
				code, err := format.RecordID(ref.ID, format.CategoryUser)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					code,
					ref.Name,
					format.Phone(ref.Phone),
					ref.Status,
					ref.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}
