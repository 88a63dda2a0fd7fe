package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the login session",
		Long:  `Log in and out of member services, register, and recover passwords.`,
	}

	cmd.AddCommand(loginCmd())
	cmd.AddCommand(logoutCmd())
	cmd.AddCommand(registerCmd())
	cmd.AddCommand(verifyCmd())
	cmd.AddCommand(resendCmd())
	cmd.AddCommand(forgotCmd())
	cmd.AddCommand(changePasswordCmd())
	cmd.AddCommand(whoamiCmd())

	return cmd
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if email == "" {
				fmt.Print("Email: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			client, err := newAnonymousClient()
			if err != nil {
				return err
			}

			result, err := client.SignIn(ctx, email, password)
			if err != nil {
				return err
			}

			store, err := openSessionStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sess := session.Session{
				Token:  result.Token,
				Phone:  result.User.Phone,
				Name:   result.User.Name,
				Role:   result.User.Role,
				UserID: result.User.ID,
			}
			if err := store.Save(ctx, sess); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", result.User.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openSessionStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Clear(ctx); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var (
		phone string
		email string
		name  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new member account",
		Long:  `Register a new account. An OTP is sent to the phone; confirm it with 'hmfin auth verify'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return err
			}

			client, err := newAnonymousClient()
			if err != nil {
				return err
			}
			if err := client.SignUp(ctx, phone, email, password, confirm, name); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Registered. Check your phone for the OTP, then run 'hmfin auth verify'."))
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func verifyCmd() *cobra.Command {
	var (
		phone string
		otp   string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a registration OTP and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := newAnonymousClient()
			if err != nil {
				return err
			}

			result, err := client.VerifySignUp(ctx, phone, otp)
			if err != nil {
				return err
			}

			store, err := openSessionStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sess := session.Session{
				Token:  result.Token,
				Phone:  result.User.Phone,
				Name:   result.User.Name,
				Role:   result.User.Role,
				UserID: result.User.ID,
			}
			if err := store.Save(ctx, sess); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Verified and logged in as %s", result.User.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&otp, "otp", "", "one time password")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("otp")
	return cmd
}

func resendCmd() *cobra.Command {
	var (
		phone   string
		otpType string
	)

	cmd := &cobra.Command{
		Use:   "resend",
		Short: "Resend an OTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if otpType != "signup" && otpType != "pwd-reset" {
				return fmt.Errorf("invalid --type %q: must be signup or pwd-reset", otpType)
			}

			client, err := newAnonymousClient()
			if err != nil {
				return err
			}

			if err := client.ResendOTP(ctx, phone, otpType); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("OTP sent."))
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&otpType, "type", "signup", "OTP type: signup or pwd-reset")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func forgotCmd() *cobra.Command {
	var (
		phone string
		otp   string
	)

	cmd := &cobra.Command{
		Use:   "forgot",
		Short: "Reset a forgotten password",
		Long:  `Without --otp, requests a reset OTP for the phone. With --otp, sets the new password.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := newAnonymousClient()
			if err != nil {
				return err
			}

			if otp == "" {
				if err := client.RequestPasswordReset(ctx, phone); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess("OTP sent. Re-run with --otp to set a new password."))
				return nil
			}

			password, err := readPassword("New password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return err
			}

			if err := client.ResetPassword(ctx, phone, otp, password, confirm); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Password reset. Log in with 'hmfin auth login'."))
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&otp, "otp", "", "one time password from the reset SMS")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func changePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the logged-in account's password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			oldPass, err := readPassword("Current password: ")
			if err != nil {
				return err
			}
			newPass, err := readPassword("New password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return err
			}

			if err := client.ChangePassword(ctx, oldPass, newPass, confirm); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Password changed."))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the saved session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openSessionStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sess, err := store.Load(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n", sess.Name, sess.Phone)
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("logged in since %s", sess.SavedAt.Local().Format("2006-01-02 15:04"))))
			return nil
		},
	}
}
