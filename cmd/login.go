package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, app, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (prompted when omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, app *app, email, password string) error {
	var err error
	if email == "" {
		email, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Email: ")
		if err != nil {
			return fmt.Errorf("read email: %w", err)
		}
	}
	if password == "" {
		password, err = promptPassword(cmd.OutOrStdout(), "Password: ")
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	if err := app.service.Login(cmd.Context(), email, password); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", app.baseURL, email)
	return nil
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
