package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/contactbook/internal/app"
	"github.com/heartmarshall/contactbook/internal/service/account"
)

// envPassword lets scripts pass a password without exposing it in argv.
const envPassword = "CONTACTS_PASSWORD"

func newLoginCommand(r *runtime) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := resolvePassword(cmd.InOrStdin(), password)
			if err != nil {
				return err
			}
			return r.withApp(cmd.Context(), func(a *app.App) error {
				user, err := a.Account.Login(cmd.Context(), account.LoginInput{Email: email, Password: pw})
				if err != nil {
					return err
				}
				r.printf("Signed in as %s.\n", user.DisplayName())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (or set "+envPassword+", or pipe it on stdin)")
	return cmd
}

func newRegisterCommand(r *runtime) *cobra.Command {
	var in account.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := a.Account.Register(cmd.Context(), in); err != nil {
					return err
				}
				r.printf("Account created. Sign in with \"contacts login --email %s\".\n", strings.TrimSpace(in.Email))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	cmd.Flags().StringVar(&in.ConfirmPassword, "confirm-password", "", "password again")
	return cmd
}

func newLogoutCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := a.Account.Logout(cmd.Context()); err != nil {
					return err
				}
				r.printf("Signed out.\n")
				return nil
			})
		},
	}
}

func newWhoamiCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd.Context(), func(a *app.App) error {
				if !a.Session.SignedIn() {
					r.printf("Not signed in.\n")
					return nil
				}
				user := a.Session.User()
				r.printf("%s <%s>\n", user.DisplayName(), user.Email)
				if exp := a.Session.ExpiresAt(); !exp.IsZero() {
					r.printf("Session valid until %s\n", formatTime(exp))
				}
				return nil
			})
		},
	}
}

// resolvePassword prefers the flag, then the environment, then one line of stdin.
func resolvePassword(stdin io.Reader, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(envPassword); env != "" {
		return env, nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
