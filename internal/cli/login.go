package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"banking-console/internal/bankapi"
	"banking-console/internal/navigation"
)

func newLoginCmd(appRef func() *App) *cobra.Command {
	var (
		username string
		password string
		remember bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the banking API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			app.Nav.SetCurrent(navigation.LoginRoute)

			reader := bufio.NewReader(cmd.InOrStdin())
			if username == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Username: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				username = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			sess, err := app.Sessions.Login(cmd.Context(),
				bankapi.Credentials{Username: username, Password: password}, remember)
			if err != nil {
				app.Notifier.Danger(bankapi.Translate(err))
				return err
			}
			app.Notifier.Success("Signed in as " + sess.Username + ".")
			app.Nav.SetCurrent(navigation.DashboardRoute)
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s (%s)\n", displayName(sess.FullName, sess.Username), app.Roles.DisplayRole())
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when omitted)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&remember, "remember", true, "keep the session across restarts")
	return cmd
}

func displayName(fullName, username string) string {
	if fullName != "" {
		return fullName
	}
	return username
}

func newLogoutCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			app.Sessions.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
