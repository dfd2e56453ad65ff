package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			sess := app.Sessions.Current()
			if sess == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Username: %s\n", sess.Username)
			fmt.Fprintf(out, "Role:     %s\n", app.Roles.DisplayRole())
			if sess.FullName != "" {
				fmt.Fprintf(out, "Name:     %s\n", sess.FullName)
			}
			if sess.Email != "" {
				fmt.Fprintf(out, "Email:    %s\n", sess.Email)
			}
			if !app.Sessions.IsAuthenticated() {
				fmt.Fprintln(out, "Session expired, sign in again.")
			}
			return nil
		},
	}
}
