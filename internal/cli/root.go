// Package cli implements the bank console's commands. Every view command
// passes through the route guard before it touches the API, mirroring how
// the routes are protected server side.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"banking-console/internal/config"
	"banking-console/internal/guard"
)

// errAccessDenied marks a guard refusal. The guard has already notified and
// redirected, so commands exit non-zero without a second message.
var errAccessDenied = errors.New("access denied")

// NewRootCmd builds the console command tree.
func NewRootCmd() *cobra.Command {
	var app *App

	root := &cobra.Command{
		Use:           "console",
		Short:         "Terminal front end for the banking API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app, err = NewApp(cmd.Context(), cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if app != nil {
				app.Close(cmd.Context())
			}
			return nil
		},
	}

	appRef := func() *App { return app }
	root.AddCommand(
		newLoginCmd(appRef),
		newLogoutCmd(appRef),
		newWhoamiCmd(appRef),
		newDashboardCmd(appRef),
		newAccountsCmd(appRef),
		newEmployeesCmd(appRef),
		newDepositCmd(appRef),
		newWithdrawCmd(appRef),
		newTransferCmd(appRef),
		newHistoryCmd(appRef),
		newApprovalsCmd(appRef),
	)
	return root
}

// runView guards entry to a route and runs the view when allowed.
func runView(app *App, route guard.Route, view func() error) error {
	if !app.Enter(route) {
		return errAccessDenied
	}
	return view()
}
