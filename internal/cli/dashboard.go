package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"banking-console/internal/bankapi"
	"banking-console/internal/guard"
	"banking-console/internal/navigation"
	"banking-console/internal/session/domain"
)

// newDashboardCmd routes to the manager or clerk dashboard by role, the
// same split the web front end makes after login.
func newDashboardCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for your role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			if app.Roles.IsManager() {
				return runView(app, guard.Route{
					Path:  navigation.DashboardRoute + "/manager",
					Roles: []domain.Role{domain.RoleManager},
				}, func() error { return managerDashboard(cmd, app) })
			}
			return runView(app, guard.Route{
				Path:  navigation.DashboardRoute + "/clerk",
				Roles: []domain.Role{domain.RoleClerk},
			}, func() error { return clerkDashboard(cmd, app) })
		},
	}
}

func managerDashboard(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	accounts, err := app.API.ListAccounts(ctx)
	if err != nil {
		return err
	}
	var total float64
	for _, a := range accounts {
		total += a.Balance
	}
	fmt.Fprintf(out, "Accounts: %d (total balance %.2f)\n", len(accounts), total)

	pending, err := app.API.PendingApprovals(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Pending approvals: %d\n", len(pending))

	recent, err := app.API.Recent(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Recent transactions:")
	printTransactions(out, recent)
	return nil
}

func clerkDashboard(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	sess := app.Sessions.Current()

	today, err := app.API.ClerkTodayTransactions(ctx, sess.UserID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Transactions today: %d\n", len(today))
	printTransactions(out, today)

	requests, err := app.API.RecentApprovalRequests(ctx, sess.UserID)
	if err != nil {
		return err
	}
	if len(requests) > 0 {
		fmt.Fprintln(out, "Approval requests:")
		printTransactions(out, requests)
	}
	return nil
}

func printTransactions(out io.Writer, txs []bankapi.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, tx := range txs {
		fmt.Fprintf(out, "  #%d  %-10s  account %d  %.2f  %s  %s\n",
			tx.ID, tx.Type, tx.AccountNumber, tx.Amount, tx.Status, tx.Timestamp)
	}
}
