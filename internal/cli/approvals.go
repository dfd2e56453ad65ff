package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"banking-console/internal/guard"
	"banking-console/internal/session/domain"
)

func approvalsRoute() guard.Route {
	return guard.Route{Path: "/approvals", Roles: []domain.Role{domain.RoleManager}}
}

func newApprovalsCmd(appRef func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "Review transactions above the approval threshold (managers only)",
	}
	cmd.AddCommand(
		newApprovalsListCmd(appRef),
		newApprovalsApproveCmd(appRef),
		newApprovalsRejectCmd(appRef),
	)
	return cmd
}

func newApprovalsListCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending approvals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, approvalsRoute(), func() error {
				pending, err := app.API.PendingApprovals(cmd.Context())
				if err != nil {
					return err
				}
				printTransactions(cmd.OutOrStdout(), pending)
				return nil
			})
		},
	}
}

func newApprovalsApproveCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <transaction-id>",
		Short: "Approve a pending transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, approvalsRoute(), func() error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid transaction id %q", args[0])
				}
				tx, err := app.API.Approve(cmd.Context(), id)
				if err != nil {
					return err
				}
				app.Notifier.Success(fmt.Sprintf("Transaction #%d approved.", tx.ID))
				return nil
			})
		},
	}
}

func newApprovalsRejectCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <transaction-id>",
		Short: "Reject a pending transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, approvalsRoute(), func() error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid transaction id %q", args[0])
				}
				tx, err := app.API.Reject(cmd.Context(), id)
				if err != nil {
					return err
				}
				app.Notifier.Warning(fmt.Sprintf("Transaction #%d rejected.", tx.ID))
				return nil
			})
		},
	}
}
