package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"banking-console/internal/bankapi"
	"banking-console/internal/guard"
)

func transactionsRoute() guard.Route {
	return guard.Route{Path: "/transactions"}
}

// reportPosted tells the user whether the transaction posted or was parked
// for manager approval.
func reportPosted(app *App, tx *bankapi.Transaction) {
	if tx.Status == bankapi.StatusPending {
		app.Notifier.Info(fmt.Sprintf("Transaction #%d exceeds %d and awaits manager approval.", tx.ID, bankapi.ApprovalThreshold))
		return
	}
	app.Notifier.Success(fmt.Sprintf("Transaction #%d completed.", tx.ID))
}

func newDepositCmd(appRef func() *App) *cobra.Command {
	var req bankapi.DepositRequest
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, transactionsRoute(), func() error {
				tx, err := app.API.Deposit(cmd.Context(), req)
				if err != nil {
					return err
				}
				reportPosted(app, tx)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&req.AccountNumber, "account", 0, "account number")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "amount to deposit")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func newWithdrawCmd(appRef func() *App) *cobra.Command {
	var req bankapi.WithdrawRequest
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, transactionsRoute(), func() error {
				tx, err := app.API.Withdraw(cmd.Context(), req)
				if err != nil {
					return err
				}
				reportPosted(app, tx)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&req.AccountNumber, "account", 0, "account number")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "amount to withdraw")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func newTransferCmd(appRef func() *App) *cobra.Command {
	var req bankapi.TransferRequest
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer between accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, transactionsRoute(), func() error {
				if bankapi.NeedsApproval(req.Amount) {
					app.Notifier.Info("Amounts above the approval threshold require manager sign-off.")
				}
				tx, err := app.API.Transfer(cmd.Context(), req)
				if err != nil {
					return err
				}
				reportPosted(app, tx)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&req.FromAccount, "from", 0, "source account number")
	cmd.Flags().Int64Var(&req.ToAccount, "to", 0, "destination account number")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "amount to transfer")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func newHistoryCmd(appRef func() *App) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "history [account-number]",
		Short: "Show transaction history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, transactionsRoute(), func() error {
				ctx := cmd.Context()
				var (
					txs []bankapi.Transaction
					err error
				)
				switch {
				case len(args) == 1:
					var number int64
					number, err = strconv.ParseInt(args[0], 10, 64)
					if err != nil {
						return fmt.Errorf("invalid account number %q", args[0])
					}
					txs, err = app.API.History(ctx, number)
				case date != "":
					txs, err = app.API.ByDate(ctx, date)
				default:
					txs, err = app.API.Recent(ctx)
				}
				if err != nil {
					return err
				}
				printTransactions(cmd.OutOrStdout(), txs)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "list transactions for a day (YYYY-MM-DD)")
	return cmd
}
