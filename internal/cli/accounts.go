package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"banking-console/internal/bankapi"
	"banking-console/internal/guard"
)

func newAccountsCmd(appRef func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage customer accounts",
	}
	cmd.AddCommand(
		newAccountsListCmd(appRef),
		newAccountsShowCmd(appRef),
		newAccountsCreateCmd(appRef),
		newAccountsUpdateCmd(appRef),
		newAccountsDeleteCmd(appRef),
	)
	return cmd
}

func accountsRoute() guard.Route {
	// Any authenticated employee may work with accounts.
	return guard.Route{Path: "/accounts"}
}

func newAccountsListCmd(appRef func() *App) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, accountsRoute(), func() error {
				out := cmd.OutOrStdout()
				if full {
					accounts, err := app.API.ListAccountsFull(cmd.Context())
					if err != nil {
						return err
					}
					for _, a := range accounts {
						fmt.Fprintf(out, "%d  %-20s  %-8s  %12.2f  %s  %s\n",
							a.AccountNumber, a.HolderName, a.AccountType, a.Balance, a.Email, a.PhoneNumber)
					}
					return nil
				}
				accounts, err := app.API.ListAccounts(cmd.Context())
				if err != nil {
					return err
				}
				for _, a := range accounts {
					fmt.Fprintf(out, "%d  %-20s  %-8s  %12.2f\n",
						a.AccountNumber, a.HolderName, a.AccountType, a.Balance)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "include holder contact details")
	return cmd
}

func newAccountsShowCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-number>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, accountsRoute(), func() error {
				number, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid account number %q", args[0])
				}
				account, err := app.API.GetAccount(cmd.Context(), number)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Account:  %d\n", account.AccountNumber)
				fmt.Fprintf(out, "Holder:   %s\n", account.HolderName)
				fmt.Fprintf(out, "Type:     %s\n", account.AccountType)
				fmt.Fprintf(out, "Balance:  %.2f\n", account.Balance)
				return nil
			})
		},
	}
}

func newAccountsCreateCmd(appRef func() *App) *cobra.Command {
	var req bankapi.CreateAccountRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, accountsRoute(), func() error {
				account, err := app.API.CreateAccount(cmd.Context(), req)
				if err != nil {
					return err
				}
				app.Notifier.Success("Account created.")
				fmt.Fprintf(cmd.OutOrStdout(), "Created account %d for %s\n", account.AccountNumber, account.HolderName)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.HolderName, "holder", "", "account holder name")
	cmd.Flags().StringVar(&req.AccountType, "type", "SAVINGS", "account type")
	cmd.Flags().Float64Var(&req.Balance, "balance", 0, "opening balance")
	cmd.Flags().StringVar(&req.Email, "email", "", "holder email")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "holder phone number")
	cmd.Flags().StringVar(&req.Address, "address", "", "holder address")
	cmd.MarkFlagRequired("holder")
	return cmd
}

func newAccountsUpdateCmd(appRef func() *App) *cobra.Command {
	var req bankapi.UpdateAccountRequest
	cmd := &cobra.Command{
		Use:   "update <account-number>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, accountsRoute(), func() error {
				number, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid account number %q", args[0])
				}
				if _, err := app.API.UpdateAccount(cmd.Context(), number, req); err != nil {
					return err
				}
				app.Notifier.Success("Account updated.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.HolderName, "holder", "", "account holder name")
	cmd.Flags().StringVar(&req.AccountType, "type", "", "account type")
	cmd.Flags().Float64Var(&req.Balance, "balance", 0, "balance")
	cmd.Flags().StringVar(&req.Email, "email", "", "holder email")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "holder phone number")
	cmd.Flags().StringVar(&req.Address, "address", "", "holder address")
	return cmd
}

func newAccountsDeleteCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-number>",
		Short: "Close an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, accountsRoute(), func() error {
				number, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid account number %q", args[0])
				}
				if err := app.API.DeleteAccount(cmd.Context(), number); err != nil {
					return err
				}
				app.Notifier.Success("Account deleted.")
				return nil
			})
		},
	}
}
