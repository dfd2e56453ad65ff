package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"banking-console/internal/bankapi"
	"banking-console/internal/guard"
	"banking-console/internal/session/domain"
)

func newEmployeesCmd(appRef func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage bank employees (managers only)",
	}
	cmd.AddCommand(
		newEmployeesListCmd(appRef),
		newEmployeesCreateCmd(appRef),
		newEmployeesUpdateCmd(appRef),
		newEmployeesDeleteCmd(appRef),
	)
	return cmd
}

func employeesRoute() guard.Route {
	return guard.Route{Path: "/employees", Roles: []domain.Role{domain.RoleManager}}
}

func newEmployeesListCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, employeesRoute(), func() error {
				employees, err := app.API.ListEmployees(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, e := range employees {
					fmt.Fprintf(out, "%d  %-16s  %-20s  %-8s  %s\n",
						e.ID, e.Username, e.FullName, e.Role, e.Email)
				}
				return nil
			})
		},
	}
}

func newEmployeesCreateCmd(appRef func() *App) *cobra.Command {
	var req bankapi.CreateEmployeeRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new employee",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appRef()
			return runView(app, employeesRoute(), func() error {
				employee, err := app.API.CreateEmployee(cmd.Context(), req)
				if err != nil {
					return err
				}
				app.Notifier.Success("Employee created.")
				fmt.Fprintf(cmd.OutOrStdout(), "Created employee %d (%s)\n", employee.ID, employee.Username)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Role, "role", "CLERK", "role, MANAGER or CLERK")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newEmployeesUpdateCmd(appRef func() *App) *cobra.Command {
	var req bankapi.UpdateEmployeeRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, employeesRoute(), func() error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid employee id %q", args[0])
				}
				if _, err := app.API.UpdateEmployee(cmd.Context(), id, req); err != nil {
					return err
				}
				app.Notifier.Success("Employee updated.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Role, "role", "", "role, MANAGER or CLERK")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	return cmd
}

func newEmployeesDeleteCmd(appRef func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appRef()
			return runView(app, employeesRoute(), func() error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid employee id %q", args[0])
				}
				if err := app.API.DeleteEmployee(cmd.Context(), id); err != nil {
					return err
				}
				app.Notifier.Success("Employee deleted.")
				return nil
			})
		},
	}
}
