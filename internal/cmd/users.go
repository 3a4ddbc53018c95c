package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
	Long: `Browse the platform's user accounts and manage your own.

Examples:
  benchlink users list
  benchlink users passwd`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: guarded("/system/users", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListUsers(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, u := range page.Results {
			rows = append(rows, []any{u.ID, u.Username, u.Email, boolIcon(u.IsActive)})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "USERNAME", "EMAIL", "ACTIVE"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var usersPasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your password",
	RunE: guarded("/dashboard", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		oldPassword, _ := cmd.Flags().GetString("old-password")
		newPassword, _ := cmd.Flags().GetString("new-password")

		if oldPassword == "" || newPassword == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Current password").
					EchoMode(huh.EchoModePassword).
					Value(&oldPassword).
					Validate(huh.ValidateNotEmpty()),
				huh.NewInput().Title("New password").
					EchoMode(huh.EchoModePassword).
					Value(&newPassword).
					Validate(huh.ValidateNotEmpty()),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		if err := rt.Client.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
		return nil
	}),
}

func init() {
	addListFlags(usersListCmd)

	usersPasswdCmd.Flags().String("old-password", "", "current password")
	usersPasswdCmd.Flags().String("new-password", "", "new password")

	usersCmd.AddCommand(usersListCmd, usersPasswdCmd)
	rootCmd.AddCommand(usersCmd)
}
