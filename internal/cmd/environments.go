package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var environmentsCmd = &cobra.Command{
	Use:   "environments",
	Short: "Manage target environments",
	Long: `Manage the named target environments test runs execute against.

Examples:
  benchlink environments list --project 3
  benchlink environments create --project 3 --name staging --base-url https://staging.example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var environmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List environments",
	RunE: guarded("/environments", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListEnvironments(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, e := range page.Results {
			rows = append(rows, []any{e.ID, e.Name, e.BaseURL, e.Project, boolIcon(e.IsActive)})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "BASE URL", "PROJECT", "ACTIVE"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var environmentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one environment",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/environments", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		e, err := rt.Client.GetEnvironment(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), e)
	}),
}

var environmentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an environment",
	RunE: guarded("/environments", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.EnvironmentInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.Project, _ = cmd.Flags().GetInt("project")
		in.BaseURL, _ = cmd.Flags().GetString("base-url")
		in.Description, _ = cmd.Flags().GetString("description")

		e, err := rt.Client.CreateEnvironment(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created environment %d: %s\n", e.ID, e.Name)
		return nil
	}),
}

var environmentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an environment",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/environments", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteEnvironment(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted environment %d\n", id)
		return nil
	}),
}

func init() {
	addListFlags(environmentsListCmd)

	environmentsCreateCmd.Flags().String("name", "", "environment name")
	environmentsCreateCmd.Flags().Int("project", 0, "project ID")
	environmentsCreateCmd.Flags().String("base-url", "", "target base URL")
	environmentsCreateCmd.Flags().String("description", "", "environment description")
	environmentsCreateCmd.MarkFlagRequired("name")
	environmentsCreateCmd.MarkFlagRequired("project")
	environmentsCreateCmd.MarkFlagRequired("base-url")

	environmentsCmd.AddCommand(environmentsListCmd, environmentsGetCmd,
		environmentsCreateCmd, environmentsDeleteCmd)
	rootCmd.AddCommand(environmentsCmd)
}
