package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
	Long: `Manage BenchLink projects, the top-level containers for APIs,
test cases, and test suites.

Examples:
  benchlink projects list
  benchlink projects get 3
  benchlink projects create --name checkout --description "Checkout flow"
  benchlink projects delete 3
  benchlink projects stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: guarded("/projects", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListProjects(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, p := range page.Results {
			rows = append(rows, []any{p.ID, p.Name, boolIcon(p.IsActive), p.OwnerName, p.Description})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "ACTIVE", "OWNER", "DESCRIPTION"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var projectsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/projects", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := rt.Client.GetProject(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), p)
	}),
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE: guarded("/projects", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.ProjectInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.Description, _ = cmd.Flags().GetString("description")

		p, err := rt.Client.CreateProject(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created project %d: %s\n", p.ID, p.Name)
		return nil
	}),
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/projects", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var in api.ProjectInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.Description, _ = cmd.Flags().GetString("description")

		p, err := rt.Client.UpdateProject(cmd.Context(), id, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated project %d: %s\n", p.ID, p.Name)
		return nil
	}),
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/projects", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteProject(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %d\n", id)
		return nil
	}),
}

var projectsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show project statistics",
	RunE: guarded("/dashboard", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		stats, err := rt.Client.ProjectStatistics(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"Projects: %d\nAPIs: %d\nTest cases: %d\nTest suites: %d\n",
			stats.TotalProjects, stats.TotalAPIs, stats.TotalTestCases, stats.TotalTestSuites)
		return nil
	}),
}

func init() {
	addListFlags(projectsListCmd)

	projectsCreateCmd.Flags().String("name", "", "project name")
	projectsCreateCmd.Flags().String("description", "", "project description")
	projectsCreateCmd.MarkFlagRequired("name")

	projectsUpdateCmd.Flags().String("name", "", "project name")
	projectsUpdateCmd.Flags().String("description", "", "project description")

	projectsCmd.AddCommand(projectsListCmd, projectsGetCmd, projectsCreateCmd,
		projectsUpdateCmd, projectsDeleteCmd, projectsStatsCmd)
	rootCmd.AddCommand(projectsCmd)
}
