package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var apisCmd = &cobra.Command{
	Use:   "apis",
	Short: "Manage API definitions",
	Long: `Manage the API endpoint definitions registered under a project.

Examples:
  benchlink apis list --project 3
  benchlink apis get 12
  benchlink apis create --project 3 --name "Get user" --method GET --path /users/1
  benchlink apis run 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var apisListCmd = &cobra.Command{
	Use:   "list",
	Short: "List API definitions",
	RunE: guarded("/apis", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListAPIs(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, a := range page.Results {
			rows = append(rows, []any{a.ID, a.Name, a.Method, a.Path, a.Project})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "METHOD", "PATH", "PROJECT"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var apisGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one API definition",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/apis", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := rt.Client.GetAPI(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), a)
	}),
}

var apisCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an API definition",
	RunE: guarded("/apis", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.APIInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.Project, _ = cmd.Flags().GetInt("project")
		in.Method, _ = cmd.Flags().GetString("method")
		in.Path, _ = cmd.Flags().GetString("path")
		in.Description, _ = cmd.Flags().GetString("description")

		a, err := rt.Client.CreateAPI(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created API %d: %s %s\n", a.ID, a.Method, a.Path)
		return nil
	}),
}

var apisDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an API definition",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/apis", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteAPI(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted API %d\n", id)
		return nil
	}),
}

var apisRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Execute an API definition ad hoc",
	Long: `Send the API definition's request once and show the outcome.

Examples:
  benchlink apis run 12`,
	Args: cobra.ExactArgs(1),
	RunE: guarded("/apis", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		result, err := rt.Client.ExecuteAPI(cmd.Context(), id, nil)
		if err != nil {
			return err
		}

		if result.Success {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %d in %.0fms\n", result.StatusCode, result.ResponseTime)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %d: %s\n", result.StatusCode, result.Error)
		}
		if len(result.Response) > 0 {
			return printJSON(cmd.OutOrStdout(), result.Response)
		}
		return nil
	}),
}

func init() {
	addListFlags(apisListCmd)

	apisCreateCmd.Flags().String("name", "", "API name")
	apisCreateCmd.Flags().Int("project", 0, "project ID")
	apisCreateCmd.Flags().String("method", "GET", "HTTP method")
	apisCreateCmd.Flags().String("path", "", "request path")
	apisCreateCmd.Flags().String("description", "", "API description")
	apisCreateCmd.MarkFlagRequired("name")
	apisCreateCmd.MarkFlagRequired("project")
	apisCreateCmd.MarkFlagRequired("path")

	apisCmd.AddCommand(apisListCmd, apisGetCmd, apisCreateCmd, apisDeleteCmd, apisRunCmd)
	rootCmd.AddCommand(apisCmd)
}
