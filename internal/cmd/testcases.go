package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var testcasesCmd = &cobra.Command{
	Use:   "testcases",
	Short: "Manage test cases",
	Long: `Manage test cases, which bind an API definition to assertions,
variables, and pre/post scripts.

Examples:
  benchlink testcases list --project 3
  benchlink testcases get 7
  benchlink testcases run 7
  benchlink testcases stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var testcasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List test cases",
	RunE: guarded("/testcases", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListTestCases(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, tc := range page.Results {
			rows = append(rows, []any{tc.ID, tc.Name, tc.Project, tc.API, tc.Description})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "PROJECT", "API", "DESCRIPTION"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var testcasesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one test case",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/testcases", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		tc, err := rt.Client.GetTestCase(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), tc)
	}),
}

var testcasesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a test case",
	RunE: guarded("/testcases", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.TestCaseInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.Project, _ = cmd.Flags().GetInt("project")
		in.API, _ = cmd.Flags().GetInt("api")
		in.Description, _ = cmd.Flags().GetString("description")

		tc, err := rt.Client.CreateTestCase(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created test case %d: %s\n", tc.ID, tc.Name)
		return nil
	}),
}

var testcasesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a test case",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/testcases", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteTestCase(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted test case %d\n", id)
		return nil
	}),
}

var testcasesRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Execute a test case",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/testcases", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		result, err := rt.Client.ExecuteTestCase(cmd.Context(), id, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s (%.0fms)\n", result.Status, result.ResponseTime)
		if len(result.Result) > 0 {
			return printJSON(cmd.OutOrStdout(), result.Result)
		}
		return nil
	}),
}

var testcasesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show test case pass/fail statistics",
	RunE: guarded("/dashboard", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		stats, err := rt.Client.TestCaseStatistics(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Total: %d\nPassed: %d\nFailed: %d\n",
			stats.Total, stats.Passed, stats.Failed)
		return nil
	}),
}

func init() {
	addListFlags(testcasesListCmd)

	testcasesCreateCmd.Flags().String("name", "", "test case name")
	testcasesCreateCmd.Flags().Int("project", 0, "project ID")
	testcasesCreateCmd.Flags().Int("api", 0, "API definition ID")
	testcasesCreateCmd.Flags().String("description", "", "test case description")
	testcasesCreateCmd.MarkFlagRequired("name")
	testcasesCreateCmd.MarkFlagRequired("project")
	testcasesCreateCmd.MarkFlagRequired("api")

	testcasesCmd.AddCommand(testcasesListCmd, testcasesGetCmd, testcasesCreateCmd,
		testcasesDeleteCmd, testcasesRunCmd, testcasesStatsCmd)
	rootCmd.AddCommand(testcasesCmd)
}
