package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var testsuitesCmd = &cobra.Command{
	Use:   "testsuites",
	Short: "Manage test suites",
	Long: `Manage test suites, ordered collections of test cases that run as
one unit.

Examples:
  benchlink testsuites list --project 3
  benchlink testsuites run 5
  benchlink testsuites reorder 5 --order 7=1 --order 9=2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var testsuitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List test suites",
	RunE: guarded("/testsuites", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListTestSuites(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, ts := range page.Results {
			rows = append(rows, []any{ts.ID, ts.Name, ts.Project, len(ts.TestCases), boolIcon(ts.IsActive)})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "PROJECT", "CASES", "ACTIVE"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var testsuitesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one test suite",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/testsuites", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ts, err := rt.Client.GetTestSuite(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), ts)
	}),
}

var testsuitesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a test suite",
	RunE: guarded("/testsuites", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.TestSuiteInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.Project, _ = cmd.Flags().GetInt("project")
		in.Description, _ = cmd.Flags().GetString("description")
		in.TestCases, _ = cmd.Flags().GetIntSlice("testcase")

		ts, err := rt.Client.CreateTestSuite(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created test suite %d: %s\n", ts.ID, ts.Name)
		return nil
	}),
}

var testsuitesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a test suite",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/testsuites", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteTestSuite(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted test suite %d\n", id)
		return nil
	}),
}

var testsuitesRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Execute a test suite",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/testsuites", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		exec, err := rt.Client.ExecuteTestSuite(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Execution %d: %s (%d passed, %d failed of %d)\n",
			exec.ID, exec.Status, exec.Passed, exec.Failed, exec.Total)
		return nil
	}),
}

var testsuitesReorderCmd = &cobra.Command{
	Use:   "reorder <id>",
	Short: "Reorder the cases inside a suite",
	Long: `Reorder the test cases inside a suite. Each --order flag pins one
case to a position, as testcase=position.

Examples:
  benchlink testsuites reorder 5 --order 7=1 --order 9=2`,
	Args: cobra.ExactArgs(1),
	RunE: guarded("/testsuites", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		pairs, _ := cmd.Flags().GetStringSlice("order")
		orders := make([]api.TestCaseOrder, 0, len(pairs))
		for _, pair := range pairs {
			var tc, pos int
			if _, err := fmt.Sscanf(pair, "%d=%d", &tc, &pos); err != nil {
				return fmt.Errorf("invalid --order %q: expected testcase=position", pair)
			}
			orders = append(orders, api.TestCaseOrder{TestCase: tc, Order: pos})
		}
		if len(orders) == 0 {
			return fmt.Errorf("at least one --order is required")
		}

		if err := rt.Client.ReorderTestCases(cmd.Context(), id, orders); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d cases in suite %d\n", len(orders), id)
		return nil
	}),
}

func init() {
	addListFlags(testsuitesListCmd)

	testsuitesCreateCmd.Flags().String("name", "", "suite name")
	testsuitesCreateCmd.Flags().Int("project", 0, "project ID")
	testsuitesCreateCmd.Flags().String("description", "", "suite description")
	testsuitesCreateCmd.Flags().IntSlice("testcase", nil, "test case IDs in order (repeatable)")
	testsuitesCreateCmd.MarkFlagRequired("name")
	testsuitesCreateCmd.MarkFlagRequired("project")

	testsuitesReorderCmd.Flags().StringSlice("order", nil, "testcase=position pair (repeatable)")

	testsuitesCmd.AddCommand(testsuitesListCmd, testsuitesGetCmd, testsuitesCreateCmd,
		testsuitesDeleteCmd, testsuitesRunCmd, testsuitesReorderCmd)
	rootCmd.AddCommand(testsuitesCmd)
}
