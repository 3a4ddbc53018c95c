package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var executionsCmd = &cobra.Command{
	Use:   "executions",
	Short: "Browse and prune execution records",
	Long: `Browse the recorded runs of suites and cases, and delete the
records you no longer need.

Examples:
  benchlink executions list --project 3
  benchlink executions get 42
  benchlink executions delete 42 43 44`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var executionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List execution records",
	RunE: guarded("/executions", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListExecutions(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, e := range page.Results {
			rows = append(rows, []any{e.ID, e.Name, e.Status,
				fmt.Sprintf("%d/%d", e.Passed, e.Total), e.Failed})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "STATUS", "PASSED", "FAILED"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var executionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one execution record",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/executions", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		e, err := rt.Client.GetExecution(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), e)
	}),
}

var executionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete execution records",
	Long: `Delete one or more execution records. Multiple IDs are removed in
a single batch call.

Examples:
  benchlink executions delete 42
  benchlink executions delete 42 43 44`,
	Args: cobra.MinimumNArgs(1),
	RunE: guarded("/executions", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		ids := make([]int, 0, len(args))
		for _, arg := range args {
			id, err := parseID(arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}

		if len(ids) == 1 {
			if err := rt.Client.DeleteExecution(cmd.Context(), ids[0]); err != nil {
				return err
			}
		} else if err := rt.Client.BatchDeleteExecutions(cmd.Context(), ids); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d execution(s)\n", len(ids))
		return nil
	}),
}

func init() {
	addListFlags(executionsListCmd)

	executionsCmd.AddCommand(executionsListCmd, executionsGetCmd, executionsDeleteCmd)
	rootCmd.AddCommand(executionsCmd)
}
