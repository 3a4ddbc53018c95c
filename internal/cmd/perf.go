package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Manage performance tests",
	Long: `Manage load-test definitions and run them against a target.

A run blocks until the server finishes the load test, which can take
minutes; the call uses an extended timeout.

Examples:
  benchlink perf list --project 3
  benchlink perf create --project 3 --name spike --target-url https://staging.example.com --users 50
  benchlink perf run 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var perfListCmd = &cobra.Command{
	Use:   "list",
	Short: "List performance tests",
	RunE: guarded("/performance/tests", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListPerformanceTests(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, pt := range page.Results {
			rows = append(rows, []any{pt.ID, pt.Name, pt.TargetURL, pt.Users, pt.Duration})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "TARGET", "USERS", "DURATION"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var perfGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one performance test",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/performance/tests", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		pt, err := rt.Client.GetPerformanceTest(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), pt)
	}),
}

var perfCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a performance test",
	RunE: guarded("/performance/tests", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.PerformanceTestInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.Project, _ = cmd.Flags().GetInt("project")
		in.TargetURL, _ = cmd.Flags().GetString("target-url")
		in.Users, _ = cmd.Flags().GetInt("users")
		in.SpawnRate, _ = cmd.Flags().GetInt("spawn-rate")
		in.Duration, _ = cmd.Flags().GetInt("duration")

		pt, err := rt.Client.CreatePerformanceTest(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created performance test %d: %s\n", pt.ID, pt.Name)
		return nil
	}),
}

var perfDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a performance test",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/performance/tests", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeletePerformanceTest(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted performance test %d\n", id)
		return nil
	}),
}

var perfRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Run a performance test and wait for the report",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/performance/tests", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Running load test, this can take several minutes...")
		report, err := rt.Client.ExecutePerformanceTest(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"Status: %s\nRequests: %d (%d failed)\nAvg response: %.1fms\nThroughput: %.1f req/s\n",
			report.Status, report.TotalRequests, report.FailedRequests,
			report.AvgResponseTime, report.RequestsPerSec)
		return nil
	}),
}

func init() {
	addListFlags(perfListCmd)

	perfCreateCmd.Flags().String("name", "", "test name")
	perfCreateCmd.Flags().Int("project", 0, "project ID")
	perfCreateCmd.Flags().String("target-url", "", "URL under load")
	perfCreateCmd.Flags().Int("users", 10, "concurrent virtual users")
	perfCreateCmd.Flags().Int("spawn-rate", 1, "users spawned per second")
	perfCreateCmd.Flags().Int("duration", 60, "run duration in seconds")
	perfCreateCmd.MarkFlagRequired("name")
	perfCreateCmd.MarkFlagRequired("project")
	perfCreateCmd.MarkFlagRequired("target-url")

	perfCmd.AddCommand(perfListCmd, perfGetCmd, perfCreateCmd, perfDeleteCmd, perfRunCmd)
	rootCmd.AddCommand(perfCmd)
}
