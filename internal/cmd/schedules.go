package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Manage scheduled suite runs",
	Long: `Manage schedules that run a test suite on a cron expression.

Examples:
  benchlink schedules list
  benchlink schedules create --name nightly --project 3 --testsuite 5 --cron "0 2 * * *"
  benchlink schedules pause 8
  benchlink schedules resume 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var schedulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedules",
	RunE: guarded("/scheduler", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListSchedules(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, s := range page.Results {
			rows = append(rows, []any{s.ID, s.Name, s.CronExpression, s.Status, s.TestSuite})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "CRON", "STATUS", "SUITE"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var schedulesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a schedule",
	RunE: guarded("/scheduler", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.ScheduleInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.ProjectID, _ = cmd.Flags().GetInt("project")
		in.TestSuiteID, _ = cmd.Flags().GetInt("testsuite")
		in.CronExpression, _ = cmd.Flags().GetString("cron")
		in.Description, _ = cmd.Flags().GetString("description")

		s, err := rt.Client.CreateSchedule(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created schedule %d: %s (%s)\n", s.ID, s.Name, s.CronExpression)
		return nil
	}),
}

var schedulesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a schedule",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/scheduler", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteSchedule(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted schedule %d\n", id)
		return nil
	}),
}

var schedulesPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Pause a schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  guarded("/scheduler", toggleSchedule("paused")),
}

var schedulesResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume a paused schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  guarded("/scheduler", toggleSchedule("active")),
}

func toggleSchedule(status string) func(cmd *cobra.Command, rt *Runtime, args []string) error {
	return func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := rt.Client.ToggleSchedule(cmd.Context(), id, status)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schedule %d is now %s\n", s.ID, s.Status)
		return nil
	}
}

func init() {
	addListFlags(schedulesListCmd)

	schedulesCreateCmd.Flags().String("name", "", "schedule name")
	schedulesCreateCmd.Flags().Int("project", 0, "project ID")
	schedulesCreateCmd.Flags().Int("testsuite", 0, "test suite ID")
	schedulesCreateCmd.Flags().String("cron", "", "cron expression")
	schedulesCreateCmd.Flags().String("description", "", "schedule description")
	schedulesCreateCmd.MarkFlagRequired("name")
	schedulesCreateCmd.MarkFlagRequired("project")
	schedulesCreateCmd.MarkFlagRequired("testsuite")
	schedulesCreateCmd.MarkFlagRequired("cron")

	schedulesCmd.AddCommand(schedulesListCmd, schedulesCreateCmd, schedulesDeleteCmd,
		schedulesPauseCmd, schedulesResumeCmd)
	rootCmd.AddCommand(schedulesCmd)
}
