package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Manage notification channels",
	Long: `Manage the channels execution results are delivered to, such as
email or webhook sinks.

Examples:
  benchlink notifications list
  benchlink notifications create --name ops-hook --type webhook
  benchlink notifications test 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notification channels",
	RunE: guarded("/system/notifications", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListNotificationChannels(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, ch := range page.Results {
			rows = append(rows, []any{ch.ID, ch.Name, ch.ChannelType, boolIcon(ch.IsActive)})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "TYPE", "ACTIVE"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var notificationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a notification channel",
	RunE: guarded("/system/notifications", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.NotificationChannelInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.ChannelType, _ = cmd.Flags().GetString("type")

		ch, err := rt.Client.CreateNotificationChannel(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created channel %d: %s\n", ch.ID, ch.Name)
		return nil
	}),
}

var notificationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a notification channel",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/system/notifications", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteNotificationChannel(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted channel %d\n", id)
		return nil
	}),
}

var notificationsTestCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Send a probe through a channel",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/system/notifications", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.TestNotificationChannel(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Probe sent through channel %d\n", id)
		return nil
	}),
}

func init() {
	addListFlags(notificationsListCmd)

	notificationsCreateCmd.Flags().String("name", "", "channel name")
	notificationsCreateCmd.Flags().String("type", "webhook", "channel type (email, webhook, slack)")
	notificationsCreateCmd.MarkFlagRequired("name")

	notificationsCmd.AddCommand(notificationsListCmd, notificationsCreateCmd,
		notificationsDeleteCmd, notificationsTestCmd)
	rootCmd.AddCommand(notificationsCmd)
}
