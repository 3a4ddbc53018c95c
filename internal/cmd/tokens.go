package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage global auth tokens",
	Long: `Manage global tokens, shared credentials that test runs reference
by name. These are platform resources and have nothing to do with your
own login session.

Examples:
  benchlink tokens list
  benchlink tokens create --name ci-bearer --auth-type bearer --token eyJhb...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var tokensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List global tokens",
	RunE: guarded("/global-tokens", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		page, err := rt.Client.ListGlobalTokens(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(page.Results))
		for _, t := range page.Results {
			rows = append(rows, []any{t.ID, t.Name, t.AuthType, boolIcon(t.IsActive), t.Description})
		}
		pageNum, _ := cmd.Flags().GetInt("page")
		return table(cmd.OutOrStdout(),
			[]any{"ID", "NAME", "AUTH TYPE", "ACTIVE", "DESCRIPTION"},
			rows, max(pageNum, 1), page.Count)
	}),
}

var tokensCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a global token",
	RunE: guarded("/global-tokens", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		var in api.GlobalTokenInput
		in.Name, _ = cmd.Flags().GetString("name")
		in.AuthType, _ = cmd.Flags().GetString("auth-type")
		in.Token, _ = cmd.Flags().GetString("token")
		in.Description, _ = cmd.Flags().GetString("description")

		t, err := rt.Client.CreateGlobalToken(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created token %d: %s\n", t.ID, t.Name)
		return nil
	}),
}

var tokensDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a global token",
	Args:  cobra.ExactArgs(1),
	RunE: guarded("/global-tokens", func(cmd *cobra.Command, rt *Runtime, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.Client.DeleteGlobalToken(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted token %d\n", id)
		return nil
	}),
}

func init() {
	addListFlags(tokensListCmd)

	tokensCreateCmd.Flags().String("name", "", "token name")
	tokensCreateCmd.Flags().String("auth-type", "bearer", "auth type (bearer, basic, apikey)")
	tokensCreateCmd.Flags().String("token", "", "credential value")
	tokensCreateCmd.Flags().String("description", "", "token description")
	tokensCreateCmd.MarkFlagRequired("name")
	tokensCreateCmd.MarkFlagRequired("token")

	tokensCmd.AddCommand(tokensListCmd, tokensCreateCmd, tokensDeleteCmd)
	rootCmd.AddCommand(tokensCmd)
}
