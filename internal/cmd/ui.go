package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
	"github.com/benchlink/benchlink-cli/internal/gateway"
	"github.com/benchlink/benchlink-cli/internal/router"
	"github.com/benchlink/benchlink-cli/internal/session"
	"github.com/benchlink/benchlink-cli/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal UI",
	Long: `Open the interactive terminal UI for browsing projects, test
suites, and executions.

Without a valid session the UI starts on the login screen; a session
invalidated by the server mid-use drops back to it.

Examples:
  benchlink ui`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	sessionPath, err := session.DefaultPath()
	if err != nil {
		return err
	}
	store := session.NewFileStore(sessionPath)

	// The redirector is bound once the program exists, so a 401 landing
	// mid-session can steer the UI back to the login screen.
	redirector := tui.NewRedirector()
	gw := gateway.New(cfg.BaseURL, store, redirector, gateway.WithLogger(logger))
	client := api.NewClient(gw, store)
	guard := router.NewGuard(store).WithLogger(logger)

	model := tui.NewModel(client, store, guard)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	redirector.Bind(program.Send)

	_, err = program.Run()
	return err
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
