package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/config"
	"github.com/benchlink/benchlink-cli/internal/log"
)

var (
	flagAPIURL     string
	flagConfigPath string
	flagVerbose    bool
	flagNoColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "benchlink",
	Short: "Client for the BenchLink test management platform",
	Long: `benchlink is a command-line client for the BenchLink API test
management platform. It manages projects, API definitions, test cases,
test suites, executions, schedules, and performance tests against a
BenchLink server.

Authenticate once with 'benchlink login'; the session token is stored
locally and attached to every call until you log out or the server
invalidates it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under the given context so that
// in-flight API calls are cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "",
		"BenchLink server URL (overrides config and BENCHLINK_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "",
		"config file (default is $HOME/.benchlink/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false,
		"disable colored output")
}

// loadConfig resolves the effective configuration for this invocation.
func loadConfig() (config.Config, error) {
	path := flagConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if flagAPIURL != "" {
		cfg.BaseURL = flagAPIURL
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// newLogger builds the CLI logger from the effective configuration.
func newLogger(cfg config.Config) *log.Logger {
	lc := log.DefaultConfig()
	lc.Level = log.ParseLevel(cfg.LogLevel)
	lc.Format = log.ParseFormat(cfg.LogFormat)
	return log.New(lc)
}
