package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
	"github.com/benchlink/benchlink-cli/internal/config"
	"github.com/benchlink/benchlink-cli/internal/errors"
	"github.com/benchlink/benchlink-cli/internal/gateway"
	"github.com/benchlink/benchlink-cli/internal/log"
	"github.com/benchlink/benchlink-cli/internal/router"
	"github.com/benchlink/benchlink-cli/internal/session"
)

// Runtime bundles the wired client stack for one command invocation.
type Runtime struct {
	Config config.Config
	Logger *log.Logger
	Store  session.Store
	Client *api.Client
	Guard  *router.Guard
}

// consoleNavigator is the terminal counterpart of a login redirect. When
// the server invalidates the session mid-command there is no page to land
// on, so it tells the user where to go instead.
type consoleNavigator struct{}

func (consoleNavigator) RedirectToLogin() {
	fmt.Fprintln(os.Stderr, "Your session has expired. Run 'benchlink login' to sign in again.")
}

// newRuntime wires the session store, gateway, and API client for the
// current invocation.
func newRuntime() (*Runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	sessionPath, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	store := session.NewFileStore(sessionPath)

	gw := gateway.New(cfg.BaseURL, store, consoleNavigator{},
		gateway.WithLogger(logger))

	return &Runtime{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Client: api.NewClient(gw, store),
		Guard:  router.NewGuard(store).WithLogger(logger),
	}, nil
}

// requireRoute resolves the navigation guard for the screen a command
// corresponds to. Commands backed by a private screen refuse to run
// without a session, the same way the UI bounces to the login page.
func (rt *Runtime) requireRoute(path string) error {
	if rt.Guard.Decide(path) == router.RedirectedToLogin {
		return errors.NewNotLoggedInError()
	}
	return nil
}

// guarded wraps a RunE so the command first passes the navigation guard
// for its screen, then runs with a wired runtime.
func guarded(path string, run func(cmd *cobra.Command, rt *Runtime, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		if err := rt.requireRoute(path); err != nil {
			return err
		}
		return run(cmd, rt, args)
	}
}

// open wraps a RunE for commands that map to public screens or need no
// session at all.
func open(run func(cmd *cobra.Command, rt *Runtime, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		return run(cmd, rt, args)
	}
}
