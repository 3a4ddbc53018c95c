package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the BenchLink server",
	Long: `Log in to the BenchLink server with your username and password.

The returned session token is stored in ~/.benchlink/session.json and
attached to every subsequent call. Credentials omitted from the flags
are prompted for interactively.

Examples:
  benchlink login
  benchlink login --username admin
  benchlink login --username admin --password secret`,
	RunE: open(runLogin),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the local session",
	Long: `Log out by discarding the locally stored session token.

The token is only removed locally; the server keeps its record until
the token expires.

Examples:
  benchlink logout`,
	RunE: open(runLogout),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user account",
	Long: `Register a new user account on the BenchLink server.

Examples:
  benchlink register --username alice --email alice@example.com`,
	RunE: open(runRegister),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	Long: `Show the user the current session belongs to.

The user is fetched from the server, so this also verifies that the
stored token is still accepted.

Examples:
  benchlink whoami`,
	RunE: guarded("/dashboard", runWhoami),
}

func runLogin(cmd *cobra.Command, rt *Runtime, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	if username == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&username).
				Validate(huh.ValidateNotEmpty()),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(huh.ValidateNotEmpty()),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	resp, err := rt.Client.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	if resp.User != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.User.Username)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)
	}
	return nil
}

func runLogout(cmd *cobra.Command, rt *Runtime, args []string) error {
	if !rt.Store.IsAuthenticated() {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	if err := rt.Client.Logout(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}

func runRegister(cmd *cobra.Command, rt *Runtime, args []string) error {
	var req api.RegisterRequest
	req.Username, _ = cmd.Flags().GetString("username")
	req.Password, _ = cmd.Flags().GetString("password")
	req.Email, _ = cmd.Flags().GetString("email")
	req.Phone, _ = cmd.Flags().GetString("phone")

	if req.Username == "" || req.Password == "" || req.Email == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Username").Value(&req.Username).
				Validate(huh.ValidateNotEmpty()),
			huh.NewInput().Title("Email").Value(&req.Email).
				Validate(huh.ValidateNotEmpty()),
			huh.NewInput().Title("Phone").Value(&req.Phone),
			huh.NewInput().Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&req.Password).
				Validate(huh.ValidateNotEmpty()),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	req.PasswordConfirm = req.Password

	resp, err := rt.Client.Register(cmd.Context(), req)
	if err != nil {
		return err
	}

	name := req.Username
	if resp.User != nil {
		name = resp.User.Username
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", name)
	return nil
}

func runWhoami(cmd *cobra.Command, rt *Runtime, args []string) error {
	user, err := rt.Client.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s", user.Username)
	if user.Email != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " <%s>", user.Email)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func init() {
	loginCmd.Flags().String("username", "", "account username")
	loginCmd.Flags().String("password", "", "account password")

	registerCmd.Flags().String("username", "", "account username")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("email", "", "account email address")
	registerCmd.Flags().String("phone", "", "account phone number")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd)
}
