package exitcode

import (
	"os"

	"github.com/benchlink/benchlink-cli/internal/errors"
	"github.com/benchlink/benchlink-cli/internal/gateway"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a missing or rejected session
	AuthError = 3

	// NetworkError indicates a network connectivity issue or timeout
	NetworkError = 4

	// ServerError indicates the server rejected or failed the request
	ServerError = 5

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to an exit code using its error code,
// so scripts can branch on the class of failure.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch {
	case errors.HasCode(err, errors.ErrCodeUnauthenticated):
		return AuthError
	case errors.HasCode(err, errors.ErrCodeTransportTimeout),
		errors.HasCode(err, errors.ErrCodeNetworkFailure):
		return NetworkError
	case errors.HasCode(err, errors.ErrCodeServerError):
		return ServerError
	case errors.HasCode(err, errors.ErrCodeConfigLoad),
		errors.HasCode(err, errors.ErrCodeConfigSave),
		errors.HasCode(err, errors.ErrCodeConfigInvalid):
		return UsageError
	}

	if _, ok := gateway.AsAPIError(err); ok {
		return ServerError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags, arguments, or configuration)"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error or timeout"
	case ServerError:
		return "Server rejected or failed the request"
	case Interrupted:
		return "Cancelled by user"
	default:
		return "Unknown error"
	}
}
