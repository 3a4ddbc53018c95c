package exitcode

import (
	"fmt"
	"testing"

	"github.com/benchlink/benchlink-cli/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: Success,
		},
		{
			name: "unauthenticated",
			err:  errors.New(errors.ErrCodeUnauthenticated, "session rejected"),
			want: AuthError,
		},
		{
			name: "timeout",
			err:  errors.New(errors.ErrCodeTransportTimeout, "request timed out"),
			want: NetworkError,
		},
		{
			name: "network failure",
			err:  errors.New(errors.ErrCodeNetworkFailure, "connection refused"),
			want: NetworkError,
		},
		{
			name: "server error",
			err:  errors.New(errors.ErrCodeServerError, "status 500"),
			want: ServerError,
		},
		{
			name: "invalid config",
			err:  errors.New(errors.ErrCodeConfigInvalid, "bad theme"),
			want: UsageError,
		},
		{
			name: "wrapped auth error",
			err:  fmt.Errorf("running command: %w", errors.New(errors.ErrCodeUnauthenticated, "no session")),
			want: AuthError,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("something else"),
			want: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	if desc := GetExitCodeDescription(Success); desc != "Success" {
		t.Errorf("unexpected description: %s", desc)
	}
	if desc := GetExitCodeDescription(99); desc != "Unknown error" {
		t.Errorf("unexpected description: %s", desc)
	}
}
