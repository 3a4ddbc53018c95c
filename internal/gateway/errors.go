package gateway

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/benchlink/benchlink-cli/internal/errors"
)

// APIError carries what the server said about a failed request.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("platform API error (status %d, request_id %s): %s",
			e.StatusCode, e.RequestID, e.Message)
	}
	return fmt.Sprintf("platform API error (status %d): %s", e.StatusCode, e.Message)
}

// errorBody is the shape of DRF error payloads. Different endpoints use
// "detail" or "error"; both are accepted.
type errorBody struct {
	Detail string `json:"detail"`
	Err    string `json:"error"`
}

// serverError builds the pass-through error for any non-401 failure status.
// The server payload is preserved; no retry, no session impact.
func (g *Gateway) serverError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	msg := ""
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		switch {
		case eb.Detail != "":
			msg = eb.Detail
		case eb.Err != "":
			msg = eb.Err
		}
	}
	if msg == "" {
		msg = string(raw)
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		RequestID:  resp.Header.Get(requestIDHeader),
	}

	return errors.Wrap(errors.ErrCodeServerError,
		fmt.Sprintf("request failed with status %d", resp.StatusCode), apiErr)
}

// AsAPIError extracts the server payload from a classified error, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
