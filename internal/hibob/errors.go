package hibob

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingToken is returned before any request is built when the token is empty.
var ErrMissingToken = errors.New("hibob: access token is empty")

// NetworkError covers transport failures and non-2xx answers.
// StatusCode is zero when no response was received.
type NetworkError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("hibob: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 300))
	}
	return fmt.Sprintf("hibob: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a payload that does not match the people envelope.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("hibob: decode people response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
