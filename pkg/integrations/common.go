package integrations

import (
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a repository, branch or file doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// unexpected statuses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when the API refuses the request with 403 or
	// 429, which GitHub uses for exhausted unauthenticated quotas.
	ErrRateLimited = errors.New("rate limited")
)

// NewHTTPClient creates an HTTP client with the given timeout, or
// [DefaultTimeout] when timeout is not positive.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
