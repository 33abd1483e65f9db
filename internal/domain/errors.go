package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNoProductionDeployment is returned when a listing contains no
	// production deployment at all. Without one there is nothing to
	// protect, so a run must refuse to delete anything.
	ErrNoProductionDeployment = errors.New("no production deployment found")
)

// ExitCoder is implemented by errors that map to a specific process
// exit code. Errors without it exit 1.
type ExitCoder interface {
	ExitCode() int
}

// ConfigError reports one or more configuration problems found during
// startup validation. Fatal, exit code 1.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration:\n  - %s", strings.Join(e.Problems, "\n  - "))
}

func (e *ConfigError) ExitCode() int { return 1 }

// FetchError wraps a failure to list deployments. Fatal, exit code 1.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch deployments: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) ExitCode() int { return 1 }

// PermanentItemError is a non-retryable API failure on a single delete.
// A non-retryable 4xx almost always means a token scope or permission
// problem that affects every remaining candidate, so it aborts the
// whole run rather than churning through the rest.
type PermanentItemError struct {
	ID  string
	Err error
}

func (e *PermanentItemError) Error() string {
	return fmt.Sprintf("non-retryable failure deleting deployment %s: %v", e.ID, e.Err)
}

func (e *PermanentItemError) Unwrap() error { return e.Err }

func (e *PermanentItemError) ExitCode() int { return 1 }

// PartialFailureError signals that the run completed but some
// candidates were permanently retired without being deleted. Exit
// code 2.
type PartialFailureError struct {
	Failed int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%d deployment(s) could not be deleted", e.Failed)
}

func (e *PartialFailureError) ExitCode() int { return 2 }

// APIError is a structured failure response from the Cloudflare API.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

// Class maps the HTTP status to a retry classification. An APIError
// with a 2xx status only exists when the response envelope carried
// success=false, which is treated as a server-side hiccup.
func (e *APIError) Class() StatusClass {
	if c := ClassifyStatus(e.Status); c != StatusOK {
		return c
	}
	return StatusServerError
}

// ExitCode maps an error to the process exit code declared in the CLI
// contract: 0 success, 1 config/fetch/abort, 2 partial failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
