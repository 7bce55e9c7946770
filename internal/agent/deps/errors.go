package deps

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrQuotaExceeded matches any BackendError reporting a rate or quota limit
var ErrQuotaExceeded = errors.New("backend quota exceeded")

// BackendError is a classified generation backend failure
type BackendError struct {
	Backend    string
	StatusCode int // 0 when the backend reported no status
	Message    string
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Backend, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Backend, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is reports quota errors as ErrQuotaExceeded
func (e *BackendError) Is(target error) bool {
	return target == ErrQuotaExceeded && e.Quota()
}

// Quota reports whether the backend rejected the call for rate or quota reasons
func (e *BackendError) Quota() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// HTTPStatus maps the failure to a response status: the backend's own
// error status when it has one, otherwise 500.
func (e *BackendError) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// AsBackendError returns err as a *BackendError, wrapping unclassified
// errors with no status.
func AsBackendError(backend string, err error) *BackendError {
	var be *BackendError
	if errors.As(err, &be) {
		return be
	}
	return &BackendError{Backend: backend, Message: err.Error(), Err: err}
}

// IsTimeout reports whether err is a deadline or transport timeout.
// Backends report these as 504 so the caller still gets a JSON error
// before the server's write deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
