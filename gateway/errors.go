package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a gateway failure so callers can branch on it instead of
// matching substrings of the message.
type Kind int

const (
	// KindNetwork covers transport failures: DNS, refused connections,
	// broken pipes. No HTTP status is available.
	KindNetwork Kind = iota
	// KindTimeout is a request that exceeded its deadline.
	KindTimeout
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	// KindConflict is the remote service rejecting a duplicate, e.g. a
	// registration for an email that already has an account.
	KindConflict
	// KindRemote is any other non-success response from the remote API.
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "remote"
	}
}

// Error is the single error type returned by the gateway. Status is zero for
// network and timeout failures.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindRemote
	}
}

func isKind(err error, kind Kind) bool {
	var gwErr *Error
	return errors.As(err, &gwErr) && gwErr.Kind == kind
}

// IsConflict reports whether err is a duplicate-resource rejection.
func IsConflict(err error) bool { return isKind(err, KindConflict) }

// IsUnauthorized reports whether the remote API rejected the credential.
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }

// IsTimeout reports whether the request exceeded its deadline.
func IsTimeout(err error) bool { return isKind(err, KindTimeout) }

// IsNetwork reports whether the request never produced an HTTP response.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// Message extracts the user-facing message from a gateway error. Any other
// error is rendered as-is.
func Message(err error) string {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return err.Error()
}
