// Package remote classifies failures from the external AI and media
// services into a small set of user-facing categories. Nothing here
// retries; retry policy belongs to the caller.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// Kind buckets an external-service failure.
type Kind int

const (
	// KindTimeout covers deadline and timeout failures.
	KindTimeout Kind = iota
	// KindConnection covers transport failures before a response.
	KindConnection
	// KindRejected covers responses the service refused (4xx/5xx).
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Error is a classified external-service failure.
type Error struct {
	Kind    Kind
	Status  int // HTTP status for rejected requests, zero otherwise
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("remote: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Classify wraps a transport error into a timeout or connection Error.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var already *Error
	if errors.As(err, &already) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: "request deadline exceeded", cause: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: netErr.Error(), cause: err}
	}
	return &Error{Kind: KindConnection, Message: err.Error(), cause: err}
}

// FromResponse converts a non-2xx response into a rejected Error,
// keeping a short snippet of the body as the message.
func FromResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(snippet))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &Error{Kind: KindRejected, Status: resp.StatusCode, Message: msg}
}

// KindOf extracts the Kind from an error, reporting whether it is a
// classified remote failure at all.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
