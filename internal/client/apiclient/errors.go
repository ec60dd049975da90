package apiclient

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
)

var (
	ErrUnreachable     = errors.New("backend unreachable")
	ErrNetwork         = errors.New("network error")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("resource not found")
	ErrServer          = errors.New("server error")
	ErrRequest         = errors.New("request failed")
)

// Kind classifies a failed request.
type Kind int

const (
	KindUnreachable Kind = iota + 1
	KindNetwork
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindServer
	KindRequest
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnreachable:
		return ErrUnreachable
	case KindNetwork:
		return ErrNetwork
	case KindUnauthenticated:
		return ErrUnauthenticated
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	default:
		return ErrRequest
	}
}

// Error is returned for every failed request. Message is the user-facing
// text; Status is 0 when no response was received.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind.sentinel() }

// Message returns the user-facing text of err: the Message of an *Error,
// otherwise err.Error().
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// transportError classifies a failure where no response arrived. Dial and
// DNS failures mean the backend is not there at all.
func (c *Client) transportError(err error) *Error {
	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		(errors.As(err, &opErr) && opErr.Op == "dial") {
		return &Error{
			Kind:    KindUnreachable,
			Message: "Backend server is not available. Please check if the server is running on " + c.baseURL,
			Err:     err,
		}
	}
	return &Error{
		Kind:    KindNetwork,
		Message: "Network error. Please check your connection.",
		Err:     err,
	}
}

// statusError maps a non-2xx response. The 401 side effects are the
// caller's job.
func statusError(resp *http.Response) *Error {
	msg := serverMessage(resp.Body)

	e := &Error{Status: resp.StatusCode, Message: msg}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		e.Kind = KindUnauthenticated
		e.Message = "Authentication required"
	case resp.StatusCode == http.StatusForbidden:
		e.Kind = KindForbidden
		if msg == "" {
			e.Message = "403 Forbidden"
		}
	case resp.StatusCode == http.StatusNotFound:
		e.Kind = KindNotFound
		if msg == "" {
			e.Message = "Resource not found"
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		e.Kind = KindServer
		if msg == "" {
			e.Message = "Server error"
		}
	default:
		e.Kind = KindRequest
		if msg == "" {
			e.Message = strings.TrimSpace(resp.Status)
		}
		if e.Message == "" {
			e.Message = "Request failed"
		}
	}
	return e
}

// serverMessage extracts the "message" field of a JSON object body.
func serverMessage(body io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil || len(b) == 0 {
		return ""
	}
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return ""
	}
	if s, ok := payload.Message.(string); ok {
		return s
	}
	return ""
}
