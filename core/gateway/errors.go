package gateway

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRejected is the kind of every non-2xx answer of the remote API.
	ErrRejected = errors.New("rejected by the remote API")
	// ErrUnreachable is the kind of every transport failure or unreadable answer.
	ErrUnreachable = errors.New("remote API unreachable")

	// ErrInvalidCredentials is the login classification of ErrRejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConnection is the login classification of ErrUnreachable.
	ErrConnection = errors.New("connection error")

	errNoToken = errors.New("missing access token")
)

// Error describes a failed remote call. errors.Is matches its Kind, and errors.Cause returns it.
type Error struct {
	Kind   error
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Cause() error {
	return e.Kind
}

func rejected(op string, status int, err error) *Error {
	return &Error{Kind: ErrRejected, Op: op, Status: status, Err: err}
}

func unreachable(op string, err error) *Error {
	return &Error{Kind: ErrUnreachable, Op: op, Err: err}
}

// classifyLogin turns a remote failure into one of the two login classifications.
// The underlying failure stays reachable through Unwrap.
func classifyLogin(err error) error {
	var gErr *Error
	if !errors.As(err, &gErr) {
		return &Error{Kind: ErrConnection, Op: "login", Err: err}
	}
	kind := ErrConnection
	if gErr.Kind == ErrRejected {
		kind = ErrInvalidCredentials
	}
	return &Error{Kind: kind, Op: "login", Status: gErr.Status, Err: gErr}
}
