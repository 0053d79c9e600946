// Package apierror classifies every failure the dashboard client can surface.
// The kind of an error decides how far it propagates: auth errors end the
// session, transient errors stay scoped to the widget whose fetch failed,
// validation errors never leave the form, and channel errors only degrade the
// live feed to snapshot-only mode.
package apierror

import (
	"errors"
	"fmt"
)

// Kind partitions failures by recovery scope.
type Kind int

const (
	KindTransient  Kind = iota // network/5xx — retryable, scoped to one widget
	KindAuth                   // absent/expired/rejected credential — forces logout
	KindValidation             // client-side field checks — blocks submission
	KindChannel                // push-channel failure — snapshot-only mode
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindChannel:
		return "channel"
	default:
		return "transient"
	}
}

// Error carries the classification alongside a user-facing message and the
// wrapped cause. Fields is populated for validation errors only.
type Error struct {
	Kind    Kind
	Op      string // originating operation, e.g. "api.ListSales"
	Message string // safe to show to the user
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Auth(op, msg string, err error) *Error {
	return &Error{Kind: KindAuth, Op: op, Message: msg, Err: err}
}

func Transient(op, msg string, err error) *Error {
	return &Error{Kind: KindTransient, Op: op, Message: msg, Err: err}
}

func Channel(op, msg string, err error) *Error {
	return &Error{Kind: KindChannel, Op: op, Message: msg, Err: err}
}

// Validation wraps per-field violations gathered before any network call.
func Validation(op string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: "validation failed", Fields: fields}
}

// KindOf extracts the classification of err. Unclassified errors are treated
// as transient so callers still isolate them to the widget that produced them.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindTransient
}

// IsAuth reports whether err must propagate session-wide.
func IsAuth(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == KindAuth
}
