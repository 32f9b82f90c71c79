package apperrors

import (
	"github.com/pkg/errors"
)

// Kind is the machine-readable code exposed to API clients alongside the
// human-readable message.
type Kind string

const (
	KindMissingData       Kind = "missing_data"
	KindInvalidStatus     Kind = "invalid_status"
	KindAlreadyApplied    Kind = "already_applied"
	KindDuplicateLocation Kind = "duplicate_location"
	KindInsertFailed      Kind = "insert_failed"
	KindUpdateFailed      Kind = "update_failed"
	KindNotFound          Kind = "not_found"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func Wrap(err error, kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		cause:   err,
	}
}

// KindOf returns the kind attached to err, or "" for untagged errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
