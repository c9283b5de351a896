package core

import (
	"errors"
	"fmt"
)

// ─── Error kinds ─────────────────────────────────────────────────────────────

// ErrorKind classifies why a cleanup operation failed.
type ErrorKind int

const (
	KindNone ErrorKind = iota

	// PermissionDenied: elevation required but absent.
	PermissionDenied

	// UnsupportedPlatform: no cleanup strategy for the detected OS.
	UnsupportedPlatform

	// ExternalCommandFailed: a child process exited unsuccessfully.
	ExternalCommandFailed

	// FilesystemAccessError: a deletion failed (permissions, lock, I/O).
	FilesystemAccessError
)

// String returns the identifier of the kind for diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case PermissionDenied:
		return "PermissionDenied"
	case UnsupportedPlatform:
		return "UnsupportedPlatform"
	case ExternalCommandFailed:
		return "ExternalCommandFailed"
	case FilesystemAccessError:
		return "FilesystemAccessError"
	default:
		return "None"
	}
}

// Error is a classified operation error. Operations convert every fault
// into one of these at the narrowest possible scope; nothing unwinds past
// an operation boundary.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a classified error from a format string.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error with a short context message.
func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the ErrorKind from an error chain, or KindNone.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindNone
}

// ─── Operation results ───────────────────────────────────────────────────────

// OperationResult is the structured outcome every cleanup operation hands
// back to its caller. Errors are per-item failure descriptions (one per
// browser, per service, per command), never collapsed into one message.
type OperationResult struct {
	Succeeded bool
	Message   string
	Errors    []string
	FailKind  ErrorKind
}

// Success builds a succeeded result with a fixed confirmation message.
func Success(message string) OperationResult {
	return OperationResult{Succeeded: true, Message: message}
}

// Failure builds a failed result from a classified error.
func Failure(err error) OperationResult {
	return OperationResult{
		Succeeded: false,
		Message:   err.Error(),
		FailKind:  KindOf(err),
	}
}
