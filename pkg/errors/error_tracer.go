package errors

import "github.com/pkg/errors"

// StackTracer is implemented by errors that carry a captured stack trace,
// notably everything produced by github.com/pkg/errors.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer pairs a short message, conventionally one of the ErrorCode
// strings, with an underlying error that carries a stack trace. The logger
// pulls the trace out through StackTracer when the error is reported.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates an ErrorTracer with the given message and no underlying
// error yet. Callers usually chain Wrap onto it.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{Message: message}
}

// TracerFromError creates an ErrorTracer whose message is err's own, keeping
// err's stack trace or capturing one here if it has none.
func TracerFromError(err error) *ErrorTracer {
	return NewTracer(err.Error()).Wrap(err)
}

// Error returns the tracer's message, satisfying the error interface.
func (e *ErrorTracer) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap attaches err as the underlying error and returns the tracer. A stack
// trace is captured at the call site unless err already carries one.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = ensureStack(err)
	return e
}

// StackTrace returns the underlying error's stack trace, or nil if there is
// no underlying error.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if st, ok := e.Unwrap().(StackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func ensureStack(err error) error {
	if _, ok := err.(StackTracer); ok {
		return err
	}
	return errors.WithStack(err)
}
