package sentinel

import "fmt"

var _ error = Error("")

// Error is an immutable error type backed by a string constant.
// Since Error is comparable, the == comparison used by errors.Is matches it
// through wrapped error chains.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}

// Withf returns an error that matches e with errors.Is and appends a
// formatted detail to its message.
func (e Error) Withf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
