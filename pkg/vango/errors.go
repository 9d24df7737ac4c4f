package vango

import "fmt"

// PanicError carries a panic value that was not an error.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("vango: panic: %v", e.Value)
}

// toError converts a recovered panic value into an error.
// Error values, runtime errors included, pass through unchanged.
func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
