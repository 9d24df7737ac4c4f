package errors

import (
	"errors"
	"fmt"
)

// Category groups codes by the layer that raised them.
type Category string

const (
	CategoryQuery  Category = "query"
	CategoryRender Category = "render"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// VtlError carries a registered code alongside the human-readable parts.
// Detail is usually a DOM dump and is part of Error() so test failures
// show it.
type VtlError struct {
	Code       string
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	Wrapped    error
}

func (e *VtlError) Error() string {
	msg := e.FormatCompact()
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	if e.Detail != "" {
		msg += "\n\n" + e.Detail
	}
	return msg
}

func (e *VtlError) Unwrap() error { return e.Wrapped }

// Is matches any VtlError with the same non-empty code, so
// errors.Is(err, New("Q001")) works regardless of message.
func (e *VtlError) Is(target error) bool {
	t, ok := target.(*VtlError)
	return ok && t.Code != "" && t.Code == e.Code
}

func (e *VtlError) WithMessagef(format string, args ...any) *VtlError {
	e.Message = fmt.Sprintf(format, args...)
	return e
}

func (e *VtlError) WithSuggestion(s string) *VtlError {
	e.Suggestion = s
	return e
}

func (e *VtlError) WithDetail(d string) *VtlError {
	e.Detail = d
	return e
}

func (e *VtlError) Wrap(err error) *VtlError {
	e.Wrapped = err
	return e
}

// New returns a fresh error for a registered code. Unregistered codes get
// the message "Unknown error".
func New(code string) *VtlError {
	e := &VtlError{Code: code, Message: "Unknown error"}
	if t, ok := Lookup(code); ok {
		e.Category, e.Message = t.Category, t.Message
	}
	return e
}

// Newf builds an uncoded error.
func Newf(category Category, format string, args ...any) *VtlError {
	return &VtlError{Category: category, Message: fmt.Sprintf(format, args...)}
}

// FromError returns err itself when it already is a VtlError and wraps it
// under code otherwise. A nil err stays nil.
func FromError(err error, code string) *VtlError {
	if err == nil {
		return nil
	}
	var ve *VtlError
	if errors.As(err, &ve) {
		return ve
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err or anything it wraps is a VtlError with code.
func HasCode(err error, code string) bool {
	return errors.Is(err, &VtlError{Code: code})
}
