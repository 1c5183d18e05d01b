// Package flagerr defines the coded errors produced by the flag resolution
// pipeline. Every failure that reaches the evaluation boundary carries one of
// a small set of machine-readable codes, mirroring the error taxonomy exposed
// to callers.
package flagerr

import (
	"errors"
	"fmt"
)

// Code is a machine-readable classification of a resolution failure.
type Code string

const (
	CodeFlagNotFound Code = "FLAG_NOT_FOUND"
	CodeTypeMismatch Code = "TYPE_MISMATCH"
	CodeParseError   Code = "PARSE_ERROR"
	CodeGeneral      Code = "GENERAL"
)

// Error is a resolution failure annotated with a taxonomy code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports that the requested flag does not exist on the backend.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeFlagNotFound, Message: fmt.Sprintf(format, args...)}
}

// TypeMismatch reports a structural or type conflict between the resolved
// value and what the caller asked for.
func TypeMismatch(format string, args ...any) *Error {
	return &Error{Code: CodeTypeMismatch, Message: fmt.Sprintf(format, args...)}
}

// Parse reports a wire value that cannot be represented under its declared
// schema.
func Parse(format string, args ...any) *Error {
	return &Error{Code: CodeParseError, Message: fmt.Sprintf(format, args...)}
}

// General reports any failure outside the more specific categories, such as
// transport problems or malformed flag paths.
func General(format string, args ...any) *Error {
	return &Error{Code: CodeGeneral, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the taxonomy code carried by err. Errors produced outside
// the pipeline classify as general.
func CodeOf(err error) Code {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return CodeGeneral
}
