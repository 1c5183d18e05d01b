package flagresolve

import (
	"github.com/TimurManjosov/flagresolve/internal/flagerr"
)

// ErrorCode classifies an evaluation failure surfaced in an Evaluation.
// The zero value means no error.
type ErrorCode = flagerr.Code

const (
	ErrorCodeFlagNotFound = flagerr.CodeFlagNotFound
	ErrorCodeTypeMismatch = flagerr.CodeTypeMismatch
	ErrorCodeParseError   = flagerr.CodeParseError
	ErrorCodeGeneral      = flagerr.CodeGeneral
)

// Evaluation reasons.
const (
	// ReasonResolved marks a successful resolution with an assigned variant.
	ReasonResolved = "RESOLVED"
	// ReasonError marks any evaluation that failed and fell back to the
	// caller's default value.
	ReasonError = "ERROR"
)

// reasonNoAssignment explains a successful resolution where the backend
// matched no rule. This is not an error; the default value is returned.
const reasonNoAssignment = "The server returned no assignment for the flag. " +
	"Typically, this happens if no configured rules matches the given evaluation context."
