// Package errors defines the error taxonomy shared by the signal pipeline.
//
// Every failure surfaced by the pipeline is classified under one of three
// codes: CodeNotFound for missing input or configuration files,
// CodeValidation for documents that parse but fail a structural requirement,
// and CodeUnclassified for everything else (malformed syntax, I/O faults).
// The run reporter uses the classification for logging only; the error
// message text is what ends up in the error-shaped run record.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies the failure class of a pipeline error.
type Code string

const (
	// CodeNotFound indicates a configuration or input path that does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeValidation indicates a document that parsed but failed validation.
	CodeValidation Code = "VALIDATION_FAILED"
	// CodeUnclassified covers every other failure surfaced during a run.
	CodeUnclassified Code = "UNCLASSIFIED"
)

// PipelineError is a classified pipeline failure.
type PipelineError struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// New creates a classified error with the given message.
func New(code Code, message string) *PipelineError {
	return &PipelineError{Code: code, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(code Code, format string, args ...any) *PipelineError {
	return &PipelineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error while keeping it available via Unwrap.
func Wrap(code Code, err error, message string) *PipelineError {
	return &PipelineError{Code: code, Message: message, Err: err}
}

// NotFoundf creates a CodeNotFound error with a formatted message.
func NotFoundf(format string, args ...any) *PipelineError {
	return Newf(CodeNotFound, format, args...)
}

// Validationf creates a CodeValidation error with a formatted message.
func Validationf(format string, args ...any) *PipelineError {
	return Newf(CodeValidation, format, args...)
}

// CodeOf returns the classification of err. Errors that are not a
// PipelineError anywhere in their chain are CodeUnclassified.
func CodeOf(err error) Code {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeUnclassified
}

// IsNotFound reports whether err is classified CodeNotFound.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsValidation reports whether err is classified CodeValidation.
func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}
