// Package errors provides domain-specific error types for cf-ip-updater.
//
// Every failure of an update run maps to one error code, so callers (and tests)
// can tell a failed download from a rejected list or an unwritable target
// without parsing messages.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur during an update run.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration error (e.g. reload requested without a command).
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeDownload indicates a network, TLS, timeout or HTTP status failure for a source.
	ErrCodeDownload ErrorCode = "DOWNLOAD_ERROR"

	// ErrCodeValidation indicates the downloaded list is not usable.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeFileSafety indicates a raw output file holds something other than IP addresses.
	ErrCodeFileSafety ErrorCode = "FILE_SAFETY_ERROR"

	// ErrCodeWrite indicates a target file could not be read or written.
	ErrCodeWrite ErrorCode = "WRITE_ERROR"

	// ErrCodeReload indicates the reload command failed.
	ErrCodeReload ErrorCode = "RELOAD_ERROR"

	// ErrCodeBlock indicates a target file holds a malformed or duplicated marker block.
	ErrCodeBlock ErrorCode = "BLOCK_ERROR"

	// ErrCodeLock indicates another instance holds the PID lock.
	ErrCodeLock ErrorCode = "LOCK_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first domain error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// HasCode reports whether err's chain contains a domain error with the given code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &Error{Code: code})
}

func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

func NewDownloadError(message string, cause error) *Error {
	return Wrap(ErrCodeDownload, message, cause)
}

func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

func NewFileSafetyError(message string, cause error) *Error {
	return Wrap(ErrCodeFileSafety, message, cause)
}

func NewWriteError(message string, cause error) *Error {
	return Wrap(ErrCodeWrite, message, cause)
}

func NewReloadError(message string, cause error) *Error {
	return Wrap(ErrCodeReload, message, cause)
}

func NewBlockError(message string, cause error) *Error {
	return Wrap(ErrCodeBlock, message, cause)
}

func NewLockError(message string, cause error) *Error {
	return Wrap(ErrCodeLock, message, cause)
}
