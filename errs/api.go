package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrBadRequest = errors.New("malformed request")
	ErrUnknown    = errors.New("unknown error")
)

// Envelope error codes. The boundary response carries exactly one of these;
// callers discriminate on them, so the set is closed.
const (
	CodeUnknown    = "COMMON.UNKNOWN"
	CodeBadRequest = "COMMON.BAD_REQUEST"
	CodeValidation = "COMMON.VALIDATION_ERROR"
	CodeNotFound   = "COMMON.NOT_FOUND"

	CodeProjectNotFound      = "PROJECT.NOT_FOUND"
	CodeProjectListFailed    = "PROJECT.LIST_FAILED"
	CodeProjectCreateFailed  = "PROJECT.CREATE_FAILED"
	CodeProjectUpdateFailed  = "PROJECT.UPDATE_FAILED"
	CodeProjectDeleteFailed  = "PROJECT.DELETE_FAILED"
	CodeProjectMissingAuthor = "PROJECT.MISSING_AUTHOR"

	CodeIdeaNotFound     = "IDEA.NOT_FOUND"
	CodeIdeaListFailed   = "IDEA.LIST_FAILED"
	CodeIdeaCreateFailed = "IDEA.CREATE_FAILED"

	CodeCategoryListFailed = "CATEGORY.LIST_FAILED"

	CodeEventNotFound     = "EVENT.NOT_FOUND"
	CodeEventListFailed   = "EVENT.LIST_FAILED"
	CodeEventCreateFailed = "EVENT.CREATE_FAILED"
	CodeEventUpdateFailed = "EVENT.UPDATE_FAILED"
	CodeEventDeleteFailed = "EVENT.DELETE_FAILED"
)

type ApiErr struct {
	StatusCode int
	Code       string // envelope error code
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// NewNotFound signals that the requested row does not exist. This is an
// expected outcome, not something to log loudly.
func NewNotFound(code, entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		Code:       code,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewValidationError reports a payload shape or constraint violation found
// at the boundary, before any repository is invoked.
func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidation,
		err:        ErrValidation,
		Details:    reason,
		Field:      field,
	}
}

// NewValidationErrorWithCode is for validation failures that carry a
// domain-specific envelope code (e.g. a missing project author).
func NewValidationErrorWithCode(code, field, reason string) *ApiErr {
	e := NewValidationError(field, reason)
	e.Code = code
	return e
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Code:       CodeBadRequest,
		err:        ErrBadRequest,
		Details:    message,
	}
}

func NewUnknownError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeUnknown,
		err:        ErrUnknown,
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
