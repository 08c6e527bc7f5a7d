package failure

import (
	"errors"
	"net/http"
)

const (
	ReasonValidation         = "VALIDATION_ERROR"
	ReasonNotFound           = "NOT_FOUND"
	ReasonPreconditionFailed = "PRECONDITION_FAILED"
	ReasonAllocationConflict = "ALLOCATION_CONFLICT"
	ReasonNoRoomAvailable    = "NO_ROOM_AVAILABLE"
	ReasonUnauthorized       = "UNAUTHORIZED"
	ReasonInternal           = "INTERNAL_FAILURE"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason carries the domain error kind so callers can branch without parsing messages.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Reason: ReasonUnauthorized}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Reason:  ReasonValidation,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonValidation,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Reason:  ReasonUnauthorized,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Reason:  ReasonInternal,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Reason:  ReasonNotFound,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Reason:  ReasonUnauthorized,
	}
}

// PreconditionFailed returns a new Failure for a transition whose guard does not hold.
func PreconditionFailed(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonPreconditionFailed,
	}
}

// AllocationConflict returns a new Failure for an atomic commit lost to a concurrent writer.
func AllocationConflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonAllocationConflict,
	}
}

// NoRoomAvailable returns a new Failure when no room of the requested category is free.
func NoRoomAvailable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonNoRoomAvailable,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the domain reason of an error interface.
// Errors that are not a Failure are reported as internal.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Reason != "" {
		return fail.Reason
	}

	return ReasonInternal
}

func HasReason(err error, reason string) bool {
	return err != nil && GetReason(err) == reason
}
