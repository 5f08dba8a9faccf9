package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can react to the kind of failure
// without parsing messages.
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested record was not found
	CodeNotFound Code = "not_found"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeInvalidShape indicates a grid layout that cannot be built
	CodeInvalidShape Code = "invalid_shape"

	// CodeUnknownRoomID indicates a room id that is not part of the grid
	CodeUnknownRoomID Code = "unknown_room_id"

	// CodeInvalidRequestCount indicates a room count outside the bookable range
	CodeInvalidRequestCount Code = "invalid_request_count"

	// CodeInsufficientAvailability indicates fewer free rooms than requested
	CodeInsufficientAvailability Code = "insufficient_availability"

	// CodeInsufficientPool indicates the optimizer was handed a pool smaller than k
	CodeInsufficientPool Code = "insufficient_pool"

	// CodeAlreadyBooked indicates a booking attempt on an occupied room
	CodeAlreadyBooked Code = "already_booked"

	// CodeInvalidSnapshot indicates persisted grid state that does not fit the layout
	CodeInvalidSnapshot Code = "invalid_snapshot"
)

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// InvalidShapef creates a formatted invalid shape error
func InvalidShapef(format string, args ...any) *Error {
	return Newf(CodeInvalidShape, format, args...)
}

// UnknownRoomID reports a room id missing from the grid
func UnknownRoomID(roomID string) *Error {
	return Newf(CodeUnknownRoomID, "room %s does not exist", roomID).
		WithMeta("room_id", roomID)
}

// InvalidRequestCount reports a booking request outside [minCount, maxCount]
func InvalidRequestCount(count, minCount, maxCount int) *Error {
	return Newf(CodeInvalidRequestCount, "you can book %d-%d rooms only, got %d", minCount, maxCount, count).
		WithMeta("count", count)
}

// InsufficientAvailability reports a request larger than the number of free rooms
func InsufficientAvailability(count, available int) *Error {
	return Newf(CodeInsufficientAvailability, "not enough rooms available: requested %d, free %d", count, available).
		WithMeta("count", count).
		WithMeta("available", available)
}

// InsufficientPool reports an optimizer pool smaller than the combination size
func InsufficientPool(k, poolSize int) *Error {
	return Newf(CodeInsufficientPool, "pool of %d rooms cannot supply %d", poolSize, k).
		WithMeta("count", k).
		WithMeta("available", poolSize)
}

// AlreadyBooked reports a booking attempt on an occupied room
func AlreadyBooked(roomID string) *Error {
	return Newf(CodeAlreadyBooked, "room %s is already booked", roomID).
		WithMeta("room_id", roomID)
}

// InvalidSnapshotf creates a formatted invalid snapshot error
func InvalidSnapshotf(format string, args ...any) *Error {
	return Newf(CodeInvalidSnapshot, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
