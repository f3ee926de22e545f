package errors

import (
	"errors"
	"fmt"
)

type Status string

// The token is not one the service knows how to validate
const UnknownToken Status = "UnknownToken"

// The token is known but its validator rejected the address
const InvalidAddress Status = "InvalidAddress"

type Error struct {
	Status  Status
	Message string
}

var _ error = &Error{}

// Error returns only the message; callers that need the status read it from the struct.
func (e *Error) Error() string {
	return e.Message
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// Used when no validator is configured for the token.
func UnknownTokenf(format string, args ...interface{}) error {
	return &Error{
		Status:  UnknownToken,
		Message: fmt.Sprintf(format, args...),
	}
}

// Used to flatten any validator failure into a single kind.
func InvalidAddressf(format string, args ...interface{}) error {
	return &Error{
		Status:  InvalidAddress,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusOf returns the status of err, or "" when err is not an *Error.
func StatusOf(err error) Status {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return ""
}
