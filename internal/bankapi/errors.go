package bankapi

import (
	"errors"
	"fmt"
)

// Error is a failed API call. Status is the HTTP status code, or 0 when the
// request never reached the server.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusOf returns the HTTP status behind err, or -1 when err is not an API
// error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

// Translate renders err as a message fit for showing to the user.
func Translate(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return "Something went wrong. Please try again."
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	switch {
	case apiErr.Status == 0:
		return "Unable to reach the banking server. Please retry in a moment."
	case apiErr.Status == 401:
		return "Invalid username or password."
	case apiErr.Status == 403:
		return "You are not authorized to perform this action."
	case apiErr.Status == 404:
		return "The requested record was not found."
	case apiErr.Status >= 500:
		return "The banking server reported an internal error. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
