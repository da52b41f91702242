// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// usersRouterMessage is the customMessage of every error body.
const usersRouterMessage = "something went wrong inside the users router"

// Sentinel errors raised by the transport layer itself. Their messages are
// written verbatim into the "message" field of the error body.
var (
	// ErrUserNotFound is reported by the user id guard when the path id is
	// malformed, non-positive or names a user that does not exist.
	ErrUserNotFound = errors.New("User not found")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidGzip is reported when a gzip encoded body cannot be read.
	ErrInvalidGzip = errors.New("invalid gzip body")

	// ErrRouteNotFound is reported for paths no route matches.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is reported when the path exists but not for the
	// requested method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrPanic wraps the value of a recovered panic.
	ErrPanic = errors.New("panic recovered")

	// errMissingContextValue means a handler ran without the guard that
	// provides its input. It indicates a routing mistake.
	errMissingContextValue = errors.New("request context is missing a validated value")
)

// StatusError attaches an explicit HTTP status to an error. The terminal
// error handler prefers it over the sentinel status map.
type StatusError struct {
	Status int
	Err    error
}

// NewStatusError returns err annotated with status.
func NewStatusError(status int, err error) *StatusError {
	return &StatusError{Status: status, Err: err}
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("status %d", e.Status)
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
