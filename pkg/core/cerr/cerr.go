// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core errors. The Error type attaches an
// HTTP status code to a wrapped error, so adapters may report it
// without knowing about its origin. The RemoteError type reports a
// failed round trip to the remote REST API, and the sentinel errors
// classify failures which callers need to detect with errors.Is.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func Authentication(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnauthorized}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// ErrSessionExpired indicates that a protected action was attempted
// without a usable access token. The session is already logged out
// when this error is returned, so callers only need to send the user
// to the login page.
var ErrSessionExpired = errors.New("session expired")

// ErrMissingBaseURL indicates that the remote API base URL is not
// configured. It is a fatal configuration error.
var ErrMissingBaseURL = errors.New("base URL is not configured")

// StatusCode returns the HTTP status code which err should be reported
// with. The cerr.Error instances carry their own status code, remote
// API failures are reported as 502, and expired sessions as 401.
// Other errors are internal server errors.
func StatusCode(err error) int {
	var ce *Error
	var re *RemoteError
	switch {
	case errors.As(err, &ce):
		return ce.HTTPStatusCode
	case errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.As(err, &re):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
