// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr

import (
	"errors"
	"fmt"
)

// Op names one kind of remote API operation.
type Op string

// Remote API operations.
const (
	OpFetch  Op = "fetch"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpUpload Op = "upload"
	OpLogin  Op = "login"
)

// Sentinel errors, one per Op. A RemoteError unwraps to the sentinel
// of its Op.
var (
	ErrFetch  = errors.New("failed to fetch")
	ErrCreate = errors.New("failed to create")
	ErrUpdate = errors.New("failed to update")
	ErrDelete = errors.New("failed to delete")
	ErrUpload = errors.New("failed to upload")
	ErrLogin  = errors.New("failed to log in")
)

func (op Op) sentinel() error {
	switch op {
	case OpFetch:
		return ErrFetch
	case OpCreate:
		return ErrCreate
	case OpUpdate:
		return ErrUpdate
	case OpDelete:
		return ErrDelete
	case OpUpload:
		return ErrUpload
	case OpLogin:
		return ErrLogin
	default:
		panic(fmt.Sprintf("unknown op: %q", string(op)))
	}
}

// RemoteError reports a failed remote API round trip. StatusCode and
// Status are taken from a non-2xx response. A transport failure has a
// zero StatusCode and its cause in Err.
type RemoteError struct {
	Op         Op
	Resource   string // e.g., "car" or "image slider"
	StatusCode int
	Status     string // e.g., "400 Bad Request"
	Err        error
}

// Error returns a message such as
// "failed to create image slider: 400 Bad Request".
func (e *RemoteError) Error() string {
	msg := e.Op.sentinel().Error()
	if e.Resource != "" {
		msg += " " + e.Resource
	}
	if e.StatusCode != 0 {
		return msg + ": " + e.Status
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the sentinel error of e.Op and the transport error
// (if any), so both of them may be detected by errors.Is.
func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Op.sentinel()}
	}
	return []error{e.Op.sentinel(), e.Err}
}

// IsUnauthorized reports whether the remote API rejected the bearer
// token (401) of a protected request.
func (e *RemoteError) IsUnauthorized() bool {
	return e.StatusCode == 401
}
