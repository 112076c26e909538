// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "log/slog"

// SessionState is the authentication state of an admin session.
type SessionState int

// Valid values for the SessionState enum.
const (
	Anonymous     SessionState = iota // no usable token pair
	Authenticated                     // both tokens are present
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Tokens is the bearer token pair which is issued by the remote API
// authentication endpoint. The JSON names follow that endpoint.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// State returns Authenticated if and only if both tokens are present.
func (t Tokens) State() SessionState {
	if t.Access != "" && t.Refresh != "" {
		return Authenticated
	}
	return Anonymous
}

// LogValue implements slog.LogValuer, hiding the token contents.
func (t Tokens) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("access", t.Access != ""),
		slog.Bool("refresh", t.Refresh != ""),
	)
}

// Credentials are the admin login inputs.
type Credentials struct {
	Email    string
	Password string
}
