// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"
)

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// ID returns an Attr for a record identifier, e.g., a car ID.
func ID[T ~string](key string, value T) slog.Attr {
	return slog.String(key, string(value))
}

// Op returns an "op" Attr naming the remote API operation.
func Op[T ~string](value T) slog.Attr {
	return slog.String("op", string(value))
}

// Status returns a "status" Attr for an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Str returns an Attr for a plain string value.
func Str(key, value string) slog.Attr {
	return slog.String(key, value)
}
