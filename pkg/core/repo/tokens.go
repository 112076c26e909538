// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/car-dealer/pkg/core/model"
)

// Storage keys of the token pair. Implementations which keep keyed
// values (cookies or key/value rows) must use these names.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// TokenStorage keeps the admin token pair durably, so a session
// survives a page reload (web) or a process restart (CLI).
// Load returns empty strings for missing tokens.
type TokenStorage interface {
	Load(ctx context.Context) (model.Tokens, error)
	Save(ctx context.Context, t model.Tokens) error
	Clear(ctx context.Context) error
}
