// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// ConnHandler is a callback which uses c while it is acquired.
type ConnHandler func(ctx context.Context, c Conn) error

// Pool is a local database connections pool. Conn acquires one
// connection, passes it to the handler, and releases it afterwards.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}
