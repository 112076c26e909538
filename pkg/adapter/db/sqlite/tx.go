// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"

	"github.com/momeni/car-dealer/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx represents an ongoing transaction. It is unsafe to be used
// concurrently. SQLite transactions are serializable.
type Tx struct {
	*gorm.DB
}

func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(tx.DB.WithContext(ctx), sql, args...)
}

func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(tx.DB.WithContext(ctx), sql, args...)
}

// IsTx method prevents a non-Tx object (such as a Conn) to
// mistakenly implement the Tx interface.
func (tx *Tx) IsTx() {
}

// GORM returns the embedded *gorm.DB bound to ctx.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}
