// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"fmt"

	"github.com/momeni/car-dealer/pkg/core/repo"
	"gorm.io/gorm"
)

// Conn represents one database connection.
type Conn struct {
	*gorm.DB
}

// TxHandler is a handler function which takes a context and an ongoing
// transaction. Returning an error rolls the transaction back.
type TxHandler = repo.TxHandler

// Tx begins a transaction, passes it to f, and commits it if f returns
// nil. A failed or panicking f rolls the transaction back.
func (c *Conn) Tx(ctx context.Context, f TxHandler) (err error) {
	tx := c.DB.WithContext(ctx).Begin()
	if err = tx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			if err = tx.Rollback().Error; err != nil {
				err = fmt.Errorf("panicked: %v, rollback: %w", r, err)
				return
			}
			err = fmt.Errorf("panicked: %v", r)
			return
		}
		if err != nil {
			if err2 := tx.Rollback().Error; err2 != nil {
				err = fmt.Errorf("handler: %w, rollback: %w", err, err2)
				return
			}
			err = fmt.Errorf("handler: %w", err)
			return
		}
		if err = tx.Commit().Error; err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return f(ctx, &Tx{DB: tx})
}

// Exec runs the sql statement with its ? placeholders bound to args,
// returning the number of affected rows.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(c.DB.WithContext(ctx), sql, args...)
}

// Query runs the sql statement and returns its result rows, which
// must be closed by the caller.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(c.DB.WithContext(ctx), sql, args...)
}

// IsConn method prevents a non-Conn object (such as a Tx) to
// mistakenly implement the Conn interface.
func (c *Conn) IsConn() {
}

// GORM returns the embedded *gorm.DB bound to ctx.
func (c *Conn) GORM(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx)
}
