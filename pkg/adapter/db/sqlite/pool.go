// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlite is the adapter of a local SQLite database. It wraps
// the GORM framework (with its SQLite driver) and implements the
// repo.Pool, repo.Conn, and repo.Tx interfaces, so the repository
// packages (e.g., tokenrp) can run their statements without exposing
// the GORM types to the use cases layer. The CLI keeps its durable
// client state (the admin session tokens) in such a database file.
package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/car-dealer/pkg/core/repo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool represents a SQLite database connection pool.
// It may be used concurrently, although SQLite serializes writers.
type Pool struct {
	*gorm.DB
}

// NewPool opens (or creates) the SQLite database file at path and
// tests its connectivity. The ":memory:" path is accepted too.
func NewPool(ctx context.Context, path string) (*Pool, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.New(slogWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

// ConnHandler is a handler function which takes a context and a
// database connection which should be used solely from the current
// goroutine (or by proper synchronization).
type ConnHandler = repo.ConnHandler

// NoOpConnHandler is a connection handler which does nothing.
func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a database connection, passes it to the f handler,
// and releases it after f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

// Close closes all connections of the p pool.
func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
