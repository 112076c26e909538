// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tokenrp is the adapter for the token storage repository.
// It keeps the admin access and refresh tokens as two rows of a
// key/value table in a local SQLite database, so the CLI session
// outlives its process like a browser session outlives a page.
package tokenrp

import (
	"context"

	"github.com/momeni/car-dealer/pkg/adapter/db/sqlite"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
)

// Repo represents the token storage repository instance.
type Repo struct {
	pool repo.Pool
}

var _ repo.TokenStorage = (*Repo)(nil)

// New instantiates a token Repo over the pool database, creating its
// table if it does not exist yet.
func New(ctx context.Context, pool repo.Pool) (*Repo, error) {
	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return CreateTable(ctx, c.(*sqlite.Conn))
	})
	if err != nil {
		return nil, err
	}
	return &Repo{pool: pool}, nil
}

// Load returns the stored token pair, which may be partial or empty.
func (tokens *Repo) Load(ctx context.Context) (t model.Tokens, err error) {
	err = tokens.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		t, err = Load(ctx, c.(*sqlite.Conn))
		return err
	})
	return
}

// Save stores both tokens in one transaction.
func (tokens *Repo) Save(ctx context.Context, t model.Tokens) error {
	return tokens.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return Save(ctx, tx.(*sqlite.Tx), t)
		})
	})
}

// Clear removes both tokens.
func (tokens *Repo) Clear(ctx context.Context) error {
	return tokens.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return Clear(ctx, c.(*sqlite.Conn))
	})
}
