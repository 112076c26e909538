// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tokenrp

import (
	"context"
	"fmt"

	"github.com/momeni/car-dealer/pkg/adapter/db/sqlite"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
	"gorm.io/gorm/clause"
)

type gToken struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"not null;column:value"`
}

func (gt *gToken) TableName() string {
	return "session_tokens"
}

const createTable = `CREATE TABLE IF NOT EXISTS session_tokens (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// CreateTable creates the tokens table if it does not exist.
func CreateTable[Q sqlite.Queryer](ctx context.Context, q Q) error {
	if _, err := q.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("creating session_tokens table: %w", err)
	}
	return nil
}

// Load reads the stored tokens. Missing keys are left empty.
func Load[Q sqlite.Queryer](ctx context.Context, q Q) (model.Tokens, error) {
	rows, err := q.Query(ctx,
		"SELECT key, value FROM session_tokens WHERE key IN (?, ?)",
		repo.AccessTokenKey, repo.RefreshTokenKey,
	)
	if err != nil {
		return model.Tokens{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	var t model.Tokens
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.Tokens{}, fmt.Errorf("scan: %w", err)
		}
		switch key {
		case repo.AccessTokenKey:
			t.Access = value
		case repo.RefreshTokenKey:
			t.Refresh = value
		}
	}
	if err := rows.Err(); err != nil {
		return model.Tokens{}, fmt.Errorf("rows: %w", err)
	}
	return t, nil
}

// Save upserts both of the token keys.
func Save[Q sqlite.Queryer](ctx context.Context, q Q, t model.Tokens) error {
	rows := []gToken{
		{Key: repo.AccessTokenKey, Value: t.Access},
		{Key: repo.RefreshTokenKey, Value: t.Refresh},
	}
	err := q.GORM(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// Clear deletes both of the token keys.
func Clear[Q sqlite.Queryer](ctx context.Context, q Q) error {
	_, err := q.Exec(ctx,
		"DELETE FROM session_tokens WHERE key IN (?, ?)",
		repo.AccessTokenKey, repo.RefreshTokenKey,
	)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
