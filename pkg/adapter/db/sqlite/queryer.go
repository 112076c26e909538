// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"database/sql"

	"github.com/momeni/car-dealer/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer is a type constraint which lets the repository packages
// write one generic function for both of the Conn and Tx types.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	GORM(ctx context.Context) *gorm.DB
}

func exec(gdb *gorm.DB, stmt string, args ...any) (int64, error) {
	tt := gdb.Exec(stmt, args...)
	if err := tt.Error; err != nil {
		return 0, err
	}
	return tt.RowsAffected, nil
}

func query(gdb *gorm.DB, stmt string, args ...any) (repo.Rows, error) {
	rows, err := gdb.Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	return rowsAdapter{rows}, nil
}

type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	// returned error may be checked by calling the Err() method
	_ = ra.Rows.Close()
}
