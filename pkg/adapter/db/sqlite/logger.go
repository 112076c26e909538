// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"fmt"

	"github.com/momeni/car-dealer/pkg/core/log"
)

// slogWriter forwards the GORM logger lines to the default slog logger.
// GORM only prints warnings (e.g., slow queries) and errors with the
// configured log level.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	log.Warn(context.Background(), "gorm", log.Str("msg", fmt.Sprintf(format, args...)))
}
