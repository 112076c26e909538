// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"io"
	"log/slog"
)

// Logging contains the slog handler settings.
type Logging struct {
	Level  *string `yaml:"level,omitempty"`  // debug, info, warn, or error
	Format *string `yaml:"format,omitempty"` // text or json
}

func (l Logging) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*l.Level)); err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	return lvl, nil
}

func (l Logging) validate() error {
	if _, err := l.level(); err != nil {
		return err
	}
	switch *l.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q", *l.Format)
	}
}

// NewLogger creates a logger which writes to w with the configured
// level and format. Source locations are included in debug level.
func (l Logging) NewLogger(w io.Writer) *slog.Logger {
	lvl, _ := l.level()
	opts := &slog.HandlerOptions{Level: lvl, AddSource: lvl <= slog.LevelDebug}
	if *l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
