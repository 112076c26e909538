// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package log wraps the log/slog package with context-aware Debug,
// Info, Warn, and Error functions which take statically typed slog.Attr
// arguments instead of interleaved key/value pairs, so simple values
// are logged without allocations. Request scoped attributes, such as a
// request id, are attached to a context by WithAttrs and are added to
// every record which is logged with that context.
package log

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

type attrsKey struct{}

// WithAttrs returns a child of ctx which carries attrs in addition to
// the attributes which ctx carries already. All records which are
// logged by this package using the returned context include them.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	all := make([]slog.Attr, 0, len(prev)+len(attrs))
	all = append(all, prev...)
	all = append(all, attrs...)
	return context.WithValue(ctx, attrsKey{}, all)
}

// Debug logs msg and attrs with the given context at the debug level.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs msg and attrs with the given context at the info level.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs msg and attrs with the given context at the warning level.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs msg and attrs with the given context at the error level.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelError, msg, attrs...)
}

// logAttrs builds and handles one record. The source location is the
// caller of the exported function which called logAttrs, so it must
// only be called directly by Debug, Info, Warn, and Error.
func logAttrs(
	ctx context.Context,
	level slog.Level,
	msg string,
	attrs ...slog.Attr,
) {
	l := slog.Default()
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip [runtime.Callers, this function, its parent in log pkg]
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	if scoped, ok := ctx.Value(attrsKey{}).([]slog.Attr); ok {
		r.AddAttrs(scoped...)
	}
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
