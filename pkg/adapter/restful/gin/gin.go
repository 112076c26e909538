// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin is the web adapter of the dealer. It wraps the
// gin-gonic engine, so other packages (e.g., config) can instantiate
// it without importing the framework directly. The sub-packages
// realize the public catalog and the admin panel resources, their
// HTML views, and the cookie based session storage.
package gin

import (
	"log/slog"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/car-dealer/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is the request header which may carry the request ID
// of a client. The same ID is echoed in the response.
const RequestIDHeader = "X-Request-ID"

// New instantiates a gin engine using the given middlewares. The
// *gin.Context values fall back to the request context values, so the
// request scoped log attributes are visible to the use cases.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.ContextWithFallback = true
	e.Use(middlewares...)
	return e
}

// RequestID returns a middleware which assigns a request ID to each
// request (unless the client sent one), echoes it in the response, and
// makes it a log attribute of the request context.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)
		ctx := log.WithAttrs(c.Request.Context(), log.Str("request_id", rid))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Logger returns the request ID middleware followed by an access
// logger which writes one line per served request using the default
// slog logger.
func Logger() []HandlerFunc {
	return []HandlerFunc{RequestID(), logger.New(slog.Default())}
}

// Recovery returns a middleware which recovers from panics, logs them
// using the default slog logger, and responds with a 500 status code.
func Recovery() HandlerFunc {
	return recovery.New(slog.Default())
}
