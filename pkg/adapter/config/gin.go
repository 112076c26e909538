// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"time"

	"github.com/momeni/car-dealer/pkg/adapter/config/settings"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/cookiejar"
)

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and fill them by their default values.
type Gin struct {
	Address  *string `yaml:"address,omitempty"` // listening address
	Logger   *bool   // Whether to register the request logger
	Recovery *bool   // Whether to register the panic recovery middleware

	// SecureCookies marks the session cookies as Secure (HTTPS only).
	SecureCookies *bool `yaml:"secure-cookies,omitempty"`

	// CookieMaxAge is the lifetime of the session cookies.
	CookieMaxAge *settings.Duration `yaml:"cookie-max-age,omitempty"`
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 3)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger()...)
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Cookies returns the settings of the session cookie jar.
func (g Gin) Cookies() cookiejar.Settings {
	return cookiejar.Settings{
		Secure: *g.SecureCookies,
		MaxAge: time.Duration(*g.CookieMaxAge),
	}
}
