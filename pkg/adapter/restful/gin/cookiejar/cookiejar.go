// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cookiejar implements repo.TokenStorage over the HttpOnly
// cookies of one web request, so the admin session of a browser is
// kept by the browser itself (as two access_token and refresh_token
// cookies) and the server remains stateless.
package cookiejar

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
)

// Settings controls the attributes of the session cookies.
type Settings struct {
	Secure bool          // send the cookies only over HTTPS
	MaxAge time.Duration // cookies lifetime
}

// Jar is the token storage of one request. Load reads the request
// cookies, while Save and Clear set the response cookies.
type Jar struct {
	c *gin.Context
	s Settings
}

var _ repo.TokenStorage = (*Jar)(nil)

// New creates a Jar for the c request.
func New(c *gin.Context, s Settings) *Jar {
	return &Jar{c: c, s: s}
}

func (j *Jar) Load(context.Context) (model.Tokens, error) {
	var t model.Tokens
	t.Access, _ = j.c.Cookie(repo.AccessTokenKey)
	t.Refresh, _ = j.c.Cookie(repo.RefreshTokenKey)
	return t, nil
}

func (j *Jar) Save(_ context.Context, t model.Tokens) error {
	maxAge := int(j.s.MaxAge / time.Second)
	j.set(repo.AccessTokenKey, t.Access, maxAge)
	j.set(repo.RefreshTokenKey, t.Refresh, maxAge)
	return nil
}

func (j *Jar) Clear(context.Context) error {
	j.set(repo.AccessTokenKey, "", -1)
	j.set(repo.RefreshTokenKey, "", -1)
	return nil
}

func (j *Jar) set(name, value string, maxAge int) {
	j.c.SetSameSite(http.SameSiteLaxMode)
	j.c.SetCookie(name, value, maxAge, "/", "", j.s.Secure, true)
}
