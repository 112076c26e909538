// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionuc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/momeni/car-dealer/internal/test/memtokens"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/sessionuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pair = model.Tokens{Access: "a1", Refresh: "r1"}

func TestRehydration(t *testing.T) {
	ctx := context.Background()
	s, err := sessionuc.New(ctx, memtokens.New(pair))
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, pair, s.Tokens())

	st := memtokens.New(model.Tokens{Access: "only-access"})
	s, err = sessionuc.New(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, model.Anonymous, s.State())
	assert.Equal(t, model.Tokens{}, st.Tokens(), "partial pair is cleared")
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := memtokens.New(model.Tokens{})
	s, err := sessionuc.New(ctx, st)
	require.NoError(t, err)
	require.False(t, s.IsAuthenticated())

	require.NoError(t, s.Login(ctx, "a1", "r1"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, pair, st.Tokens())

	s2, err := sessionuc.New(ctx, st)
	require.NoError(t, err)
	assert.True(t, s2.IsAuthenticated(), "new store sees the same pair")

	require.NoError(t, s.Login(ctx, "a2", "r2"))
	assert.Equal(t, "a2", s.Tokens().Access, "re-login replaces tokens")

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, model.Tokens{}, st.Tokens())
	require.NoError(t, s.Logout(ctx), "logout is idempotent")
}

func TestLoginRequiresBothTokens(t *testing.T) {
	ctx := context.Background()
	s, err := sessionuc.New(ctx, memtokens.New(model.Tokens{}))
	require.NoError(t, err)
	err = s.Login(ctx, "a", "")
	assert.ErrorIs(t, err, sessionuc.ErrEmptyToken)
	assert.Equal(t, 400, cerr.StatusCode(err))
	assert.False(t, s.IsAuthenticated())
}

func TestLoginKeepsStateWhenStorageFails(t *testing.T) {
	ctx := context.Background()
	st := memtokens.New(model.Tokens{})
	s, err := sessionuc.New(ctx, st)
	require.NoError(t, err)
	st.Err = errors.New("disk full")
	assert.Error(t, s.Login(ctx, "a", "r"))
	assert.False(t, s.IsAuthenticated())
}

func TestAccessTokenOfAnonymousSession(t *testing.T) {
	ctx := context.Background()
	st := memtokens.New(model.Tokens{})
	s, err := sessionuc.New(ctx, st)
	require.NoError(t, err)
	_, err = s.AccessToken(ctx)
	assert.ErrorIs(t, err, cerr.ErrSessionExpired)
	assert.Equal(t, 1, st.Clears)
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestAccessTokenExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := sessionuc.WithClock(func() time.Time { return now })

	valid := signed(t, now.Add(time.Hour))
	s, err := sessionuc.New(ctx,
		memtokens.New(model.Tokens{Access: valid, Refresh: "r"}), clock)
	require.NoError(t, err)
	tok, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, valid, tok)

	expired := signed(t, now.Add(-time.Minute))
	st := memtokens.New(model.Tokens{Access: expired, Refresh: "r"})
	s, err = sessionuc.New(ctx, st, clock)
	require.NoError(t, err)
	_, err = s.AccessToken(ctx)
	assert.ErrorIs(t, err, cerr.ErrSessionExpired)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, model.Tokens{}, st.Tokens())

	s, err = sessionuc.New(ctx,
		memtokens.New(model.Tokens{Access: expired, Refresh: "r"}),
		clock, sessionuc.WithLeeway(2*time.Minute))
	require.NoError(t, err)
	_, err = s.AccessToken(ctx)
	assert.NoError(t, err, "leeway tolerates a recent expiry")
}

func TestOpaqueTokenIsAccepted(t *testing.T) {
	ctx := context.Background()
	s, err := sessionuc.New(ctx, memtokens.New(pair))
	require.NoError(t, err)
	tok, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", tok)
}

type authFunc func(context.Context, model.Credentials) (model.Tokens, error)

func (f authFunc) Login(ctx context.Context, c model.Credentials) (model.Tokens, error) {
	return f(ctx, c)
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	s, err := sessionuc.New(ctx, memtokens.New(model.Tokens{}))
	require.NoError(t, err)
	auth := authFunc(func(_ context.Context, c model.Credentials) (model.Tokens, error) {
		if c.Password != "secret" {
			return model.Tokens{}, &cerr.RemoteError{
				Op: cerr.OpLogin, StatusCode: 401, Status: "401 Unauthorized",
			}
		}
		return pair, nil
	})
	err = s.SignIn(ctx, auth, model.Credentials{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, cerr.ErrLogin)
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.SignIn(ctx, auth,
		model.Credentials{Email: "a@b.c", Password: "secret"}))
	assert.True(t, s.IsAuthenticated())

	assert.ErrorIs(t, s.Expire(ctx), cerr.ErrSessionExpired)
	assert.False(t, s.IsAuthenticated())
}
