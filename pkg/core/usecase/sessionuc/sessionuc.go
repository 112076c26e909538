// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sessionuc contains the session Store which tracks whether
// an admin is logged in. A Store is a two states machine:
//
//	Anonymous --Login(access, refresh)--> Authenticated
//	Authenticated --Login(access, refresh)--> Authenticated (replaced)
//	Authenticated --Logout()--> Anonymous
//	Authenticated --AccessToken() on a missing/expired token--> Anonymous
//
// Its token pair is persisted in a repo.TokenStorage, so a new Store
// may be rehydrated from the same storage. No token refresh is done.
package sessionuc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/log"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
)

// Store represents the session use case. It is safe to be used
// concurrently, although each web request and each CLI process
// normally owns one Store.
type Store struct {
	storage repo.TokenStorage
	now     func() time.Time
	leeway  time.Duration

	mutex  sync.Mutex
	tokens model.Tokens
}

// New instantiates a Store and rehydrates its state from storage.
// A storage which holds only one of the tokens is cleared, so the
// Store starts Anonymous.
func New(
	ctx context.Context, storage repo.TokenStorage, opts ...Option,
) (*Store, error) {
	s := &Store{storage: storage}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if s.now == nil {
		s.now = time.Now
	}
	t, err := storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tokens: %w", err)
	}
	if t.State() == model.Authenticated {
		s.tokens = t
		return s, nil
	}
	if t != (model.Tokens{}) {
		if err := storage.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clearing a partial token pair: %w", err)
		}
	}
	return s, nil
}

// State returns the current session state.
func (s *Store) State() model.SessionState {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tokens.State()
}

// IsAuthenticated reports whether the session holds a token pair.
func (s *Store) IsAuthenticated() bool {
	return s.State() == model.Authenticated
}

// Tokens returns a copy of the current token pair.
func (s *Store) Tokens() model.Tokens {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tokens
}

// ErrEmptyToken indicates that Login was called with an empty token.
var ErrEmptyToken = errors.New("access and refresh tokens are required")

// Login stores the access and refresh tokens and moves the Store to
// the Authenticated state. Tokens are persisted first, so a storage
// failure leaves the Store unchanged.
func (s *Store) Login(ctx context.Context, access, refresh string) error {
	t := model.Tokens{Access: access, Refresh: refresh}
	if t.State() != model.Authenticated {
		return cerr.BadRequest(ErrEmptyToken)
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := s.storage.Save(ctx, t); err != nil {
		return fmt.Errorf("saving tokens: %w", err)
	}
	s.tokens = t
	log.Info(ctx, "admin session started")
	return nil
}

// SignIn exchanges the c credentials for a token pair using the
// auth authenticator and then calls Login with them.
func (s *Store) SignIn(
	ctx context.Context, auth repo.Authenticator, c model.Credentials,
) error {
	t, err := auth.Login(ctx, c)
	if err != nil {
		return fmt.Errorf("authenticating: %w", err)
	}
	return s.Login(ctx, t.Access, t.Refresh)
}

// Logout clears both tokens from memory and storage. Logging out of
// an Anonymous session is a no-op which still clears the storage.
func (s *Store) Logout(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.logout(ctx)
}

func (s *Store) logout(ctx context.Context) error {
	s.tokens = model.Tokens{}
	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clearing tokens: %w", err)
	}
	return nil
}

// AccessToken returns the access token which protected actions must
// send as their bearer token. If the token is missing or it is a JWT
// whose exp claim lies in the past, the session is logged out and
// cerr.ErrSessionExpired is returned. Opaque (non-JWT) tokens are
// accepted as long as they are present.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	access := s.tokens.Access
	if access != "" && !s.expired(access) {
		return access, nil
	}
	log.Info(ctx, "admin session expired",
		log.Valuer("tokens", s.tokens))
	if err := s.logout(ctx); err != nil {
		return "", errors.Join(cerr.ErrSessionExpired, err)
	}
	return "", cerr.ErrSessionExpired
}

// Expire logs the session out because the remote API rejected its
// access token, returning cerr.ErrSessionExpired (joined with a
// possible storage error).
func (s *Store) Expire(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := s.logout(ctx); err != nil {
		return errors.Join(cerr.ErrSessionExpired, err)
	}
	return cerr.ErrSessionExpired
}

func (s *Store) expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !s.now().Before(claims.ExpiresAt.Time.Add(s.leeway))
}
