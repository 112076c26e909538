// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memtokens is an internal helper for the test packages.
// It provides an in-memory repo.TokenStorage which records how many
// times it was saved or cleared and may be asked to fail.
package memtokens

import (
	"context"
	"sync"

	"github.com/momeni/car-dealer/pkg/core/model"
)

// Storage is an in-memory repo.TokenStorage.
type Storage struct {
	mutex  sync.Mutex
	tokens model.Tokens

	Saves, Clears int
	Err           error // returned by all methods when it is not nil
}

// New creates a Storage which initially holds t.
func New(t model.Tokens) *Storage {
	return &Storage{tokens: t}
}

func (s *Storage) Load(context.Context) (model.Tokens, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Err != nil {
		return model.Tokens{}, s.Err
	}
	return s.tokens, nil
}

func (s *Storage) Save(_ context.Context, t model.Tokens) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Saves++
	s.tokens = t
	return nil
}

func (s *Storage) Clear(context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Clears++
	s.tokens = model.Tokens{}
	return nil
}

// Tokens returns the stored token pair.
func (s *Storage) Tokens() model.Tokens {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tokens
}
