// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionuc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the session Store.
type Option func(s *Store) error

// WithClock makes the Store use now instead of time.Now when checking
// the expiry of JWT access tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		if s.now != nil {
			return errors.New("clock is already configured")
		}
		s.now = now
		return nil
	}
}

// WithLeeway tolerates clock skew by considering a JWT access token
// valid up to leeway after its exp claim.
func WithLeeway(leeway time.Duration) Option {
	return func(s *Store) error {
		if d := int64(leeway); d < 0 {
			return fmt.Errorf("leeway (%d) is negative", d)
		}
		s.leeway = leeway
		return nil
	}
}
