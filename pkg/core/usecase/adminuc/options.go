// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminuc

import "errors"

// Option is a functional option for the admin use case.
type Option func(uc *UseCase) error

// WithPlaceholder configures the image which is stored for a car whose
// form leaves the image field empty. It may be passed to New().
func WithPlaceholder(u string) Option {
	return func(uc *UseCase) error {
		if u == "" {
			return errors.New("placeholder is empty")
		}
		if uc.placeholder != "" {
			return errors.New("placeholder is already configured")
		}
		uc.placeholder = u
		return nil
	}
}
