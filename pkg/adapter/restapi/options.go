// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restapi

import (
	"errors"
	"net/http"
	"strings"
)

// Option is a functional option for the Client.
type Option func(c *Client) error

// WithHTTPClient makes the Client send its requests using hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.http = hc
		return nil
	}
}

// WithTokenPath configures the path of the authentication endpoint,
// relative to the base URL. It defaults to DefaultTokenPath.
func WithTokenPath(p string) Option {
	return func(c *Client) error {
		p = strings.TrimLeft(strings.TrimSpace(p), "/")
		if p == "" {
			return errors.New("token path is empty")
		}
		c.tokenPath = p
		return nil
	}
}

// WithCredentialField configures the JSON field name which carries the
// admin identifier in the authentication request, e.g., "username".
// It defaults to DefaultCredentialField.
func WithCredentialField(name string) Option {
	return func(c *Client) error {
		if name == "" || name == "password" {
			return errors.New("invalid credential field name")
		}
		c.credentialField = name
		return nil
	}
}
