// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ID is an opaque server-assigned identifier. The remote API may
// encode identifiers either as JSON numbers or as JSON strings, so
// ID accepts both forms and keeps them as their textual form.
// An all-digits ID is encoded back as a JSON number, so the server
// observes the same representation which it has produced.
type ID string

// IsZero reports whether id is not assigned yet.
func (id ID) IsZero() bool {
	return id == ""
}

// String returns the textual form of id.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (id *ID) UnmarshalJSON(data []byte) error {
	switch {
	case string(data) == "null":
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither a string nor a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) numeric() bool {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Identified is implemented by records which carry a server-assigned
// ID, so they may be reconciled with an in-memory collection.
type Identified interface {
	Identity() ID
}
