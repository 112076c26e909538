// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Apply reconciles a server-returned rec record with the prior
// collection. If an element with the same ID exists, it is replaced
// in place; otherwise rec is appended. The prior slice is not
// modified, so readers which hold it may keep using it.
func Apply[T Identified](prior []T, rec T) []T {
	id := rec.Identity()
	next := make([]T, 0, len(prior)+1)
	replaced := false
	for _, item := range prior {
		if !replaced && item.Identity() == id {
			next = append(next, rec)
			replaced = true
			continue
		}
		next = append(next, item)
	}
	if !replaced {
		next = append(next, rec)
	}
	return next
}

// Remove returns a new collection which contains all elements of
// prior except the one having the given id, keeping their relative
// order. The prior slice is not modified.
func Remove[T Identified](prior []T, id ID) []T {
	next := make([]T, 0, len(prior))
	for _, item := range prior {
		if item.Identity() != id {
			next = append(next, item)
		}
	}
	return next
}

// Find looks up the element having the given id and returns it with
// its index. The ok flag is false if no such element exists.
func Find[T Identified](items []T, id ID) (item T, index int, ok bool) {
	for i, it := range items {
		if it.Identity() == id {
			return it, i, true
		}
	}
	return item, -1, false
}
