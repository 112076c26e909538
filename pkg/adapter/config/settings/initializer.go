// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

// Nil2Zero makes a nil (*t) pointer point to a newly allocated zero
// value of T. A non-nil (*t) is kept as is.
func Nil2Zero[T any](t **T) {
	if (*t) != nil {
		return
	}
	var zero T
	(*t) = &zero
}

// OverwriteNil makes a nil (*dst) pointer point to a newly allocated
// copy of (*src). Nothing happens if (*dst) is not nil or src is nil.
func OverwriteNil[T any](dst **T, src *T) {
	if (*dst) != nil || src == nil {
		return
	}
	t := *src
	(*dst) = &t
}
