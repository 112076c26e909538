// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// OutOfRangeError reports a setting which was out of its acceptable
// range. Value is the rejected value and Bound is the violated
// boundary which the setting was clamped to.
type OutOfRangeError[T cmp.Ordered] struct {
	Value        *T
	Bound        *T
	LessThanMin  bool // true if and only if min boundary is violated
	InvalidRange bool // true if and only if min is greater than max
}

// Error implements the error interface, mentioning both of the
// rejected value and the violated boundary, e.g., 10s < 1m.
func (e *OutOfRangeError[T]) Error() string {
	switch {
	case e.InvalidRange:
		return "min is greater than max"
	case e.LessThanMin:
		return fmt.Sprintf("%v is less than the minimum %v", *e.Value, *e.Bound)
	default:
		return fmt.Sprintf("%v is greater than the maximum %v", *e.Value, *e.Bound)
	}
}

// VerifyRange checks that the (*value) setting is either nil or falls
// in the [minb, maxb] range. A nil boundary is not checked. An out of
// range value is clamped to the violated boundary and reported.
func VerifyRange[T cmp.Ordered](
	value **T, minb, maxb *T,
) *OutOfRangeError[T] {
	if minb != nil && maxb != nil && *minb > *maxb {
		return &OutOfRangeError[T]{InvalidRange: true}
	}
	if *value == nil {
		return nil
	}
	v := **value
	var b T
	low := false
	switch {
	case minb != nil && v < *minb:
		b, low = *minb, true
	case maxb != nil && v > *maxb:
		b = *maxb
	default:
		return nil
	}
	**value = b
	return &OutOfRangeError[T]{Value: &v, Bound: &b, LessThanMin: low}
}
