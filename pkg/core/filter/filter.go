// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package filter is the catalog filter engine. It derives the visible
// subset of a car collection from a set of user-entered predicates and
// computes the distinct option values of the filter controls.
// All functions are pure and never fail: malformed numeric bounds are
// treated as absent constraints.
package filter

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/momeni/car-dealer/pkg/core/model"
)

// All is the sentinel value of a categorical predicate which matches
// every record. An empty string has the same meaning.
const All = "all"

// Query parameter names of the State fields.
const (
	KeyBrand        = "brand"
	KeyBodyType     = "bodyType"
	KeyFuelType     = "fuelType"
	KeyTransmission = "transmission"
	KeyMinPrice     = "minPrice"
	KeyMaxPrice     = "maxPrice"
	KeyMinYear      = "minYear"
	KeyMaxYear      = "maxYear"
)

// State holds the predicates as they were entered. Categorical fields
// contain All (or nothing) when they should not constrain the result.
// Numeric bounds are kept as text, so an unparsable entry can be shown
// back to the user while being ignored by Apply.
type State struct {
	Brand        string `form:"brand"`
	BodyType     string `form:"bodyType"`
	FuelType     string `form:"fuelType"`
	Transmission string `form:"transmission"`
	MinPrice     string `form:"minPrice"`
	MaxPrice     string `form:"maxPrice"`
	MinYear      string `form:"minYear"`
	MaxYear      string `form:"maxYear"`
}

// Default returns the initial state, constraining nothing.
func Default() State {
	return State{
		Brand:        All,
		BodyType:     All,
		FuelType:     All,
		Transmission: All,
	}
}

// Parse builds a State from query parameters. Missing categorical
// parameters default to All.
func Parse(q url.Values) State {
	s := State{
		Brand:        q.Get(KeyBrand),
		BodyType:     q.Get(KeyBodyType),
		FuelType:     q.Get(KeyFuelType),
		Transmission: q.Get(KeyTransmission),
		MinPrice:     q.Get(KeyMinPrice),
		MaxPrice:     q.Get(KeyMaxPrice),
		MinYear:      q.Get(KeyMinYear),
		MaxYear:      q.Get(KeyMaxYear),
	}
	return s.Normalize()
}

// Normalize replaces empty categorical fields with All and trims the
// numeric fields.
func (s State) Normalize() State {
	for _, f := range []*string{
		&s.Brand, &s.BodyType, &s.FuelType, &s.Transmission,
	} {
		if *f == "" {
			*f = All
		}
	}
	for _, f := range []*string{
		&s.MinPrice, &s.MaxPrice, &s.MinYear, &s.MaxYear,
	} {
		*f = strings.TrimSpace(*f)
	}
	return s
}

// Query renders the active predicates of s as query parameters.
// Inactive predicates are omitted, so the zero and Default states
// are both rendered as an empty query.
func (s State) Query() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" && v != All {
			q.Set(k, v)
		}
	}
	set(KeyBrand, s.Brand)
	set(KeyBodyType, s.BodyType)
	set(KeyFuelType, s.FuelType)
	set(KeyTransmission, s.Transmission)
	set(KeyMinPrice, s.MinPrice)
	set(KeyMaxPrice, s.MaxPrice)
	set(KeyMinYear, s.MinYear)
	set(KeyMaxYear, s.MaxYear)
	return q
}

// IsZero reports whether s constrains nothing, considering that
// unparsable bounds are absent.
func (s State) IsZero() bool {
	return len(s.predicates()) == 0
}

type predicate func(c *model.Car) bool

func category(v string, field func(c *model.Car) string) predicate {
	if v == "" || v == All {
		return nil
	}
	return func(c *model.Car) bool {
		return field(c) == v
	}
}

// bound parses v as an inclusive integer bound. It returns false when
// v is empty or malformed, so the bound is ignored.
func bound(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s State) predicates() []predicate {
	ps := []predicate{
		category(s.Brand, func(c *model.Car) string {
			return c.Brand
		}),
		category(s.BodyType, func(c *model.Car) string {
			return string(c.BodyType)
		}),
		category(s.FuelType, func(c *model.Car) string {
			return string(c.FuelType)
		}),
		category(s.Transmission, func(c *model.Car) string {
			return string(c.Transmission)
		}),
	}
	if n, ok := bound(s.MinPrice); ok {
		ps = append(ps, func(c *model.Car) bool { return c.Price >= n })
	}
	if n, ok := bound(s.MaxPrice); ok {
		ps = append(ps, func(c *model.Car) bool { return c.Price <= n })
	}
	if n, ok := bound(s.MinYear); ok {
		ps = append(ps, func(c *model.Car) bool {
			return int64(c.Year) >= n
		})
	}
	if n, ok := bound(s.MaxYear); ok {
		ps = append(ps, func(c *model.Car) bool {
			return int64(c.Year) <= n
		})
	}
	return slices.DeleteFunc(ps, func(p predicate) bool {
		return p == nil
	})
}

// Apply returns the cars which satisfy all active predicates of s,
// in their input order. The result is never nil.
func Apply(cars []model.Car, s State) []model.Car {
	ps := s.predicates()
	out := make([]model.Car, 0, len(cars))
next:
	for i := range cars {
		for _, p := range ps {
			if !p(&cars[i]) {
				continue next
			}
		}
		out = append(out, cars[i])
	}
	return out
}

// OptionSet contains the distinct values of the categorical filter
// controls, each one sorted lexicographically.
type OptionSet struct {
	Brands        []string
	BodyTypes     []string
	FuelTypes     []string
	Transmissions []string
}

// Options derives the OptionSet from the full car collection.
// Empty values are skipped.
func Options(cars []model.Car) OptionSet {
	var brands, bodies, fuels, transmissions []string
	for _, c := range cars {
		brands = append(brands, c.Brand)
		bodies = append(bodies, string(c.BodyType))
		fuels = append(fuels, string(c.FuelType))
		transmissions = append(transmissions, string(c.Transmission))
	}
	return OptionSet{
		Brands:        distinct(brands),
		BodyTypes:     distinct(bodies),
		FuelTypes:     distinct(fuels),
		Transmissions: distinct(transmissions),
	}
}

func distinct(vs []string) []string {
	vs = slices.DeleteFunc(vs, func(v string) bool { return v == "" })
	slices.Sort(vs)
	return slices.Compact(vs)
}
