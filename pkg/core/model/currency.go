// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is the currency which listing prices are expressed in.
// Prices carry no fractional part in both supported currencies.
type Currency string

// Valid values for the Currency enum.
const (
	USD Currency = "USD"
	JPY Currency = "JPY"
)

// ErrUnknownCurrency indicates that a currency code is not supported.
var ErrUnknownCurrency = errors.New("unknown currency")

// ParseCurrency parses a case-insensitive ISO 4217 code.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case USD, JPY:
		return c, nil
	default:
		return "", ErrUnknownCurrency
	}
}

// Symbol returns the sign which prefixes formatted amounts.
func (c Currency) Symbol() string {
	if c == JPY {
		return "¥"
	}
	return "$"
}

var printer = message.NewPrinter(language.English)

// Format renders amount with digit grouping, e.g., $15,000.
func (c Currency) Format(amount int64) string {
	if amount < 0 {
		return "-" + c.Symbol() + printer.Sprintf("%d", -amount)
	}
	return c.Symbol() + printer.Sprintf("%d", amount)
}

// FormatMileage renders a mileage with digit grouping, e.g., 30,000.
func FormatMileage(m int) string {
	return printer.Sprintf("%d", m)
}
