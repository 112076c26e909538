// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/momeni/car-dealer/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationMarshal(t *testing.T) {
	cases := map[time.Duration]string{
		720 * time.Hour:              "720h",
		90 * time.Minute:             "1h30m",
		time.Minute + 5*time.Second:  "1m5s",
		0:                            "0s",
		2*time.Hour + 30*time.Second: "2h0m30s",
	}
	for d, exp := range cases {
		dd := settings.Duration(d)
		assert.Equal(t, exp, *dd.Marshal())
	}
	var nilD *settings.Duration
	assert.Nil(t, nilD.Marshal())

	var d settings.Duration
	require.NoError(t, d.UnmarshalText([]byte("720h")))
	assert.Equal(t, settings.Duration(720*time.Hour), d)
	assert.Error(t, d.UnmarshalText([]byte("a month")))
	assert.Equal(t, settings.Duration(720*time.Hour), d, "kept on failure")
}

func TestDefaults(t *testing.T) {
	var b *bool
	settings.Nil2Zero(&b)
	require.NotNil(t, b)
	assert.False(t, *b)

	def := "x"
	var s *string
	settings.OverwriteNil(&s, &def)
	require.NotNil(t, s)
	def = "y"
	assert.Equal(t, "x", *s, "a copy is stored")
	settings.OverwriteNil(&s, &def)
	assert.Equal(t, "x", *s)
}

func TestVerifyRange(t *testing.T) {
	minb, maxb := 1, 10
	v := 42
	p := &v
	err := settings.VerifyRange(&p, &minb, &maxb)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, 10, *p, "value is clamped")

	var np *int
	assert.Nil(t, settings.VerifyRange(&np, &minb, &maxb))
	assert.True(t, settings.VerifyRange(&np, &maxb, &minb).InvalidRange)
}

func TestOutOfRangeMessage(t *testing.T) {
	minb, maxb := settings.Duration(time.Minute), settings.Duration(time.Hour)
	d := settings.Duration(10 * time.Second)
	p := &d
	err := settings.VerifyRange(&p, &minb, &maxb)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.EqualError(t, err, "10s is less than the minimum 1m")
	assert.Equal(t, minb, *p)
}
