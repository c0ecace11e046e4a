// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationMarshal(t *testing.T) {
	for _, tc := range []struct {
		d    time.Duration
		want string
	}{
		{d: 2 * time.Hour, want: "2h"},
		{d: 3 * time.Minute, want: "3m"},
		{d: time.Hour + 30*time.Second, want: "1h0m30s"},
		{d: 10 * time.Millisecond, want: "10ms"},
	} {
		d := settings.Duration(tc.d)
		s := d.Marshal()
		require.NotNil(t, s)
		assert.Equal(t, tc.want, *s)
	}
	var nilD *settings.Duration
	assert.Nil(t, nilD.Marshal())
	_, err := nilD.MarshalText()
	assert.Error(t, err)
}

func TestDurationUnmarshalText(t *testing.T) {
	var d settings.Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, settings.Duration(90*time.Second), d)
	assert.Error(t, d.UnmarshalText([]byte("soon")))
	assert.Equal(t, settings.Duration(90*time.Second), d, "must not change")
}

func TestVerifyRange(t *testing.T) {
	minb, maxb := 1, 10
	v := 20
	pv := &v
	err := settings.VerifyRange(&pv, &minb, &maxb)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, 20, *err.Value)
	assert.Equal(t, 10, *pv, "value must be clamped")

	v = 0
	pv = &v
	err = settings.VerifyRange(&pv, &minb, &maxb)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, 1, *pv)

	pv = nil
	assert.Nil(t, settings.VerifyRange(&pv, &minb, &maxb))
	assert.Nil(t, settings.VerifyRange(&pv, nil, nil))

	err = settings.VerifyRange(&pv, &maxb, &minb)
	require.NotNil(t, err)
	assert.True(t, err.InvalidRange)
}

func TestNil2Zero(t *testing.T) {
	var b *bool
	settings.Nil2Zero(&b)
	require.NotNil(t, b)
	assert.False(t, *b)

	n := 5
	pn := &n
	settings.OverwriteNil(&pn, nil)
	assert.Equal(t, 5, *pn)
	var dst *int
	settings.OverwriteNil(&dst, pn)
	require.NotNil(t, dst)
	assert.Equal(t, 5, *dst)
	assert.NotSame(t, pn, dst)
}
