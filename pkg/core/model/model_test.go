// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParseAndValidate(t *testing.T) {
	for _, s := range []string{"NEW", "USED", "DAMAGED"} {
		c, err := model.ParseCondition(s)
		require.NoError(t, err, "parsing %q", s)
		assert.NoError(t, c.Validate())
		assert.Equal(t, s, c.String())
	}
	c, err := model.ParseCondition("BROKEN")
	assert.ErrorIs(t, err, model.ErrUnknownCondition)
	assert.Equal(t, model.ConditionInvalid, c)
	assert.Error(t, model.ConditionInvalid.Validate())
	assert.Equal(t, model.ConditionError(42), model.Condition(42).Validate())
}

func TestStatusParseAndValidate(t *testing.T) {
	s, err := model.ParseStatus("IN_USE")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInUse, s)
	_, err = model.ParseStatus("in_use")
	assert.ErrorIs(t, err, model.ErrUnknownStatus)
	assert.Error(t, model.StatusInvalid.Validate())

	_, err = model.Status(7).MarshalText()
	assert.Equal(t, model.StatusError(7), err)
}

func TestNormalizePage(t *testing.T) {
	for _, tc := range []struct {
		name     string
		in, want model.Page
	}{
		{"defaults", model.Page{}, model.Page{Limit: 50}},
		{"capped", model.Page{Limit: 1000, Offset: 3}, model.Page{Limit: 200, Offset: 3}},
		{"negative offset", model.Page{Limit: 5, Offset: -1}, model.Page{Limit: 5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := model.NormalizePage(
				tc.in, model.DefaultPageLimit, model.MaxPageLimit,
			)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMovementRefs(t *testing.T) {
	m := &model.Movement{}
	assert.Zero(t, m.AssetID())
	assert.Zero(t, m.BorrowerID())
	m.Asset = &model.Asset{ID: 3}
	m.Borrower = &model.Borrower{ID: 4}
	assert.Equal(t, int64(3), m.AssetID())
	assert.Equal(t, int64(4), m.BorrowerID())
}
