// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package assetsuc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/memory"
	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/assetsuc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var entryDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

type AssetsSuite struct {
	suite.Suite

	ctx  context.Context
	pool *memory.Pool
	uc   *assetsuc.UseCase
	cat  *model.Category
}

func TestAssetsSuite(t *testing.T) {
	suite.Run(t, new(AssetsSuite))
}

func (as *AssetsSuite) SetupTest() {
	as.ctx = context.Background()
	as.pool = memory.NewPool()
	var err error
	as.uc, err = assetsuc.New(
		as.pool, memory.AssetsRepo{}, assetsuc.WithPageLimits(2, 3),
	)
	as.Require().NoError(err)
	err = as.pool.Conn(as.ctx, func(ctx context.Context, c repo.Conn) error {
		as.cat, err = memory.CategoriesRepo{}.Conn(c).Save(
			ctx, &model.Category{Name: "Beds"},
		)
		return err
	})
	as.Require().NoError(err)
}

func (as *AssetsSuite) asset(tag string) *model.Asset {
	return &model.Asset{
		Category:  &model.Category{ID: as.cat.ID},
		Tag:       tag,
		Name:      "Hospital bed",
		Condition: model.ConditionNew,
		Status:    model.StatusAvailable,
		EntryDate: entryDate,
	}
}

func (as *AssetsSuite) requireValidation(err error, msg string) {
	as.Require().Error(err)
	var ve cerr.ValidationError
	as.Require().ErrorAs(err, &ve)
	as.Equal(msg, string(ve))
}

func (as *AssetsSuite) TestCreate() {
	a, err := as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.Require().NoError(err)
	as.Equal(int64(1), a.ID)
	as.Equal("Beds", a.Category.Name)

	got, err := as.uc.Get(as.ctx, a.ID)
	as.Require().NoError(err)
	as.Equal(a, got)
}

func (as *AssetsSuite) TestCreateRulesAreCheckedInOrder() {
	_, err := as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.Require().NoError(err)
	for _, tc := range []struct {
		msg    string
		mutate func(a *model.Asset)
	}{
		{"asset category is required", func(a *model.Asset) {
			a.Category = nil
			a.Tag = ""
		}},
		{"asset category id is required", func(a *model.Asset) {
			a.Category.ID = 0
		}},
		{"asset tag is required", func(a *model.Asset) {
			a.Tag = "  "
			a.Condition = model.ConditionInvalid
		}},
		{`asset tag "PAT-001" is already used by asset 1`,
			func(a *model.Asset) {
				a.Tag = "PAT-001"
				a.EntryDate = time.Time{}
			}},
		{"asset condition is required", func(a *model.Asset) {
			a.Condition = model.ConditionInvalid
		}},
		{"invalid asset condition: 9", func(a *model.Asset) {
			a.Condition = 9
		}},
		{"asset status is required", func(a *model.Asset) {
			a.Status = model.StatusInvalid
		}},
		{"invalid asset status: 9", func(a *model.Asset) {
			a.Status = 9
		}},
		{"asset entry date is required", func(a *model.Asset) {
			a.EntryDate = time.Time{}
		}},
	} {
		a := as.asset("PAT-002")
		tc.mutate(a)
		_, err := as.uc.Create(as.ctx, a)
		as.requireValidation(err, tc.msg)
	}
}

func (as *AssetsSuite) TestValidateForUpdate() {
	err := as.pool.Conn(as.ctx, func(ctx context.Context, c repo.Conn) error {
		q := memory.AssetsRepo{}.Conn(c)
		as.requireValidation(
			assetsuc.ValidateForUpdate(ctx, q, nil), "asset is required",
		)
		a := as.asset("PAT-009")
		as.requireValidation(
			assetsuc.ValidateForUpdate(ctx, q, a), "asset id is required",
		)
		a.ID = 5
		a.EntryDate = time.Time{}
		as.NoError(assetsuc.ValidateForUpdate(ctx, q, a))
		as.requireValidation(
			assetsuc.ValidateForCreate(ctx, q, a),
			"asset entry date is required",
		)
		return nil
	})
	as.Require().NoError(err)
}

func (as *AssetsSuite) TestUpdate() {
	a, err := as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.Require().NoError(err)
	b, err := as.uc.Create(as.ctx, as.asset("PAT-002"))
	as.Require().NoError(err)

	upd := as.asset("PAT-003")
	upd.ID = 999 // path id wins
	upd.Status = model.StatusInUse
	upd.EntryDate = time.Time{}
	saved, err := as.uc.Update(as.ctx, a.ID, upd)
	as.Require().NoError(err)
	as.Equal(a.ID, saved.ID)
	as.Equal("PAT-003", saved.Tag)
	as.Equal(model.StatusInUse, saved.Status)
	as.Equal(entryDate, saved.EntryDate)

	upd = as.asset("PAT-002")
	_, err = as.uc.Update(as.ctx, a.ID, upd)
	as.requireValidation(err, fmt.Sprintf(
		`asset tag "PAT-002" is already used by asset %d`, b.ID,
	))

	_, err = as.uc.Update(as.ctx, b.ID, as.asset("PAT-002"))
	as.NoError(err, "an asset may keep its own tag")

	_, err = as.uc.Update(as.ctx, 404, as.asset("PAT-404"))
	as.requireValidation(err, "asset 404 does not exist")
}

func (as *AssetsSuite) TestReturnByUpdate() {
	a := as.asset("PAT-001")
	a.Status = model.StatusInUse
	a, err := as.uc.Create(as.ctx, a)
	as.Require().NoError(err)
	a.Status = model.StatusAvailable
	a, err = as.uc.Update(as.ctx, a.ID, a)
	as.Require().NoError(err)
	as.Equal(model.StatusAvailable, a.Status)
}

func (as *AssetsSuite) TestDelete() {
	_, err := as.uc.Delete(as.ctx, 404)
	as.requireValidation(err, "asset 404 does not exist")

	a, err := as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.Require().NoError(err)
	deleted, err := as.uc.Delete(as.ctx, a.ID)
	as.Require().NoError(err)
	as.True(deleted.Suspended)

	_, err = as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.NoError(err, "tag of a deleted asset may be reused")

	got, err := as.uc.Get(as.ctx, a.ID)
	as.Require().NoError(err)
	as.True(got.Suspended)
}

func (as *AssetsSuite) TestUpdateSuspendedAssetWithReusedTag() {
	a, err := as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.Require().NoError(err)
	_, err = as.uc.Delete(as.ctx, a.ID)
	as.Require().NoError(err)
	_, err = as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.Require().NoError(err)

	upd := as.asset("PAT-001")
	upd.Condition = model.ConditionDamaged
	saved, err := as.uc.Update(as.ctx, a.ID, upd)
	as.Require().NoError(err, "suspended asset keeps its old tag")
	as.True(saved.Suspended)
	as.Equal(model.ConditionDamaged, saved.Condition)
}

func (as *AssetsSuite) TestList() {
	for _, tag := range []string{"A", "B", "C", "D"} {
		_, err := as.uc.Create(as.ctx, as.asset(tag))
		as.Require().NoError(err)
	}
	list, err := as.uc.List(as.ctx, model.AssetFilter{}, model.Page{})
	as.Require().NoError(err)
	as.Len(list, 2, "default limit")
	list, err = as.uc.List(as.ctx, model.AssetFilter{}, model.Page{Limit: 50})
	as.Require().NoError(err)
	as.Len(list, 3, "max limit")
	list, err = as.uc.List(as.ctx, model.AssetFilter{
		Status: model.StatusInUse,
	}, model.Page{})
	as.Require().NoError(err)
	as.Empty(list)
}

func (as *AssetsSuite) TestGetMissing() {
	_, err := as.uc.Get(as.ctx, 1)
	var ce *cerr.Error
	as.Require().True(errors.As(err, &ce))
	as.Equal(404, ce.HTTPStatusCode)
}

func (as *AssetsSuite) TestImport() {
	_, err := as.uc.Create(as.ctx, as.asset("PAT-001"))
	as.Require().NoError(err)
	s, err := as.uc.Import(as.ctx, []assetsuc.ImportRow{
		{Line: 2, Asset: as.asset("PAT-002")},
		{Line: 3, Asset: as.asset("PAT-001")},
		{Line: 4, Err: errors.New(`unknown condition "BROKEN"`)},
		{Line: 5, Asset: as.asset("PAT-003")},
	})
	as.Require().NoError(err)
	as.Equal(2, s.Created)
	as.Equal([]assetsuc.ImportFailure{
		{Line: 3, Message: `asset tag "PAT-001" is already used by asset 1`},
		{Line: 4, Message: `unknown condition "BROKEN"`},
	}, s.Failures)
}
