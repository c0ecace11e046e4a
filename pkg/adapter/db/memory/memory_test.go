// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/memory"
	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

type MemorySuite struct {
	suite.Suite

	ctx  context.Context
	pool *memory.Pool
	cat  *model.Category
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemorySuite))
}

func (ms *MemorySuite) SetupTest() {
	ms.ctx = context.Background()
	ms.pool = memory.NewPool()
	ms.conn(func(c repo.Conn) {
		var err error
		ms.cat, err = memory.CategoriesRepo{}.Conn(c).Save(
			ms.ctx, &model.Category{Name: "Wheelchairs"},
		)
		ms.Require().NoError(err)
	})
}

func (ms *MemorySuite) conn(f func(c repo.Conn)) {
	err := ms.pool.Conn(ms.ctx, func(_ context.Context, c repo.Conn) error {
		f(c)
		return nil
	})
	ms.Require().NoError(err)
}

func (ms *MemorySuite) asset(tag string) *model.Asset {
	return &model.Asset{
		Category:  &model.Category{ID: ms.cat.ID},
		Tag:       tag,
		Condition: model.ConditionNew,
		Status:    model.StatusAvailable,
		EntryDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (ms *MemorySuite) TestSaveFillsReferences() {
	ms.conn(func(c repo.Conn) {
		a, err := memory.AssetsRepo{}.Conn(c).Save(ms.ctx, ms.asset("T-1"))
		ms.Require().NoError(err)
		ms.Equal(int64(1), a.ID)
		ms.Equal("Wheelchairs", a.Category.Name)

		found, err := memory.AssetsRepo{}.Conn(c).FindByTag(ms.ctx, "T-1")
		ms.Require().NoError(err)
		ms.Equal(a, found)

		missing, err := memory.AssetsRepo{}.Conn(c).FindByID(ms.ctx, 42)
		ms.NoError(err)
		ms.Nil(missing)
	})
}

func (ms *MemorySuite) TestActiveTagIsUnique() {
	ms.conn(func(c repo.Conn) {
		q := memory.AssetsRepo{}.Conn(c)
		a, err := q.Save(ms.ctx, ms.asset("T-1"))
		ms.Require().NoError(err)

		_, err = q.Save(ms.ctx, ms.asset("T-1"))
		ms.True(cerr.IsValidation(err), "got %v", err)

		a.Suspended = true
		_, err = q.Save(ms.ctx, a)
		ms.Require().NoError(err)
		_, err = q.Save(ms.ctx, ms.asset("T-1"))
		ms.NoError(err, "suspended assets release their tags")
	})
}

func (ms *MemorySuite) TestForeignKeys() {
	ms.conn(func(c repo.Conn) {
		a := ms.asset("T-1")
		a.Category.ID = 99
		_, err := memory.AssetsRepo{}.Conn(c).Save(ms.ctx, a)
		ms.True(cerr.IsValidation(err))

		_, err = memory.MovementsRepo{}.Conn(c).Save(ms.ctx, &model.Movement{
			Asset:    &model.Asset{ID: 1},
			Borrower: &model.Borrower{ID: 1},
		})
		ms.True(cerr.IsValidation(err))
	})
}

func (ms *MemorySuite) TestTxRollback() {
	boom := errors.New("boom")
	ms.conn(func(c repo.Conn) {
		err := c.Tx(ms.ctx, func(ctx context.Context, tx repo.Tx) error {
			_, err := memory.AssetsRepo{}.Tx(tx).Save(ctx, ms.asset("T-1"))
			ms.Require().NoError(err)
			return boom
		})
		ms.ErrorIs(err, boom)

		err = c.Tx(ms.ctx, func(ctx context.Context, tx repo.Tx) error {
			_, err := memory.AssetsRepo{}.Tx(tx).Save(ctx, ms.asset("T-2"))
			ms.Require().NoError(err)
			panic("oops")
		})
		ms.ErrorContains(err, "panicked: oops")

		ok, err := memory.AssetsRepo{}.Conn(c).ExistsByID(ms.ctx, 1)
		ms.NoError(err)
		ms.False(ok)
	})
}

func (ms *MemorySuite) TestTxCommitIsVisible() {
	ms.conn(func(c repo.Conn) {
		err := c.Tx(ms.ctx, func(ctx context.Context, tx repo.Tx) error {
			b, err := memory.BorrowersRepo{}.Tx(tx).Save(
				ctx, &model.Borrower{Name: "Ana"},
			)
			if err != nil {
				return err
			}
			a, err := memory.AssetsRepo{}.Tx(tx).Save(ctx, ms.asset("T-1"))
			if err != nil {
				return err
			}
			_, err = memory.MovementsRepo{}.Tx(tx).Save(ctx, &model.Movement{
				LoanDate:   a.EntryDate,
				ReturnDate: a.EntryDate.AddDate(0, 1, 0),
				Asset:      a,
				Borrower:   b,
			})
			return err
		})
		ms.Require().NoError(err)

		m, err := memory.MovementsRepo{}.Conn(c).FindByID(ms.ctx, 1)
		ms.Require().NoError(err)
		ms.Equal("Ana", m.Borrower.Name)
		ms.Equal("T-1", m.Asset.Tag)
	})
}

func (ms *MemorySuite) TestListFiltersAndPages() {
	ms.conn(func(c repo.Conn) {
		q := memory.AssetsRepo{}.Conn(c)
		for _, tag := range []string{"A", "B", "C", "D"} {
			_, err := q.Save(ms.ctx, ms.asset(tag))
			ms.Require().NoError(err)
		}
		a, err := q.FindByTag(ms.ctx, "B")
		ms.Require().NoError(err)
		a.Suspended = true
		_, err = q.Save(ms.ctx, a)
		ms.Require().NoError(err)

		as, err := q.List(ms.ctx, model.AssetFilter{}, model.Page{Limit: 2})
		ms.Require().NoError(err)
		ms.Len(as, 2)
		ms.Equal("A", as[0].Tag)
		ms.Equal("C", as[1].Tag)

		as, err = q.List(ms.ctx, model.AssetFilter{IncludeSuspended: true},
			model.Page{Limit: 10, Offset: 3},
		)
		ms.Require().NoError(err)
		ms.Len(as, 1)
		ms.Equal("D", as[0].Tag)
	})
}
