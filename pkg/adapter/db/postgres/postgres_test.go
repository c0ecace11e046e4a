// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/orbitechz/GPC-Backend/internal/test/dbcontainer"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/config"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/assetsrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/borrowersrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/categoriesrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/movementsrp"
	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/schemauc"
	"github.com/stretchr/testify/suite"
)

type PostgresTestSuite struct {
	suite.Suite

	ctx  context.Context
	dfrs []func()
	pool repo.Pool
	ucs  *config.UseCases
}

func TestPostgresTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

func (pts *PostgresTestSuite) SetupSuite() {
	pts.ctx = context.Background()
	t := pts.T()
	pg, pool, dfrs, ok := dbcontainer.New(pts.ctx, 60*time.Second, t)
	pts.dfrs = dfrs
	pts.Require().True(ok, "test database is not ready")

	dir, err := os.MkdirTemp("", "gpc-db")
	pts.Require().NoError(err, "creating temp db dir")
	pts.dfrs = append(pts.dfrs, func() {
		pts.NoError(os.RemoveAll(dir), "removing temp db dir")
	})
	db := dbcontainer.NewDatabase(pts.ctx, t, pg, pool, dir, "gpc_it")
	uc := schemauc.New(db, schemauc.Repos{
		Categories: categoriesrp.New(),
		Borrowers:  borrowersrp.New(),
		Assets:     assetsrp.New(),
	})
	pts.Require().NoError(uc.InitDev(pts.ctx), "initializing dev database")

	p, err := db.ConnectionPool(pts.ctx, repo.NormalRole)
	pts.Require().NoError(err, "connecting with the normal role")
	pts.dfrs = append(pts.dfrs, func() {
		pts.NoError(p.Close(), "closing normal role pool")
	})
	pts.pool = p
	c, err := config.Parse(nil)
	pts.Require().NoError(err, "parsing default config")
	pts.ucs, err = c.Usecases.NewUseCases(p, config.Repos{
		Categories: categoriesrp.New(),
		Borrowers:  borrowersrp.New(),
		Assets:     assetsrp.New(),
		Movements:  movementsrp.New(),
	})
	pts.Require().NoError(err, "instantiating use cases")
}

func (pts *PostgresTestSuite) TearDownSuite() {
	for i := len(pts.dfrs) - 1; i >= 0; i-- {
		pts.dfrs[i]()
	}
}

func (pts *PostgresTestSuite) TestDevData() {
	as, err := pts.ucs.Assets.List(pts.ctx, model.AssetFilter{}, model.Page{})
	pts.Require().NoError(err)
	pts.Require().Len(as, 3)
	pts.Equal("PAT-001", as[0].Tag)
	pts.Equal("Wheelchairs", as[0].Category.Name)
	pts.Equal(model.ConditionNew, as[0].Condition)
	pts.Equal(2024, as[0].EntryDate.Year())

	as, err = pts.ucs.Assets.List(
		pts.ctx, model.AssetFilter{CategoryID: as[2].Category.ID}, model.Page{},
	)
	pts.Require().NoError(err)
	pts.Len(as, 1)

	cs, err := pts.ucs.Categories.List(pts.ctx, model.Page{})
	pts.Require().NoError(err)
	pts.Len(cs, 2)
}

func (pts *PostgresTestSuite) TestLoanAndConflictingLoans() {
	a := pts.newAsset("PAT-100")
	m, err := pts.ucs.Movements.Create(pts.ctx, pts.movement(a.ID, 1))
	pts.Require().NoError(err)
	pts.Equal(model.StatusInUse, m.Asset.Status)
	pts.Equal("Maria Silva", m.Borrower.Name)

	_, err = pts.ucs.Movements.Create(pts.ctx, pts.movement(a.ID, 2))
	pts.Require().Error(err)
	pts.True(cerr.IsValidation(err), "got %v", err)

	b := pts.newAsset("PAT-101")
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = pts.ucs.Movements.Create(
				pts.ctx, pts.movement(b.ID, int64(i+1)),
			)
		}(i)
	}
	wg.Wait()
	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			pts.True(cerr.IsValidation(err), "got %v", err)
		}
	}
	pts.Equal(1, failed, "exactly one loan must be accepted")

	ms, err := pts.ucs.Movements.List(
		pts.ctx, model.MovementFilter{AssetID: b.ID}, model.Page{},
	)
	pts.Require().NoError(err)
	pts.Len(ms, 1)
}

func (pts *PostgresTestSuite) TestTagUniqueness() {
	a := pts.newAsset("PAT-200")
	_, err := pts.ucs.Assets.Create(pts.ctx, pts.asset("PAT-200"))
	pts.Require().Error(err)
	pts.Contains(err.Error(), "already used by asset")

	// bypassing the use case rules, the partial unique index rejects it
	err = pts.pool.Conn(pts.ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			_, err := assetsrp.New().Tx(tx).Save(ctx, pts.asset("PAT-200"))
			return err
		})
	})
	pts.Require().Error(err)
	pts.True(cerr.IsValidation(err), "got %v", err)

	deleted, err := pts.ucs.Assets.Delete(pts.ctx, a.ID)
	pts.Require().NoError(err)
	pts.True(deleted.Suspended)
	b, err := pts.ucs.Assets.Create(pts.ctx, pts.asset("PAT-200"))
	pts.Require().NoError(err, "suspended assets release their tags")
	pts.NotEqual(a.ID, b.ID)
}

func (pts *PostgresTestSuite) TestNotFound() {
	_, err := pts.ucs.Assets.Get(pts.ctx, 4242)
	pts.Require().Error(err)
	pts.False(cerr.IsValidation(err))
	_, err = pts.ucs.Movements.Create(pts.ctx, pts.movement(4242, 1))
	pts.Require().Error(err)
	pts.Contains(err.Error(), "asset 4242 does not exist")
}

func (pts *PostgresTestSuite) asset(tag string) *model.Asset {
	return &model.Asset{
		Category:  &model.Category{ID: 1},
		Tag:       tag,
		Name:      "Test asset",
		Condition: model.ConditionUsed,
		Status:    model.StatusAvailable,
		EntryDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (pts *PostgresTestSuite) newAsset(tag string) *model.Asset {
	a, err := pts.ucs.Assets.Create(pts.ctx, pts.asset(tag))
	pts.Require().NoError(err, "creating %q asset", tag)
	return a
}

func (pts *PostgresTestSuite) movement(aid, bid int64) *model.Movement {
	loan := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &model.Movement{
		LoanDate:   loan,
		ReturnDate: loan.AddDate(0, 1, 0),
		Asset:      &model.Asset{ID: aid},
		Borrower:   &model.Borrower{ID: bid},
	}
}
