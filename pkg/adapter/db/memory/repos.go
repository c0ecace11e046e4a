// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memory

import (
	"context"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

// AssetsRepo implements the repo.Assets interface.
type AssetsRepo struct{}

func (AssetsRepo) Conn(c repo.Conn) repo.AssetsConnQueryer {
	return assetsQueryer{s: connSession(c)}
}

func (AssetsRepo) Tx(tx repo.Tx) repo.AssetsTxQueryer {
	return assetsQueryer{s: txSession(tx)}
}

type assetsQueryer struct {
	s session
}

func (q assetsQueryer) FindByID(
	_ context.Context, id int64,
) (a *model.Asset, err error) {
	err = q.s.read(func(t *tables) error {
		a = t.asset(id)
		return nil
	})
	return
}

// LockByID is the same as FindByID since transactions are serialized.
func (q assetsQueryer) LockByID(
	ctx context.Context, id int64,
) (*model.Asset, error) {
	return q.FindByID(ctx, id)
}

func (q assetsQueryer) FindByTag(
	_ context.Context, tag string,
) (a *model.Asset, err error) {
	err = q.s.read(func(t *tables) error {
		for id, r := range t.assets {
			if !r.Suspended && r.Tag == tag {
				a = t.asset(id)
				break
			}
		}
		return nil
	})
	return
}

func (q assetsQueryer) ExistsByID(
	_ context.Context, id int64,
) (ok bool, err error) {
	err = q.s.read(func(t *tables) error {
		_, ok = t.assets[id]
		return nil
	})
	return
}

func (q assetsQueryer) Save(
	_ context.Context, a *model.Asset,
) (saved *model.Asset, err error) {
	err = q.s.write(func(t *tables) error {
		saved, err = t.saveAsset(a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (q assetsQueryer) List(
	_ context.Context, f model.AssetFilter, p model.Page,
) (as []model.Asset, err error) {
	err = q.s.read(func(t *tables) error {
		ids := page(t.assets, p, func(r assetRow) bool {
			switch {
			case r.Suspended && !f.IncludeSuspended:
				return false
			case f.CategoryID != 0 && r.CategoryID != f.CategoryID:
				return false
			case f.Status != model.StatusInvalid && r.Status != f.Status:
				return false
			}
			return true
		})
		as = make([]model.Asset, 0, len(ids))
		for _, id := range ids {
			as = append(as, *t.asset(id))
		}
		return nil
	})
	return
}

// BorrowersRepo implements the repo.Borrowers interface.
type BorrowersRepo struct{}

func (BorrowersRepo) Conn(c repo.Conn) repo.BorrowersConnQueryer {
	return borrowersQueryer{s: connSession(c)}
}

func (BorrowersRepo) Tx(tx repo.Tx) repo.BorrowersTxQueryer {
	return borrowersQueryer{s: txSession(tx)}
}

type borrowersQueryer struct {
	s session
}

func (q borrowersQueryer) FindByID(
	_ context.Context, id int64,
) (b *model.Borrower, err error) {
	err = q.s.read(func(t *tables) error {
		b = t.borrower(id)
		return nil
	})
	return
}

func (q borrowersQueryer) ExistsByID(
	_ context.Context, id int64,
) (ok bool, err error) {
	err = q.s.read(func(t *tables) error {
		_, ok = t.borrowers[id]
		return nil
	})
	return
}

func (q borrowersQueryer) Save(
	_ context.Context, b *model.Borrower,
) (saved *model.Borrower, err error) {
	err = q.s.write(func(t *tables) error {
		saved = t.saveBorrower(b)
		return nil
	})
	return
}

func (q borrowersQueryer) List(
	_ context.Context, f model.BorrowerFilter, p model.Page,
) (bs []model.Borrower, err error) {
	err = q.s.read(func(t *tables) error {
		ids := page(t.borrowers, p, func(b model.Borrower) bool {
			return f.IncludeSuspended || !b.Suspended
		})
		bs = make([]model.Borrower, 0, len(ids))
		for _, id := range ids {
			bs = append(bs, t.borrowers[id])
		}
		return nil
	})
	return
}

// MovementsRepo implements the repo.Movements interface.
type MovementsRepo struct{}

func (MovementsRepo) Conn(c repo.Conn) repo.MovementsConnQueryer {
	return movementsQueryer{s: connSession(c)}
}

func (MovementsRepo) Tx(tx repo.Tx) repo.MovementsTxQueryer {
	return movementsQueryer{s: txSession(tx)}
}

type movementsQueryer struct {
	s session
}

func (q movementsQueryer) FindByID(
	_ context.Context, id int64,
) (m *model.Movement, err error) {
	err = q.s.read(func(t *tables) error {
		m = t.movement(id)
		return nil
	})
	return
}

func (q movementsQueryer) ExistsByID(
	_ context.Context, id int64,
) (ok bool, err error) {
	err = q.s.read(func(t *tables) error {
		_, ok = t.movements[id]
		return nil
	})
	return
}

func (q movementsQueryer) Save(
	_ context.Context, m *model.Movement,
) (saved *model.Movement, err error) {
	err = q.s.write(func(t *tables) error {
		saved, err = t.saveMovement(m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (q movementsQueryer) List(
	_ context.Context, f model.MovementFilter, p model.Page,
) (ms []model.Movement, err error) {
	err = q.s.read(func(t *tables) error {
		ids := page(t.movements, p, func(r movementRow) bool {
			switch {
			case r.Suspended && !f.IncludeSuspended:
				return false
			case f.AssetID != 0 && r.AssetID != f.AssetID:
				return false
			case f.BorrowerID != 0 && r.BorrowerID != f.BorrowerID:
				return false
			}
			return true
		})
		ms = make([]model.Movement, 0, len(ids))
		for _, id := range ids {
			ms = append(ms, *t.movement(id))
		}
		return nil
	})
	return
}

// CategoriesRepo implements the repo.Categories interface.
type CategoriesRepo struct{}

func (CategoriesRepo) Conn(c repo.Conn) repo.CategoriesConnQueryer {
	return categoriesQueryer{s: connSession(c)}
}

func (CategoriesRepo) Tx(tx repo.Tx) repo.CategoriesTxQueryer {
	return categoriesQueryer{s: txSession(tx)}
}

type categoriesQueryer struct {
	s session
}

func (q categoriesQueryer) FindByID(
	_ context.Context, id int64,
) (c *model.Category, err error) {
	err = q.s.read(func(t *tables) error {
		c = t.category(id)
		return nil
	})
	return
}

func (q categoriesQueryer) Save(
	_ context.Context, c *model.Category,
) (saved *model.Category, err error) {
	err = q.s.write(func(t *tables) error {
		saved = t.saveCategory(c)
		return nil
	})
	return
}

func (q categoriesQueryer) List(
	_ context.Context, p model.Page,
) (cs []model.Category, err error) {
	err = q.s.read(func(t *tables) error {
		ids := page(t.categories, p, func(model.Category) bool {
			return true
		})
		cs = make([]model.Category, 0, len(ids))
		for _, id := range ids {
			cs = append(cs, t.categories[id])
		}
		return nil
	})
	return
}
