// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memory

import (
	"maps"
	"slices"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

type assetRow struct {
	ID         int64
	CategoryID int64
	Tag        string
	Name       string
	Condition  model.Condition
	Status     model.Status
	EntryDate  time.Time
	Suspended  bool
}

type movementRow struct {
	ID         int64
	LoanDate   time.Time
	ReturnDate time.Time
	AssetID    int64
	BorrowerID int64
	Suspended  bool
}

type tables struct {
	categories map[int64]model.Category
	borrowers  map[int64]model.Borrower
	assets     map[int64]assetRow
	movements  map[int64]movementRow

	lastCategoryID int64
	lastBorrowerID int64
	lastAssetID    int64
	lastMovementID int64
}

func newTables() *tables {
	return &tables{
		categories: map[int64]model.Category{},
		borrowers:  map[int64]model.Borrower{},
		assets:     map[int64]assetRow{},
		movements:  map[int64]movementRow{},
	}
}

func (t *tables) clone() *tables {
	tt := *t
	tt.categories = maps.Clone(t.categories)
	tt.borrowers = maps.Clone(t.borrowers)
	tt.assets = maps.Clone(t.assets)
	tt.movements = maps.Clone(t.movements)
	return &tt
}

// nextID returns id if it is not zero (upsert of a known row) and
// allocates the next identifier of a sequence otherwise.
func nextID(id int64, last *int64) int64 {
	if id == 0 {
		*last++
		return *last
	}
	if id > *last {
		*last = id
	}
	return id
}

// page returns the sorted ids of m which are accepted by keep, limited
// to the p page.
func page[T any](m map[int64]T, p model.Page, keep func(T) bool) []int64 {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep(v) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if p.Offset >= len(ids) {
		return nil
	}
	ids = ids[p.Offset:]
	if p.Limit > 0 && p.Limit < len(ids) {
		ids = ids[:p.Limit]
	}
	return ids
}

func (t *tables) category(id int64) *model.Category {
	c, ok := t.categories[id]
	if !ok {
		return nil
	}
	return &c
}

func (t *tables) borrower(id int64) *model.Borrower {
	b, ok := t.borrowers[id]
	if !ok {
		return nil
	}
	return &b
}

func (t *tables) asset(id int64) *model.Asset {
	r, ok := t.assets[id]
	if !ok {
		return nil
	}
	return &model.Asset{
		ID:        r.ID,
		Category:  t.category(r.CategoryID),
		Tag:       r.Tag,
		Name:      r.Name,
		Condition: r.Condition,
		Status:    r.Status,
		EntryDate: r.EntryDate,
		Suspended: r.Suspended,
	}
}

func (t *tables) movement(id int64) *model.Movement {
	r, ok := t.movements[id]
	if !ok {
		return nil
	}
	return &model.Movement{
		ID:         r.ID,
		LoanDate:   r.LoanDate,
		ReturnDate: r.ReturnDate,
		Asset:      t.asset(r.AssetID),
		Borrower:   t.borrower(r.BorrowerID),
		Suspended:  r.Suspended,
	}
}

func (t *tables) saveCategory(c *model.Category) *model.Category {
	cc := *c
	cc.ID = nextID(cc.ID, &t.lastCategoryID)
	t.categories[cc.ID] = cc
	return &cc
}

func (t *tables) saveBorrower(b *model.Borrower) *model.Borrower {
	bb := *b
	bb.ID = nextID(bb.ID, &t.lastBorrowerID)
	t.borrowers[bb.ID] = bb
	return &bb
}

func (t *tables) saveAsset(a *model.Asset) (*model.Asset, error) {
	r := assetRow{
		ID:        a.ID,
		Tag:       a.Tag,
		Name:      a.Name,
		Condition: a.Condition,
		Status:    a.Status,
		EntryDate: a.EntryDate,
		Suspended: a.Suspended,
	}
	if a.Category != nil {
		r.CategoryID = a.Category.ID
	}
	if _, ok := t.categories[r.CategoryID]; !ok {
		return nil, cerr.Validation("referenced category does not exist")
	}
	if !r.Suspended {
		for _, other := range t.assets {
			if other.ID != r.ID && !other.Suspended && other.Tag == r.Tag {
				return nil, cerr.Validation(
					"asset tag is already used by another asset",
				)
			}
		}
	}
	r.ID = nextID(r.ID, &t.lastAssetID)
	t.assets[r.ID] = r
	return t.asset(r.ID), nil
}

func (t *tables) saveMovement(m *model.Movement) (*model.Movement, error) {
	r := movementRow{
		ID:         m.ID,
		LoanDate:   m.LoanDate,
		ReturnDate: m.ReturnDate,
		AssetID:    m.AssetID(),
		BorrowerID: m.BorrowerID(),
		Suspended:  m.Suspended,
	}
	if _, ok := t.assets[r.AssetID]; !ok {
		return nil, cerr.Validation("referenced asset does not exist")
	}
	if _, ok := t.borrowers[r.BorrowerID]; !ok {
		return nil, cerr.Validation("referenced borrower does not exist")
	}
	r.ID = nextID(r.ID, &t.lastMovementID)
	t.movements[r.ID] = r
	return t.movement(r.ID), nil
}
