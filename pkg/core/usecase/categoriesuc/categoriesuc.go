// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package categoriesuc contains the asset categories UseCase.
package categoriesuc

import (
	"context"
	"fmt"
	"strings"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

type UseCase struct {
	pool         repo.Pool
	categoriesrp repo.Categories
}

func New(p repo.Pool, c repo.Categories) *UseCase {
	return &UseCase{pool: p, categoriesrp: c}
}

// Create inserts a new category. Its name is required.
func (categories *UseCase) Create(
	ctx context.Context, c *model.Category,
) (saved *model.Category, err error) {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return nil, cerr.Validation("category name is required")
	}
	cc := model.Category{Name: c.Name}
	err = categories.pool.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		saved, err = categories.categoriesrp.Conn(conn).Save(ctx, &cc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Get returns the id category or a not found error.
func (categories *UseCase) Get(
	ctx context.Context, id int64,
) (c *model.Category, err error) {
	err = categories.pool.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		c, err = categories.categoriesrp.Conn(conn).FindByID(ctx, id)
		return err
	})
	switch {
	case err != nil:
		return nil, err
	case c == nil:
		return nil, cerr.NotFound(fmt.Errorf("category %d not found", id))
	}
	return c, nil
}

// List returns one page of categories, ordered by their IDs.
func (categories *UseCase) List(
	ctx context.Context, p model.Page,
) (cs []model.Category, err error) {
	p = model.NormalizePage(p, model.DefaultPageLimit, model.MaxPageLimit)
	err = categories.pool.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		cs, err = categories.categoriesrp.Conn(conn).List(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}
