// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package assetsuc contains the assets UseCase and the asset validation
// rules. Assets are created, updated, soft deleted, fetched, listed,
// and imported in bulk by this use case. Each write operation validates
// its input with the rules of that operation (see Validate) and then
// saves the asset in the same transaction.
//
// An asset which was loaned (with the IN_USE status) becomes available
// again by an update which sets its status to AVAILABLE.
package assetsuc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/log"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

// UseCase represents the assets use case. It holds a database
// connection pool, the assets repository, and the listing settings.
type UseCase struct {
	pool     repo.Pool
	assetsrp repo.Assets

	defaultLimit int
	maxLimit     int
}

// New instantiates an assets use case.
// Required parameters are passed individually, while optional ones
// are passed as functional options.
func New(p repo.Pool, a repo.Assets, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pool: p, assetsrp: a}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.defaultLimit == 0 {
		uc.defaultLimit = model.DefaultPageLimit
		uc.maxLimit = model.MaxPageLimit
	}
	return uc, nil
}

// Create validates the a asset with the OpCreate rules and saves it
// as a new asset. The stored asset (with its assigned ID) is returned.
// Any ID which is set in a is ignored.
func (assets *UseCase) Create(
	ctx context.Context, a *model.Asset,
) (saved *model.Asset, err error) {
	if a == nil {
		return nil, cerr.Validation("asset is required")
	}
	aa := *a
	aa.ID = 0
	aa.Suspended = false
	err = assets.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := assets.assetsrp.Tx(tx)
			if err := ValidateForCreate(ctx, q, &aa); err != nil {
				return err
			}
			saved, err = q.Save(ctx, &aa)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "asset is created",
		log.ID("asset", saved.ID), slog.String("tag", saved.Tag),
	)
	return saved, nil
}

// Update replaces the fields of the id asset with the fields of a.
// The id path parameter overrides a.ID and the OpUpdate rules are
// checked. The suspended flag of an asset is kept unchanged and a zero
// entry date is replaced by the stored entry date. A suspended asset
// may keep a tag which is reused by an active asset.
// Updating the status of an IN_USE asset to AVAILABLE returns it.
func (assets *UseCase) Update(
	ctx context.Context, id int64, a *model.Asset,
) (saved *model.Asset, err error) {
	var aa *model.Asset
	if a != nil {
		cp := *a
		cp.ID = id
		aa = &cp
	}
	err = assets.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := assets.assetsrp.Tx(tx)
			old, err := q.LockByID(ctx, id)
			if err != nil {
				return fmt.Errorf("locking asset: %w", err)
			}
			if aa != nil && old != nil {
				aa.Suspended = old.Suspended
			}
			if err := ValidateForUpdate(ctx, q, aa); err != nil {
				return err
			}
			if old == nil {
				return cerr.Validationf("asset %d does not exist", id)
			}
			if aa.EntryDate.IsZero() {
				aa.EntryDate = old.EntryDate
			}
			saved, err = q.Save(ctx, aa)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete soft deletes the id asset by marking it as suspended. The
// tag of a suspended asset may be used by other assets. The suspended
// asset is returned.
func (assets *UseCase) Delete(
	ctx context.Context, id int64,
) (saved *model.Asset, err error) {
	err = assets.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := assets.assetsrp.Tx(tx)
			if err := ValidateForDelete(ctx, q, id); err != nil {
				return err
			}
			a, err := q.LockByID(ctx, id)
			if err != nil {
				return fmt.Errorf("locking asset: %w", err)
			}
			if a == nil {
				return cerr.Validationf("asset %d does not exist", id)
			}
			a.Suspended = true
			saved, err = q.Save(ctx, a)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "asset is suspended", log.ID("asset", id))
	return saved, nil
}

// Get returns the id asset or a not found error.
func (assets *UseCase) Get(
	ctx context.Context, id int64,
) (a *model.Asset, err error) {
	err = assets.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		a, err = assets.assetsrp.Conn(c).FindByID(ctx, id)
		return err
	})
	switch {
	case err != nil:
		return nil, err
	case a == nil:
		return nil, cerr.NotFound(fmt.Errorf("asset %d not found", id))
	}
	return a, nil
}

// List returns the assets which match f, ordered by their IDs.
// The p page is normalized based on the listing settings.
func (assets *UseCase) List(
	ctx context.Context, f model.AssetFilter, p model.Page,
) (as []model.Asset, err error) {
	p = model.NormalizePage(p, assets.defaultLimit, assets.maxLimit)
	err = assets.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		as, err = assets.assetsrp.Conn(c).List(ctx, f, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return as, nil
}
