// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package movementsuc contains the movements UseCase which manages the
// loan transactions. Three write use cases are supported:
//  1. Creating a movement, which loans an available asset to a
//     borrower and marks that asset as IN_USE,
//  2. Editing a movement, which replaces all of its fields,
//  3. Deactivating a movement, which marks it as suspended.
//
// A movement creation reads the borrower and asset, updates the asset
// status, and inserts the movement in one transaction. So either both
// writes are committed or none of them. Transactions which fail due to
// a conflict with concurrent transactions are retried.
package movementsuc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/log"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

// UseCase represents the movements use case. It holds a database
// connection pool, the movements, assets, and borrowers repositories,
// and the movements use case specific settings.
type UseCase struct {
	pool        repo.Pool
	movementsrp repo.Movements
	assetsrp    repo.Assets
	borrowersrp repo.Borrowers

	txRetries    int
	txRetryDelay time.Duration
	onRetry      func(ctx context.Context, retry int, err error)
	defaultLimit int
	maxLimit     int
}

// New instantiates a movements use case.
func New(
	p repo.Pool,
	m repo.Movements,
	a repo.Assets,
	b repo.Borrowers,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, movementsrp: m, assetsrp: a, borrowersrp: b}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.txRetries == 0 {
		uc.txRetries = 3
	}
	if uc.txRetryDelay == 0 {
		uc.txRetryDelay = 10 * time.Millisecond
	}
	if uc.defaultLimit == 0 {
		uc.defaultLimit = model.DefaultPageLimit
		uc.maxLimit = model.MaxPageLimit
	}
	return uc, nil
}

func (movements *UseCase) inTx(ctx context.Context, h repo.TxHandler) error {
	p := repo.RetryPolicy{
		Attempts:  movements.txRetries,
		BaseDelay: movements.txRetryDelay,
		OnRetry: func(ctx context.Context, retry int, err error) {
			log.Warn(ctx, "retrying conflicting transaction",
				log.Err("err", err),
			)
			if movements.onRetry != nil {
				movements.onRetry(ctx, retry, err)
			}
		},
	}
	err := movements.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return repo.RetryTx(ctx, c, p, h)
	})
	if errors.Is(err, repo.ErrTxConflict) {
		return cerr.Conflict(err)
	}
	return err
}

// Create loans an asset to a borrower.
//
// The m movement must have its loan and return dates and references
// to an asset and a borrower (with their IDs). The borrower and asset
// must exist and must not be suspended, and the asset must not be in
// use by another movement. In that case, the asset status is changed
// to IN_USE and m is inserted as a new movement (any ID which is set
// in m is ignored). The stored movement is returned.
// All checks and writes run in one transaction and the asset row is
// locked before its status is checked.
func (movements *UseCase) Create(
	ctx context.Context, m *model.Movement,
) (saved *model.Movement, err error) {
	if m == nil {
		return nil, cerr.Validation("movement is required")
	}
	if err := requireFields(m); err != nil {
		return nil, err
	}
	mm := *m
	mm.ID = 0
	err = movements.inTx(ctx, func(ctx context.Context, tx repo.Tx) error {
		b, err := movements.borrowersrp.Tx(tx).FindByID(ctx, mm.BorrowerID())
		switch {
		case err != nil:
			return fmt.Errorf("finding borrower: %w", err)
		case b == nil:
			return cerr.Validationf(
				"borrower %d does not exist", mm.BorrowerID(),
			)
		case b.Suspended:
			return cerr.Validationf("borrower %d is suspended", b.ID)
		}
		aq := movements.assetsrp.Tx(tx)
		a, err := aq.LockByID(ctx, mm.AssetID())
		switch {
		case err != nil:
			return fmt.Errorf("locking asset: %w", err)
		case a == nil:
			return cerr.Validationf(
				"asset %d does not exist", mm.AssetID(),
			)
		case a.Suspended:
			return cerr.Validationf("asset %d is suspended", a.ID)
		case a.Status == model.StatusInUse:
			return cerr.Validationf("asset %d is already in use", a.ID)
		}
		a.Status = model.StatusInUse
		if _, err = aq.Save(ctx, a); err != nil {
			return fmt.Errorf("saving asset status: %w", err)
		}
		saved, err = movements.movementsrp.Tx(tx).Save(ctx, &mm)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "asset is loaned",
		log.ID("movement", saved.ID),
		log.ID("asset", saved.AssetID()),
		log.ID("borrower", saved.BorrowerID()),
	)
	return saved, nil
}

// Edit replaces all fields of the id movement with the fields of m.
// The id movement must exist, m.ID must be equal to id, and m must
// have its dates and references. Suspension of the referenced asset
// and borrower is not checked and the asset status is not changed.
func (movements *UseCase) Edit(
	ctx context.Context, id int64, m *model.Movement,
) (saved *model.Movement, err error) {
	err = movements.inTx(ctx, func(ctx context.Context, tx repo.Tx) error {
		q := movements.movementsrp.Tx(tx)
		ok, err := q.ExistsByID(ctx, id)
		switch {
		case err != nil:
			return fmt.Errorf("checking movement existence: %w", err)
		case !ok:
			return cerr.Validationf("movement %d does not exist", id)
		case m == nil || m.ID != id:
			return cerr.Validationf(
				"movement id does not match the path id %d", id,
			)
		}
		if err := requireFields(m); err != nil {
			return err
		}
		saved, err = q.Save(ctx, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Deactivate marks the id movement as suspended and returns it.
// The status of its asset is not changed.
func (movements *UseCase) Deactivate(
	ctx context.Context, id int64,
) (saved *model.Movement, err error) {
	err = movements.inTx(ctx, func(ctx context.Context, tx repo.Tx) error {
		q := movements.movementsrp.Tx(tx)
		m, err := q.FindByID(ctx, id)
		switch {
		case err != nil:
			return fmt.Errorf("finding movement: %w", err)
		case m == nil:
			return cerr.Validationf("movement %d does not exist", id)
		}
		m.Suspended = true
		saved, err = q.Save(ctx, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "movement is deactivated", log.ID("movement", id))
	return saved, nil
}

// Get returns the id movement or a not found error.
func (movements *UseCase) Get(
	ctx context.Context, id int64,
) (m *model.Movement, err error) {
	err = movements.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		m, err = movements.movementsrp.Conn(c).FindByID(ctx, id)
		return err
	})
	switch {
	case err != nil:
		return nil, err
	case m == nil:
		return nil, cerr.NotFound(fmt.Errorf("movement %d not found", id))
	}
	return m, nil
}

// List returns the movements which match f, ordered by their IDs.
func (movements *UseCase) List(
	ctx context.Context, f model.MovementFilter, p model.Page,
) (ms []model.Movement, err error) {
	p = model.NormalizePage(p, movements.defaultLimit, movements.maxLimit)
	err = movements.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ms, err = movements.movementsrp.Conn(c).List(ctx, f, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ms, nil
}

// requireFields checks the presence of the fields which are required
// by both of Create and Edit, in order.
func requireFields(m *model.Movement) error {
	switch {
	case m.LoanDate.IsZero():
		return cerr.Validation("movement loan date is required")
	case m.ReturnDate.IsZero():
		return cerr.Validation("movement return date is required")
	case m.Asset == nil:
		return cerr.Validation("movement asset is required")
	case m.Asset.ID == 0:
		return cerr.Validation("movement asset id is required")
	case m.Borrower == nil:
		return cerr.Validation("movement borrower is required")
	case m.Borrower.ID == 0:
		return cerr.Validation("movement borrower id is required")
	}
	return nil
}
