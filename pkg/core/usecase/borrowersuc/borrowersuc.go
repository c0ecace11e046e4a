// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package borrowersuc contains the borrowers UseCase. Borrowers are
// never deleted; a borrower who should not receive new loans is
// suspended instead.
package borrowersuc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/log"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

type UseCase struct {
	pool        repo.Pool
	borrowersrp repo.Borrowers

	defaultLimit int
	maxLimit     int
}

// Option is a functional option for the borrowers use case.
type Option func(uc *UseCase) error

// WithPageLimits option configures the default and maximum number of
// borrowers which may be returned by one List call.
func WithPageLimits(def, max int) Option {
	return func(uc *UseCase) error {
		if def <= 0 || def > max {
			return fmt.Errorf("invalid page limits: %d, %d", def, max)
		}
		if uc.defaultLimit != 0 {
			return errors.New("page limits are already configured")
		}
		uc.defaultLimit, uc.maxLimit = def, max
		return nil
	}
}

// New instantiates a borrowers use case.
func New(p repo.Pool, b repo.Borrowers, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pool: p, borrowersrp: b}
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

// Create inserts a new non-suspended borrower. Name is required.
func (borrowers *UseCase) Create(
	ctx context.Context, b *model.Borrower,
) (saved *model.Borrower, err error) {
	if err := requireName(b); err != nil {
		return nil, err
	}
	bb := *b
	bb.ID = 0
	bb.Suspended = false
	err = borrowers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		saved, err = borrowers.borrowersrp.Conn(c).Save(ctx, &bb)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Update replaces the name, document, and phone of the id borrower.
// The id path parameter wins over b.ID and the suspension flag may
// only be changed by Suspend.
func (borrowers *UseCase) Update(
	ctx context.Context, id int64, b *model.Borrower,
) (saved *model.Borrower, err error) {
	if err := requireName(b); err != nil {
		return nil, err
	}
	err = borrowers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := borrowers.borrowersrp.Tx(tx)
			old, err := q.FindByID(ctx, id)
			switch {
			case err != nil:
				return fmt.Errorf("finding borrower: %w", err)
			case old == nil:
				return cerr.Validationf("borrower %d does not exist", id)
			}
			bb := *b
			bb.ID = id
			bb.Suspended = old.Suspended
			saved, err = q.Save(ctx, &bb)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Suspend marks the id borrower as suspended, so it may not receive
// new loans. Existing movements of that borrower are not changed.
func (borrowers *UseCase) Suspend(
	ctx context.Context, id int64,
) (saved *model.Borrower, err error) {
	err = borrowers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := borrowers.borrowersrp.Tx(tx)
			b, err := q.FindByID(ctx, id)
			switch {
			case err != nil:
				return fmt.Errorf("finding borrower: %w", err)
			case b == nil:
				return cerr.Validationf("borrower %d does not exist", id)
			}
			b.Suspended = true
			saved, err = q.Save(ctx, b)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "borrower is suspended", log.ID("borrower", id))
	return saved, nil
}

// Get returns the id borrower or a not found error.
func (borrowers *UseCase) Get(
	ctx context.Context, id int64,
) (b *model.Borrower, err error) {
	err = borrowers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		b, err = borrowers.borrowersrp.Conn(c).FindByID(ctx, id)
		return err
	})
	switch {
	case err != nil:
		return nil, err
	case b == nil:
		return nil, cerr.NotFound(fmt.Errorf("borrower %d not found", id))
	}
	return b, nil
}

// List returns the borrowers which match f, ordered by their IDs.
func (borrowers *UseCase) List(
	ctx context.Context, f model.BorrowerFilter, p model.Page,
) (bs []model.Borrower, err error) {
	p = model.NormalizePage(p, borrowers.defaultLimit, borrowers.maxLimit)
	err = borrowers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		bs, err = borrowers.borrowersrp.Conn(c).List(ctx, f, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func requireName(b *model.Borrower) error {
	switch {
	case b == nil:
		return cerr.Validation("borrower is required")
	case strings.TrimSpace(b.Name) == "":
		return cerr.Validation("borrower name is required")
	}
	return nil
}
