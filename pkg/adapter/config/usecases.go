// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/config/settings"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/assetsuc"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/borrowersuc"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/categoriesuc"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/movementsuc"
)

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Movements Movements // movements use case related settings
	Listing   Listing   // pagination settings of all use cases
}

// Movements contains the configuration settings for the movements
// use case. A nil field is left uninitialized, so the use cases layer
// may select a default value.
type Movements struct {
	// TxRetries is the maximum number of times that a conflicting
	// movement creation transaction may be executed.
	TxRetries *int `yaml:"tx-retries"`

	// TxRetryDelay is the delay before the first retry of a
	// conflicting transaction.
	TxRetryDelay *settings.Duration `yaml:"tx-retry-delay"`
	// MinTxRetryDelay is the inclusive minimum acceptable value
	// for the TxRetryDelay setting.
	// A missing value indicates that there is no lower bound.
	MinTxRetryDelay *settings.Duration `yaml:"tx-retry-delay-minimum"`
	// MaxTxRetryDelay is the inclusive maximum acceptable value
	// for the TxRetryDelay setting.
	// A missing value indicates that there is no upper bound.
	MaxTxRetryDelay *settings.Duration `yaml:"tx-retry-delay-maximum"`
}

// Listing contains the pagination settings. Missing values take the
// model.DefaultPageLimit and model.MaxPageLimit values.
type Listing struct {
	DefaultLimit *int `yaml:"default-limit"`
	MaxLimit     *int `yaml:"max-limit"`
}

// Repos groups the repositories which are needed by the use cases.
type Repos struct {
	Categories repo.Categories
	Borrowers  repo.Borrowers
	Assets     repo.Assets
	Movements  repo.Movements
}

// UseCases groups the instantiated use cases.
type UseCases struct {
	Categories *categoriesuc.UseCase
	Borrowers  *borrowersuc.UseCase
	Assets     *assetsuc.UseCase
	Movements  *movementsuc.UseCase
}

// ValidateAndNormalize validates the use cases settings, clamping the
// retry delay in its min/max bounds.
func (u *Usecases) ValidateAndNormalize() error {
	m := &u.Movements
	if m.TxRetries != nil && *m.TxRetries <= 0 {
		return fmt.Errorf("tx-retries (%d) is not positive", *m.TxRetries)
	}
	if err := settings.VerifyRange(
		&m.TxRetryDelay, m.MinTxRetryDelay, m.MaxTxRetryDelay,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(tx retry delay=%v, minb=%v, maxb=%v): %w",
			err.Value, m.MinTxRetryDelay, m.MaxTxRetryDelay, err,
		)
	}
	if m.TxRetryDelay != nil && *m.TxRetryDelay <= 0 {
		return errors.New("tx-retry-delay is not positive")
	}
	l := &u.Listing
	def, max := model.DefaultPageLimit, model.MaxPageLimit
	settings.OverwriteNil(&l.MaxLimit, &max)
	if def > *l.MaxLimit {
		def = *l.MaxLimit
	}
	settings.OverwriteNil(&l.DefaultLimit, &def)
	if *l.DefaultLimit <= 0 || *l.DefaultLimit > *l.MaxLimit {
		return fmt.Errorf(
			"invalid listing limits: default=%d, max=%d",
			*l.DefaultLimit, *l.MaxLimit,
		)
	}
	return nil
}

// NewUseCases instantiates all use cases based on the `u` settings.
// The extra movements options (such as a retry observer) are appended
// to the options which are computed from the settings.
func (u Usecases) NewUseCases(
	p repo.Pool, rs Repos, extra ...movementsuc.Option,
) (*UseCases, error) {
	def, max := *u.Listing.DefaultLimit, *u.Listing.MaxLimit
	assets, err := assetsuc.New(
		p, rs.Assets, assetsuc.WithPageLimits(def, max),
	)
	if err != nil {
		return nil, fmt.Errorf("creating assets use case: %w", err)
	}
	borrowers, err := borrowersuc.New(
		p, rs.Borrowers, borrowersuc.WithPageLimits(def, max),
	)
	if err != nil {
		return nil, fmt.Errorf("creating borrowers use case: %w", err)
	}
	opts := u.Movements.options()
	opts = append(opts, movementsuc.WithPageLimits(def, max))
	opts = append(opts, extra...)
	movements, err := movementsuc.New(
		p, rs.Movements, rs.Assets, rs.Borrowers, opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("creating movements use case: %w", err)
	}
	return &UseCases{
		Categories: categoriesuc.New(p, rs.Categories),
		Borrowers:  borrowers,
		Assets:     assets,
		Movements:  movements,
	}, nil
}

func (m Movements) options() []movementsuc.Option {
	opts := make([]movementsuc.Option, 0, 4)
	if m.TxRetries != nil {
		opts = append(opts, movementsuc.WithTxRetries(*m.TxRetries))
	}
	if m.TxRetryDelay != nil {
		d := time.Duration(*m.TxRetryDelay)
		opts = append(opts, movementsuc.WithTxRetryDelay(d))
	}
	return opts
}
