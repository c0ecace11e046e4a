// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemauc contains the database initialization use case.
// It may be used to prepare a database for the web server, filling it
// with development or production suitable data as asked by the InitDev
// and InitProd methods.
package schemauc

import (
	"context"
	"fmt"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

// SchemaName is the name of database schema which holds the tables.
const SchemaName = "gpc"

// Pool is a connection pool which must be closed after use.
type Pool interface {
	repo.Pool
	Close() error
}

// Settings represents the database-related settings which should be
// provided by a configuration file.
type Settings interface {
	// ConnectionPool creates a connection pool for the `r` role.
	// Passwords are read from the pass files, trying the temporary
	// pass file if the main one could not be used.
	ConnectionPool(ctx context.Context, r repo.Role) (Pool, error)

	// NewSchemaRepo instantiates a Schema repository which uses the
	// same role name suffix and password hashing as these settings.
	NewSchemaRepo() repo.Schema

	// RenewPasswords generates new passwords for the given roles and
	// records them in a temporary pass file before calling change
	// in order to update them in the database. The returned finalizer
	// moves the temporary pass file over the main one and must be
	// called after the change transaction is committed.
	RenewPasswords(
		ctx context.Context,
		change func(
			ctx context.Context, roles []repo.Role, passwords []string,
		) error,
		roles ...repo.Role,
	) (finalizer func() error, err error)
}

// Repos groups the repositories which are used for filling the tables
// with their initial rows.
type Repos struct {
	Categories repo.Categories
	Borrowers  repo.Borrowers
	Assets     repo.Assets
}

// UseCase represents the database initialization use case.
type UseCase struct {
	settings   Settings
	schemaRepo repo.Schema
	repos      Repos
}

// New creates a schema UseCase. The `repos` repositories must belong
// to the same database technology as the `ss` settings.
func New(ss Settings, repos Repos) *UseCase {
	return &UseCase{
		settings:   ss,
		schemaRepo: ss.NewSchemaRepo(),
		repos:      repos,
	}
}

// InitProd drops the gpc schema (if it exists) and recreates it using
// the admin role. It also creates the normal role (if it does not
// exist), grants it privileges on the created schema, sets its
// search_path, and renews the passwords of both admin and normal roles.
// These operations are performed in a single transaction of the admin
// role and coordinated with the pass files, so they may be repeated
// after an abrupt failure.
// Thereafter, it connects with the normal role and creates the tables
// in a second transaction. No rows are inserted for production.
func (uc *UseCase) InitProd(ctx context.Context) error {
	return uc.initDB(ctx, nil)
}

// InitDev works like InitProd, but also inserts a few categories,
// borrowers, and assets which are suitable for development.
func (uc *UseCase) InitDev(ctx context.Context) error {
	return uc.initDB(ctx, uc.fillDev)
}

func (uc *UseCase) initDB(
	ctx context.Context,
	fill func(ctx context.Context, tx repo.Tx) error,
) error {
	if err := uc.dropAndCreateAgain(ctx); err != nil {
		return fmt.Errorf("dropping/recreating schema: %w", err)
	}
	p, err := uc.settings.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for normal role: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := uc.schemaRepo.Tx(tx).CreateTables(ctx); err != nil {
				return fmt.Errorf("creating tables: %w", err)
			}
			if fill == nil {
				return nil
			}
			if err := fill(ctx, tx); err != nil {
				return fmt.Errorf("inserting initial rows: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("normal connection: %w", err)
	}
	return nil
}

func (uc *UseCase) dropAndCreateAgain(ctx context.Context) error {
	p, err := uc.settings.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for admin: %w", err)
	}
	defer p.Close()
	var finalizer func() error
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := uc.schemaRepo.Tx(tx)
			sn := SchemaName
			if err := q.DropCascadeIfExists(ctx, sn); err != nil {
				return fmt.Errorf("dropping %q: %w", sn, err)
			}
			if err := q.CreateSchema(ctx, sn); err != nil {
				return fmt.Errorf("creating %q: %w", sn, err)
			}
			if err := q.CreateRoleIfNotExists(
				ctx, repo.NormalRole,
			); err != nil {
				return fmt.Errorf("creating normal role: %w", err)
			}
			if err := q.GrantPrivileges(
				ctx, sn, repo.NormalRole,
			); err != nil {
				return fmt.Errorf("granting normal role privs: %w", err)
			}
			if err := q.SetSearchPath(
				ctx, sn, repo.NormalRole,
			); err != nil {
				return fmt.Errorf(
					"setting search_path of normal role to %q: %w",
					sn, err,
				)
			}
			finalizer, err = uc.settings.RenewPasswords(
				ctx, q.ChangePasswords, repo.AdminRole, repo.NormalRole,
			)
			if err != nil {
				return fmt.Errorf("RenewPasswords: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("admin connection: %w", err)
	}
	if err := finalizer(); err != nil {
		return fmt.Errorf("finalizing passwords renewal: %w", err)
	}
	return nil
}

func (uc *UseCase) fillDev(ctx context.Context, tx repo.Tx) error {
	cq := uc.repos.Categories.Tx(tx)
	cats := make([]*model.Category, 0, 2)
	for _, name := range []string{"Wheelchairs", "Crutches"} {
		c, err := cq.Save(ctx, &model.Category{Name: name})
		if err != nil {
			return fmt.Errorf("saving %q category: %w", name, err)
		}
		cats = append(cats, c)
	}
	bq := uc.repos.Borrowers.Tx(tx)
	for _, b := range []model.Borrower{
		{Name: "Maria Silva", Document: "123.456.789-00"},
		{Name: "Joao Souza", Document: "987.654.321-00"},
	} {
		if _, err := bq.Save(ctx, &b); err != nil {
			return fmt.Errorf("saving %q borrower: %w", b.Name, err)
		}
	}
	aq := uc.repos.Assets.Tx(tx)
	entry := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	for i, a := range []model.Asset{
		{Category: cats[0], Tag: "PAT-001", Name: "Folding wheelchair"},
		{Category: cats[0], Tag: "PAT-002", Name: "Bath wheelchair"},
		{Category: cats[1], Tag: "PAT-003", Name: "Axillary crutches"},
	} {
		a.Condition = model.ConditionNew
		a.Status = model.StatusAvailable
		a.EntryDate = entry.AddDate(0, 0, i)
		if _, err := aq.Save(ctx, &a); err != nil {
			return fmt.Errorf("saving %q asset: %w", a.Tag, err)
		}
	}
	return nil
}
