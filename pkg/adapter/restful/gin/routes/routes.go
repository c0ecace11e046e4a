// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/config"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/memory"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/assetsrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/borrowersrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/categoriesrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/movementsrp"
	gpcgin "github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/assetsrs"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/borrowersrs"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/categoriesrs"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/movementsrs"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/movementsuc"
)

// BasePath is the prefix of all resource paths.
const BasePath = "/api/gpc/v1"

// PostgresRepos returns the repositories which must be used with
// a postgres.Pool connections pool.
func PostgresRepos() config.Repos {
	return config.Repos{
		Categories: categoriesrp.New(),
		Borrowers:  borrowersrp.New(),
		Assets:     assetsrp.New(),
		Movements:  movementsrp.New(),
	}
}

// MemoryRepos returns the repositories which must be used with
// a memory.Pool store.
func MemoryRepos() config.Repos {
	return config.Repos{
		Categories: memory.CategoriesRepo{},
		Borrowers:  memory.BorrowersRepo{},
		Assets:     memory.AssetsRepo{},
		Movements:  memory.MovementsRepo{},
	}
}

// Register instantiates the use cases based on the `c` settings.
// The p connections pool is passed to the use case instances, so
// they may acquire/release connections and transactions on demand.
// These connections/transactions will be passed to the `rs`
// repositories later in order to run relevant queries on them.
// Register instantiates a series of "resource" structs, from packages
// which are named like assetsrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// If m is not nil, retried movement transactions are counted by it.
func Register(
	e *gin.Engine,
	p repo.Pool,
	rs config.Repos,
	c config.Usecases,
	m *gpcgin.Metrics,
) error {
	var opts []movementsuc.Option
	if m != nil {
		opts = append(opts, movementsuc.WithRetryObserver(m.ObserveTxRetry))
	}
	ucs, err := c.NewUseCases(p, rs, opts...)
	if err != nil {
		return fmt.Errorf("creating use cases: %w", err)
	}
	r := e.Group(BasePath)
	categoriesrs.Register(r, ucs.Categories)
	borrowersrs.Register(r, ucs.Borrowers)
	assetsrs.Register(r, ucs.Assets)
	movementsrs.Register(r, ucs.Movements)
	return nil
}
