// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer is an internal helper for the test packages.
// This packages facilitates creation of a temporary postgres:16
// container and connecting to it, using a *postgres.Pool connection
// pool. It also prepares an empty database and a super user role with
// a pass file, so the gpcweb schema initialization can run against it.
// It may be used in all integration-level test suites which require
// a real PostgreSQL DBMS server.
package dbcontainer

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/config"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/hash/scram"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// New creates and starts up a postgres container.
// A docker (or podman) service needs to be available and the
// DOCKER_HOST environment variable may be needed in order to find it,
// like DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock for
// podman. If the container cannot be started, t is skipped.
// The ctx will be used during the container start up and shutdown,
// while the timeout will be considered only during the start up phase.
func New(ctx context.Context, timeout time.Duration, t *testing.T) (
	pg *sqltestutil.PostgresContainer,
	pool *postgres.Pool,
	dfrs []func(),
	ok bool,
) {
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	dbmsVer := "16"
	pg, err := sqltestutil.StartPostgresContainer(ctx2, dbmsVer)
	if err != nil {
		t.Skipf("postgres container is not available: %v", err)
	}
	dfrs = append(dfrs, func() {
		err := pg.Shutdown(ctx)
		assert.NoError(t, err, "failed to shutdown test database")
	})
	u := pg.ConnectionString()
	for pool == nil {
		pool, err = postgres.NewPool(ctx2, u)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.SQLState() == "57P03" {
			continue // the database system is starting up
		}
		var netErr net.Error
		if ctx2.Err() == nil && errors.As(err, &netErr) {
			continue // tolerate network errors until a timeout
		}
		ok = assert.NoError(t, err, "cannot connect to test database")
		if !ok {
			return
		}
	}
	dfrs = append(dfrs, func() {
		err := pool.Close()
		assert.NoError(t, err, "failed to close the connections pool")
	})
	return
}

// NewDatabase creates the `name` database in the pg container and an
// admin role (suffixed by "_" + name) with super user privileges. The
// admin password is written in a .pgpass file in a fresh directory
// under the `dir` path. The returned Database settings are validated
// and may be passed to the schemauc use case in order to initialize
// the database.
func NewDatabase(
	ctx context.Context,
	t *testing.T,
	pg *sqltestutil.PostgresContainer,
	pool *postgres.Pool,
	dir, name string,
) config.Database {
	r := require.New(t)
	u, err := url.Parse(pg.ConnectionString())
	r.NoError(err, "parsing DB container URL")
	port, err := strconv.Atoi(u.Port())
	r.NoError(err, "parsing DB container port")

	b := make([]byte, 8)
	_, err = rand.Read(b)
	r.NoError(err, "generating a random password")
	pass := fmt.Sprintf("%x", b)

	roleSuffix := repo.Role("_" + name)
	admin := repo.AdminRole + roleSuffix
	hasher := scram.SHA256()
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cc := c.(*postgres.Conn)
		dbName := pgx.Identifier{name}.Sanitize()
		if _, err := cc.Exec(ctx, "CREATE DATABASE "+dbName); err != nil {
			return fmt.Errorf("creating %q database: %w", name, err)
		}
		// The password is hashed before being sent to DBMS, so it may
		// not leak even if it is recorded in some log file.
		hp, err := hasher.Hash(pass, "", 15000)
		if err != nil {
			return fmt.Errorf("computing scram hash of password: %w", err)
		}
		if _, err := cc.Exec(ctx, fmt.Sprintf(
			`CREATE ROLE %s WITH SUPERUSER LOGIN PASSWORD '%s'`,
			pgx.Identifier{string(admin)}.Sanitize(), hp,
		)); err != nil {
			return fmt.Errorf("creating %q role: %w", admin, err)
		}
		return nil
	})
	r.NoError(err, "preparing %q database", name)

	d := filepath.Join(dir, name)
	r.NoError(os.Mkdir(d, 0o700), "creating %q dir", d)
	line := fmt.Sprintf("127.0.0.1:%d:%s:%s:%s\n", port, name, admin, pass)
	pgpass := filepath.Join(d, ".pgpass")
	r.NoError(os.WriteFile(pgpass, []byte(line), 0o600), "writing .pgpass")

	db := config.Database{
		Host:       "127.0.0.1",
		Port:       port,
		Name:       name,
		PassDir:    d,
		RoleSuffix: roleSuffix,
	}
	r.NoError(db.ValidateAndNormalize(), "validating database settings")
	return db
}
