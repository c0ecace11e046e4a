// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/orbitechz/GPC-Backend/pkg/core/scram"
)

// Iterations count of the PBKDF2 algorithm which is used for hashing
// the role passwords.
const scramIters = 15000

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func roleName(roleSuffix repo.Role, role repo.Role) string {
	return ident(string(role + roleSuffix))
}

// DropCascadeIfExists drops the `schema` schema with cascading if it
// exists. All tables, indices, and constraints in that schema will be
// dropped too.
func DropCascadeIfExists[Q postgres.Queryer](
	ctx context.Context, q Q, schema string,
) error {
	_, err := q.Exec(ctx, "DROP SCHEMA IF EXISTS "+ident(schema)+" CASCADE")
	return err
}

// CreateSchema tries to create the `schema` schema.
// There must be no other schema with the `schema` name, otherwise,
// this operation will fail.
func CreateSchema[Q postgres.Queryer](
	ctx context.Context, q Q, schema string,
) error {
	_, err := q.Exec(ctx, "CREATE SCHEMA "+ident(schema))
	return err
}

// CreateRoleIfNotExists creates the `role` role if it does not
// exist right now. Although the login option is enabled for the
// created role, but no specific password will be set for it.
//
// The `role` role name may be suffixed by `roleSuffix` if it is not
// empty. This is useful to have distinct role names if repo.Role
// predefined constants are not desirable.
func CreateRoleIfNotExists[Q postgres.Queryer](
	ctx context.Context, q Q, roleSuffix repo.Role, role repo.Role,
) error {
	r := string(role + roleSuffix)
	var n int64
	err := q.GORM(ctx).Raw(
		"SELECT count(*) FROM pg_roles WHERE rolname = ?", r,
	).Scan(&n).Error
	if err != nil {
		return fmt.Errorf("checking role existence: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = q.Exec(ctx, "CREATE ROLE "+ident(r)+" WITH LOGIN")
	return err
}

// GrantPrivileges grants ALL privileges on the `schema` schema
// to the `role` role, so it may create or access tables in that schema
// and run relevant queries.
func GrantPrivileges[Q postgres.Queryer](
	ctx context.Context,
	q Q,
	roleSuffix repo.Role,
	schema string,
	role repo.Role,
) error {
	_, err := q.Exec(ctx, fmt.Sprintf(
		"GRANT ALL ON SCHEMA %s TO %s",
		ident(schema), roleName(roleSuffix, role),
	))
	return err
}

// SetSearchPath alters the given database role and sets its default
// search_path to the given schema name alone.
func SetSearchPath[Q postgres.Queryer](
	ctx context.Context,
	q Q,
	roleSuffix repo.Role,
	schema string,
	role repo.Role,
) error {
	_, err := q.Exec(ctx, fmt.Sprintf(
		"ALTER ROLE %s SET search_path TO %s",
		roleName(roleSuffix, role), ident(schema),
	))
	return err
}

// ChangePasswords updates the passwords of the given roles in the
// current transaction. The roles and passwords slices must have the
// same number of entries, so they can be used in pair.
//
// The `hasher` will be used for hashing of the `passwords` before
// sending them to the DBMS (so they may not leak in plaintext).
// This SCRAM hasher format must conform with the DBMS expected format.
func ChangePasswords(
	ctx context.Context,
	tx *postgres.Tx,
	roleSuffix repo.Role,
	hasher scram.Hasher,
	roles []repo.Role,
	passwords []string,
) error {
	if len(roles) != len(passwords) {
		return fmt.Errorf(
			"roles (%d) and passwords (%d) counts differ",
			len(roles), len(passwords),
		)
	}
	if hasher == nil {
		return errors.New("no password hasher is configured")
	}
	for i, r := range roles {
		h, err := hasher.Hash(passwords[i], "", scramIters)
		if err != nil {
			return fmt.Errorf("hashing password of %q: %w", r, err)
		}
		// The SCRAM hash string consists of base64 letters and the
		// $ and : separators, so it may be quoted as is.
		_, err = tx.Exec(ctx, fmt.Sprintf(
			"ALTER ROLE %s WITH PASSWORD '%s'",
			roleName(roleSuffix, r), h,
		))
		if err != nil {
			return fmt.Errorf("altering password of %q: %w", r, err)
		}
	}
	return nil
}

// CreateTables creates the categories, borrowers, assets, and
// movements tables in the first schema of the current search_path.
func CreateTables(ctx context.Context, tx *postgres.Tx) error {
	_, err := tx.Exec(ctx, `CREATE TABLE categories (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL
);
CREATE TABLE borrowers (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    document TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    suspended BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE assets (
    id BIGSERIAL PRIMARY KEY,
    category_id BIGINT NOT NULL,
    tag TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    condition TEXT NOT NULL,
    status TEXT NOT NULL,
    entry_date DATE NOT NULL,
    suspended BOOLEAN NOT NULL DEFAULT FALSE,
    CONSTRAINT assets_category_fk FOREIGN KEY (category_id)
        REFERENCES categories (id),
    CONSTRAINT assets_condition_check
        CHECK (condition IN ('NEW', 'USED', 'DAMAGED')),
    CONSTRAINT assets_status_check
        CHECK (status IN ('AVAILABLE', 'IN_USE'))
);
CREATE UNIQUE INDEX assets_active_tag_key ON assets (tag)
    WHERE NOT suspended;
CREATE INDEX assets_category_idx ON assets (category_id);
CREATE TABLE movements (
    id BIGSERIAL PRIMARY KEY,
    loan_date DATE NOT NULL,
    return_date DATE NOT NULL,
    asset_id BIGINT NOT NULL,
    borrower_id BIGINT NOT NULL,
    suspended BOOLEAN NOT NULL DEFAULT FALSE,
    CONSTRAINT movements_asset_fk FOREIGN KEY (asset_id)
        REFERENCES assets (id),
    CONSTRAINT movements_borrower_fk FOREIGN KEY (borrower_id)
        REFERENCES borrowers (id)
);
CREATE INDEX movements_asset_idx ON movements (asset_id);
CREATE INDEX movements_borrower_idx ON movements (borrower_id)`)
	return err
}
