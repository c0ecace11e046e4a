// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Schema interface presents expectations from a repository which allows
// database schema, tables, and roles management. It is used by the
// schemauc package in order to prepare an empty database for the web
// server; the admin role creates the schema and the normal role, then
// the normal role creates the tables in that schema.
type Schema interface {
	Conn(Conn) SchemaConnQueryer
	Tx(Tx) SchemaTxQueryer
}

// SchemaConnQueryer lists the schema operations which may be executed
// with auto-committed statements.
type SchemaConnQueryer interface {
	SchemaQueryer
}

// SchemaTxQueryer lists the schema operations which must be executed
// in a transaction.
type SchemaTxQueryer interface {
	SchemaQueryer

	// ChangePasswords updates the passwords of the given roles
	// in the current transaction. The roles and passwords slices must
	// have the same number of entries, so they can be used in pair.
	// The passwords are hashed before being sent to the DBMS.
	ChangePasswords(
		ctx context.Context, roles []Role, passwords []string,
	) error

	// CreateTables creates the categories, borrowers, assets, and
	// movements tables (and their indices) in the current schema of
	// the search_path. Tables must not exist beforehand.
	CreateTables(ctx context.Context) error
}

// SchemaQueryer lists the schema operations which may be executed
// either with a connection or in a transaction.
//
// Caller is responsible to pass trusted schema names since they are
// not passed as query parameters. The role names may be suffixed
// automatically based on the repository settings.
type SchemaQueryer interface {
	// DropCascadeIfExists drops `schema` and all of its dependent
	// objects. A missing schema is ignored.
	DropCascadeIfExists(ctx context.Context, schema string) error

	// CreateSchema creates the `schema` schema which must not exist.
	CreateSchema(ctx context.Context, schema string) error

	// CreateRoleIfNotExists creates `role` with the login option, but
	// without any password (see ChangePasswords).
	CreateRoleIfNotExists(ctx context.Context, role Role) error

	// GrantPrivileges grants ALL privileges on `schema` to `role`.
	GrantPrivileges(ctx context.Context, schema string, role Role) error

	// SetSearchPath makes `schema` the default search_path of `role`.
	SetSearchPath(ctx context.Context, schema string, role Role) error
}
