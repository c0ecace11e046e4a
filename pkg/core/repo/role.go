// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Role is a string specifying a database connection role. Each role
// has a set of granted privileges which indicates which operations
// may be performed after using it for connecting to a database.
//
// The schemauc use case needs both roles in order to prepare a new
// database, while the web server only connects with the NormalRole.
// Their authentication information are read from the pass files which
// are located in the directory indicated by the configuration file.
type Role string

// These constants specify the expected database roles. At least the
// AdminRole must exist beforehand (i.e., must be created manually)
// and it must have super user privileges, so it can be used to create
// other required roles (if they are not already created).
const (
	// AdminRole is an administrator (super user) role which may be used
	// for creation of other roles, granting them relevant privileges,
	// or creation of empty schema.
	AdminRole Role = "admin"

	// NormalRole is a normal (unprivilged) role which is used for
	// creation of tables in an existing schema and for all queries
	// of the web server.
	NormalRole Role = "gpcweb"
)
