// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

// These are the SQLSTATE codes which are translated by TranslateError.
const (
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Constraint names which are created by the schemarp package and are
// reported to users in a friendly manner.
const (
	ActiveTagIndex     = "assets_active_tag_key"
	AssetCategoryFK    = "assets_category_fk"
	MovementAssetFK    = "movements_asset_fk"
	MovementBorrowerFK = "movements_borrower_fk"
)

var constraintMessages = map[string]string{
	ActiveTagIndex:     "asset tag is already used by another asset",
	AssetCategoryFK:    "referenced category does not exist",
	MovementAssetFK:    "referenced asset does not exist",
	MovementBorrowerFK: "referenced borrower does not exist",
}

// TranslateError converts the PostgreSQL errors which have a meaning
// in the core layer. Integrity constraint violations become
// cerr.ValidationError instances and serialization failures and
// deadlocks are wrapped by repo.ErrTxConflict.
// Other errors are returned unchanged.
func TranslateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation, codeForeignKeyViolation, codeCheckViolation:
		msg, ok := constraintMessages[pgErr.ConstraintName]
		if !ok {
			msg = fmt.Sprintf("constraint %q is violated", pgErr.ConstraintName)
		}
		return cerr.Validation(msg)
	case codeSerializationFailure, codeDeadlockDetected:
		return fmt.Errorf("%w: %w", repo.ErrTxConflict, err)
	}
	return err
}
