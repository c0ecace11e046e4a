// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package assetsuc

import (
	"context"
	"fmt"
	"strings"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

// Operation identifies the asset operation which is being validated.
// Each operation has its own ordered list of rules and they are not
// unified on purpose; for example, the OpUpdate does not check the
// entry date of an asset.
type Operation int

// Supported operations for the Validate function.
const (
	OpCreate Operation = iota + 1
	OpUpdate
)

// rule checks one precondition. Rules are evaluated in order and
// each rule may assume that its preceding rules have passed.
type rule func(
	ctx context.Context, q repo.AssetsQueryer, a *model.Asset,
) error

var rules = map[Operation][]rule{
	OpCreate: {
		requireCategory,
		requireCategoryID,
		requireTag,
		uniqueTag,
		requireCondition,
		validCondition,
		requireStatus,
		validStatus,
		requireEntryDate,
	},
	OpUpdate: {
		requireAsset,
		requireID,
		requireCategory,
		requireCategoryID,
		requireTag,
		uniqueTag,
		requireCondition,
		validCondition,
		requireStatus,
		validStatus,
	},
}

// Validate checks the a asset against the rules of the op operation
// and returns the first violation as a *cerr.Error wrapping a
// cerr.ValidationError. The tag uniqueness rule queries q for other
// non-suspended assets and its store errors are returned unchanged.
// It is skipped for a suspended a asset.
// Validation has no side effects.
func Validate(
	ctx context.Context, q repo.AssetsQueryer, op Operation, a *model.Asset,
) error {
	rs, ok := rules[op]
	if !ok {
		return fmt.Errorf("unknown asset operation: %d", op)
	}
	for _, r := range rs {
		if err := r(ctx, q, a); err != nil {
			return err
		}
	}
	return nil
}

// ValidateForCreate validates a new asset, see Validate.
func ValidateForCreate(
	ctx context.Context, q repo.AssetsQueryer, a *model.Asset,
) error {
	return Validate(ctx, q, OpCreate, a)
}

// ValidateForUpdate validates an existing asset, see Validate.
func ValidateForUpdate(
	ctx context.Context, q repo.AssetsQueryer, a *model.Asset,
) error {
	return Validate(ctx, q, OpUpdate, a)
}

// ValidateForDelete ensures that an asset with the id ID exists.
func ValidateForDelete(
	ctx context.Context, q repo.AssetsQueryer, id int64,
) error {
	ok, err := q.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("checking asset existence: %w", err)
	}
	if !ok {
		return cerr.Validationf("asset %d does not exist", id)
	}
	return nil
}

func requireAsset(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if a == nil {
		return cerr.Validation("asset is required")
	}
	return nil
}

func requireID(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if a.ID == 0 {
		return cerr.Validation("asset id is required")
	}
	return nil
}

func requireCategory(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if a.Category == nil {
		return cerr.Validation("asset category is required")
	}
	return nil
}

func requireCategoryID(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if a.Category.ID == 0 {
		return cerr.Validation("asset category id is required")
	}
	return nil
}

func requireTag(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if strings.TrimSpace(a.Tag) == "" {
		return cerr.Validation("asset tag is required")
	}
	return nil
}

func uniqueTag(
	ctx context.Context, q repo.AssetsQueryer, a *model.Asset,
) error {
	if a.Suspended {
		return nil // suspended assets hold no active tag
	}
	other, err := q.FindByTag(ctx, a.Tag)
	if err != nil {
		return fmt.Errorf("finding asset by tag: %w", err)
	}
	if other != nil && other.ID != a.ID {
		return cerr.Validationf(
			"asset tag %q is already used by asset %d", a.Tag, other.ID,
		)
	}
	return nil
}

func requireCondition(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if a.Condition == model.ConditionInvalid {
		return cerr.Validation("asset condition is required")
	}
	return nil
}

func validCondition(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if err := a.Condition.Validate(); err != nil {
		return cerr.Validation(err.Error())
	}
	return nil
}

func requireStatus(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if a.Status == model.StatusInvalid {
		return cerr.Validation("asset status is required")
	}
	return nil
}

func validStatus(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if err := a.Status.Validate(); err != nil {
		return cerr.Validation(err.Error())
	}
	return nil
}

func requireEntryDate(
	_ context.Context, _ repo.AssetsQueryer, a *model.Asset,
) error {
	if a.EntryDate.IsZero() {
		return cerr.Validation("asset entry date is required")
	}
	return nil
}
