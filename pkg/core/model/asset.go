// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Asset models a physical item which may be loaned to a Borrower.
//
// The Tag field is the human-assigned patrimony identifier which is
// written on the item itself. At most one non-suspended asset may hold
// a given Tag at any time, while the ID is the surrogate identifier
// which is assigned by the persistence store.
//
// Zero values represent absent fields: a nil Category, an empty Tag,
// the ConditionInvalid and StatusInvalid enum values, and a zero
// EntryDate. The validation rules of the assets use case rely on them.
type Asset struct {
	ID        int64     `json:"id"`
	Category  *Category `json:"category"`
	Tag       string    `json:"tag"`
	Name      string    `json:"name,omitempty"`
	Condition Condition `json:"condition"`
	Status    Status    `json:"status"`
	EntryDate time.Time `json:"entry_date"`
	Suspended bool      `json:"suspended"`
}

// AssetFilter restricts the assets listing results.
type AssetFilter struct {
	CategoryID       int64  // zero means any category
	Status           Status // StatusInvalid means any status
	IncludeSuspended bool
}
