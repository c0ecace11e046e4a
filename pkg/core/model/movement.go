// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Movement models a loan transaction which links one Asset with one
// Borrower over a date range. The ReturnDate is the expected return
// date which is chosen when the loan is created.
//
// Asset and Borrower are references. Only their ID fields are needed
// in order to persist a Movement, but the stores fill the other fields
// when a Movement is fetched.
// The Suspended flag works as a soft-delete (cancellation) marker.
type Movement struct {
	ID         int64     `json:"id"`
	LoanDate   time.Time `json:"loan_date"`
	ReturnDate time.Time `json:"return_date"`
	Asset      *Asset    `json:"asset"`
	Borrower   *Borrower `json:"borrower"`
	Suspended  bool      `json:"suspended"`
}

// AssetID returns the referenced asset ID or zero if m has no asset.
func (m *Movement) AssetID() int64 {
	if m.Asset == nil {
		return 0
	}
	return m.Asset.ID
}

// BorrowerID returns the referenced borrower ID or zero if m has no
// borrower reference.
func (m *Movement) BorrowerID() int64 {
	if m.Borrower == nil {
		return 0
	}
	return m.Borrower.ID
}

// MovementFilter restricts the movements listing results.
type MovementFilter struct {
	AssetID          int64 // zero means any asset
	BorrowerID       int64 // zero means any borrower
	IncludeSuspended bool
}

// BorrowerFilter restricts the borrowers listing results.
type BorrowerFilter struct {
	IncludeSuspended bool
}
