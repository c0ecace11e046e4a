// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Borrower models a person who may receive assets on loan.
// A suspended borrower is kept in the store, but may not take part
// in new movements.
type Borrower struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Document  string `json:"document,omitempty"` // national id number
	Phone     string `json:"phone,omitempty"`
	Suspended bool   `json:"suspended"`
}
