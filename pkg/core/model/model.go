// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., json tags which are used by
// the REST adapter for rendering responses) since adding more tags does
// not complicate definition of a struct, but can prevent unnecessary
// structs duplication.
//
// Surrogate identifiers are int64 values which are assigned by the
// persistence store. The zero value means "not assigned yet" and is
// used by the validation rules in order to detect absent ids.
package model

// Page describes a window of a listing operation. Limit and Offset
// follow the SQL semantics. The use cases normalize a Page before
// passing it to a repository (see the NormalizePage function).
type Page struct {
	Limit  int
	Offset int
}

// These constants specify the default and maximum page sizes which are
// used when a listing request does not choose a valid Limit.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// NormalizePage returns a copy of p with Limit replaced by def when it
// is not positive and capped by max. A negative Offset becomes zero.
func NormalizePage(p Page, def, max int) Page {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
