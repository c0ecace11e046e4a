// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Category groups assets of the same kind, e.g., wheelchairs or
// crutches. Assets refer to their category by its ID.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
