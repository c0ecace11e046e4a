// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "errors"

// ErrTxConflict is wrapped by the errors which are returned from a
// transaction which could not be serialized with respect to other
// concurrent transactions (e.g., a serialization failure or deadlock).
// Running the same transaction again may succeed, see RetryTx.
var ErrTxConflict = errors.New("transaction conflict")
