// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the generic helpers which are used by the
// config package for decoding, defaulting, and verifying individual
// configuration settings. Optional settings are kept as pointers, so
// a missing setting can be detected as a nil pointer.
package settings
