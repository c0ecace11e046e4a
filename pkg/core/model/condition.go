// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Condition specifies the physical condition of an asset. Although this
// enum is numeric, it is (de)serialized as a string for readability in
// the adapter layer (both in the REST API and in the database).
type Condition int

// Valid values for the Condition enum.
const (
	ConditionInvalid Condition = iota // zero value means absent

	ConditionNew     // never loaned before
	ConditionUsed    // usable, but shows wear
	ConditionDamaged // needs repair before being loaned again
)

// ErrUnknownCondition indicates that a given string may not be parsed
// as a valid/known asset condition. Caller of ParseCondition already
// knows about the invalid string, so it is not repeated here.
var ErrUnknownCondition = errors.New("unknown asset condition")

// ConditionError indicates an invalid (out of range) condition value.
type ConditionError int

// Error implements the error interface, returning a string
// representation of the ConditionError.
func (e ConditionError) Error() string {
	return fmt.Sprintf("invalid asset condition: %d", e)
}

// Validate returns nil if the Condition value is one of the known
// conditions. For other values (including ConditionInvalid), an
// instance of the ConditionError will be returned.
func (c Condition) Validate() error {
	switch c {
	case ConditionNew, ConditionUsed, ConditionDamaged:
		return nil
	default:
		return ConditionError(c)
	}
}

// String converts the Condition enum to a string, helping to serialize
// it for transmission to web clients or storage in the database.
// Invalid conditions are rendered by their numeric value.
func (c Condition) String() string {
	switch c {
	case ConditionNew:
		return "NEW"
	case ConditionUsed:
		return "USED"
	case ConditionDamaged:
		return "DAMAGED"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only valid conditions may be marshaled.
func (c Condition) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
// using the ParseCondition function.
func (c *Condition) UnmarshalText(b []byte) error {
	cc, err := ParseCondition(string(b))
	if err != nil {
		return err
	}
	*c = cc
	return nil
}

// ParseCondition parses the given string and returns a Condition.
// For unknown strings, ConditionInvalid and ErrUnknownCondition
// will be returned.
func ParseCondition(s string) (Condition, error) {
	switch s {
	case "NEW":
		return ConditionNew, nil
	case "USED":
		return ConditionUsed, nil
	case "DAMAGED":
		return ConditionDamaged, nil
	default:
		return ConditionInvalid, ErrUnknownCondition
	}
}
