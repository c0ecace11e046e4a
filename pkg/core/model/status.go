// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Status specifies the availability of an asset.
//
// Creation of a movement moves an asset from StatusAvailable to
// StatusInUse. The reverse transition is not performed by any movement
// operation; it happens when an asset is updated with StatusAvailable
// (e.g., when the item is brought back).
type Status int

// Valid values for the Status enum.
const (
	StatusInvalid Status = iota // zero value means absent

	StatusAvailable // may be loaned
	StatusInUse     // loaned by a movement
)

// ErrUnknownStatus indicates that a given string may not be parsed as
// a valid/known asset status.
var ErrUnknownStatus = errors.New("unknown asset status")

// StatusError indicates an invalid (out of range) status value.
type StatusError int

// Error implements the error interface.
func (e StatusError) Error() string {
	return fmt.Sprintf("invalid asset status: %d", e)
}

// Validate returns nil if s is a known status, otherwise, a StatusError.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusInUse:
		return nil
	default:
		return StatusError(s)
	}
}

// String converts the Status enum to its string representation.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusInUse:
		return "IN_USE"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Status) UnmarshalText(b []byte) error {
	ss, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = ss
	return nil
}

// ParseStatus parses the given string and returns a Status.
// For unknown strings, StatusInvalid and ErrUnknownStatus
// will be returned.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "AVAILABLE":
		return StatusAvailable, nil
	case "IN_USE":
		return StatusInUse, nil
	default:
		return StatusInvalid, ErrUnknownStatus
	}
}
