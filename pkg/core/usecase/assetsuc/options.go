// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package assetsuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the assets use case.
type Option func(uc *UseCase) error

// WithPageLimits option configures the default and maximum number of
// assets which may be returned by one List call.
func WithPageLimits(def, max int) Option {
	return func(uc *UseCase) error {
		if def <= 0 || def > max {
			return fmt.Errorf("invalid page limits: %d, %d", def, max)
		}
		if uc.defaultLimit != 0 {
			return errors.New("page limits are already configured")
		}
		uc.defaultLimit, uc.maxLimit = def, max
		return nil
	}
}
