// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package movementsuc

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the movements use case.
type Option func(uc *UseCase) error

// WithTxRetries option configures the maximum number of times that a
// conflicting transaction may be executed. Passing one disables the
// retries.
func WithTxRetries(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("tx retries (%d) is not positive", n)
		}
		if uc.txRetries != 0 {
			return errors.New("tx retries is already configured")
		}
		uc.txRetries = n
		return nil
	}
}

// WithTxRetryDelay option configures the delay before the first retry
// of a conflicting transaction. Next retries wait exponentially longer.
func WithTxRetryDelay(delay time.Duration) Option {
	return func(uc *UseCase) error {
		if d := int64(delay); d <= 0 {
			return fmt.Errorf("delay (%d) is not positive", d)
		}
		if uc.txRetryDelay != 0 {
			return errors.New("tx retry delay is already configured")
		}
		uc.txRetryDelay = delay
		return nil
	}
}

// WithRetryObserver option registers f to be called before each retry
// of a conflicting transaction. It may be used for collecting metrics.
func WithRetryObserver(
	f func(ctx context.Context, retry int, err error),
) Option {
	return func(uc *UseCase) error {
		if f == nil {
			return errors.New("retry observer is nil")
		}
		uc.onRetry = f
		return nil
	}
}

// WithPageLimits option configures the default and maximum number of
// movements which may be returned by one List call.
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
