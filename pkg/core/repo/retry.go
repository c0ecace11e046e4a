// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

const retryJitterFactor = 0.3

// RetryPolicy specifies how many times a conflicting transaction may
// be executed and how long RetryTx should wait before each retry.
// The n-th retry waits for BaseDelay * 2^(n-1) plus a random jitter
// of at most 30 percent of that delay.
//
// The OnRetry function is optional and is called before each retry
// with the retry number (starting from 1) and the conflict error.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
	OnRetry   func(ctx context.Context, retry int, err error)
}

// RetryTx begins a transaction on c and runs handler in it just like
// the c.Tx method. If the transaction fails with an error wrapping the
// ErrTxConflict, it will be executed again as permitted by the p retry
// policy. Other errors are returned immediately. At least one attempt
// is made even if p.Attempts is not positive.
// Waiting between attempts may be cancelled by ctx.
func RetryTx(
	ctx context.Context, c Conn, p RetryPolicy, handler TxHandler,
) error {
	var err error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			delay := p.BaseDelay * time.Duration(1<<(attempt-1))
			jitter := rand.Float64() * float64(delay) * retryJitterFactor
			if p.OnRetry != nil {
				p.OnRetry(ctx, attempt, err)
			}
			t := time.NewTimer(delay + time.Duration(jitter))
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			}
		}
		err = c.Tx(ctx, handler)
		if err == nil || !errors.Is(err, ErrTxConflict) {
			return err
		}
		if attempt+1 >= p.Attempts {
			return err
		}
	}
}
