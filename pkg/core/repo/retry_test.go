// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/stretchr/testify/assert"
)

type fakeTx struct{}

func (fakeTx) IsTx() {}

// fakeConn fails its first `conflicts` transactions with a conflict.
type fakeConn struct {
	conflicts int
	calls     int
}

func (c *fakeConn) IsConn() {}

func (c *fakeConn) Tx(ctx context.Context, h repo.TxHandler) error {
	c.calls++
	if c.calls <= c.conflicts {
		return fmt.Errorf("commit: %w", repo.ErrTxConflict)
	}
	return h(ctx, fakeTx{})
}

func noOp(context.Context, repo.Tx) error {
	return nil
}

func TestRetryTxRecoversFromConflicts(t *testing.T) {
	c := &fakeConn{conflicts: 2}
	var retries []int
	p := repo.RetryPolicy{
		Attempts:  3,
		BaseDelay: time.Millisecond,
		OnRetry: func(_ context.Context, n int, err error) {
			assert.ErrorIs(t, err, repo.ErrTxConflict)
			retries = append(retries, n)
		},
	}
	assert.NoError(t, repo.RetryTx(context.Background(), c, p, noOp))
	assert.Equal(t, 3, c.calls)
	assert.Equal(t, []int{1, 2}, retries)
}

func TestRetryTxGivesUp(t *testing.T) {
	c := &fakeConn{conflicts: 5}
	p := repo.RetryPolicy{Attempts: 2, BaseDelay: time.Millisecond}
	err := repo.RetryTx(context.Background(), c, p, noOp)
	assert.ErrorIs(t, err, repo.ErrTxConflict)
	assert.Equal(t, 2, c.calls)
}

func TestRetryTxDoesNotRetryOtherErrors(t *testing.T) {
	c := &fakeConn{}
	boom := errors.New("boom")
	p := repo.RetryPolicy{Attempts: 5}
	err := repo.RetryTx(context.Background(), c, p,
		func(context.Context, repo.Tx) error { return boom },
	)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.calls)
}

func TestRetryTxStopsOnCancel(t *testing.T) {
	c := &fakeConn{conflicts: 5}
	ctx, cancel := context.WithCancel(context.Background())
	p := repo.RetryPolicy{
		Attempts:  5,
		BaseDelay: time.Hour,
		OnRetry: func(context.Context, int, error) {
			cancel()
		},
	}
	err := repo.RetryTx(ctx, c, p, noOp)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, c.calls)
}
