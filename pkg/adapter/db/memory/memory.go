// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memory implements the repo interfaces by keeping all rows in
// the process memory. It is used by the use cases tests and by the web
// server when it runs without a database.
//
// Transactions are serialized. A Tx works on a private copy of the
// tables which replaces the committed tables when its handler returns
// nil. Each write of a Conn runs as a single-statement transaction.
// The constraints of the PostgreSQL schema are checked during each
// write: a non-suspended asset tag must be unique and referenced rows
// must exist. Their violations are reported as cerr.ValidationError.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

// Pool keeps the committed tables. Its zero value may not be used,
// see the NewPool function.
type Pool struct {
	txMu sync.Mutex   // serializes writers
	mu   sync.RWMutex // guards t
	t    *tables
}

// NewPool creates a Pool with empty tables.
func NewPool() *Pool {
	return &Pool{t: newTables()}
}

// Conn passes a new Conn to handler. Nothing has to be released.
func (p *Pool) Conn(ctx context.Context, handler repo.ConnHandler) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return handler(ctx, &Conn{pool: p})
}

// Close is a no-op, so Pool may be used in place of a database pool.
func (p *Pool) Close() error {
	return nil
}

// atomically runs fn on a copy of the committed tables and commits
// that copy if fn returns nil.
func (p *Pool) atomically(fn func(t *tables) error) error {
	p.txMu.Lock()
	defer p.txMu.Unlock()
	p.mu.RLock()
	t := p.t.clone()
	p.mu.RUnlock()
	if err := fn(t); err != nil {
		return err
	}
	p.mu.Lock()
	p.t = t
	p.mu.Unlock()
	return nil
}

// session is implemented by Conn and Tx, so repositories may run the
// same queries with either of them.
type session interface {
	read(fn func(t *tables) error) error
	write(fn func(t *tables) error) error
}

// Conn is an in-memory connection. It must not be used while one of
// its transactions is in progress.
type Conn struct {
	pool *Pool
}

type TxHandler = repo.TxHandler

// Tx runs handler in a new transaction. The changes are committed if
// handler returns nil and are discarded otherwise (or if it panics).
func (c *Conn) Tx(ctx context.Context, handler TxHandler) error {
	return c.pool.atomically(func(t *tables) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panicked: %v", r)
			}
		}()
		if err = handler(ctx, &Tx{t: t}); err != nil {
			return fmt.Errorf("handler: %w", err)
		}
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
}

func (c *Conn) IsConn() {
}

func (c *Conn) read(fn func(t *tables) error) error {
	c.pool.mu.RLock()
	defer c.pool.mu.RUnlock()
	return fn(c.pool.t)
}

func (c *Conn) write(fn func(t *tables) error) error {
	return c.pool.atomically(fn)
}

// Tx is an in-memory transaction, holding a private copy of tables.
type Tx struct {
	t *tables
}

func (tx *Tx) IsTx() {
}

func (tx *Tx) read(fn func(t *tables) error) error {
	return fn(tx.t)
}

func (tx *Tx) write(fn func(t *tables) error) error {
	return fn(tx.t)
}

func connSession(c repo.Conn) session {
	return c.(*Conn)
}

func txSession(tx repo.Tx) session {
	return tx.(*Tx)
}
