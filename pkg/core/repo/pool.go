package repo

import "context"

type ConnHandler func(context.Context, Conn) error

// Pool represents a pool of connections. Its Conn method acquires one
// connection, passes it to handler, and releases it after handler
// returns. The Conn may not be used after that point.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}
