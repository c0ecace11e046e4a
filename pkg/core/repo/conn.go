package repo

import "context"

type TxHandler func(context.Context, Tx) error

// Conn represents a database connection which may run auto-committed
// statements (through the Conn methods of repositories) or may begin
// a transaction with the Tx method. The transaction is committed if
// handler returns nil and is rolled back otherwise.
//
// A Conn is unsafe to be used concurrently.
type Conn interface {
	Tx(ctx context.Context, handler TxHandler) error
	IsConn()
}
