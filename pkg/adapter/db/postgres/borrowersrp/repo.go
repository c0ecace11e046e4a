package borrowersrp

import (
	"context"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (borrowers *Repo) Conn(c repo.Conn) repo.BorrowersConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByID(ctx context.Context, id int64) (*model.Borrower, error) {
	return FindByID(ctx, cq.Conn, id)
}

func (cq connQueryer) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, cq.Conn, id)
}

func (cq connQueryer) Save(ctx context.Context, b *model.Borrower) (*model.Borrower, error) {
	return Save(ctx, cq.Conn, b)
}

func (cq connQueryer) List(ctx context.Context, f model.BorrowerFilter, p model.Page) ([]model.Borrower, error) {
	return List(ctx, cq.Conn, f, p)
}

type txQueryer struct {
	*postgres.Tx
}

func (borrowers *Repo) Tx(tx repo.Tx) repo.BorrowersTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByID(ctx context.Context, id int64) (*model.Borrower, error) {
	return FindByID(ctx, tq.Tx, id)
}

func (tq txQueryer) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, tq.Tx, id)
}

func (tq txQueryer) Save(ctx context.Context, b *model.Borrower) (*model.Borrower, error) {
	return Save(ctx, tq.Tx, b)
}

func (tq txQueryer) List(ctx context.Context, f model.BorrowerFilter, p model.Page) ([]model.Borrower, error) {
	return List(ctx, tq.Tx, f, p)
}
