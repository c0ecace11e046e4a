package movementsrp

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

func (movements *Repo) Conn(c repo.Conn) repo.MovementsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByID(ctx context.Context, id int64) (*model.Movement, error) {
	return FindByID(ctx, cq.Conn, id)
}

func (cq connQueryer) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, cq.Conn, id)
}

func (cq connQueryer) Save(ctx context.Context, m *model.Movement) (*model.Movement, error) {
	return Save(ctx, cq.Conn, m)
}

func (cq connQueryer) List(ctx context.Context, f model.MovementFilter, p model.Page) ([]model.Movement, error) {
	return List(ctx, cq.Conn, f, p)
}

type txQueryer struct {
	*postgres.Tx
}

func (movements *Repo) Tx(tx repo.Tx) repo.MovementsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByID(ctx context.Context, id int64) (*model.Movement, error) {
	return FindByID(ctx, tq.Tx, id)
}

func (tq txQueryer) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, tq.Tx, id)
}

func (tq txQueryer) Save(ctx context.Context, m *model.Movement) (*model.Movement, error) {
	return Save(ctx, tq.Tx, m)
}

func (tq txQueryer) List(ctx context.Context, f model.MovementFilter, p model.Page) ([]model.Movement, error) {
	return List(ctx, tq.Tx, f, p)
}
