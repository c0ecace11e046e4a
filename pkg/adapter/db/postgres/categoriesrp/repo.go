package categoriesrp

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

func (categories *Repo) Conn(c repo.Conn) repo.CategoriesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	return FindByID(ctx, cq.Conn, id)
}

func (cq connQueryer) Save(ctx context.Context, c *model.Category) (*model.Category, error) {
	return Save(ctx, cq.Conn, c)
}

func (cq connQueryer) List(ctx context.Context, p model.Page) ([]model.Category, error) {
	return List(ctx, cq.Conn, p)
}

type txQueryer struct {
	*postgres.Tx
}

func (categories *Repo) Tx(tx repo.Tx) repo.CategoriesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	return FindByID(ctx, tq.Tx, id)
}

func (tq txQueryer) Save(ctx context.Context, c *model.Category) (*model.Category, error) {
	return Save(ctx, tq.Tx, c)
}

func (tq txQueryer) List(ctx context.Context, p model.Page) ([]model.Category, error) {
	return List(ctx, tq.Tx, p)
}
