package assetsrp

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

func (assets *Repo) Conn(c repo.Conn) repo.AssetsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByID(ctx context.Context, id int64) (*model.Asset, error) {
	return FindByID(ctx, cq.Conn, id)
}

func (cq connQueryer) FindByTag(ctx context.Context, tag string) (*model.Asset, error) {
	return FindByTag(ctx, cq.Conn, tag)
}

func (cq connQueryer) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, cq.Conn, id)
}

func (cq connQueryer) Save(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	return Save(ctx, cq.Conn, a)
}

func (cq connQueryer) List(ctx context.Context, f model.AssetFilter, p model.Page) ([]model.Asset, error) {
	return List(ctx, cq.Conn, f, p)
}

type txQueryer struct {
	*postgres.Tx
}

func (assets *Repo) Tx(tx repo.Tx) repo.AssetsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByID(ctx context.Context, id int64) (*model.Asset, error) {
	return FindByID(ctx, tq.Tx, id)
}

func (tq txQueryer) LockByID(ctx context.Context, id int64) (*model.Asset, error) {
	return LockByID(ctx, tq.Tx, id)
}

func (tq txQueryer) FindByTag(ctx context.Context, tag string) (*model.Asset, error) {
	return FindByTag(ctx, tq.Tx, tag)
}

func (tq txQueryer) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, tq.Tx, id)
}

func (tq txQueryer) Save(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	return Save(ctx, tq.Tx, a)
}

func (tq txQueryer) List(ctx context.Context, f model.AssetFilter, p model.Page) ([]model.Asset, error) {
	return List(ctx, tq.Tx, f, p)
}
