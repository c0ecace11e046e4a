package repo

import (
	"context"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

type CategoriesConnQueryer interface {
	CategoriesQueryer
}

type CategoriesTxQueryer interface {
	CategoriesQueryer
}

type CategoriesQueryer interface {
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	Save(ctx context.Context, c *model.Category) (*model.Category, error)
	List(ctx context.Context, p model.Page) ([]model.Category, error)
}

type Categories interface {
	Conn(Conn) CategoriesConnQueryer
	Tx(Tx) CategoriesTxQueryer
}
