package repo

import (
	"context"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

type BorrowersConnQueryer interface {
	BorrowersQueryer
}

type BorrowersTxQueryer interface {
	BorrowersQueryer
}

// BorrowersQueryer lists the borrowers operations. FindByID returns
// nil, nil for a missing borrower and Save works as an upsert.
type BorrowersQueryer interface {
	FindByID(ctx context.Context, id int64) (*model.Borrower, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, b *model.Borrower) (*model.Borrower, error)
	List(
		ctx context.Context, f model.BorrowerFilter, p model.Page,
	) ([]model.Borrower, error)
}

type Borrowers interface {
	Conn(Conn) BorrowersConnQueryer
	Tx(Tx) BorrowersTxQueryer
}
