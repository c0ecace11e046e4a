package repo

import (
	"context"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

type MovementsConnQueryer interface {
	MovementsQueryer
}

type MovementsTxQueryer interface {
	MovementsQueryer
}

// MovementsQueryer lists the movements operations.
//
// FindByID returns nil, nil for a missing movement. Save persists the
// given movement by its ID (zero for insertion) and the IDs of its
// asset and borrower references, then returns the stored movement with
// its references filled. Unknown references cause a
// cerr.ValidationError.
type MovementsQueryer interface {
	FindByID(ctx context.Context, id int64) (*model.Movement, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, m *model.Movement) (*model.Movement, error)
	List(
		ctx context.Context, f model.MovementFilter, p model.Page,
	) ([]model.Movement, error)
}

type Movements interface {
	Conn(Conn) MovementsConnQueryer
	Tx(Tx) MovementsTxQueryer
}
