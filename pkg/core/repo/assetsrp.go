package repo

import (
	"context"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

// AssetsConnQueryer lists the assets operations which may be executed
// with an auto-committed connection.
type AssetsConnQueryer interface {
	AssetsQueryer
}

// AssetsTxQueryer lists the assets operations which may be executed
// in an ongoing transaction.
type AssetsTxQueryer interface {
	AssetsQueryer

	// LockByID works like FindByID, but also locks the found asset
	// row until the end of current transaction, so its status may be
	// changed without racing with other transactions.
	LockByID(ctx context.Context, id int64) (*model.Asset, error)
}

// AssetsQueryer lists the common assets operations.
//
// The Find methods return a nil asset and nil error when no matching
// asset exists. Save inserts a (zero ID) asset or replaces all fields
// of an existing asset and returns the persisted asset, including the
// assigned ID and its category details. Saving a non-suspended asset
// with a tag which is held by another non-suspended asset or with an
// unknown category returns a cerr.ValidationError.
type AssetsQueryer interface {
	FindByID(ctx context.Context, id int64) (*model.Asset, error)

	// FindByTag finds the non-suspended asset which holds tag.
	FindByTag(ctx context.Context, tag string) (*model.Asset, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, a *model.Asset) (*model.Asset, error)
	List(
		ctx context.Context, f model.AssetFilter, p model.Page,
	) ([]model.Asset, error)
}

type Assets interface {
	Conn(Conn) AssetsConnQueryer
	Tx(Tx) AssetsTxQueryer
}
