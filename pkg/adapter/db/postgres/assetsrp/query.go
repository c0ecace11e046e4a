package assetsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

// gAsset is used for saving assets. Enums are stored by their names.
type gAsset struct {
	ID         int64 `gorm:"primaryKey"`
	CategoryID int64
	Tag        string
	Name       string
	Condition  string
	Status     string
	EntryDate  time.Time `gorm:"type:date"`
	Suspended  bool
}

func (ga *gAsset) TableName() string {
	return "assets"
}

// AssetRow is one row of the Columns selection. It is exported since
// the movementsrp package embeds the same columns in its rows.
type AssetRow struct {
	ID           int64
	CategoryID   int64
	CategoryName string
	Tag          string
	Name         string
	Condition    string
	Status       string
	EntryDate    time.Time
	Suspended    bool
}

// Model converts r to an asset, failing if its enums are not known.
func (r *AssetRow) Model() (*model.Asset, error) {
	c, err := model.ParseCondition(r.Condition)
	if err != nil {
		return nil, fmt.Errorf("asset %d condition %q: %w", r.ID, r.Condition, err)
	}
	s, err := model.ParseStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("asset %d status %q: %w", r.ID, r.Status, err)
	}
	return &model.Asset{
		ID:        r.ID,
		Category:  &model.Category{ID: r.CategoryID, Name: r.CategoryName},
		Tag:       r.Tag,
		Name:      r.Name,
		Condition: c,
		Status:    s,
		EntryDate: r.EntryDate,
		Suspended: r.Suspended,
	}, nil
}

// Columns returns the selected columns of an asset (aliased as `a`)
// and its category (aliased as `c`), having the given prefix in their
// result column names.
func Columns(prefix string) []any {
	return []any{
		goqu.I("a.id").As(prefix + "id"),
		goqu.I("a.category_id").As(prefix + "category_id"),
		goqu.I("c.name").As(prefix + "category_name"),
		goqu.I("a.tag").As(prefix + "tag"),
		goqu.I("a.name").As(prefix + "name"),
		goqu.I("a.condition").As(prefix + "condition"),
		goqu.I("a.status").As(prefix + "status"),
		goqu.I("a.entry_date").As(prefix + "entry_date"),
		goqu.I("a.suspended").As(prefix + "suspended"),
	}
}

func selectAssets() *goqu.SelectDataset {
	return postgres.Dialect.From(goqu.T("assets").As("a")).Join(
		goqu.T("categories").As("c"),
		goqu.On(goqu.I("c.id").Eq(goqu.I("a.category_id"))),
	).Select(Columns("")...)
}

func findOne[Q postgres.Queryer](ctx context.Context, q Q, ds *goqu.SelectDataset) (*model.Asset, error) {
	var rows []AssetRow
	if err := postgres.Select(ctx, q, ds.Limit(1), &rows); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].Model()
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Asset, error) {
	return findOne(ctx, q, selectAssets().Where(goqu.I("a.id").Eq(id)))
}

// LockByID finds the id asset and locks its row (not its category
// row) until the end of the current transaction.
func LockByID(ctx context.Context, tx *postgres.Tx, id int64) (*model.Asset, error) {
	ds := selectAssets().Where(goqu.I("a.id").Eq(id)).ForUpdate(
		exp.Wait, goqu.T("a"),
	)
	return findOne(ctx, tx, ds)
}

func FindByTag[Q postgres.Queryer](ctx context.Context, q Q, tag string) (*model.Asset, error) {
	return findOne(ctx, q, selectAssets().Where(
		goqu.I("a.tag").Eq(tag), goqu.I("a.suspended").IsFalse(),
	))
}

func ExistsByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gAsset{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query: %w", postgres.TranslateError(err))
	}
	return n > 0, nil
}

// Save inserts or updates the a asset. The active tag uniqueness and
// category reference are checked by the database constraints.
func Save[Q postgres.Queryer](ctx context.Context, q Q, a *model.Asset) (*model.Asset, error) {
	ga := gAsset{
		ID:        a.ID,
		Tag:       a.Tag,
		Name:      a.Name,
		Condition: a.Condition.String(),
		Status:    a.Status.String(),
		EntryDate: a.EntryDate,
		Suspended: a.Suspended,
	}
	if a.Category != nil {
		ga.CategoryID = a.Category.ID
	}
	if err := q.GORM(ctx).Save(&ga).Error; err != nil {
		return nil, fmt.Errorf("saving asset: %w", postgres.TranslateError(err))
	}
	return FindByID(ctx, q, ga.ID)
}

func List[Q postgres.Queryer](ctx context.Context, q Q, f model.AssetFilter, p model.Page) ([]model.Asset, error) {
	ds := selectAssets()
	if !f.IncludeSuspended {
		ds = ds.Where(goqu.I("a.suspended").IsFalse())
	}
	if f.CategoryID != 0 {
		ds = ds.Where(goqu.I("a.category_id").Eq(f.CategoryID))
	}
	if f.Status != model.StatusInvalid {
		ds = ds.Where(goqu.I("a.status").Eq(f.Status.String()))
	}
	ds = ds.Order(goqu.I("a.id").Asc()).Limit(uint(p.Limit)).Offset(uint(p.Offset))
	var rows []AssetRow
	if err := postgres.Select(ctx, q, ds, &rows); err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	as := make([]model.Asset, 0, len(rows))
	for _, r := range rows {
		a, err := r.Model()
		if err != nil {
			return nil, err
		}
		as = append(as, *a)
	}
	return as, nil
}
