package movementsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/assetsrp"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

type gMovement struct {
	ID         int64     `gorm:"primaryKey"`
	LoanDate   time.Time `gorm:"type:date"`
	ReturnDate time.Time `gorm:"type:date"`
	AssetID    int64
	BorrowerID int64
	Suspended  bool
}

func (gm *gMovement) TableName() string {
	return "movements"
}

type movementRow struct {
	ID         int64
	LoanDate   time.Time
	ReturnDate time.Time
	Suspended  bool

	AssetID           int64
	AssetCategoryID   int64
	AssetCategoryName string
	AssetTag          string
	AssetName         string
	AssetCondition    string
	AssetStatus       string
	AssetEntryDate    time.Time
	AssetSuspended    bool

	BorrowerID        int64
	BorrowerName      string
	BorrowerDocument  string
	BorrowerPhone     string
	BorrowerSuspended bool
}

func (r *movementRow) Model() (*model.Movement, error) {
	ar := assetsrp.AssetRow{
		ID:           r.AssetID,
		CategoryID:   r.AssetCategoryID,
		CategoryName: r.AssetCategoryName,
		Tag:          r.AssetTag,
		Name:         r.AssetName,
		Condition:    r.AssetCondition,
		Status:       r.AssetStatus,
		EntryDate:    r.AssetEntryDate,
		Suspended:    r.AssetSuspended,
	}
	a, err := ar.Model()
	if err != nil {
		return nil, fmt.Errorf("movement %d: %w", r.ID, err)
	}
	return &model.Movement{
		ID:         r.ID,
		LoanDate:   r.LoanDate,
		ReturnDate: r.ReturnDate,
		Asset:      a,
		Borrower: &model.Borrower{
			ID:        r.BorrowerID,
			Name:      r.BorrowerName,
			Document:  r.BorrowerDocument,
			Phone:     r.BorrowerPhone,
			Suspended: r.BorrowerSuspended,
		},
		Suspended: r.Suspended,
	}, nil
}

func selectMovements() *goqu.SelectDataset {
	cols := []any{
		goqu.I("m.id"),
		goqu.I("m.loan_date"),
		goqu.I("m.return_date"),
		goqu.I("m.suspended"),
	}
	cols = append(cols, assetsrp.Columns("asset_")...)
	cols = append(cols,
		goqu.I("b.id").As("borrower_id"),
		goqu.I("b.name").As("borrower_name"),
		goqu.I("b.document").As("borrower_document"),
		goqu.I("b.phone").As("borrower_phone"),
		goqu.I("b.suspended").As("borrower_suspended"),
	)
	return postgres.Dialect.From(goqu.T("movements").As("m")).Join(
		goqu.T("assets").As("a"),
		goqu.On(goqu.I("a.id").Eq(goqu.I("m.asset_id"))),
	).Join(
		goqu.T("categories").As("c"),
		goqu.On(goqu.I("c.id").Eq(goqu.I("a.category_id"))),
	).Join(
		goqu.T("borrowers").As("b"),
		goqu.On(goqu.I("b.id").Eq(goqu.I("m.borrower_id"))),
	).Select(cols...)
}

func query[Q postgres.Queryer](ctx context.Context, q Q, ds *goqu.SelectDataset) ([]model.Movement, error) {
	var rows []movementRow
	if err := postgres.Select(ctx, q, ds, &rows); err != nil {
		return nil, err
	}
	ms := make([]model.Movement, 0, len(rows))
	for _, r := range rows {
		m, err := r.Model()
		if err != nil {
			return nil, err
		}
		ms = append(ms, *m)
	}
	return ms, nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Movement, error) {
	ms, err := query(ctx, q, selectMovements().Where(
		goqu.I("m.id").Eq(id),
	).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(ms) == 0 {
		return nil, nil
	}
	return &ms[0], nil
}

func ExistsByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gMovement{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query: %w", postgres.TranslateError(err))
	}
	return n > 0, nil
}

// Save inserts or updates m by its ID. Only the IDs of the asset and
// borrower references are persisted.
func Save[Q postgres.Queryer](ctx context.Context, q Q, m *model.Movement) (*model.Movement, error) {
	gm := gMovement{
		ID:         m.ID,
		LoanDate:   m.LoanDate,
		ReturnDate: m.ReturnDate,
		AssetID:    m.AssetID(),
		BorrowerID: m.BorrowerID(),
		Suspended:  m.Suspended,
	}
	if err := q.GORM(ctx).Save(&gm).Error; err != nil {
		return nil, fmt.Errorf("saving movement: %w", postgres.TranslateError(err))
	}
	return FindByID(ctx, q, gm.ID)
}

func List[Q postgres.Queryer](ctx context.Context, q Q, f model.MovementFilter, p model.Page) ([]model.Movement, error) {
	ds := selectMovements()
	if !f.IncludeSuspended {
		ds = ds.Where(goqu.I("m.suspended").IsFalse())
	}
	if f.AssetID != 0 {
		ds = ds.Where(goqu.I("m.asset_id").Eq(f.AssetID))
	}
	if f.BorrowerID != 0 {
		ds = ds.Where(goqu.I("m.borrower_id").Eq(f.BorrowerID))
	}
	ds = ds.Order(goqu.I("m.id").Asc()).Limit(uint(p.Limit)).Offset(uint(p.Offset))
	ms, err := query(ctx, q, ds)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	return ms, nil
}
