package borrowersrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"gorm.io/gorm"
)

type gBorrower struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Document  string
	Phone     string
	Suspended bool
}

func (gb *gBorrower) TableName() string {
	return "borrowers"
}

func (gb *gBorrower) Model() *model.Borrower {
	return &model.Borrower{
		ID:        gb.ID,
		Name:      gb.Name,
		Document:  gb.Document,
		Phone:     gb.Phone,
		Suspended: gb.Suspended,
	}
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Borrower, error) {
	var gb gBorrower
	err := q.GORM(ctx).Where("id = ?", id).Take(&gb).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("query: %w", postgres.TranslateError(err))
	}
	return gb.Model(), nil
}

func ExistsByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gBorrower{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query: %w", postgres.TranslateError(err))
	}
	return n > 0, nil
}

func Save[Q postgres.Queryer](ctx context.Context, q Q, b *model.Borrower) (*model.Borrower, error) {
	gb := gBorrower{
		ID:        b.ID,
		Name:      b.Name,
		Document:  b.Document,
		Phone:     b.Phone,
		Suspended: b.Suspended,
	}
	if err := q.GORM(ctx).Save(&gb).Error; err != nil {
		return nil, fmt.Errorf("saving borrower: %w", postgres.TranslateError(err))
	}
	return gb.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q, f model.BorrowerFilter, p model.Page) ([]model.Borrower, error) {
	ds := postgres.Dialect.From("borrowers").Select(
		"id", "name", "document", "phone", "suspended",
	)
	if !f.IncludeSuspended {
		ds = ds.Where(goqu.C("suspended").IsFalse())
	}
	ds = ds.Order(goqu.C("id").Asc()).Limit(uint(p.Limit)).Offset(uint(p.Offset))
	var gbs []gBorrower
	if err := postgres.Select(ctx, q, ds, &gbs); err != nil {
		return nil, fmt.Errorf("listing borrowers: %w", err)
	}
	bs := make([]model.Borrower, 0, len(gbs))
	for _, gb := range gbs {
		bs = append(bs, *gb.Model())
	}
	return bs, nil
}
