package categoriesrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"gorm.io/gorm"
)

type gCategory struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func (gc *gCategory) TableName() string {
	return "categories"
}

func (gc *gCategory) Model() *model.Category {
	return &model.Category{ID: gc.ID, Name: gc.Name}
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Category, error) {
	var gc gCategory
	err := q.GORM(ctx).Where("id = ?", id).Take(&gc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Model(), nil
}

func Save[Q postgres.Queryer](ctx context.Context, q Q, c *model.Category) (*model.Category, error) {
	gc := gCategory{ID: c.ID, Name: c.Name}
	if err := q.GORM(ctx).Save(&gc).Error; err != nil {
		return nil, fmt.Errorf("saving category: %w", postgres.TranslateError(err))
	}
	return gc.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q, p model.Page) ([]model.Category, error) {
	ds := postgres.Dialect.From("categories").Select(
		"id", "name",
	).Order(goqu.C("id").Asc()).Limit(uint(p.Limit)).Offset(uint(p.Offset))
	var gcs []gCategory
	if err := postgres.Select(ctx, q, ds, &gcs); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	cs := make([]model.Category, 0, len(gcs))
	for _, gc := range gcs {
		cs = append(cs, *gc.Model())
	}
	return cs, nil
}
