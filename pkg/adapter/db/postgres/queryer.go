package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers dialect
	"gorm.io/gorm"
)

// Queryer is the type constraint of generic query functions which may
// run either with a Conn or with a Tx.
type Queryer interface {
	*Conn | *Tx
	GORM(ctx context.Context) *gorm.DB
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// Dialect builds the PostgreSQL flavored SQL statements.
var Dialect = goqu.Dialect("postgres")

// Select runs the ds query with q and scans its result rows into dest
// which should be a pointer to a slice of structs.
func Select[Q Queryer](
	ctx context.Context, q Q, ds *goqu.SelectDataset, dest any,
) error {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("building SQL: %w", err)
	}
	if err := q.GORM(ctx).Raw(sql, args...).Scan(dest).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}
