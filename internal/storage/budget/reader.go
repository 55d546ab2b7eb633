package budget

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-engine/internal/budget"
	"github.com/carson-networks/finance-engine/internal/money"
)

// Budget represents a budgets record together with its category limits.
type Budget struct {
	Row
	Categories []*Category
}

// Row represents a budgets record.
type Row struct {
	ID             uuid.UUID   `db:"id"`
	UserID         uuid.UUID   `db:"user_id"`
	StartDate      time.Time   `db:"start_date"`
	EndDate        time.Time   `db:"end_date"`
	TotalBudget    money.Cents `db:"total_budget"`
	WarningPercent float64     `db:"warning_percent"`
	DangerPercent  float64     `db:"danger_percent"`
}

// Category represents a budget_categories record.
type Category struct {
	CategoryID   uuid.UUID   `db:"category_id"`
	CategoryName string      `db:"category_name"`
	Limit        money.Cents `db:"limit_cents"`
}

// ToEngine converts the record into the tracker's input.
func (b *Budget) ToEngine() *budget.Budget {
	limits := make(map[uuid.UUID]money.Cents, len(b.Categories))
	for _, c := range b.Categories {
		limits[c.CategoryID] = c.Limit
	}
	return &budget.Budget{
		ID:             b.ID,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Limits:         limits,
		TotalBudget:    b.TotalBudget,
		WarningPercent: b.WarningPercent,
		DangerPercent:  b.DangerPercent,
	}
}

// CategoryNames maps category ids to their display names.
func (b *Budget) CategoryNames() map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(b.Categories))
	for _, c := range b.Categories {
		if c.CategoryName != "" {
			names[c.CategoryID] = c.CategoryName
		}
	}
	return names
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindActive returns the user's active budget covering asOf, or nil when
// there is none.
func (r *Reader) FindActive(ctx context.Context, userID uuid.UUID, asOf time.Time) (*Budget, error) {
	query := psql.Select(
		sm.Columns("id", "user_id", "start_date", "end_date", "total_budget", "warning_percent", "danger_percent"),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("start_date").LTE(psql.Arg(asOf))),
		sm.Where(psql.Quote("end_date").GTE(psql.Arg(asOf))),
		sm.OrderBy(psql.Quote("start_date")).Desc(),
		sm.Limit(1),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Row]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	categoryQuery := psql.Select(
		sm.Columns("category_id", "category_name", "limit_cents"),
		sm.From("budget_categories"),
		sm.Where(psql.Quote("budget_id").EQ(psql.Arg(row.ID))),
		sm.OrderBy(psql.Quote("category_id")).Asc(),
	)
	categories, err := bob.All(ctx, r.exec, categoryQuery, scan.StructMapper[*Category]())
	if err != nil {
		return nil, err
	}

	return &Budget{Row: row, Categories: categories}, nil
}
