package debt

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-engine/internal/engineerror"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListActive returns the user's active debts in creation order. The order
// is the tie-break the payoff strategies fall back to.
func (r *Reader) ListActive(ctx context.Context, userID uuid.UUID) ([]*Debt, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("active").EQ(psql.Arg(true))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*Debt]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Debt, error) {
	return findByID(ctx, r.exec, id)
}

func findByID(ctx context.Context, exec bob.Executor, id uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) (*Debt, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.StructMapper[*Debt]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &engineerror.NotFoundError{Resource: "debt", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
