package ledger

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/money"
)

// Reader aggregates the ledger tables. Outflows are stored as negative
// transaction amounts and reported here as positive spend.
type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// SpendByCategory sums categorised outflows in [start, end).
func (r *Reader) SpendByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[uuid.UUID]money.Cents, error) {
	query := psql.RawQuery(`
		SELECT category_id, SUM(-amount)::BIGINT AS spent
		FROM transactions
		WHERE user_id = ?
		  AND amount < 0
		  AND category_id IS NOT NULL
		  AND transaction_date >= ?
		  AND transaction_date < ?
		GROUP BY category_id`,
		userID, start, end,
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[categorySpend]())
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]money.Cents, len(rows))
	for _, row := range rows {
		spent[row.CategoryID] = row.Spent
	}
	return spent, nil
}

// Outflow sums every outflow in [start, end), categorised or not.
func (r *Reader) Outflow(ctx context.Context, userID uuid.UUID, start, end time.Time) (money.Cents, error) {
	query := psql.RawQuery(`
		SELECT COALESCE(SUM(-amount), 0)::BIGINT
		FROM transactions
		WHERE user_id = ?
		  AND amount < 0
		  AND transaction_date >= ?
		  AND transaction_date < ?`,
		userID, start, end,
	)

	total, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	return money.Cents(total), nil
}

// CashBalance sums the balances of the user's cash accounts.
func (r *Reader) CashBalance(ctx context.Context, userID uuid.UUID) (money.Cents, error) {
	query := psql.RawQuery(`
		SELECT COALESCE(SUM(balance), 0)::BIGINT
		FROM accounts
		WHERE user_id = ? AND type = ?`,
		userID, int16(AccountTypeCash),
	)

	total, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	return money.Cents(total), nil
}

// UpcomingRecurring returns active recurring transactions due in [from, to].
func (r *Reader) UpcomingRecurring(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]forecast.RecurringTransaction, error) {
	query := psql.Select(
		sm.Columns("id", "name", "amount", "next_due_date"),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("next_due_date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("next_due_date").LTE(psql.Arg(to))),
		sm.OrderBy(psql.Quote("next_due_date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*RecurringTransaction]())
	if err != nil {
		return nil, err
	}

	items := make([]forecast.RecurringTransaction, len(rows))
	for i, row := range rows {
		items[i] = row.toForecast()
	}
	return items, nil
}
