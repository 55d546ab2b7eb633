package debt

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/finance-engine/internal/money"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the debt row for the rest of the transaction.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Debt, error) {
	return findByID(ctx, w.tx, id, sm.ForUpdate())
}

func (w *Writer) Insert(ctx context.Context, create *DebtCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	query := psql.Insert(
		im.Into(tableName,
			"id", "user_id", "name", "original_balance", "balance",
			"minimum_payment", "annual_rate", "due_day",
		),
		im.Values(psql.Arg(
			id, create.UserID, create.Name, create.Balance, create.Balance,
			create.MinimumPayment, create.AnnualRate, create.DueDay,
		)),
	)
	if _, err := bob.Exec(ctx, w.tx, query); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateBalance sets the outstanding balance. Paid-off debts are flagged
// inactive rather than deleted.
func (w *Writer) UpdateBalance(ctx context.Context, id uuid.UUID, balance money.Cents, active bool) error {
	query := psql.Update(
		um.Table(tableName),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("active").ToArg(active),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
