package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/money"
)

// AccountType mirrors the accounts.type column.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

// categorySpend is one row of the per-category spend aggregate.
type categorySpend struct {
	CategoryID uuid.UUID   `db:"category_id"`
	Spent      money.Cents `db:"spent"`
}

// RecurringTransaction represents a recurring_transactions record. Amount is
// signed: income is positive, bills are negative.
type RecurringTransaction struct {
	ID          uuid.UUID   `db:"id"`
	Name        string      `db:"name"`
	Amount      money.Cents `db:"amount"`
	NextDueDate time.Time   `db:"next_due_date"`
}

func (r *RecurringTransaction) toForecast() forecast.RecurringTransaction {
	return forecast.RecurringTransaction{
		ID:      r.ID,
		Name:    r.Name,
		Amount:  r.Amount,
		DueDate: r.NextDueDate,
	}
}
