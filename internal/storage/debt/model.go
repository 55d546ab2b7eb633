package debt

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/payoff"
)

const tableName = "debts"

var columns = []any{
	"id", "user_id", "name", "original_balance", "balance",
	"minimum_payment", "annual_rate", "due_day", "active", "created_at",
}

// Debt represents a debt record.
type Debt struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Name            string          `db:"name"`
	OriginalBalance money.Cents     `db:"original_balance"`
	Balance         money.Cents     `db:"balance"`
	MinimumPayment  money.Cents     `db:"minimum_payment"`
	AnnualRate      decimal.Decimal `db:"annual_rate"`
	DueDay          int             `db:"due_day"`
	Active          bool            `db:"active"`
	CreatedAt       time.Time       `db:"created_at"`
}

// DebtCreate is the input for creating a new debt. The original balance is
// recorded as the starting balance.
type DebtCreate struct {
	UserID         uuid.UUID
	Name           string
	Balance        money.Cents
	MinimumPayment money.Cents
	AnnualRate     decimal.Decimal
	DueDay         int
}

// ToPayoff converts the record into the simulator's input.
func (d *Debt) ToPayoff() payoff.Debt {
	return payoff.Debt{
		ID:              d.ID,
		Name:            d.Name,
		OriginalBalance: d.OriginalBalance,
		Balance:         d.Balance,
		MinimumPayment:  d.MinimumPayment,
		AnnualRate:      d.AnnualRate,
		DueDay:          d.DueDay,
	}
}

// ToPayoffDebts converts records in order.
func ToPayoffDebts(rows []*Debt) []payoff.Debt {
	debts := make([]payoff.Debt, len(rows))
	for i, row := range rows {
		debts[i] = row.ToPayoff()
	}
	return debts
}
