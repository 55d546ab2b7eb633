package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/payoff"
	"github.com/carson-networks/finance-engine/internal/storage"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
)

// CreateDebt inserts a debt whose original balance is its current balance.
// CreatedID is set once Perform succeeds.
type CreateDebt struct {
	UserID         uuid.UUID
	Name           string
	Balance        money.Cents
	MinimumPayment money.Cents
	AnnualRate     decimal.Decimal
	DueDay         int

	CreatedID uuid.UUID
}

func (c *CreateDebt) Name() string { return "CreateDebt" }

func (c *CreateDebt) Perform(ctx context.Context, writer *storage.Writer) error {
	candidate := payoff.Debt{
		Name:            c.Name,
		OriginalBalance: c.Balance,
		Balance:         c.Balance,
		MinimumPayment:  c.MinimumPayment,
		AnnualRate:      c.AnnualRate,
		DueDay:          c.DueDay,
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	id, err := writer.Debts.Insert(ctx, &debt.DebtCreate{
		UserID:         c.UserID,
		Name:           c.Name,
		Balance:        c.Balance,
		MinimumPayment: c.MinimumPayment,
		AnnualRate:     c.AnnualRate,
		DueDay:         c.DueDay,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
