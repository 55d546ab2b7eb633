package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/engineerror"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/storage"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
)

// RecordDebtPayment applies a payment to a locked debt. The balance never
// goes below zero, and a debt that reaches zero is marked inactive.
// Updated holds the debt as written.
type RecordDebtPayment struct {
	DebtID uuid.UUID
	Amount money.Cents

	Updated *debt.Debt
}

func (p *RecordDebtPayment) Name() string { return "RecordDebtPayment" }

func (p *RecordDebtPayment) Perform(ctx context.Context, writer *storage.Writer) error {
	if p.Amount <= 0 {
		return engineerror.NewValidationError("amount", p.Amount, "must be positive")
	}

	current, err := writer.Debts.FindByIDForUpdate(ctx, p.DebtID)
	if err != nil {
		return err
	}
	if !current.Active {
		return engineerror.NewValidationError("debtID", p.DebtID, "debt is already paid off")
	}

	newBalance := money.Max(0, current.Balance-p.Amount)
	active := newBalance > 0
	err = writer.Debts.UpdateBalance(ctx, p.DebtID, newBalance, active)
	if err != nil {
		return err
	}

	updated := *current
	updated.Balance = newBalance
	updated.Active = active
	p.Updated = &updated
	return nil
}
