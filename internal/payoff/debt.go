package payoff

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-engine/internal/engineerror"
	"github.com/carson-networks/finance-engine/internal/money"
)

// Debt is a liability handed to the engine by the caller. The engine never
// mutates it.
type Debt struct {
	ID              uuid.UUID
	Name            string
	OriginalBalance money.Cents
	Balance         money.Cents
	MinimumPayment  money.Cents
	// AnnualRate is a fraction, 0.22 for 22% APR.
	AnnualRate decimal.Decimal
	DueDay     int
}

// Validate checks the debt invariants.
func (d Debt) Validate() error {
	if d.Balance < 0 {
		return engineerror.NewValidationError("balance", d.Balance, "must not be negative")
	}
	if d.MinimumPayment < 0 {
		return engineerror.NewValidationError("minimumPayment", d.MinimumPayment, "must not be negative")
	}
	if d.AnnualRate.IsNegative() {
		return engineerror.NewValidationError("annualRate", d.AnnualRate, "must not be negative")
	}
	if d.DueDay < 0 || d.DueDay > 31 {
		return engineerror.NewValidationError("dueDay", d.DueDay, "must be between 1 and 31, or 0 when unset")
	}
	return nil
}

func validateAll(debts []Debt, extra money.Cents) error {
	if extra < 0 {
		return engineerror.NewValidationError("extraPayment", extra, "must not be negative")
	}
	for _, d := range debts {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}
