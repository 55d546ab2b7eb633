package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/operator/actions"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
)

// NewDebt is the input for registering a debt.
type NewDebt struct {
	UserID         uuid.UUID
	Name           string
	Balance        money.Cents
	MinimumPayment money.Cents
	AnnualRate     decimal.Decimal
	DueDay         int
}

// DebtService handles debt records. Writes go through the operator queue.
type DebtService struct {
	debts    debtReader
	operator actionProcessor
}

func NewDebtService(debts debtReader, op actionProcessor) *DebtService {
	return &DebtService{debts: debts, operator: op}
}

// Create registers a debt and returns its ID.
func (s *DebtService) Create(ctx context.Context, d NewDebt) (uuid.UUID, error) {
	action := &actions.CreateDebt{
		UserID:         d.UserID,
		Name:           d.Name,
		Balance:        d.Balance,
		MinimumPayment: d.MinimumPayment,
		AnnualRate:     d.AnnualRate,
		DueDay:         d.DueDay,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	logrus.WithFields(logrus.Fields{
		logging.FieldUserID: d.UserID.String(),
		logging.FieldDebtID: action.CreatedID.String(),
	}).Info("DebtService.Create.created")
	return action.CreatedID, nil
}

// List returns the user's active debts.
func (s *DebtService) List(ctx context.Context, userID uuid.UUID) ([]*debt.Debt, error) {
	return s.debts.ListActive(ctx, userID)
}

// Get retrieves a debt by ID.
func (s *DebtService) Get(ctx context.Context, id uuid.UUID) (*debt.Debt, error) {
	return s.debts.FindByID(ctx, id)
}

// RecordPayment applies a payment and returns the updated debt.
func (s *DebtService) RecordPayment(ctx context.Context, id uuid.UUID, amount money.Cents) (*debt.Debt, error) {
	action := &actions.RecordDebtPayment{DebtID: id, Amount: amount}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	if !action.Updated.Active {
		logrus.WithField(logging.FieldDebtID, id.String()).Info("DebtService.RecordPayment.paidOff")
	}
	return action.Updated, nil
}
