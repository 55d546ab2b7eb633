package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/operator/actions"
	budgetstore "github.com/carson-networks/finance-engine/internal/storage/budget"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
)

//go:generate mockery --name debtReader --structname mockDebtReader --inpackage --testonly --filename mock_debt_reader_test.go --with-expecter

type debtReader interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]*debt.Debt, error)
	FindByID(ctx context.Context, id uuid.UUID) (*debt.Debt, error)
}

//go:generate mockery --name budgetReader --structname mockBudgetReader --inpackage --testonly --filename mock_budget_reader_test.go --with-expecter

type budgetReader interface {
	FindActive(ctx context.Context, userID uuid.UUID, asOf time.Time) (*budgetstore.Budget, error)
}

//go:generate mockery --name ledgerReader --structname mockLedgerReader --inpackage --testonly --filename mock_ledger_reader_test.go --with-expecter

type ledgerReader interface {
	SpendByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[uuid.UUID]money.Cents, error)
	Outflow(ctx context.Context, userID uuid.UUID, start, end time.Time) (money.Cents, error)
	CashBalance(ctx context.Context, userID uuid.UUID) (money.Cents, error)
	UpcomingRecurring(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]forecast.RecurringTransaction, error)
}

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Settings are the engine tunables resolved from configuration.
type Settings struct {
	MaxMonths        int
	ConfidenceLevel  float64
	SpendWindowDays  int
	CategoryValidity time.Duration
	CashflowValidity time.Duration
	WarningPercent   float64
	DangerPercent    float64
	CacheTTL         time.Duration
}
