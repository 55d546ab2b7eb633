package service

import (
	"time"

	"github.com/carson-networks/finance-engine/internal/cache"
	"github.com/carson-networks/finance-engine/internal/config"
	"github.com/carson-networks/finance-engine/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Payoff  *PayoffService
	Debt    *DebtService
	Insight *InsightService
}

// NewService wires the services to the storage readers, the operator queue
// and the result cache.
func NewService(reader *storage.Reader, op actionProcessor, c cache.Cache, settings Settings) *Service {
	payoffService := NewPayoffService(c, settings)
	return &Service{
		Payoff:  payoffService,
		Debt:    NewDebtService(reader.Debts, op),
		Insight: NewInsightService(reader.Debts, reader.Budgets, reader.Ledger, op, payoffService, settings),
	}
}

func SettingsFromConfig(env *config.Config) Settings {
	return Settings{
		MaxMonths:        env.Engine.MaxMonths,
		ConfidenceLevel:  env.Engine.ConfidenceLevel,
		SpendWindowDays:  env.Engine.SpendWindowDays,
		CategoryValidity: env.Engine.CategoryValidity,
		CashflowValidity: env.Engine.CashflowValidity,
		WarningPercent:   env.Engine.WarningPercent,
		DangerPercent:    env.Engine.DangerPercent,
		CacheTTL:         env.CacheTTL,
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
