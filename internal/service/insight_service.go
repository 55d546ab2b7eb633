package service

import (
	"context"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-engine/internal/budget"
	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/operator/actions"
	"github.com/carson-networks/finance-engine/internal/recommend"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
)

// InsightService fetches a user's collaborator data, runs the comparator,
// forecaster and tracker side by side, and records the resulting
// recommendations.
type InsightService struct {
	debts    debtReader
	budgets  budgetReader
	ledger   ledgerReader
	operator actionProcessor
	payoff   *PayoffService
	settings Settings
	now      func() time.Time
}

func NewInsightService(
	debts debtReader,
	budgets budgetReader,
	ledger ledgerReader,
	op actionProcessor,
	payoffService *PayoffService,
	settings Settings,
) *InsightService {
	return &InsightService{
		debts:    debts,
		budgets:  budgets,
		ledger:   ledger,
		operator: op,
		payoff:   payoffService,
		settings: settings,
		now:      time.Now,
	}
}

// Generate builds and persists the insights for userID as of asOf, with
// extra applied on top of the minimum payments.
func (s *InsightService) Generate(ctx context.Context, userID uuid.UUID, asOf time.Time, extra money.Cents) (*Insights, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	asOf = asOf.UTC()

	insights := &Insights{UserID: userID, AsOf: asOf}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.debts.ListActive(gctx, userID)
		if err != nil {
			return fmt.Errorf("list debts: %w", err)
		}
		comparison, _, err := s.payoff.Compare(gctx, CompareRequest{
			Debts:        debt.ToPayoffDebts(rows),
			ExtraPayment: extra,
			Start:        startOfDay(asOf),
		})
		if err != nil {
			return fmt.Errorf("compare strategies: %w", err)
		}
		insights.Comparison = comparison
		return nil
	})

	g.Go(func() error {
		prediction, err := s.forecastFor(gctx, userID, asOf)
		if err != nil {
			return fmt.Errorf("forecast cashflow: %w", err)
		}
		insights.Prediction = prediction
		return nil
	})

	g.Go(func() error {
		active, err := s.budgets.FindActive(gctx, userID, asOf)
		if err != nil {
			return fmt.Errorf("find budget: %w", err)
		}
		if active == nil {
			return nil
		}
		spent, err := s.ledger.SpendByCategory(gctx, userID, active.StartDate, active.EndDate.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("spend by category: %w", err)
		}
		performance, err := s.Performance(active.ToEngine(), spent)
		if err != nil {
			return fmt.Errorf("track budget: %w", err)
		}
		insights.Performance = performance
		insights.CategoryNames = active.CategoryNames()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var categories []budget.CategoryPerformance
	if insights.Performance != nil {
		categories = insights.Performance.Categories
	}
	insights.Recommendations = recommend.Generate(categories, insights.Prediction, recommend.Options{
		Now:              s.now(),
		CategoryValidity: s.settings.CategoryValidity,
		CashflowValidity: s.settings.CashflowValidity,
		CategoryNames:    insights.CategoryNames,
	})

	err := s.operator.Process(ctx, &actions.RecordInsights{
		UserID:          userID,
		Prediction:      insights.Prediction,
		Recommendations: insights.Recommendations,
	})
	if err != nil {
		return nil, fmt.Errorf("record insights: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		logging.FieldUserID:     userID.String(),
		logging.FieldPrediction: insights.Prediction.ID.String(),
		logging.FieldStrategy:   insights.Comparison.Recommended.String(),
		"recommendationCount":   len(insights.Recommendations),
	}).Info("InsightService.Generate.complete")
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("InsightService.Generate.result %s", spew.Sdump(insights))
	}

	return insights, nil
}

// Forecast runs the forecaster, filling in the configured confidence level
// when the input has none.
func (s *InsightService) Forecast(in forecast.Input) (forecast.CashflowPrediction, error) {
	if in.Confidence == 0 {
		in.Confidence = s.settings.ConfidenceLevel
	}
	return forecast.Forecast(in)
}

// Performance runs the tracker, filling in the configured thresholds when
// the budget has none.
func (s *InsightService) Performance(b *budget.Budget, spent map[uuid.UUID]money.Cents) (*budget.Performance, error) {
	if b != nil {
		if b.WarningPercent == 0 {
			b.WarningPercent = s.settings.WarningPercent
		}
		if b.DangerPercent == 0 {
			b.DangerPercent = s.settings.DangerPercent
		}
	}
	return budget.Track(b, spent)
}

// forecastFor projects the balance to the end of asOf's calendar month from
// the trailing spend window.
func (s *InsightService) forecastFor(ctx context.Context, userID uuid.UUID, asOf time.Time) (*forecast.CashflowPrediction, error) {
	balance, err := s.ledger.CashBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	windowDays := s.settings.SpendWindowDays
	if windowDays < 1 {
		windowDays = 30
	}
	today := startOfDay(asOf)
	outflow, err := s.ledger.Outflow(ctx, userID, today.AddDate(0, 0, -windowDays), today)
	if err != nil {
		return nil, err
	}
	daily, err := forecast.AverageDailySpend(outflow, windowDays)
	if err != nil {
		return nil, err
	}

	periodEnd := today.AddDate(0, 1, -today.Day())
	upcoming, err := s.ledger.UpcomingRecurring(ctx, userID, today, periodEnd)
	if err != nil {
		return nil, err
	}

	prediction, err := s.Forecast(forecast.Input{
		AsOf:              asOf,
		CurrentBalance:    balance,
		DailyAverageSpend: daily,
		Upcoming:          upcoming,
		DaysRemaining:     forecast.DaysRemaining(asOf, periodEnd),
	})
	if err != nil {
		return nil, err
	}
	return &prediction, nil
}
