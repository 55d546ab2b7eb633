package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-engine/internal/cache"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/payoff"
)

const compareCacheNamespace = "payoff-compare:v1"

// CompareRequest is the canonical input of a strategy comparison. Its JSON
// encoding is the cache key.
type CompareRequest struct {
	Debts          []payoff.Debt `json:"debts"`
	ExtraPayment   money.Cents   `json:"extraPayment"`
	Start          time.Time     `json:"start"`
	RecordSchedule bool          `json:"recordSchedule"`
}

// BaselineResult is the minimum-payment-only projection of one debt.
type BaselineResult struct {
	DebtID   uuid.UUID
	Name     string
	Scenario payoff.PayoffScenario
}

// PayoffService runs the strategy comparator behind a result cache.
type PayoffService struct {
	cache    cache.Cache
	settings Settings
	now      func() time.Time
}

func NewPayoffService(c cache.Cache, settings Settings) *PayoffService {
	return &PayoffService{
		cache:    c,
		settings: settings,
		now:      time.Now,
	}
}

// Compare returns the snowball/avalanche comparison for req. The bool
// reports whether the result came from the cache. A zero Start means today.
func (s *PayoffService) Compare(ctx context.Context, req CompareRequest) (*payoff.StrategyComparison, bool, error) {
	if req.Start.IsZero() {
		req.Start = startOfDay(s.now())
	}

	canonical, err := json.Marshal(req)
	if err != nil {
		return nil, false, err
	}
	key := cache.Key(compareCacheNamespace, canonical)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logrus.WithError(err).Warn("PayoffService.Compare.cacheGet")
		} else if ok {
			var comparison payoff.StrategyComparison
			if err := json.Unmarshal(cached, &comparison); err == nil {
				return &comparison, true, nil
			}
			logrus.WithError(err).Warn("PayoffService.Compare.cacheDecode")
		}
	}

	comparison, err := payoff.Compare(req.Debts, req.ExtraPayment, payoff.Options{
		Start:          req.Start,
		MaxMonths:      s.settings.MaxMonths,
		RecordSchedule: req.RecordSchedule,
	})
	if err != nil {
		return nil, false, err
	}

	logrus.WithFields(logrus.Fields{
		logging.FieldDebtCount: len(req.Debts),
		logging.FieldStrategy:  comparison.Recommended.String(),
		logging.FieldOutcome:   comparison.Avalanche.Outcome.String(),
		logging.FieldMonths:    comparison.Avalanche.Months,
	}).Debug("PayoffService.Compare.computed")

	if s.cache != nil {
		encoded, err := json.Marshal(comparison)
		if err == nil {
			err = s.cache.Set(ctx, key, encoded, s.settings.CacheTTL)
		}
		if err != nil {
			logrus.WithError(err).Warn("PayoffService.Compare.cacheSet")
		}
	}

	return &comparison, false, nil
}

// Baselines projects each debt on its minimum payment alone.
func (s *PayoffService) Baselines(_ context.Context, debts []payoff.Debt, start time.Time) ([]BaselineResult, error) {
	if start.IsZero() {
		start = startOfDay(s.now())
	}

	results := make([]BaselineResult, 0, len(debts))
	for _, d := range debts {
		scenario, err := payoff.Baseline(d, start)
		if err != nil {
			return nil, err
		}
		results = append(results, BaselineResult{DebtID: d.ID, Name: d.Name, Scenario: scenario})
	}
	return results, nil
}
