// Package forecast projects an end-of-period balance from the current
// balance, a trailing daily spend rate and known recurring transactions.
package forecast

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-engine/internal/engineerror"
	"github.com/carson-networks/finance-engine/internal/money"
)

// DefaultConfidenceLevel is the heuristic confidence attached to every
// prediction unless the caller supplies its own estimate.
const DefaultConfidenceLevel = 0.75

var predictionNamespace = uuid.NewV5(uuid.NamespaceURL, "finance-engine/cashflow-prediction")

// RecurringTransaction is a known future transaction. Amount is signed:
// income is positive, bills are negative.
type RecurringTransaction struct {
	ID      uuid.UUID
	Name    string
	Amount  money.Cents
	DueDate time.Time
}

// Input is everything the forecaster needs, already aggregated by the caller.
type Input struct {
	AsOf              time.Time
	CurrentBalance    money.Cents
	DailyAverageSpend money.Cents
	Upcoming          []RecurringTransaction
	DaysRemaining     int
	// Confidence overrides DefaultConfidenceLevel when > 0.
	Confidence float64
}

// CashflowPrediction is an append-only forecast record.
type CashflowPrediction struct {
	ID                uuid.UUID
	AsOf              time.Time
	CurrentBalance    money.Cents
	ProjectedSpend    money.Cents
	UpcomingRecurring money.Cents
	PredictedBalance  money.Cents
	DaysRemaining     int
	ConfidenceLevel   float64
}

// Forecast computes
//
//	projectedSpend   = dailyAverageSpend * daysRemaining
//	predictedBalance = currentBalance - projectedSpend + sum(upcoming)
func Forecast(in Input) (CashflowPrediction, error) {
	if in.DaysRemaining < 0 {
		return CashflowPrediction{}, engineerror.NewValidationError("daysRemaining", in.DaysRemaining, "forecast horizon has already elapsed")
	}
	if in.DailyAverageSpend < 0 {
		return CashflowPrediction{}, engineerror.NewValidationError("dailyAverageSpend", in.DailyAverageSpend, "must not be negative")
	}
	confidence := in.Confidence
	if confidence == 0 {
		confidence = DefaultConfidenceLevel
	}
	if confidence < 0 || confidence > 1 {
		return CashflowPrediction{}, engineerror.NewValidationError("confidence", in.Confidence, "must be within (0, 1]")
	}

	var upcoming money.Cents
	for _, r := range in.Upcoming {
		upcoming += r.Amount
	}
	projected := in.DailyAverageSpend.MulInt(in.DaysRemaining)

	prediction := CashflowPrediction{
		AsOf:              in.AsOf,
		CurrentBalance:    in.CurrentBalance,
		ProjectedSpend:    projected,
		UpcomingRecurring: upcoming,
		PredictedBalance:  in.CurrentBalance - projected + upcoming,
		DaysRemaining:     in.DaysRemaining,
		ConfidenceLevel:   confidence,
	}
	prediction.ID = predictionID(prediction)
	return prediction, nil
}

func predictionID(p CashflowPrediction) uuid.UUID {
	key := fmt.Sprintf("%s|%d|%d|%d|%d|%g",
		p.AsOf.UTC().Format(time.RFC3339Nano),
		p.CurrentBalance, p.ProjectedSpend, p.UpcomingRecurring, p.DaysRemaining, p.ConfidenceLevel)
	return uuid.NewV5(predictionNamespace, key)
}

// DaysRemaining counts calendar days between the dates of asOf and end. It
// is negative once end has passed.
func DaysRemaining(asOf, end time.Time) int {
	from := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// AverageDailySpend spreads total over windowDays, rounding half-up.
func AverageDailySpend(total money.Cents, windowDays int) (money.Cents, error) {
	if windowDays <= 0 {
		return 0, engineerror.NewValidationError("windowDays", windowDays, "must be positive")
	}
	avg := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(windowDays))).Round(0)
	return money.Cents(avg.IntPart()), nil
}

// WithinHorizon keeps the items due on or after asOf and no later than
// days after it.
func WithinHorizon(items []RecurringTransaction, asOf time.Time, days int) []RecurringTransaction {
	end := asOf.AddDate(0, 0, days)
	var kept []RecurringTransaction
	for _, item := range items {
		if item.DueDate.Before(asOf) || item.DueDate.After(end) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
