package budget

import (
	"bytes"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/engineerror"
	"github.com/carson-networks/finance-engine/internal/money"
)

const (
	DefaultWarningPercent = 80.0
	DefaultDangerPercent  = 100.0
)

// Budget is the active budget for one period. Exactly one budget is active
// per user; the caller is responsible for handing over the right one.
type Budget struct {
	ID          uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Limits      map[uuid.UUID]money.Cents
	TotalBudget money.Cents
	// WarningPercent and DangerPercent fall back to the package defaults
	// when zero.
	WarningPercent float64
	DangerPercent  float64
}

// Status classifies spend against a limit.
type Status int8

const (
	StatusGood Status = iota
	StatusWarning
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusOver:
		return "over"
	default:
		return "good"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CategoryPerformance is spend-vs-limit for one category. Remaining is
// negative once the limit is exceeded.
type CategoryPerformance struct {
	CategoryID uuid.UUID
	Limit      money.Cents
	Spent      money.Cents
	Remaining  money.Cents
	Percentage float64
	Status     Status
}

// Performance is the budget-wide result of Track.
type Performance struct {
	BudgetID   uuid.UUID
	Categories []CategoryPerformance
	TotalLimit money.Cents
	TotalSpent money.Cents
	// TotalRemaining is measured against TotalBudget, or the sum of the
	// category limits when no total is set.
	TotalRemaining money.Cents
	// UnbudgetedSpent is spend in categories that have no limit.
	UnbudgetedSpent money.Cents
	Percentage      float64
	Status          Status
}

// Track computes per-category performance for b given spend already
// aggregated over the budget period. A nil budget yields a nil result.
func Track(b *Budget, spent map[uuid.UUID]money.Cents) (*Performance, error) {
	if b == nil {
		return nil, nil
	}
	if b.TotalBudget < 0 {
		return nil, engineerror.NewValidationError("totalBudget", b.TotalBudget, "must not be negative")
	}
	warning, danger := b.thresholds()
	if warning > danger {
		return nil, engineerror.NewValidationError("warningPercent", warning, "must not exceed dangerPercent")
	}

	perf := &Performance{
		BudgetID:   b.ID,
		Categories: make([]CategoryPerformance, 0, len(b.Limits)),
	}

	for categoryID, limit := range b.Limits {
		if limit < 0 {
			return nil, engineerror.NewValidationError("limit", limit, "must not be negative")
		}
		s := spent[categoryID]
		if s < 0 {
			return nil, engineerror.NewValidationError("spent", s, "must not be negative")
		}
		pct := money.Percent(s, limit)
		perf.Categories = append(perf.Categories, CategoryPerformance{
			CategoryID: categoryID,
			Limit:      limit,
			Spent:      s,
			Remaining:  limit - s,
			Percentage: pct,
			Status:     classify(s, limit, warning, danger),
		})
		perf.TotalLimit += limit
		perf.TotalSpent += s
	}

	for categoryID, s := range spent {
		if _, ok := b.Limits[categoryID]; ok {
			continue
		}
		if s < 0 {
			return nil, engineerror.NewValidationError("spent", s, "must not be negative")
		}
		perf.UnbudgetedSpent += s
	}

	sort.Slice(perf.Categories, func(i, j int) bool {
		return bytes.Compare(perf.Categories[i].CategoryID.Bytes(), perf.Categories[j].CategoryID.Bytes()) < 0
	})

	total := b.TotalBudget
	if total == 0 {
		total = perf.TotalLimit
	}
	overall := perf.TotalSpent + perf.UnbudgetedSpent
	perf.TotalRemaining = total - overall
	perf.Percentage = money.Percent(overall, total)
	perf.Status = classify(overall, total, warning, danger)

	return perf, nil
}

func (b *Budget) thresholds() (float64, float64) {
	warning, danger := b.WarningPercent, b.DangerPercent
	if warning <= 0 {
		warning = DefaultWarningPercent
	}
	if danger <= 0 {
		danger = DefaultDangerPercent
	}
	return warning, danger
}

// classify compares the exact spent/limit ratio, not the rounded Percentage.
func classify(spent, limit money.Cents, warning, danger float64) Status {
	switch {
	case money.AtLeastPercent(spent, limit, danger):
		return StatusOver
	case money.AtLeastPercent(spent, limit, warning):
		return StatusWarning
	default:
		return StatusGood
	}
}
