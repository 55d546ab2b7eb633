package payoff

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/money"
)

// Outcome distinguishes a real payoff from the two "does not pay off"
// variants. Neither variant is an error.
type Outcome int8

const (
	OutcomePaidOff Outcome = iota
	// OutcomeNonConvergent means the simulation hit its month cap with a
	// balance still owed.
	OutcomeNonConvergent
	// OutcomeNeverPaysOff means the minimum payment does not exceed the
	// monthly interest, so the baseline balance never shrinks.
	OutcomeNeverPaysOff
)

func (o Outcome) String() string {
	switch o {
	case OutcomePaidOff:
		return "paid_off"
	case OutcomeNonConvergent:
		return "non_convergent"
	case OutcomeNeverPaysOff:
		return "never_pays_off"
	default:
		return "unknown"
	}
}

// PayoffScenario is the immutable result of one simulation or baseline.
// PayoffDate is zero unless Outcome is OutcomePaidOff.
type PayoffScenario struct {
	Outcome          Outcome
	Months           int
	TotalPayments    money.Cents
	TotalInterest    money.Cents
	RemainingBalance money.Cents
	PayoffDate       time.Time
	Schedule         []MonthlyEntry
}

// PaidOff reports whether the scenario reached a zero balance.
func (s PayoffScenario) PaidOff() bool {
	return s.Outcome == OutcomePaidOff
}

// MonthlyEntry records one simulated month.
type MonthlyEntry struct {
	Month     int
	Payments  []DebtPayment
	TotalPaid money.Cents
}

// DebtPayment is a single debt's line in a MonthlyEntry.
type DebtPayment struct {
	DebtID           uuid.UUID
	Interest         money.Cents
	Payment          money.Cents
	RemainingBalance money.Cents
}
