package payoff

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-engine/internal/money"
)

// DefaultMaxMonths caps a simulation at 50 years.
const DefaultMaxMonths = 600

const monthsPerYear = 12

// Options tunes a simulation run.
type Options struct {
	// Start anchors PayoffDate. Zero means time.Now().
	Start time.Time
	// MaxMonths defaults to DefaultMaxMonths when <= 0.
	MaxMonths int
	// RecordSchedule fills PayoffScenario.Schedule with one entry per month.
	RecordSchedule bool
}

func (o Options) withDefaults() Options {
	if o.Start.IsZero() {
		o.Start = time.Now()
	}
	if o.MaxMonths <= 0 {
		o.MaxMonths = DefaultMaxMonths
	}
	return o
}

// simDebt is the working copy of a Debt for one Simulate call.
type simDebt struct {
	debt      Debt
	remaining money.Cents
}

// Simulate runs a monthly payoff simulation over debts, which must already
// be in priority order. extra is paid on top of the minimums every month to
// the first debt still carrying a balance, spilling down the list once that
// debt is cleared.
//
// Interest is round_half_up(remaining*rate/12) per debt per month. Hitting
// MaxMonths returns an OutcomeNonConvergent scenario, not an error.
func Simulate(debts []Debt, extra money.Cents, opts Options) (PayoffScenario, error) {
	if err := validateAll(debts, extra); err != nil {
		return PayoffScenario{}, err
	}
	opts = opts.withDefaults()

	arena := make([]simDebt, len(debts))
	for i, d := range debts {
		arena[i] = simDebt{debt: d, remaining: d.Balance}
	}

	var scenario PayoffScenario
	interest := make([]money.Cents, len(arena))
	payment := make([]money.Cents, len(arena))

	for outstanding(arena) > 0 && scenario.Months < opts.MaxMonths {
		scenario.Months++

		for i := range arena {
			interest[i], payment[i] = 0, 0
			if arena[i].remaining <= 0 {
				continue
			}
			interest[i] = monthlyInterest(arena[i].remaining, arena[i].debt.AnnualRate)
			payment[i] = money.Min(arena[i].debt.MinimumPayment, arena[i].remaining+interest[i])
			scenario.TotalInterest += interest[i]
		}

		pool := extra
		for i := range arena {
			if pool <= 0 {
				break
			}
			if arena[i].remaining <= 0 {
				continue
			}
			room := arena[i].remaining + interest[i] - payment[i]
			add := money.Min(pool, room)
			payment[i] += add
			pool -= add
		}

		var entry MonthlyEntry
		for i := range arena {
			if arena[i].remaining <= 0 {
				continue
			}
			arena[i].remaining = money.Max(0, arena[i].remaining+interest[i]-payment[i])
			scenario.TotalPayments += payment[i]
			if opts.RecordSchedule {
				entry.Payments = append(entry.Payments, DebtPayment{
					DebtID:           arena[i].debt.ID,
					Interest:         interest[i],
					Payment:          payment[i],
					RemainingBalance: arena[i].remaining,
				})
				entry.TotalPaid += payment[i]
			}
		}
		if opts.RecordSchedule {
			entry.Month = scenario.Months
			scenario.Schedule = append(scenario.Schedule, entry)
		}
	}

	scenario.RemainingBalance = outstanding(arena)
	if scenario.RemainingBalance > 0 {
		scenario.Outcome = OutcomeNonConvergent
		return scenario, nil
	}
	scenario.Outcome = OutcomePaidOff
	scenario.PayoffDate = PayoffDate(opts.Start, scenario.Months)
	return scenario, nil
}

func monthlyInterest(balance money.Cents, annualRate decimal.Decimal) money.Cents {
	if annualRate.IsZero() {
		return 0
	}
	return money.MulRate(balance, annualRate, monthsPerYear)
}

func outstanding(arena []simDebt) money.Cents {
	var total money.Cents
	for i := range arena {
		total += arena[i].remaining
	}
	return total
}
