package payoff

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-engine/internal/money"
)

var twelve = decimal.NewFromInt(monthsPerYear)

// Baseline computes months-to-payoff and total interest for one debt paying
// only its minimum, using the closed-form amortization identity
//
//	months = ceil(-ln(1 - B*r/P) / ln(1 + r)),  r = annualRate/12
//
// When P <= B*r the debt never shrinks and the result carries
// OutcomeNeverPaysOff; the logarithm is not evaluated in that case.
func Baseline(d Debt, start time.Time) (PayoffScenario, error) {
	if err := d.Validate(); err != nil {
		return PayoffScenario{}, err
	}
	if start.IsZero() {
		start = time.Now()
	}

	if d.Balance == 0 {
		return PayoffScenario{Outcome: OutcomePaidOff, PayoffDate: start}, nil
	}

	neverPaysOff := PayoffScenario{
		Outcome:          OutcomeNeverPaysOff,
		RemainingBalance: d.Balance,
	}
	if d.MinimumPayment == 0 {
		return neverPaysOff, nil
	}

	// Exact check of P <= B*r, i.e. 12*P <= B*rate.
	owedInterest := decimal.NewFromInt(int64(d.Balance)).Mul(d.AnnualRate)
	if decimal.NewFromInt(int64(d.MinimumPayment)).Mul(twelve).LessThanOrEqual(owedInterest) {
		return neverPaysOff, nil
	}

	balance := float64(d.Balance)
	payment := float64(d.MinimumPayment)

	r := d.AnnualRate.InexactFloat64() / monthsPerYear
	// Log1p keeps tiny rates from collapsing 1+r to 1. The epsilon keeps an
	// exact whole number of months from rounding up on float noise.
	n := math.Ceil(-math.Log1p(-balance*r/payment)/math.Log1p(r) - 1e-9)
	if r <= 0 || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		months := int(math.Ceil(balance / payment))
		return PayoffScenario{
			Outcome:       OutcomePaidOff,
			Months:        months,
			TotalPayments: d.Balance,
			PayoffDate:    PayoffDate(start, months),
		}, nil
	}
	months := int(n)

	// Balance left before the final, partial payment.
	lnGrowth := float64(months-1) * math.Log1p(r)
	growth := math.Exp(lnGrowth)
	beforeLast := balance*growth - payment*math.Expm1(lnGrowth)/r
	if beforeLast < 0 {
		beforeLast = 0
	}
	totalPaid := payment*float64(months-1) + beforeLast*(1+r)
	totalPayments := money.Cents(math.Round(totalPaid))

	return PayoffScenario{
		Outcome:       OutcomePaidOff,
		Months:        months,
		TotalPayments: totalPayments,
		TotalInterest: money.Max(0, totalPayments-d.Balance),
		PayoffDate:    PayoffDate(start, months),
	}, nil
}
