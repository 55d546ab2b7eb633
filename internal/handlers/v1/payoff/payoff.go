package payoff

import (
	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/money"
	engine "github.com/carson-networks/finance-engine/internal/payoff"
)

// DebtInput is a debt handed to the engine in a request body.
type DebtInput struct {
	ID                   string `json:"id,omitempty" doc:"Optional debt UUID, echoed back in schedules"`
	Name                 string `json:"name,omitempty" doc:"Debt name"`
	OriginalBalanceCents int64  `json:"originalBalanceCents,omitempty" minimum:"0" doc:"Original balance in cents, defaults to balanceCents"`
	BalanceCents         int64  `json:"balanceCents" minimum:"0" doc:"Current balance in cents"`
	MinimumPaymentCents  int64  `json:"minimumPaymentCents" minimum:"0" doc:"Monthly minimum payment in cents"`
	AnnualRate           string `json:"annualRate" doc:"Annual interest rate as a fraction, e.g. '0.2199'"`
	DueDay               int    `json:"dueDay,omitempty" minimum:"0" maximum:"31" doc:"Payment due day of month"`
}

// Scenario is the API model of one payoff projection.
type Scenario struct {
	Outcome               string         `json:"outcome" enum:"paid_off,non_convergent,never_pays_off" doc:"Whether the debts are paid off"`
	Months                int            `json:"months" doc:"Months simulated"`
	TotalPaymentsCents    int64          `json:"totalPaymentsCents" doc:"Sum of all payments in cents"`
	TotalInterestCents    int64          `json:"totalInterestCents" doc:"Sum of all interest in cents"`
	RemainingBalanceCents int64          `json:"remainingBalanceCents" doc:"Balance still owed when the scenario does not pay off"`
	PayoffDate            string         `json:"payoffDate,omitempty" doc:"YYYY-MM-DD payoff date, absent unless paid off"`
	Schedule              []MonthlyEntry `json:"schedule,omitempty" doc:"Month by month breakdown, only when requested"`
}

// MonthlyEntry is one simulated month.
type MonthlyEntry struct {
	Month          int           `json:"month"`
	TotalPaidCents int64         `json:"totalPaidCents"`
	Payments       []DebtPayment `json:"payments"`
}

// DebtPayment is a single debt's line in a MonthlyEntry.
type DebtPayment struct {
	DebtID                string `json:"debtID"`
	InterestCents         int64  `json:"interestCents"`
	PaymentCents          int64  `json:"paymentCents"`
	RemainingBalanceCents int64  `json:"remainingBalanceCents"`
}

// Comparison is the API model of a snowball/avalanche comparison.
type Comparison struct {
	Snowball     Scenario `json:"snowball"`
	Avalanche    Scenario `json:"avalanche"`
	Recommended  string   `json:"recommended" enum:"snowball,avalanche" doc:"Recommended strategy"`
	SavingsCents int64    `json:"savingsCents" doc:"Interest saved by the recommended strategy, in cents"`
	MonthsSaved  int      `json:"monthsSaved" doc:"Months saved by the recommended strategy"`
}

// ParseDebts converts request debts into engine debts.
func ParseDebts(inputs []DebtInput) ([]engine.Debt, error) {
	debts := make([]engine.Debt, len(inputs))
	for i, in := range inputs {
		d := engine.Debt{
			Name:            in.Name,
			OriginalBalance: money.Cents(in.OriginalBalanceCents),
			Balance:         money.Cents(in.BalanceCents),
			MinimumPayment:  money.Cents(in.MinimumPaymentCents),
			DueDay:          in.DueDay,
		}
		if d.OriginalBalance == 0 {
			d.OriginalBalance = d.Balance
		}
		if in.ID != "" {
			id, err := apiutil.ParseUUID("debts.id", in.ID)
			if err != nil {
				return nil, err
			}
			d.ID = id
		}
		rate, err := apiutil.ParseRate("debts.annualRate", in.AnnualRate)
		if err != nil {
			return nil, err
		}
		d.AnnualRate = rate
		debts[i] = d
	}
	return debts, nil
}

// NewScenario converts an engine scenario into its API model.
func NewScenario(s engine.PayoffScenario) Scenario {
	out := Scenario{
		Outcome:               s.Outcome.String(),
		Months:                s.Months,
		TotalPaymentsCents:    int64(s.TotalPayments),
		TotalInterestCents:    int64(s.TotalInterest),
		RemainingBalanceCents: int64(s.RemainingBalance),
		PayoffDate:            apiutil.FormatDate(s.PayoffDate),
	}
	for _, entry := range s.Schedule {
		month := MonthlyEntry{
			Month:          entry.Month,
			TotalPaidCents: int64(entry.TotalPaid),
			Payments:       make([]DebtPayment, len(entry.Payments)),
		}
		for i, p := range entry.Payments {
			month.Payments[i] = DebtPayment{
				DebtID:                p.DebtID.String(),
				InterestCents:         int64(p.Interest),
				PaymentCents:          int64(p.Payment),
				RemainingBalanceCents: int64(p.RemainingBalance),
			}
		}
		out.Schedule = append(out.Schedule, month)
	}
	return out
}

// NewComparison converts an engine comparison into its API model.
func NewComparison(c *engine.StrategyComparison) Comparison {
	return Comparison{
		Snowball:     NewScenario(c.Snowball),
		Avalanche:    NewScenario(c.Avalanche),
		Recommended:  c.Recommended.String(),
		SavingsCents: int64(c.Savings),
		MonthsSaved:  c.MonthsSaved,
	}
}
