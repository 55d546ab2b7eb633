package payoff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carson-networks/finance-engine/internal/money"
)

// Strategy selects the priority order debts receive the extra payment in.
type Strategy int8

const (
	// StrategyAvalanche pays the highest interest rate first.
	StrategyAvalanche Strategy = iota
	// StrategySnowball pays the smallest balance first.
	StrategySnowball
)

func (s Strategy) String() string {
	switch s {
	case StrategyAvalanche:
		return "avalanche"
	case StrategySnowball:
		return "snowball"
	default:
		return fmt.Sprintf("Strategy(%d)", int8(s))
	}
}

// ParseStrategy parses "snowball" or "avalanche", case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avalanche":
		return StrategyAvalanche, nil
	case "snowball":
		return StrategySnowball, nil
	default:
		return 0, fmt.Errorf("unknown strategy '%s'", s)
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Order returns a copy of debts sorted for strategy. The sort is stable, so
// ties keep their input order.
func Order(debts []Debt, strategy Strategy) []Debt {
	ordered := make([]Debt, len(debts))
	copy(ordered, debts)

	switch strategy {
	case StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRate.GreaterThan(ordered[j].AnnualRate)
		})
	}
	return ordered
}

// StrategyComparison pairs the snowball and avalanche scenarios for the same
// debts and extra payment. It is derived data, recomputed on demand.
type StrategyComparison struct {
	Snowball    PayoffScenario
	Avalanche   PayoffScenario
	Recommended Strategy
	Savings     money.Cents
	// MonthsSaved is how many months sooner the recommended strategy finishes,
	// zero unless both strategies pay off.
	MonthsSaved int
}

// Compare simulates both orderings and recommends one. Avalanche wins unless
// snowball pays strictly less interest. When only one ordering pays off it is
// recommended with zero savings.
func Compare(debts []Debt, extra money.Cents, opts Options) (StrategyComparison, error) {
	opts = opts.withDefaults()

	snowball, err := Simulate(Order(debts, StrategySnowball), extra, opts)
	if err != nil {
		return StrategyComparison{}, err
	}
	avalanche, err := Simulate(Order(debts, StrategyAvalanche), extra, opts)
	if err != nil {
		return StrategyComparison{}, err
	}

	comparison := StrategyComparison{
		Snowball:    snowball,
		Avalanche:   avalanche,
		Recommended: StrategyAvalanche,
	}

	switch {
	case snowball.PaidOff() && avalanche.PaidOff():
		if snowball.TotalInterest < avalanche.TotalInterest {
			comparison.Recommended = StrategySnowball
		}
		comparison.Savings = (snowball.TotalInterest - avalanche.TotalInterest).Abs()
		if comparison.Recommended == StrategySnowball {
			comparison.MonthsSaved = avalanche.Months - snowball.Months
		} else {
			comparison.MonthsSaved = snowball.Months - avalanche.Months
		}
	case snowball.PaidOff():
		comparison.Recommended = StrategySnowball
	}

	return comparison, nil
}
