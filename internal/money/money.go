// Package money holds the integer minor-unit representation used for every
// monetary value in the engine.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units.
type Cents int64

var hundred = decimal.NewFromInt(100)

// Parse converts a decimal string in major units ("12.34") to Cents,
// rounding half-up at the cent.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount '%s': %w", s, err)
	}
	return FromDecimal(d), nil
}

// FromDecimal converts a major-unit decimal to Cents, rounding half-up.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Mul(hundred).Round(0).IntPart())
}

// MulRate returns c*rate/divisor rounded once, half away from zero. For the
// non-negative balances the simulator feeds it this is round-half-up.
func MulRate(c Cents, rate decimal.Decimal, divisor int64) Cents {
	v := decimal.NewFromInt(int64(c)).Mul(rate)
	if divisor != 1 {
		v = v.Div(decimal.NewFromInt(divisor))
	}
	return Cents(v.Round(0).IntPart())
}

// MulInt multiplies c by n.
func (c Cents) MulInt(n int) Cents {
	return c * Cents(n)
}

// Abs returns the absolute value of c.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// Decimal returns c in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats c in major units with two decimals, e.g. "-12.30".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Min returns the smaller of a and b.
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// Sum adds up values.
func Sum(values ...Cents) Cents {
	var total Cents
	for _, v := range values {
		total += v
	}
	return total
}

// Percent returns part/whole*100 rounded to two decimals. A zero whole
// yields 0 rather than a division error.
func Percent(part, whole Cents) float64 {
	if whole == 0 {
		return 0
	}
	p := decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(2)
	return p.InexactFloat64()
}

// AtLeastPercent reports whether part/whole*100 >= pct, compared exactly
// before any rounding. A zero whole never reaches a threshold.
func AtLeastPercent(part, whole Cents, pct float64) bool {
	if whole == 0 {
		return false
	}
	lhs := decimal.NewFromInt(int64(part)).Mul(hundred)
	rhs := decimal.NewFromFloat(pct).Mul(decimal.NewFromInt(int64(whole)))
	return lhs.GreaterThanOrEqual(rhs)
}
