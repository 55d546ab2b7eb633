package payoff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-engine/internal/money"
)

// -- Order tests --

func TestOrder_Snowball(t *testing.T) {
	a := makeDebt("a", 5000, 100, "0.10")
	b := makeDebt("b", 1000, 100, "0.20")
	c := makeDebt("c", 3000, 100, "0.05")
	input := []Debt{a, b, c}

	ordered := Order(input, StrategySnowball)

	assert.Equal(t, []Debt{b, c, a}, ordered)
	assert.Equal(t, []Debt{a, b, c}, input, "input order untouched")
}

func TestOrder_Avalanche(t *testing.T) {
	a := makeDebt("a", 5000, 100, "0.10")
	b := makeDebt("b", 1000, 100, "0.20")
	c := makeDebt("c", 3000, 100, "0.05")

	assert.Equal(t, []Debt{b, a, c}, Order([]Debt{a, b, c}, StrategyAvalanche))
}

func TestOrder_TiesKeepInputOrder(t *testing.T) {
	a := makeDebt("a", 1000, 100, "0.15")
	b := makeDebt("b", 1000, 100, "0.15")
	c := makeDebt("c", 1000, 100, "0.15")

	assert.Equal(t, []Debt{a, b, c}, Order([]Debt{a, b, c}, StrategySnowball))
	assert.Equal(t, []Debt{c, b, a}, Order([]Debt{c, b, a}, StrategyAvalanche))
}

// -- Compare tests --

func TestCompare_NoDebts(t *testing.T) {
	comparison, err := Compare(nil, 10000, Options{Start: testStart})
	require.NoError(t, err)

	assert.Equal(t, 0, comparison.Snowball.Months)
	assert.Equal(t, 0, comparison.Avalanche.Months)
	assert.Equal(t, money.Cents(0), comparison.Savings)
	assert.Equal(t, StrategyAvalanche, comparison.Recommended)
}

func TestCompare_SingleDebtHasNoSavings(t *testing.T) {
	debts := []Debt{makeDebt("visa", 250000, 7500, "0.2299")}

	comparison, err := Compare(debts, 5000, Options{Start: testStart})
	require.NoError(t, err)

	assert.Equal(t, comparison.Snowball, comparison.Avalanche)
	assert.Equal(t, money.Cents(0), comparison.Savings)
	assert.Equal(t, 0, comparison.MonthsSaved)
	assert.Equal(t, StrategyAvalanche, comparison.Recommended)
}

func TestCompare_AvalancheSavesInterestOnFixture(t *testing.T) {
	debts := []Debt{
		makeDebt("credit card", 100000, 3000, "0.24"),
		makeDebt("car loan", 50000, 2000, "0.05"),
	}

	comparison, err := Compare(debts, 10000, Options{Start: testStart})
	require.NoError(t, err)

	require.True(t, comparison.Snowball.PaidOff())
	require.True(t, comparison.Avalanche.PaidOff())
	assert.LessOrEqual(t, int64(comparison.Avalanche.TotalInterest), int64(comparison.Snowball.TotalInterest))
	assert.Equal(t, StrategyAvalanche, comparison.Recommended)
	assert.Equal(t, comparison.Snowball.TotalInterest-comparison.Avalanche.TotalInterest, comparison.Savings)
	assert.Equal(t, comparison.Snowball.Months-comparison.Avalanche.Months, comparison.MonthsSaved)
}

func TestCompare_TieRecommendsAvalanche(t *testing.T) {
	debts := []Debt{makeDebt("a", 3000, 500, "0"), makeDebt("b", 1000, 500, "0")}

	comparison, err := Compare(debts, 0, Options{Start: testStart})
	require.NoError(t, err)

	assert.Equal(t, money.Cents(0), comparison.Snowball.TotalInterest)
	assert.Equal(t, StrategyAvalanche, comparison.Recommended)
	assert.Equal(t, money.Cents(0), comparison.Savings)
}

func TestCompare_OnlyConvergingStrategyIsRecommended(t *testing.T) {
	// Within two months avalanche clears both debts while snowball is left
	// owing a cent on the 120% debt.
	debts := []Debt{
		makeDebt("flat", 10000, 0, "0"),
		makeDebt("steep", 10001, 0, "1.2"),
	}

	comparison, err := Compare(debts, 11000, Options{Start: testStart, MaxMonths: 2})
	require.NoError(t, err)

	assert.Equal(t, OutcomeNonConvergent, comparison.Snowball.Outcome)
	assert.Equal(t, money.Cents(1), comparison.Snowball.RemainingBalance)
	assert.True(t, comparison.Avalanche.PaidOff())
	assert.Equal(t, StrategyAvalanche, comparison.Recommended)
	assert.Equal(t, money.Cents(0), comparison.Savings)
}

func TestCompare_PropagatesValidationErrors(t *testing.T) {
	_, err := Compare([]Debt{makeDebt("a", 100, 10, "0.1")}, -5, Options{Start: testStart})
	assert.Error(t, err)
}

// -- Strategy tests --

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" Snowball ")
	require.NoError(t, err)
	assert.Equal(t, StrategySnowball, s)

	s, err = ParseStrategy("avalanche")
	require.NoError(t, err)
	assert.Equal(t, StrategyAvalanche, s)

	_, err = ParseStrategy("hybrid")
	assert.Error(t, err)
}

func TestStrategy_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Strategy Strategy `json:"strategy"`
	}{StrategySnowball})
	require.NoError(t, err)
	assert.JSONEq(t, `{"strategy":"snowball"}`, string(data))

	var decoded struct {
		Strategy Strategy `json:"strategy"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"strategy":"avalanche"}`), &decoded))
	assert.Equal(t, StrategyAvalanche, decoded.Strategy)
}
