package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/payoff"
)

// plan is the YAML document payoffctl reads. Money is written in currency
// units ("1234.56") and converted to cents on load.
type plan struct {
	ExtraPayment string     `yaml:"extraPayment"`
	Start        string     `yaml:"start"`
	MaxMonths    int        `yaml:"maxMonths"`
	Debts        []planDebt `yaml:"debts"`
}

type planDebt struct {
	Name           string `yaml:"name"`
	Balance        string `yaml:"balance"`
	MinimumPayment string `yaml:"minimumPayment"`
	AnnualRate     string `yaml:"annualRate"`
	DueDay         int    `yaml:"dueDay"`
}

// loadedPlan is a plan converted into engine inputs.
type loadedPlan struct {
	Debts   []payoff.Debt
	Extra   money.Cents
	Options payoff.Options
}

var planNamespace = uuid.NewV5(uuid.NamespaceURL, "finance-engine/payoffctl-plan")

func loadPlan(path string) (*loadedPlan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return parsePlan(raw)
}

func parsePlan(raw []byte) (*loadedPlan, error) {
	var p plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}

	out := &loadedPlan{Options: payoff.Options{MaxMonths: p.MaxMonths}}

	if p.ExtraPayment != "" {
		extra, err := money.Parse(p.ExtraPayment)
		if err != nil {
			return nil, fmt.Errorf("extraPayment: %w", err)
		}
		out.Extra = extra
	}

	if p.Start != "" {
		start, err := time.Parse("2006-01-02", p.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		out.Options.Start = start
	} else {
		now := time.Now().UTC()
		out.Options.Start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	for i, d := range p.Debts {
		converted, err := d.toPayoff()
		if err != nil {
			return nil, fmt.Errorf("debts[%d] %q: %w", i, d.Name, err)
		}
		out.Debts = append(out.Debts, converted)
	}
	return out, nil
}

func (d planDebt) toPayoff() (payoff.Debt, error) {
	balance, err := money.Parse(d.Balance)
	if err != nil {
		return payoff.Debt{}, fmt.Errorf("balance: %w", err)
	}
	minimum, err := money.Parse(d.MinimumPayment)
	if err != nil {
		return payoff.Debt{}, fmt.Errorf("minimumPayment: %w", err)
	}
	rate := decimal.Zero
	if d.AnnualRate != "" {
		rate, err = decimal.NewFromString(d.AnnualRate)
		if err != nil {
			return payoff.Debt{}, fmt.Errorf("annualRate: %w", err)
		}
	}

	debt := payoff.Debt{
		ID:              uuid.NewV5(planNamespace, d.Name),
		Name:            d.Name,
		OriginalBalance: balance,
		Balance:         balance,
		MinimumPayment:  minimum,
		AnnualRate:      rate,
		DueDay:          d.DueDay,
	}
	return debt, debt.Validate()
}
