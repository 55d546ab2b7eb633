// Package recommend turns budget performance and a cashflow prediction into
// ranked advisories.
package recommend

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/budget"
	"github.com/carson-networks/finance-engine/internal/forecast"
)

const (
	DefaultCategoryValidity = 7 * 24 * time.Hour
	DefaultCashflowValidity = 3 * 24 * time.Hour
)

var recommendationNamespace = uuid.NewV5(uuid.NamespaceURL, "finance-engine/recommendation")

// Severity orders recommendations. Higher values are more pressing.
type Severity int8

const (
	SeverityMedium Severity = iota + 1
	SeverityHigh
	SeverityUrgent
)

func (s Severity) String() string {
	switch s {
	case SeverityUrgent:
		return "urgent"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind tags what a recommendation is about.
type Kind string

const (
	KindCategory Kind = "category"
	KindCashflow Kind = "cashflow"
)

type Recommendation struct {
	ID          uuid.UUID
	Kind        Kind
	CategoryID  *uuid.UUID
	Severity    Severity
	Title       string
	Description string
	CreatedAt   time.Time
	ValidUntil  time.Time

	percentage float64
}

type Options struct {
	Now              time.Time
	CategoryValidity time.Duration
	CashflowValidity time.Duration
	// CategoryNames labels categories in titles. Unknown ids fall back to
	// the id itself.
	CategoryNames map[uuid.UUID]string
}

func (o Options) withDefaults() Options {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.CategoryValidity <= 0 {
		o.CategoryValidity = DefaultCategoryValidity
	}
	if o.CashflowValidity <= 0 {
		o.CashflowValidity = DefaultCashflowValidity
	}
	return o
}

// Generate applies the fixed threshold rules:
//   - a category at warning yields a medium recommendation, one that is over
//     yields a high one
//   - a negative predicted balance yields a single urgent recommendation
//
// The result is sorted by severity, then percentage consumed, then category
// id. It is empty, never nil, when no threshold is crossed.
func Generate(perf []budget.CategoryPerformance, prediction *forecast.CashflowPrediction, opts Options) []Recommendation {
	opts = opts.withDefaults()
	recs := make([]Recommendation, 0)

	if prediction != nil && prediction.PredictedBalance < 0 {
		recs = append(recs, cashflowRecommendation(prediction, opts))
	}

	for _, c := range perf {
		var severity Severity
		switch c.Status {
		case budget.StatusOver:
			severity = SeverityHigh
		case budget.StatusWarning:
			severity = SeverityMedium
		default:
			continue
		}
		recs = append(recs, categoryRecommendation(c, severity, opts))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.percentage != b.percentage {
			return a.percentage > b.percentage
		}
		return bytes.Compare(categoryBytes(a), categoryBytes(b)) < 0
	})
	return recs
}

func categoryRecommendation(c budget.CategoryPerformance, severity Severity, opts Options) Recommendation {
	name, ok := opts.CategoryNames[c.CategoryID]
	if !ok {
		name = c.CategoryID.String()
	}

	var title, description string
	if c.Status == budget.StatusOver {
		title = fmt.Sprintf("%s budget exceeded", name)
		description = fmt.Sprintf("You have used %.2f%% of your %s budget and are %s over the limit.",
			c.Percentage, name, (-c.Remaining).String())
	} else {
		title = fmt.Sprintf("%s budget almost used", name)
		description = fmt.Sprintf("You have used %.2f%% of your %s budget with %s remaining.",
			c.Percentage, name, c.Remaining.String())
	}

	categoryID := c.CategoryID
	return Recommendation{
		ID:          recommendationID(KindCategory, categoryID.String(), severity, opts.Now),
		Kind:        KindCategory,
		CategoryID:  &categoryID,
		Severity:    severity,
		Title:       title,
		Description: description,
		CreatedAt:   opts.Now,
		ValidUntil:  opts.Now.Add(opts.CategoryValidity),
		percentage:  c.Percentage,
	}
}

func cashflowRecommendation(p *forecast.CashflowPrediction, opts Options) Recommendation {
	return Recommendation{
		ID:       recommendationID(KindCashflow, p.ID.String(), SeverityUrgent, opts.Now),
		Kind:     KindCashflow,
		Severity: SeverityUrgent,
		Title:    "Projected negative balance",
		Description: fmt.Sprintf("Your balance is projected to reach %s within %d days. Consider reducing spending or moving funds.",
			p.PredictedBalance.String(), p.DaysRemaining),
		CreatedAt:  opts.Now,
		ValidUntil: opts.Now.Add(opts.CashflowValidity),
	}
}

func recommendationID(kind Kind, subject string, severity Severity, now time.Time) uuid.UUID {
	key := fmt.Sprintf("%s|%s|%s|%s", kind, subject, severity, now.UTC().Format(time.RFC3339Nano))
	return uuid.NewV5(recommendationNamespace, key)
}

func categoryBytes(r Recommendation) []byte {
	if r.CategoryID == nil {
		return nil
	}
	return r.CategoryID.Bytes()
}
