package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/budget"
	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
)

// CategoryLimit is one category's limit in a request body.
type CategoryLimit struct {
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	Name       string `json:"name,omitempty" doc:"Category display name"`
	LimitCents int64  `json:"limitCents" minimum:"0" doc:"Category limit in cents"`
}

// CategorySpend is one category's spend over the period in a request body.
type CategorySpend struct {
	CategoryID  string `json:"categoryID" doc:"Category UUID"`
	AmountCents int64  `json:"amountCents" minimum:"0" doc:"Absolute spend in cents"`
}

// PerformanceBody is the request body for budget performance.
type PerformanceBody struct {
	BudgetID         string          `json:"budgetID,omitempty" doc:"Optional budget UUID"`
	StartDate        string          `json:"startDate,omitempty" doc:"Period start date"`
	EndDate          string          `json:"endDate,omitempty" doc:"Period end date"`
	TotalBudgetCents int64           `json:"totalBudgetCents,omitempty" minimum:"0" doc:"Overall budget in cents, defaults to the sum of the limits"`
	WarningPercent   float64         `json:"warningPercent,omitempty" minimum:"0" doc:"Warning threshold, defaults to 80"`
	DangerPercent    float64         `json:"dangerPercent,omitempty" minimum:"0" doc:"Over-budget threshold, defaults to 100"`
	Categories       []CategoryLimit `json:"categories" doc:"Category limits"`
	Spent            []CategorySpend `json:"spent,omitempty" doc:"Spend per category over the period"`
}

// PerformanceInput is the Huma input for budget performance.
type PerformanceInput struct {
	Body PerformanceBody
}

// CategoryPerformance is the API model of one category's performance.
type CategoryPerformance struct {
	CategoryID     string  `json:"categoryID"`
	Name           string  `json:"name,omitempty"`
	LimitCents     int64   `json:"limitCents"`
	SpentCents     int64   `json:"spentCents"`
	RemainingCents int64   `json:"remainingCents" doc:"Negative once the limit is exceeded"`
	Percentage     float64 `json:"percentage" doc:"Spend as a percentage of the limit, 2 dp"`
	Status         string  `json:"status" enum:"good,warning,over"`
}

// Performance is the API model of a budget's performance.
type Performance struct {
	BudgetID             string                `json:"budgetID,omitempty"`
	Categories           []CategoryPerformance `json:"categories"`
	TotalLimitCents      int64                 `json:"totalLimitCents"`
	TotalSpentCents      int64                 `json:"totalSpentCents"`
	TotalRemainingCents  int64                 `json:"totalRemainingCents"`
	UnbudgetedSpentCents int64                 `json:"unbudgetedSpentCents"`
	Percentage           float64               `json:"percentage"`
	Status               string                `json:"status" enum:"good,warning,over"`
}

// PerformanceOutput is the Huma output for budget performance.
type PerformanceOutput struct {
	Body Performance
}

type performanceTracker interface {
	Performance(b *budget.Budget, spent map[uuid.UUID]money.Cents) (*budget.Performance, error)
}

// PerformanceHandler handles POST /v1/budgets/performance.
type PerformanceHandler struct {
	Tracker performanceTracker
}

func NewPerformanceHandler(svc performanceTracker) *PerformanceHandler {
	return &PerformanceHandler{Tracker: svc}
}

// Register registers the budget performance endpoint with the Huma API.
func (h *PerformanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-performance",
		Method:      http.MethodPost,
		Path:        "/v1/budgets/performance",
		Summary:     "Budget performance",
		Description: "Classifies spend against each category limit as good, warning or over.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

// NewPerformance converts engine performance into its API model. names
// labels categories and may be nil.
func NewPerformance(p *budget.Performance, names map[uuid.UUID]string) Performance {
	out := Performance{
		Categories:           make([]CategoryPerformance, len(p.Categories)),
		TotalLimitCents:      int64(p.TotalLimit),
		TotalSpentCents:      int64(p.TotalSpent),
		TotalRemainingCents:  int64(p.TotalRemaining),
		UnbudgetedSpentCents: int64(p.UnbudgetedSpent),
		Percentage:           p.Percentage,
		Status:               p.Status.String(),
	}
	if p.BudgetID != uuid.Nil {
		out.BudgetID = p.BudgetID.String()
	}
	for i, c := range p.Categories {
		out.Categories[i] = CategoryPerformance{
			CategoryID:     c.CategoryID.String(),
			Name:           names[c.CategoryID],
			LimitCents:     int64(c.Limit),
			SpentCents:     int64(c.Spent),
			RemainingCents: int64(c.Remaining),
			Percentage:     c.Percentage,
			Status:         c.Status.String(),
		}
	}
	return out
}

func parsePerformanceInput(input *PerformanceInput) (*budget.Budget, map[uuid.UUID]money.Cents, map[uuid.UUID]string, error) {
	body := input.Body
	b := &budget.Budget{
		Limits:         make(map[uuid.UUID]money.Cents, len(body.Categories)),
		TotalBudget:    money.Cents(body.TotalBudgetCents),
		WarningPercent: body.WarningPercent,
		DangerPercent:  body.DangerPercent,
	}

	var err error
	if body.BudgetID != "" {
		if b.ID, err = apiutil.ParseUUID("budgetID", body.BudgetID); err != nil {
			return nil, nil, nil, err
		}
	}
	if b.StartDate, err = apiutil.ParseTime("startDate", body.StartDate); err != nil {
		return nil, nil, nil, err
	}
	if b.EndDate, err = apiutil.ParseTime("endDate", body.EndDate); err != nil {
		return nil, nil, nil, err
	}

	names := make(map[uuid.UUID]string, len(body.Categories))
	for _, c := range body.Categories {
		id, err := apiutil.ParseUUID("categories.categoryID", c.CategoryID)
		if err != nil {
			return nil, nil, nil, err
		}
		b.Limits[id] = money.Cents(c.LimitCents)
		if c.Name != "" {
			names[id] = c.Name
		}
	}

	spent := make(map[uuid.UUID]money.Cents, len(body.Spent))
	for _, s := range body.Spent {
		id, err := apiutil.ParseUUID("spent.categoryID", s.CategoryID)
		if err != nil {
			return nil, nil, nil, err
		}
		spent[id] += money.Cents(s.AmountCents)
	}
	return b, spent, names, nil
}

func (h *PerformanceHandler) handle(ctx context.Context, input *PerformanceInput) (*PerformanceOutput, error) {
	logData := logging.GetLogData(ctx)

	b, spent, names, err := parsePerformanceInput(input)
	if err != nil {
		return nil, err
	}

	perf, err := h.Tracker.Performance(b, spent)
	if err != nil {
		return nil, apiutil.Error("failed to track budget", err)
	}

	logData.AddData("budgetStatus", perf.Status.String())
	return &PerformanceOutput{Body: NewPerformance(perf, names)}, nil
}
