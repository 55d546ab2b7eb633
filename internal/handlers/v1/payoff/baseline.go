package payoff

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	engine "github.com/carson-networks/finance-engine/internal/payoff"
	"github.com/carson-networks/finance-engine/internal/service"
)

// BaselineInput is the Huma input for minimum-payment baselines.
type BaselineInput struct {
	Body struct {
		Debts []DebtInput `json:"debts" doc:"Debts to project"`
		Start string      `json:"start,omitempty" doc:"RFC3339 or YYYY-MM-DD start date, defaults to today"`
	}
}

// Baseline is the minimum-payment-only projection of one debt.
type Baseline struct {
	DebtID   string   `json:"debtID,omitempty" doc:"Debt UUID when one was given"`
	Name     string   `json:"name,omitempty" doc:"Debt name"`
	Scenario Scenario `json:"scenario"`
}

// BaselineOutput is the Huma output for minimum-payment baselines.
type BaselineOutput struct {
	Body struct {
		Baselines []Baseline `json:"baselines" doc:"One projection per debt, in request order"`
	}
}

type baselineProjector interface {
	Baselines(ctx context.Context, debts []engine.Debt, start time.Time) ([]service.BaselineResult, error)
}

// BaselineHandler handles POST /v1/payoff/baseline.
type BaselineHandler struct {
	PayoffService baselineProjector
}

func NewBaselineHandler(svc baselineProjector) *BaselineHandler {
	return &BaselineHandler{PayoffService: svc}
}

// Register registers the baseline endpoint with the Huma API.
func (h *BaselineHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "payoff-baselines",
		Method:      http.MethodPost,
		Path:        "/v1/payoff/baseline",
		Summary:     "Minimum payment baselines",
		Description: "Projects months to payoff and total interest for each debt paying only its minimum.",
		Tags:        []string{"Payoff"},
	}, h.handle)
}

func (h *BaselineHandler) handle(ctx context.Context, input *BaselineInput) (*BaselineOutput, error) {
	logData := logging.GetLogData(ctx)

	debts, err := ParseDebts(input.Body.Debts)
	if err != nil {
		return nil, err
	}
	start, err := apiutil.ParseTime("start", input.Body.Start)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("baselineMs")
	results, err := h.PayoffService.Baselines(ctx, debts, start)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error("failed to project baselines", err)
	}

	logData.AddData(logging.FieldDebtCount, len(debts))

	out := &BaselineOutput{}
	out.Body.Baselines = make([]Baseline, len(results))
	for i, r := range results {
		b := Baseline{Name: r.Name, Scenario: NewScenario(r.Scenario)}
		if r.DebtID != uuid.Nil {
			b.DebtID = r.DebtID.String()
		}
		out.Body.Baselines[i] = b
	}
	return out, nil
}
