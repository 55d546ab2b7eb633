package payoff

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
	engine "github.com/carson-networks/finance-engine/internal/payoff"
	"github.com/carson-networks/finance-engine/internal/service"
)

// CompareBody is the request body for comparing payoff strategies.
type CompareBody struct {
	Debts             []DebtInput `json:"debts" doc:"Debts to pay off"`
	ExtraPaymentCents int64       `json:"extraPaymentCents,omitempty" minimum:"0" doc:"Monthly amount paid on top of the minimums, in cents"`
	Start             string      `json:"start,omitempty" doc:"RFC3339 or YYYY-MM-DD start date, defaults to today"`
	IncludeSchedule   bool        `json:"includeSchedule,omitempty" doc:"Include the month by month schedule"`
}

// CompareInput is the Huma input for comparing payoff strategies.
type CompareInput struct {
	Body CompareBody
}

// CompareResponse is the response body for comparing payoff strategies.
type CompareResponse struct {
	Comparison
	CacheHit bool `json:"cacheHit" doc:"Whether the result was served from the cache"`
}

// CompareOutput is the Huma output for comparing payoff strategies.
type CompareOutput struct {
	Body CompareResponse
}

type strategyComparer interface {
	Compare(ctx context.Context, req service.CompareRequest) (*engine.StrategyComparison, bool, error)
}

// CompareHandler handles POST /v1/payoff/compare.
type CompareHandler struct {
	PayoffService strategyComparer
}

func NewCompareHandler(svc strategyComparer) *CompareHandler {
	return &CompareHandler{PayoffService: svc}
}

// Register registers the compare endpoint with the Huma API.
func (h *CompareHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-payoff-strategies",
		Method:      http.MethodPost,
		Path:        "/v1/payoff/compare",
		Summary:     "Compare snowball and avalanche",
		Description: "Simulates paying off the debts smallest-balance-first and highest-rate-first and recommends one.",
		Tags:        []string{"Payoff"},
	}, h.handle)
}

func parseCompareInput(input *CompareInput) (service.CompareRequest, error) {
	debts, err := ParseDebts(input.Body.Debts)
	if err != nil {
		return service.CompareRequest{}, err
	}
	start, err := apiutil.ParseTime("start", input.Body.Start)
	if err != nil {
		return service.CompareRequest{}, err
	}
	return service.CompareRequest{
		Debts:          debts,
		ExtraPayment:   money.Cents(input.Body.ExtraPaymentCents),
		Start:          start,
		RecordSchedule: input.Body.IncludeSchedule,
	}, nil
}

func (h *CompareHandler) handle(ctx context.Context, input *CompareInput) (*CompareOutput, error) {
	logData := logging.GetLogData(ctx)

	req, err := parseCompareInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("compareMs")
	comparison, cacheHit, err := h.PayoffService.Compare(ctx, req)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error("failed to compare strategies", err)
	}

	logData.AddData(logging.FieldDebtCount, len(req.Debts))
	logData.AddData(logging.FieldStrategy, comparison.Recommended.String())
	logData.AddData(logging.FieldCacheHit, cacheHit)

	return &CompareOutput{Body: CompareResponse{
		Comparison: NewComparison(comparison),
		CacheHit:   cacheHit,
	}}, nil
}
