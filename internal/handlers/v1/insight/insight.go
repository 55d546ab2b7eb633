package insight

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	budgetapi "github.com/carson-networks/finance-engine/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-engine/internal/handlers/v1/cashflow"
	payoffapi "github.com/carson-networks/finance-engine/internal/handlers/v1/payoff"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/recommend"
	"github.com/carson-networks/finance-engine/internal/service"
)

// InsightsInput is the Huma input for generating a user's insights.
type InsightsInput struct {
	UserID            string `path:"userID" doc:"User UUID"`
	AsOf              string `query:"asOf" doc:"RFC3339 or YYYY-MM-DD evaluation date, defaults to now"`
	ExtraPaymentCents int64  `query:"extraPaymentCents" minimum:"0" doc:"Monthly amount paid on top of the debt minimums, in cents"`
}

// Recommendation is the API model of a recommendation.
type Recommendation struct {
	ID          string `json:"id" doc:"Deterministic recommendation UUID"`
	Kind        string `json:"kind" enum:"category,cashflow"`
	CategoryID  string `json:"categoryID,omitempty" doc:"Category UUID for category recommendations"`
	Severity    string `json:"severity" enum:"medium,high,urgent"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
	ValidUntil  string `json:"validUntil" doc:"RFC3339 expiry time"`
}

// InsightsBody is the response body for a user's insights.
type InsightsBody struct {
	UserID          string                 `json:"userID"`
	AsOf            string                 `json:"asOf" doc:"RFC3339 evaluation time"`
	Comparison      payoffapi.Comparison   `json:"comparison" doc:"Snowball vs avalanche over the user's active debts"`
	Prediction      cashflow.Prediction    `json:"prediction" doc:"End of month cashflow forecast"`
	Performance     *budgetapi.Performance `json:"performance,omitempty" doc:"Active budget performance, absent when the user has no active budget"`
	Recommendations []Recommendation       `json:"recommendations" doc:"Most pressing first"`
}

// InsightsOutput is the Huma output for a user's insights.
type InsightsOutput struct {
	Body InsightsBody
}

type insightGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, asOf time.Time, extra money.Cents) (*service.Insights, error)
}

// InsightsHandler handles GET /v1/users/{userID}/insights.
type InsightsHandler struct {
	InsightService insightGenerator
}

func NewInsightsHandler(svc insightGenerator) *InsightsHandler {
	return &InsightsHandler{InsightService: svc}
}

// Register registers the insights endpoint with the Huma API.
func (h *InsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "user-insights",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}/insights",
		Summary:     "Generate insights",
		Description: "Compares payoff strategies, forecasts cashflow and tracks the active budget, then records the resulting prediction and recommendations.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

// NewRecommendations converts engine recommendations into their API model.
func NewRecommendations(recs []recommend.Recommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	for i, r := range recs {
		out[i] = Recommendation{
			ID:          r.ID.String(),
			Kind:        string(r.Kind),
			Severity:    r.Severity.String(),
			Title:       r.Title,
			Description: r.Description,
			CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
			ValidUntil:  r.ValidUntil.UTC().Format(time.RFC3339),
		}
		if r.CategoryID != nil {
			out[i].CategoryID = r.CategoryID.String()
		}
	}
	return out
}

func (h *InsightsHandler) handle(ctx context.Context, input *InsightsInput) (*InsightsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := apiutil.ParseUUID("userID", input.UserID)
	if err != nil {
		return nil, err
	}
	asOf, err := apiutil.ParseTime("asOf", input.AsOf)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("insightsMs")
	insights, err := h.InsightService.Generate(ctx, userID, asOf, money.Cents(input.ExtraPaymentCents))
	stopTimer()
	if err != nil {
		return nil, apiutil.Error("failed to generate insights", err)
	}

	logData.AddData(logging.FieldUserID, userID.String())
	logData.AddData(logging.FieldPrediction, insights.Prediction.ID.String())
	logData.AddData("recommendationCount", len(insights.Recommendations))

	body := InsightsBody{
		UserID:          userID.String(),
		AsOf:            insights.AsOf.UTC().Format(time.RFC3339),
		Comparison:      payoffapi.NewComparison(insights.Comparison),
		Prediction:      cashflow.NewPrediction(insights.Prediction),
		Recommendations: NewRecommendations(insights.Recommendations),
	}
	if insights.Performance != nil {
		performance := budgetapi.NewPerformance(insights.Performance, insights.CategoryNames)
		body.Performance = &performance
	}
	return &InsightsOutput{Body: body}, nil
}
