package insight

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/storage/prediction"
)

const defaultPredictionLimit = 20

// ListPredictionsInput is the Huma input for a user's prediction history.
type ListPredictionsInput struct {
	UserID string `path:"userID" doc:"User UUID"`
	Limit  int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

// StoredPrediction is the API model of a recorded cashflow prediction.
type StoredPrediction struct {
	ID                     string  `json:"id" csv:"id"`
	AsOf                   string  `json:"asOf" csv:"as_of" doc:"RFC3339 evaluation time"`
	CurrentBalanceCents    int64   `json:"currentBalanceCents" csv:"current_balance_cents"`
	ProjectedSpendCents    int64   `json:"projectedSpendCents" csv:"projected_spend_cents"`
	UpcomingRecurringCents int64   `json:"upcomingRecurringCents" csv:"upcoming_recurring_cents"`
	PredictedBalanceCents  int64   `json:"predictedBalanceCents" csv:"predicted_balance_cents"`
	DaysRemaining          int     `json:"daysRemaining" csv:"days_remaining"`
	ConfidenceLevel        float64 `json:"confidenceLevel" csv:"confidence_level"`
	CreatedAt              string  `json:"createdAt" csv:"created_at" doc:"RFC3339 time the prediction was recorded"`
}

// ListPredictionsOutput is the Huma output for a user's prediction history.
type ListPredictionsOutput struct {
	Body struct {
		Predictions []StoredPrediction `json:"predictions" doc:"Most recent first"`
	}
}

type predictionLister interface {
	ListPredictions(ctx context.Context, userID uuid.UUID, limit int) ([]*prediction.Prediction, error)
}

// ListPredictionsHandler handles GET /v1/users/{userID}/predictions.
type ListPredictionsHandler struct {
	PredictionReader predictionLister
}

func NewListPredictionsHandler(reader predictionLister) *ListPredictionsHandler {
	return &ListPredictionsHandler{PredictionReader: reader}
}

// Register registers the prediction history endpoint with the Huma API.
func (h *ListPredictionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-predictions",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}/predictions",
		Summary:     "List predictions",
		Description: "Returns the cashflow predictions recorded for a user, most recent first.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func newStoredPredictions(rows []*prediction.Prediction) []StoredPrediction {
	out := make([]StoredPrediction, len(rows))
	for i, p := range rows {
		out[i] = StoredPrediction{
			ID:                     p.ID.String(),
			AsOf:                   p.AsOf.UTC().Format(time.RFC3339),
			CurrentBalanceCents:    int64(p.CurrentBalance),
			ProjectedSpendCents:    int64(p.ProjectedSpend),
			UpcomingRecurringCents: int64(p.UpcomingRecurring),
			PredictedBalanceCents:  int64(p.PredictedBalance),
			DaysRemaining:          p.DaysRemaining,
			ConfidenceLevel:        p.ConfidenceLevel,
			CreatedAt:              p.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}

func (h *ListPredictionsHandler) handle(ctx context.Context, input *ListPredictionsInput) (*ListPredictionsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := apiutil.ParseUUID("userID", input.UserID)
	if err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultPredictionLimit
	}

	stopTimer := logData.AddTiming("listPredictionsMs")
	rows, err := h.PredictionReader.ListPredictions(ctx, userID, limit)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error("failed to list predictions", err)
	}

	logData.AddData(logging.FieldUserID, userID.String())
	logData.AddData("predictionCount", len(rows))

	out := &ListPredictionsOutput{}
	out.Body.Predictions = newStoredPredictions(rows)
	return out, nil
}
