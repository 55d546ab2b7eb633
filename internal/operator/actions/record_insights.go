package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/recommend"
	"github.com/carson-networks/finance-engine/internal/storage"
)

// RecordInsights appends a prediction and the recommendations derived from
// it in one transaction. Either part may be empty.
type RecordInsights struct {
	UserID          uuid.UUID
	Prediction      *forecast.CashflowPrediction
	Recommendations []recommend.Recommendation
}

func (r *RecordInsights) Name() string { return "RecordInsights" }

func (r *RecordInsights) Perform(ctx context.Context, writer *storage.Writer) error {
	predictionID := uuid.Nil
	if r.Prediction != nil {
		if err := writer.Predictions.InsertPrediction(ctx, r.UserID, *r.Prediction); err != nil {
			return err
		}
		predictionID = r.Prediction.ID
	}

	return writer.Predictions.InsertRecommendations(ctx, r.UserID, predictionID, r.Recommendations)
}
