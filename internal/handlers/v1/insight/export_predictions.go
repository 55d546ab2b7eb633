package insight

import (
	"net/http"

	"github.com/gocarina/gocsv"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/logging"
)

// ExportPredictionsHandler streams a user's prediction history as CSV. It is
// served outside huma since the body is not JSON.
type ExportPredictionsHandler struct {
	PredictionReader predictionLister
}

func NewExportPredictionsHandler(reader predictionLister) *ExportPredictionsHandler {
	return &ExportPredictionsHandler{PredictionReader: reader}
}

// Handler is used with logging.LoggingWrapper on
// GET /v1/users/{userID}/predictions.csv.
func (h *ExportPredictionsHandler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	userID, err := uuid.FromString(req.PathValue("userID"))
	if err != nil {
		http.Error(w, "userID must be a UUID", http.StatusBadRequest)
		return err
	}

	stopTimer := logData.AddTiming("listPredictionsMs")
	rows, err := h.PredictionReader.ListPredictions(req.Context(), userID, 0)
	stopTimer()
	if err != nil {
		http.Error(w, "failed to list predictions", http.StatusInternalServerError)
		return err
	}
	logData.AddData(logging.FieldUserID, userID.String())
	logData.AddData("predictionCount", len(rows))

	w.Header().Set("Content-Type", "text/csv")
	return gocsv.Marshal(newStoredPredictions(rows), w)
}
