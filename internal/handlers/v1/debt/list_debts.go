package debt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	debtstore "github.com/carson-networks/finance-engine/internal/storage/debt"
)

// ListDebtsInput is the Huma input for listing a user's debts.
type ListDebtsInput struct {
	UserID string `path:"userID" doc:"User UUID"`
}

// ListDebtsResponseBody is the response body for listing debts.
type ListDebtsResponseBody struct {
	Debts []Debt `json:"debts" doc:"Active debts, oldest first"`
}

// ListDebtsOutput is the Huma output for listing debts.
type ListDebtsOutput struct {
	Body ListDebtsResponseBody
}

type debtLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]*debtstore.Debt, error)
}

// ListDebtsHandler handles GET /v1/users/{userID}/debts.
type ListDebtsHandler struct {
	DebtService debtLister
}

func NewListDebtsHandler(svc debtLister) *ListDebtsHandler {
	return &ListDebtsHandler{DebtService: svc}
}

// Register registers the list debts endpoint with the Huma API.
func (h *ListDebtsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-debts",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}/debts",
		Summary:     "List debts",
		Description: "Returns the user's active debts. Paid-off debts are retained but not listed.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *ListDebtsHandler) handle(ctx context.Context, input *ListDebtsInput) (*ListDebtsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := apiutil.ParseUUID("userID", input.UserID)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listDebtsMs")
	rows, err := h.DebtService.List(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error("failed to list debts", err)
	}

	logData.AddData(logging.FieldUserID, userID.String())
	logData.AddData(logging.FieldDebtCount, len(rows))

	resp := ListDebtsResponseBody{Debts: make([]Debt, len(rows))}
	for i, row := range rows {
		resp.Debts[i] = fromStorage(row)
	}
	return &ListDebtsOutput{Body: resp}, nil
}
