package debt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
	debtstore "github.com/carson-networks/finance-engine/internal/storage/debt"
)

// RecordPaymentInput is the Huma input for recording a debt payment.
type RecordPaymentInput struct {
	DebtID string `path:"debtID" doc:"Debt UUID"`
	Body   struct {
		AmountCents int64 `json:"amountCents" minimum:"1" doc:"Payment amount in cents"`
	}
}

// RecordPaymentOutput returns the debt as updated by the payment.
type RecordPaymentOutput struct {
	Body Debt
}

type paymentRecorder interface {
	RecordPayment(ctx context.Context, id uuid.UUID, amount money.Cents) (*debtstore.Debt, error)
}

// RecordPaymentHandler handles POST /v1/debts/{debtID}/payments.
type RecordPaymentHandler struct {
	DebtService paymentRecorder
}

func NewRecordPaymentHandler(svc paymentRecorder) *RecordPaymentHandler {
	return &RecordPaymentHandler{DebtService: svc}
}

// Register registers the record payment endpoint with the Huma API.
func (h *RecordPaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "record-debt-payment",
		Method:      http.MethodPost,
		Path:        "/v1/debts/{debtID}/payments",
		Summary:     "Record a debt payment",
		Description: "Subtracts a payment from the debt balance. A debt that reaches zero is marked inactive.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *RecordPaymentHandler) handle(ctx context.Context, input *RecordPaymentInput) (*RecordPaymentOutput, error) {
	logData := logging.GetLogData(ctx)

	debtID, err := apiutil.ParseUUID("debtID", input.DebtID)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("recordPaymentMs")
	updated, err := h.DebtService.RecordPayment(ctx, debtID, money.Cents(input.Body.AmountCents))
	stopTimer()
	if err != nil {
		return nil, apiutil.Error("failed to record payment", err)
	}

	logData.AddData(logging.FieldDebtID, debtID.String())
	return &RecordPaymentOutput{Body: fromStorage(updated)}, nil
}
