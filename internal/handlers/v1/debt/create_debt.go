package debt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/service"
)

// CreateDebtBody is the request body for registering a debt.
type CreateDebtBody struct {
	UserID              string `json:"userID" required:"true" doc:"Owning user UUID"`
	Name                string `json:"name" minLength:"1" doc:"Debt name"`
	BalanceCents        int64  `json:"balanceCents" minimum:"0" doc:"Current balance in cents"`
	MinimumPaymentCents int64  `json:"minimumPaymentCents" minimum:"0" doc:"Monthly minimum payment in cents"`
	AnnualRate          string `json:"annualRate,omitempty" doc:"Annual interest rate as a fraction (e.g. '0.2199'), defaults to 0"`
	DueDay              int    `json:"dueDay,omitempty" minimum:"0" maximum:"31" doc:"Payment due day of month"`
}

// CreateDebtInput is the Huma input for registering a debt.
type CreateDebtInput struct {
	Body CreateDebtBody
}

// CreateDebtResponse is the response body for registering a debt.
type CreateDebtResponse struct {
	ID string `json:"id" doc:"Created debt UUID"`
}

// CreateDebtOutput is the response for registering a debt.
type CreateDebtOutput struct {
	Status int
	Body   CreateDebtResponse
}

type debtCreator interface {
	Create(ctx context.Context, d service.NewDebt) (uuid.UUID, error)
}

// CreateDebtHandler handles POST /v1/debts.
type CreateDebtHandler struct {
	DebtService debtCreator
}

func NewCreateDebtHandler(svc debtCreator) *CreateDebtHandler {
	return &CreateDebtHandler{DebtService: svc}
}

// Register registers the create debt endpoint with the Huma API.
func (h *CreateDebtHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-debt",
		Method:      http.MethodPost,
		Path:        "/v1/debts",
		Summary:     "Register a debt",
		Description: "Registers a liability. The original balance is recorded as the given balance.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func parseCreateDebtInput(input *CreateDebtInput) (service.NewDebt, error) {
	userID, err := apiutil.ParseUUID("userID", input.Body.UserID)
	if err != nil {
		return service.NewDebt{}, err
	}
	rate, err := apiutil.ParseRate("annualRate", input.Body.AnnualRate)
	if err != nil {
		return service.NewDebt{}, err
	}

	return service.NewDebt{
		UserID:         userID,
		Name:           input.Body.Name,
		Balance:        money.Cents(input.Body.BalanceCents),
		MinimumPayment: money.Cents(input.Body.MinimumPaymentCents),
		AnnualRate:     rate,
		DueDay:         input.Body.DueDay,
	}, nil
}

func (h *CreateDebtHandler) handle(ctx context.Context, input *CreateDebtInput) (*CreateDebtOutput, error) {
	logData := logging.GetLogData(ctx)

	d, err := parseCreateDebtInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createDebtMs")
	id, err := h.DebtService.Create(ctx, d)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error("failed to create debt", err)
	}

	logData.AddData(logging.FieldDebtID, id.String())

	return &CreateDebtOutput{
		Status: http.StatusCreated,
		Body:   CreateDebtResponse{ID: id.String()},
	}, nil
}
