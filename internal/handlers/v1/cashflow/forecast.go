package cashflow

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/money"
)

// Recurring is a known future transaction in a request body.
type Recurring struct {
	ID          string `json:"id,omitempty" doc:"Optional recurring transaction UUID"`
	Name        string `json:"name,omitempty" doc:"Recurring transaction name"`
	AmountCents int64  `json:"amountCents" doc:"Signed amount in cents: income positive, bills negative"`
	DueDate     string `json:"dueDate" doc:"RFC3339 or YYYY-MM-DD due date"`
}

// ForecastBody is the request body for a cashflow forecast.
type ForecastBody struct {
	AsOf                   string      `json:"asOf,omitempty" doc:"RFC3339 or YYYY-MM-DD forecast date, defaults to now"`
	CurrentBalanceCents    int64       `json:"currentBalanceCents" doc:"Current cash balance in cents"`
	DailyAverageSpendCents int64       `json:"dailyAverageSpendCents,omitempty" minimum:"0" doc:"Average daily spend in cents"`
	TrailingSpendCents     int64       `json:"trailingSpendCents,omitempty" minimum:"0" doc:"Total spend over windowDays, used when dailyAverageSpendCents is 0"`
	WindowDays             int         `json:"windowDays,omitempty" minimum:"0" doc:"Length of the trailing spend window in days"`
	DaysRemaining          int         `json:"daysRemaining,omitempty" doc:"Days left in the period"`
	PeriodEnd              string      `json:"periodEnd,omitempty" doc:"Period end date, used when daysRemaining is 0"`
	Upcoming               []Recurring `json:"upcoming,omitempty" doc:"Known recurring transactions. Those due outside the horizon are ignored."`
	Confidence             float64     `json:"confidence,omitempty" doc:"Confidence override in (0, 1]"`
}

// ForecastInput is the Huma input for a cashflow forecast.
type ForecastInput struct {
	Body ForecastBody
}

// Prediction is the API model of a cashflow prediction.
type Prediction struct {
	ID                     string  `json:"id" doc:"Deterministic prediction UUID"`
	AsOf                   string  `json:"asOf" doc:"RFC3339 forecast time"`
	CurrentBalanceCents    int64   `json:"currentBalanceCents"`
	ProjectedSpendCents    int64   `json:"projectedSpendCents"`
	UpcomingRecurringCents int64   `json:"upcomingRecurringCents"`
	PredictedBalanceCents  int64   `json:"predictedBalanceCents"`
	DaysRemaining          int     `json:"daysRemaining"`
	ConfidenceLevel        float64 `json:"confidenceLevel"`
}

// ForecastOutput is the Huma output for a cashflow forecast.
type ForecastOutput struct {
	Body Prediction
}

type forecaster interface {
	Forecast(in forecast.Input) (forecast.CashflowPrediction, error)
}

// ForecastHandler handles POST /v1/cashflow/forecast.
type ForecastHandler struct {
	Forecaster forecaster
	now        func() time.Time
}

func NewForecastHandler(svc forecaster) *ForecastHandler {
	return &ForecastHandler{Forecaster: svc, now: time.Now}
}

// Register registers the forecast endpoint with the Huma API.
func (h *ForecastHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "forecast-cashflow",
		Method:      http.MethodPost,
		Path:        "/v1/cashflow/forecast",
		Summary:     "Forecast cashflow",
		Description: "Projects the end-of-period balance from the current balance, the daily spend rate and upcoming recurring transactions.",
		Tags:        []string{"Cashflow"},
	}, h.handle)
}

// NewPrediction converts an engine prediction into its API model.
func NewPrediction(p *forecast.CashflowPrediction) Prediction {
	return Prediction{
		ID:                     p.ID.String(),
		AsOf:                   p.AsOf.UTC().Format(time.RFC3339),
		CurrentBalanceCents:    int64(p.CurrentBalance),
		ProjectedSpendCents:    int64(p.ProjectedSpend),
		UpcomingRecurringCents: int64(p.UpcomingRecurring),
		PredictedBalanceCents:  int64(p.PredictedBalance),
		DaysRemaining:          p.DaysRemaining,
		ConfidenceLevel:        p.ConfidenceLevel,
	}
}

func (h *ForecastHandler) parseForecastInput(input *ForecastInput) (forecast.Input, error) {
	body := input.Body

	asOf, err := apiutil.ParseTime("asOf", body.AsOf)
	if err != nil {
		return forecast.Input{}, err
	}
	if asOf.IsZero() {
		asOf = h.now()
	}
	asOf = asOf.UTC()

	daily := money.Cents(body.DailyAverageSpendCents)
	if daily == 0 && body.TrailingSpendCents > 0 {
		daily, err = forecast.AverageDailySpend(money.Cents(body.TrailingSpendCents), body.WindowDays)
		if err != nil {
			return forecast.Input{}, err
		}
	}

	days := body.DaysRemaining
	if days == 0 && body.PeriodEnd != "" {
		periodEnd, err := apiutil.ParseTime("periodEnd", body.PeriodEnd)
		if err != nil {
			return forecast.Input{}, err
		}
		days = forecast.DaysRemaining(asOf, periodEnd)
	}

	upcoming := make([]forecast.RecurringTransaction, 0, len(body.Upcoming))
	for _, r := range body.Upcoming {
		item := forecast.RecurringTransaction{Name: r.Name, Amount: money.Cents(r.AmountCents)}
		if r.ID != "" {
			item.ID, err = apiutil.ParseUUID("upcoming.id", r.ID)
			if err != nil {
				return forecast.Input{}, err
			}
		}
		item.DueDate, err = apiutil.ParseTime("upcoming.dueDate", r.DueDate)
		if err != nil {
			return forecast.Input{}, err
		}
		upcoming = append(upcoming, item)
	}
	if days >= 0 {
		today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
		upcoming = forecast.WithinHorizon(upcoming, today, days)
	}

	return forecast.Input{
		AsOf:              asOf,
		CurrentBalance:    money.Cents(body.CurrentBalanceCents),
		DailyAverageSpend: daily,
		Upcoming:          upcoming,
		DaysRemaining:     days,
		Confidence:        body.Confidence,
	}, nil
}

func (h *ForecastHandler) handle(ctx context.Context, input *ForecastInput) (*ForecastOutput, error) {
	logData := logging.GetLogData(ctx)

	in, err := h.parseForecastInput(input)
	if err != nil {
		return nil, apiutil.Error("invalid forecast input", err)
	}

	prediction, err := h.Forecaster.Forecast(in)
	if err != nil {
		return nil, apiutil.Error("failed to forecast cashflow", err)
	}

	logData.AddData(logging.FieldPrediction, prediction.ID.String())
	return &ForecastOutput{Body: NewPrediction(&prediction)}, nil
}
