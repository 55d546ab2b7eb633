package cashflow

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/money"
)

type mockForecaster struct {
	mock.Mock
}

func (m *mockForecaster) Forecast(in forecast.Input) (forecast.CashflowPrediction, error) {
	args := m.Called(in)
	return args.Get(0).(forecast.CashflowPrediction), args.Error(1)
}

// engineForecaster runs the real forecaster.
type engineForecaster struct{}

func (engineForecaster) Forecast(in forecast.Input) (forecast.CashflowPrediction, error) {
	return forecast.Forecast(in)
}

var fixedNow = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

func newTestAPI(t *testing.T, svc forecaster) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	h := NewForecastHandler(svc)
	h.now = func() time.Time { return fixedNow }
	h.Register(api)
	return api
}

func TestHTTP_Forecast_Success(t *testing.T) {
	resp := newTestAPI(t, engineForecaster{}).Post("/v1/cashflow/forecast", ForecastBody{
		AsOf:                   "2025-03-10",
		CurrentBalanceCents:    250000,
		DailyAverageSpendCents: 4000,
		DaysRemaining:          21,
		Upcoming: []Recurring{
			{Name: "Salary", AmountCents: 320000, DueDate: "2025-03-28"},
			{Name: "Rent", AmountCents: -150000, DueDate: "2025-03-31"},
			{Name: "Next rent", AmountCents: -150000, DueDate: "2025-04-30"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Prediction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(84000), body.ProjectedSpendCents)
	assert.Equal(t, int64(170000), body.UpcomingRecurringCents)
	assert.Equal(t, int64(250000-84000+170000), body.PredictedBalanceCents)
	assert.Equal(t, 21, body.DaysRemaining)
	assert.Equal(t, forecast.DefaultConfidenceLevel, body.ConfidenceLevel)
	assert.NotEmpty(t, body.ID)
}

func TestHTTP_Forecast_TrailingWindowAndPeriodEnd(t *testing.T) {
	svc := new(mockForecaster)
	svc.On("Forecast", mock.MatchedBy(func(in forecast.Input) bool {
		return in.AsOf.Equal(fixedNow) &&
			in.DailyAverageSpend == money.Cents(3000) &&
			in.DaysRemaining == 21 &&
			len(in.Upcoming) == 0 &&
			in.Confidence == 0.5
	})).Return(forecast.CashflowPrediction{AsOf: fixedNow, DaysRemaining: 21, ConfidenceLevel: 0.5}, nil)

	resp := newTestAPI(t, svc).Post("/v1/cashflow/forecast", ForecastBody{
		CurrentBalanceCents: 10000,
		TrailingSpendCents:  90000,
		WindowDays:          30,
		PeriodEnd:           "2025-03-31",
		Confidence:          0.5,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_Forecast_NegativeDaysRemaining(t *testing.T) {
	resp := newTestAPI(t, engineForecaster{}).Post("/v1/cashflow/forecast", ForecastBody{
		CurrentBalanceCents: 10000,
		PeriodEnd:           "2025-03-01",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Forecast_MissingWindow(t *testing.T) {
	svc := new(mockForecaster)

	resp := newTestAPI(t, svc).Post("/v1/cashflow/forecast", ForecastBody{
		CurrentBalanceCents: 10000,
		TrailingSpendCents:  5000,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Forecast")
}

func TestHTTP_Forecast_InvalidDueDate(t *testing.T) {
	svc := new(mockForecaster)

	resp := newTestAPI(t, svc).Post("/v1/cashflow/forecast", ForecastBody{
		CurrentBalanceCents: 10000,
		DaysRemaining:       5,
		Upcoming:            []Recurring{{AmountCents: -100, DueDate: "soon"}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Forecast")
}
