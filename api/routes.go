package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	budgetapi "github.com/carson-networks/finance-engine/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-engine/internal/handlers/v1/cashflow"
	debtapi "github.com/carson-networks/finance-engine/internal/handlers/v1/debt"
	"github.com/carson-networks/finance-engine/internal/handlers/v1/insight"
	payoffapi "github.com/carson-networks/finance-engine/internal/handlers/v1/payoff"
	"github.com/carson-networks/finance-engine/internal/handlers/v1/status"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/service"
	"github.com/carson-networks/finance-engine/internal/storage/prediction"
)

const shutdownTimeout = 15 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type predictionLister interface {
	ListPredictions(ctx context.Context, userID uuid.UUID, limit int) ([]*prediction.Prediction, error)
}

type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	DB          pinger
	Predictions predictionLister
}

// Handler builds the huma API on a plain ServeMux.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Finance Engine", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler(r.DB).Register(api)

	debtapi.NewCreateDebtHandler(r.Service.Debt).Register(api)
	debtapi.NewListDebtsHandler(r.Service.Debt).Register(api)
	debtapi.NewRecordPaymentHandler(r.Service.Debt).Register(api)

	payoffapi.NewCompareHandler(r.Service.Payoff).Register(api)
	payoffapi.NewBaselineHandler(r.Service.Payoff).Register(api)

	cashflow.NewForecastHandler(r.Service.Insight).Register(api)
	budgetapi.NewPerformanceHandler(r.Service.Insight).Register(api)
	insight.NewInsightsHandler(r.Service.Insight).Register(api)
	insight.NewListPredictionsHandler(r.Predictions).Register(api)

	export := insight.NewExportPredictionsHandler(r.Predictions)
	mux.HandleFunc("GET /v1/users/{userID}/predictions.csv", logging.LoggingWrapper("ExportPredictions", r.Logger, export.Handler))

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
