package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-engine/internal/logging"
)

// StatusOutput is the Huma output for the status probe.
type StatusOutput struct {
	Body struct {
		Status   string `json:"status" enum:"ok" doc:"Service status"`
		Database string `json:"database" enum:"ok" doc:"Database status"`
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles GET /status.
type Handler struct {
	DB pinger
}

func NewHandler(db pinger) *Handler {
	return &Handler{DB: db}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Description: "Reports whether the service and its database are reachable.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("pingMs")
	err := h.DB.Ping(ctx)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "database unreachable", err)
	}

	out := &StatusOutput{}
	out.Body.Status = "ok"
	out.Body.Database = "ok"
	return out, nil
}
