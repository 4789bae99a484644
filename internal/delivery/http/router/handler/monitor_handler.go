package handler

import (
	"log/slog"
	"net/http"

	"taxiads/internal/delivery/http/response"
	"taxiads/internal/domain/service"
	"taxiads/internal/infra/realtime"
	"taxiads/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MonitorHandlerParams holds dependencies for MonitorHandler, injected by Fx.
type MonitorHandlerParams struct {
	fx.In

	Registry service.SessionRegistry
	Playback service.PlaybackTracker
	Stats    *realtime.Stats
	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// MonitorHandler exposes liveness and realtime observability endpoints.
type MonitorHandler struct {
	registry service.SessionRegistry
	playback service.PlaybackTracker
	stats    *realtime.Stats
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewMonitorHandler is the constructor for MonitorHandler
func NewMonitorHandler(params MonitorHandlerParams) *MonitorHandler {
	return &MonitorHandler{
		registry: params.Registry,
		playback: params.Playback,
		stats:    params.Stats,
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// HealthCheck reports process liveness plus coarse realtime counters
func (h *MonitorHandler) HealthCheck(c echo.Context) error {
	data := map[string]any{
		"status":            "ok",
		"uptime_seconds":    int64(h.stats.Uptime().Seconds()),
		"active_devices":    h.registry.ActiveDevices(),
		"total_connections": h.stats.TotalConnections(),
		"messages_sent":     h.stats.MessagesSent(),
		"location_updates":  h.stats.LocationUpdates(),
	}

	return response.Success(c, http.StatusOK, data, "Service is healthy")
}

// Connections returns every live session, current playback state and open
// upload sessions in one snapshot for operator dashboards.
func (h *MonitorHandler) Connections(c echo.Context) error {
	sessions := h.registry.Snapshot()
	playback := h.playback.Snapshot()
	uploads := h.uploadUC.Sessions(c.Request().Context())

	data := map[string]any{
		"active_devices":  h.registry.ActiveDevices(),
		"sessions":        sessions,
		"playback":        playback,
		"upload_sessions": uploads,
		"counters": map[string]int64{
			"total_connections": h.stats.TotalConnections(),
			"messages_sent":     h.stats.MessagesSent(),
			"location_updates":  h.stats.LocationUpdates(),
		},
	}

	return response.Success(c, http.StatusOK, data, "Connection snapshot retrieved")
}
