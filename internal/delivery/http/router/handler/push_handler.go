package handler

import (
	"log/slog"
	"net/http"

	"taxiads/internal/delivery/http/response"
	"taxiads/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	PushUC usecase.PushUsecase
	Logger *slog.Logger
}

// PushHandler serves the admin push endpoints.
type PushHandler struct {
	pushUC usecase.PushUsecase
	logger *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		pushUC: params.PushUC,
		logger: params.Logger,
	}
}

// OverrideRequest targets one advertisement at a set of devices.
type OverrideRequest struct {
	DeviceIDs       []string `json:"device_ids" validate:"required,min=1"`
	AdvertisementID string   `json:"advertisement_id" validate:"required"`
}

// PushDownloadRequest asks devices to pre-fetch one asset.
type PushDownloadRequest struct {
	DeviceIDs       []string `json:"device_ids" validate:"required,min=1"`
	AdvertisementID string   `json:"advertisement_id" validate:"required"`
	ChunkSize       int64    `json:"chunk_size,omitempty"` // Non-positive selects the default.
}

// BatchPushRequest fans several advertisements out to a set of devices.
type BatchPushRequest struct {
	DeviceIDs        []string `json:"device_ids" validate:"required,min=1"`
	AdvertisementIDs []string `json:"advertisement_ids" validate:"required,min=1"`
}

// Override pushes an immediate PLAY_VIDEO command
func (h *PushHandler) Override(c echo.Context) error {
	var req OverrideRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid override input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.pushUC.PushAd(c.Request().Context(), req.DeviceIDs, req.AdvertisementID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Override push dispatched")
}

// PushDownload pushes a DOWNLOAD_VIDEO command
func (h *PushHandler) PushDownload(c echo.Context) error {
	var req PushDownloadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push download input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.pushUC.PushDownload(c.Request().Context(), req.DeviceIDs, req.AdvertisementID, req.ChunkSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Download push dispatched")
}

// PushBatch pushes several advertisements in one call
func (h *PushHandler) PushBatch(c echo.Context) error {
	var req BatchPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch push input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.pushUC.PushBatch(c.Request().Context(), req.DeviceIDs, req.AdvertisementIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Batch push dispatched")
}
