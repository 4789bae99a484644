package handler

import (
	"log/slog"
	"net/http"

	"taxiads/internal/delivery/http/response"
	"taxiads/internal/domain/repository"
	"taxiads/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// CreateDevice handles device registration from the admin panel
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	var req usecase.CreateDeviceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.CreateDevice(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// GetDevice handles retrieving one device
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	device, err := h.deviceUC.GetDevice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}

// ListDevices handles retrieving all devices, optionally filtered
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	filter := repository.DeviceFilter{
		Status:     c.QueryParam("status"),
		DeviceType: c.QueryParam("device_type"),
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// UpdateDevice handles partial device updates
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	var req usecase.UpdateDeviceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	device, err := h.deviceUC.UpdateDevice(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device updated successfully")
}

// DeleteDevice handles device removal
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	if err := h.deviceUC.DeleteDevice(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"device_id": c.Param("id")}, "Device deleted successfully")
}

// Heartbeat handles the HTTP position report and returns the ad decision
func (h *DeviceHandler) Heartbeat(c echo.Context) error {
	var req usecase.HeartbeatInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid heartbeat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	decision, err := h.deviceUC.Heartbeat(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if decision == nil {
		return response.Success(c, http.StatusOK, map[string]any{"matched": false}, "No campaign matched")
	}

	return response.Success(c, http.StatusOK, map[string]any{"matched": true, "decision": decision}, "Campaign matched")
}
