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

// AdvertisementHandlerParams holds dependencies for AdvertisementHandler,
// injected by Fx.
type AdvertisementHandlerParams struct {
	fx.In

	AdvertisementUC usecase.AdvertisementUsecase
	Logger          *slog.Logger
}

// AdvertisementHandler holds dependencies for advertisement-related handlers
type AdvertisementHandler struct {
	advertisementUC usecase.AdvertisementUsecase
	logger          *slog.Logger
}

// NewAdvertisementHandler is the constructor for AdvertisementHandler
func NewAdvertisementHandler(params AdvertisementHandlerParams) *AdvertisementHandler {
	return &AdvertisementHandler{
		advertisementUC: params.AdvertisementUC,
		logger:          params.Logger,
	}
}

// ListAdvertisements handles retrieving all advertisements, optionally filtered
func (h *AdvertisementHandler) ListAdvertisements(c echo.Context) error {
	filter := repository.AdvertisementFilter{
		Status: c.QueryParam("status"),
		AdType: c.QueryParam("ad_type"),
	}

	ads, err := h.advertisementUC.ListAdvertisements(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ads, "Advertisements retrieved successfully")
}

// GetAdvertisement handles retrieving one advertisement
func (h *AdvertisementHandler) GetAdvertisement(c echo.Context) error {
	ad, err := h.advertisementUC.GetAdvertisement(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ad, "Advertisement retrieved successfully")
}

// UpdateAdvertisement handles partial advertisement updates
func (h *AdvertisementHandler) UpdateAdvertisement(c echo.Context) error {
	var req usecase.UpdateAdvertisementInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advertisement input")
	}

	ad, err := h.advertisementUC.UpdateAdvertisement(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ad, "Advertisement updated successfully")
}

// DeleteAdvertisement handles advertisement removal, cascading into campaigns
func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	if err := h.advertisementUC.DeleteAdvertisement(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"advertisement_id": c.Param("id")}, "Advertisement deleted successfully")
}
