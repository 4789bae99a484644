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

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler holds dependencies for campaign-related handlers
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	logger     *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: params.CampaignUC,
		logger:     params.Logger,
	}
}

// CreateCampaign handles campaign creation
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	var req usecase.CreateCampaignInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	campaign, err := h.campaignUC.CreateCampaign(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, campaign, "Campaign created successfully")
}

// GetCampaign handles retrieving one campaign
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	campaign, err := h.campaignUC.GetCampaign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaign, "Campaign retrieved successfully")
}

// ListCampaigns handles retrieving all campaigns, optionally filtered
func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	filter := repository.CampaignFilter{
		Status: c.QueryParam("status"),
	}

	campaigns, err := h.campaignUC.ListCampaigns(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaigns, "Campaigns retrieved successfully")
}

// UpdateCampaign handles partial campaign updates
func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	var req usecase.UpdateCampaignInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	campaign, err := h.campaignUC.UpdateCampaign(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaign, "Campaign updated successfully")
}

// DeleteCampaign handles campaign removal, telling locked devices to revert
func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	result, err := h.campaignUC.DeleteCampaign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Campaign deleted successfully")
}
