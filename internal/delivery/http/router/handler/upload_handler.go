package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"taxiads/internal/delivery/http/response"
	"taxiads/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler serves the chunked video upload endpoints.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// uploadIDRequest carries the session token for complete/cancel calls.
type uploadIDRequest struct {
	UploadID string `json:"upload_id" validate:"required"`
}

// InitUpload opens a chunked upload session
func (h *UploadHandler) InitUpload(c echo.Context) error {
	var req usecase.InitUploadInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upload init input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.uploadUC.InitUpload(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Upload session created")
}

// PutChunk stores one multipart chunk. Fields: upload_id, chunk_number, chunk.
func (h *UploadHandler) PutChunk(c echo.Context) error {
	uploadID := c.FormValue("upload_id")
	if uploadID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "upload_id is required")
	}

	chunkNumber, err := strconv.Atoi(c.FormValue("chunk_number"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "chunk_number must be an integer")
	}

	fileHeader, err := c.FormFile("chunk")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "chunk file part is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer file.Close()

	result, err := h.uploadUC.PutChunk(c.Request().Context(), uploadID, chunkNumber, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Chunk stored")
}

// CompleteUpload merges the chunks and registers the advertisement
func (h *UploadHandler) CompleteUpload(c echo.Context) error {
	var req uploadIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complete input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.uploadUC.CompleteUpload(c.Request().Context(), req.UploadID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Upload completed")
}

// CancelUpload aborts the session and discards its chunks
func (h *UploadHandler) CancelUpload(c echo.Context) error {
	var req uploadIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uploadUC.CancelUpload(c.Request().Context(), req.UploadID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"upload_id": req.UploadID}, "Upload cancelled")
}
