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

// DownloadHandlerParams holds dependencies for DownloadHandler, injected by Fx.
type DownloadHandlerParams struct {
	fx.In

	DownloadUC usecase.DownloadUsecase
	Logger     *slog.Logger
}

// DownloadHandler serves device-initiated chunked downloads.
type DownloadHandler struct {
	downloadUC usecase.DownloadUsecase
	logger     *slog.Logger
}

// NewDownloadHandler is the constructor for DownloadHandler
func NewDownloadHandler(params DownloadHandlerParams) *DownloadHandler {
	return &DownloadHandler{
		downloadUC: params.DownloadUC,
		logger:     params.Logger,
	}
}

// DownloadInfo returns the chunking plan. Without chunked=true the asset's
// whole byte stream is served instead.
func (h *DownloadHandler) DownloadInfo(c echo.Context) error {
	chunkSize := parseChunkSize(c)

	info, err := h.downloadUC.DownloadInfo(c.Request().Context(), c.Param("id"), chunkSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("chunked") != "true" {
		return h.streamWhole(c, info)
	}

	return response.Success(c, http.StatusOK, info, "Download plan prepared")
}

// GetChunk serves one raw byte range with range metadata in the headers
func (h *DownloadHandler) GetChunk(c echo.Context) error {
	chunkNumber, err := strconv.Atoi(c.QueryParam("chunk"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "chunk must be an integer")
	}

	chunk, err := h.downloadUC.ReadChunk(c.Request().Context(), c.Param("id"), chunkNumber, parseChunkSize(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header := c.Response().Header()
	header.Set("X-Chunk-Number", strconv.Itoa(chunk.ChunkNumber))
	header.Set("X-Total-Chunks", strconv.Itoa(chunk.TotalChunks))
	header.Set("X-Chunk-Offset", strconv.FormatInt(chunk.Offset, 10))
	header.Set("X-Total-Size", strconv.FormatInt(chunk.TotalSize, 10))

	return c.Blob(http.StatusOK, echo.MIMEOctetStream, chunk.Data)
}

// streamWhole serves the asset as a single response by walking every chunk.
func (h *DownloadHandler) streamWhole(c echo.Context, info *usecase.DownloadInfo) error {
	header := c.Response().Header()
	header.Set(echo.HeaderContentType, echo.MIMEOctetStream)
	header.Set(echo.HeaderContentLength, strconv.FormatInt(info.FileSize, 10))
	header.Set(echo.HeaderContentDisposition, `attachment; filename="`+info.VideoFilename+`"`)
	c.Response().WriteHeader(http.StatusOK)

	for i := 0; i < info.TotalChunks; i++ {
		chunk, err := h.downloadUC.ReadChunk(c.Request().Context(), info.AdvertisementID, i, info.ChunkSize)
		if err != nil {
			return err
		}
		if _, err := c.Response().Write(chunk.Data); err != nil {
			return err
		}
		c.Response().Flush()
	}

	return nil
}

func parseChunkSize(c echo.Context) int64 {
	chunkSize, err := strconv.ParseInt(c.QueryParam("chunk_size"), 10, 64)
	if err != nil {
		return 0
	}

	return chunkSize
}
