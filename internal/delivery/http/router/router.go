// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taxiads/internal/delivery/http/router/handler"
	"taxiads/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WSHandler            *ws.Handler
	DeviceHandler        *handler.DeviceHandler
	AdvertisementHandler *handler.AdvertisementHandler
	CampaignHandler      *handler.CampaignHandler
	UploadHandler        *handler.UploadHandler
	DownloadHandler      *handler.DownloadHandler
	PushHandler          *handler.PushHandler
	MonitorHandler       *handler.MonitorHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	wsHandler            *ws.Handler
	deviceHandler        *handler.DeviceHandler
	advertisementHandler *handler.AdvertisementHandler
	campaignHandler      *handler.CampaignHandler
	uploadHandler        *handler.UploadHandler
	downloadHandler      *handler.DownloadHandler
	pushHandler          *handler.PushHandler
	monitorHandler       *handler.MonitorHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		wsHandler:            params.WSHandler,
		deviceHandler:        params.DeviceHandler,
		advertisementHandler: params.AdvertisementHandler,
		campaignHandler:      params.CampaignHandler,
		uploadHandler:        params.UploadHandler,
		downloadHandler:      params.DownloadHandler,
		pushHandler:          params.PushHandler,
		monitorHandler:       params.MonitorHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.monitorHandler.HealthCheck)

	// Device realtime channel
	e.GET("/ws", r.wsHandler.Serve)

	// Device-facing routes (HTTP fallback for devices without a live socket)
	deviceGroup := e.Group("/api/v1/device")
	{
		deviceGroup.POST("/heartbeat", r.deviceHandler.Heartbeat)
	}

	// Admin routes
	adminGroup := e.Group("/api/v1/admin")
	{
		adminGroup.POST("/devices", r.deviceHandler.CreateDevice)
		adminGroup.GET("/devices", r.deviceHandler.ListDevices)
		adminGroup.GET("/devices/:id", r.deviceHandler.GetDevice)
		adminGroup.PUT("/devices/:id", r.deviceHandler.UpdateDevice)
		adminGroup.DELETE("/devices/:id", r.deviceHandler.DeleteDevice)

		adminGroup.GET("/videos", r.advertisementHandler.ListAdvertisements)
		adminGroup.GET("/videos/:id", r.advertisementHandler.GetAdvertisement)
		adminGroup.PUT("/videos/:id", r.advertisementHandler.UpdateAdvertisement)
		adminGroup.DELETE("/videos/:id", r.advertisementHandler.DeleteAdvertisement)

		adminGroup.POST("/videos/chunked/init", r.uploadHandler.InitUpload)
		adminGroup.POST("/videos/chunked/upload", r.uploadHandler.PutChunk)
		adminGroup.POST("/videos/chunked/complete", r.uploadHandler.CompleteUpload)
		adminGroup.POST("/videos/chunked/cancel", r.uploadHandler.CancelUpload)

		adminGroup.GET("/videos/:id/download", r.downloadHandler.DownloadInfo)
		adminGroup.GET("/videos/:id/chunk", r.downloadHandler.GetChunk)

		adminGroup.POST("/campaigns", r.campaignHandler.CreateCampaign)
		adminGroup.GET("/campaigns", r.campaignHandler.ListCampaigns)
		adminGroup.GET("/campaigns/:id", r.campaignHandler.GetCampaign)
		adminGroup.PUT("/campaigns/:id", r.campaignHandler.UpdateCampaign)
		adminGroup.DELETE("/campaigns/:id", r.campaignHandler.DeleteCampaign)

		adminGroup.POST("/override", r.pushHandler.Override)
		adminGroup.POST("/push/download", r.pushHandler.PushDownload)
		adminGroup.POST("/push/batch", r.pushHandler.PushBatch)

		adminGroup.GET("/connections", r.monitorHandler.Connections)
	}
}
