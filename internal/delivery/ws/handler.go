package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"taxiads/internal/domain/repository"
	"taxiads/internal/domain/service"
	"taxiads/internal/infra/realtime"
	"taxiads/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Devices connect from embedded players, not browsers.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandlerParams holds dependencies for the websocket Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	DecisionUC usecase.DecisionUsecase
	DownloadUC usecase.DownloadUsecase
	Registry   service.SessionRegistry
	Playback   service.PlaybackTracker
	Hub        *Hub
	Stats      *realtime.Stats
	Logger     *slog.Logger
}

// Handler upgrades device connections and dispatches their events.
type Handler struct {
	deviceRepo repository.DeviceRepository
	decisionUC usecase.DecisionUsecase
	downloadUC usecase.DownloadUsecase
	registry   service.SessionRegistry
	playback   service.PlaybackTracker
	hub        *Hub
	stats      *realtime.Stats
	logger     *slog.Logger
}

// NewHandler is the constructor for the websocket Handler
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		deviceRepo: params.DeviceRepo,
		decisionUC: params.DecisionUC,
		downloadUC: params.DownloadUC,
		registry:   params.Registry,
		playback:   params.Playback,
		hub:        params.Hub,
		stats:      params.Stats,
		logger:     params.Logger,
	}
}

// Serve upgrades the request and starts the connection's pumps
func (h *Handler) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade websocket")
	}

	connID := uuid.New().String()
	client := newClient(connID, conn, h, h.logger)

	h.hub.Add(client)
	h.stats.ConnectionOpened()
	h.logger.Info("Device connection opened", slog.String("conn_id", connID))

	client.start()

	h.reply(client, EventConnectionEstablished, &ackPayload{
		Message:   "Connected. Send a register event to bind your device.",
		Timestamp: now(),
	})

	return nil
}

// dispatch routes one inbound envelope. Runs on the client's read pump, so
// events from one device are handled in arrival order.
func (h *Handler) dispatch(client *Client, msg *Message) {
	switch msg.Event {
	case EventRegister:
		h.handleRegister(client, msg.Data)
	case EventLocationUpdate:
		h.handleLocationUpdate(client, msg.Data)
	case EventHeartbeat:
		h.handleHeartbeat(client)
	case EventDownloadStatus:
		h.handleDownloadStatus(client, msg.Data)
	case EventDownloadRequest:
		h.handleDownloadRequest(client, msg.Data)
	default:
		h.logger.Warn("Unknown event",
			slog.String("conn_id", client.ConnID()),
			slog.String("event", msg.Event))
	}
}

// disconnect tears the connection's session state down. Called synchronously
// when the read pump exits.
func (h *Handler) disconnect(client *Client) {
	h.hub.Remove(client.ConnID())

	deviceID, ok := h.registry.Unregister(client.ConnID())
	if !ok {
		h.logger.Info("Unregistered connection closed", slog.String("conn_id", client.ConnID()))
		return
	}

	h.playback.Clear(deviceID)
	h.logger.Info("Device disconnected",
		slog.String("conn_id", client.ConnID()),
		slog.String("device_id", deviceID))
}

func (h *Handler) handleRegister(client *Client, data json.RawMessage) {
	var payload RegisterPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.DeviceID == "" {
		h.reply(client, EventRegistrationError, &ackPayload{
			Error:     "device_id is required",
			Timestamp: now(),
		})
		return
	}

	device, err := h.deviceRepo.FindDeviceByID(context.Background(), payload.DeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			h.reply(client, EventRegistrationError, &ackPayload{
				Error:     "device is not registered in the system",
				DeviceID:  payload.DeviceID,
				Timestamp: now(),
			})
			return
		}

		h.logger.Error("Failed to look up device for registration",
			slog.String("device_id", payload.DeviceID),
			slog.Any("error", err))
		h.reply(client, EventRegistrationError, &ackPayload{
			Error:     "internal server error",
			Timestamp: now(),
		})
		return
	}

	h.registry.Register(client.ConnID(), device.ID)
	client.deviceID = device.ID

	h.reply(client, EventRegistrationSuccess, map[string]string{
		"message":     "device registered",
		"device_id":   device.ID,
		"device_type": device.DeviceType,
		"timestamp":   now(),
	})

	h.logger.Info("Device registered",
		slog.String("conn_id", client.ConnID()),
		slog.String("device_id", device.ID))
}

func (h *Handler) handleLocationUpdate(client *Client, data json.RawMessage) {
	if client.deviceID == "" {
		h.reply(client, EventLocationError, &ackPayload{
			Error:     "device is not registered, send a register event first",
			Timestamp: now(),
		})
		return
	}

	var payload LocationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.reply(client, EventLocationError, &ackPayload{
			Error:     "longitude and latitude are required",
			Timestamp: now(),
		})
		return
	}

	if payload.Longitude < -180 || payload.Longitude > 180 || payload.Latitude < -90 || payload.Latitude > 90 {
		h.reply(client, EventLocationError, &ackPayload{
			Error:     "coordinates are out of range",
			Timestamp: now(),
		})
		return
	}

	h.registry.Touch(client.ConnID())
	h.stats.LocationUpdate()

	result, err := h.decisionUC.DecideForLocation(context.Background(), &usecase.LocationReport{
		DeviceID:  client.deviceID,
		Longitude: payload.Longitude,
		Latitude:  payload.Latitude,
	})
	if err != nil {
		h.logger.Error("Decision failed for location update",
			slog.String("device_id", client.deviceID),
			slog.Any("error", err))
		h.reply(client, EventLocationError, &ackPayload{
			Error:     "failed to process location update",
			Timestamp: now(),
		})
		return
	}

	if result == nil {
		h.reply(client, EventLocationAck, &ackPayload{
			Message:   "location processed, no matching campaign",
			Timestamp: now(),
		})
		return
	}

	h.reply(client, usecase.EventPlayAd, &usecase.PlayAdCommand{
		Command:           usecase.CommandPlayVideo,
		AdvertisementID:   result.AdvertisementID,
		AdvertisementName: result.AdvertisementName,
		VideoFilename:     result.VideoFilename,
		CampaignID:        result.CampaignID,
		AdvertisementIDs:  result.AdvertisementIDs,
		Trigger:           "geofence",
		Timestamp:         now(),
	})

	h.reply(client, EventLocationAck, &ackPayload{
		Message:       "location processed, ad pushed",
		VideoFilename: result.VideoFilename,
		Timestamp:     now(),
	})
}

func (h *Handler) handleHeartbeat(client *Client) {
	if client.deviceID == "" {
		return
	}

	h.registry.Touch(client.ConnID())
	h.reply(client, EventHeartbeatAck, &ackPayload{
		DeviceID:  client.deviceID,
		Timestamp: now(),
	})
}

func (h *Handler) handleDownloadStatus(client *Client, data json.RawMessage) {
	if client.deviceID == "" {
		h.reply(client, EventDownloadStatusError, &ackPayload{
			Error:     "device is not registered",
			Timestamp: now(),
		})
		return
	}

	var payload DownloadStatusPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.AdvertisementID == "" {
		h.reply(client, EventDownloadStatusError, &ackPayload{
			Error:     "advertisement_id is required",
			Timestamp: now(),
		})
		return
	}

	if !validDownloadStatus(payload.Status) {
		h.reply(client, EventDownloadStatusError, &ackPayload{
			Error:     "status must be downloading, completed, failed or paused",
			Timestamp: now(),
		})
		return
	}

	h.registry.Touch(client.ConnID())
	h.logger.Info("Download status reported",
		slog.String("device_id", client.deviceID),
		slog.String("advertisement_id", payload.AdvertisementID),
		slog.String("status", payload.Status),
		slog.Int("progress", payload.Progress))

	if payload.Status == "failed" && payload.ErrorMessage != "" {
		h.logger.Warn("Device download failed",
			slog.String("device_id", client.deviceID),
			slog.String("advertisement_id", payload.AdvertisementID),
			slog.String("device_error", payload.ErrorMessage))
	}

	h.reply(client, EventDownloadStatusAck, &ackPayload{
		Message:   "status recorded",
		Timestamp: now(),
	})
}

func (h *Handler) handleDownloadRequest(client *Client, data json.RawMessage) {
	if client.deviceID == "" {
		h.reply(client, EventDownloadRequestError, &ackPayload{
			Error:     "device is not registered",
			Timestamp: now(),
		})
		return
	}

	var payload DownloadRequestPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.AdvertisementID == "" {
		h.reply(client, EventDownloadRequestError, &ackPayload{
			Error:     "advertisement_id is required",
			Timestamp: now(),
		})
		return
	}

	info, err := h.downloadUC.DownloadInfo(context.Background(), payload.AdvertisementID, 0)
	if err != nil {
		h.logger.Warn("Download request rejected",
			slog.String("device_id", client.deviceID),
			slog.String("advertisement_id", payload.AdvertisementID),
			slog.Any("error", err))
		h.reply(client, EventDownloadRequestError, &ackPayload{
			Error:     "advertisement is not available for download",
			Timestamp: now(),
		})
		return
	}

	h.registry.Touch(client.ConnID())
	h.reply(client, usecase.EventDownloadVideo, &usecase.DownloadVideoCommand{
		Command:         usecase.CommandDownloadVideo,
		AdvertisementID: info.AdvertisementID,
		VideoFilename:   info.VideoFilename,
		FileSize:        info.FileSize,
		ChunkSize:       info.ChunkSize,
		TotalChunks:     info.TotalChunks,
		DownloadURL:     info.DownloadURL,
		Timestamp:       now(),
	})
}

// reply pushes one event to the client, logging delivery failures.
func (h *Handler) reply(client *Client, event string, payload any) {
	if err := h.hub.Send(client.ConnID(), event, payload); err != nil {
		h.logger.Warn("Failed to push event",
			slog.String("conn_id", client.ConnID()),
			slog.String("event", event),
			slog.Any("error", err))
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
