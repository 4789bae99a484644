// Package ws implements the device-facing realtime channel: one long-lived
// websocket per display device carrying location reports upstream and push
// commands downstream.
package ws

import (
	"encoding/json"
)

// Device-to-server event names.
const (
	EventRegister        = "register"
	EventLocationUpdate  = "location_update"
	EventHeartbeat       = "heartbeat"
	EventDownloadStatus  = "download_status"
	EventDownloadRequest = "download_request"
)

// Server-to-device event names. Push events (play_ad, download_video,
// force_disconnect, revert_to_local_playlist) are defined in the usecase
// package since the admin push path emits them too.
const (
	EventConnectionEstablished = "connection_established"
	EventRegistrationSuccess   = "registration_success"
	EventRegistrationError     = "registration_error"
	EventLocationAck           = "location_ack"
	EventLocationError         = "location_error"
	EventHeartbeatAck          = "heartbeat_ack"
	EventDownloadStatusAck     = "download_status_ack"
	EventDownloadStatusError   = "download_status_error"
	EventDownloadRequestError  = "download_request_error"
)

// Message is the wire envelope in both directions.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// RegisterPayload binds the connection to a known device.
type RegisterPayload struct {
	DeviceID string `json:"device_id"`
}

// LocationPayload is one position report.
type LocationPayload struct {
	DeviceID  string  `json:"device_id"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// HeartbeatPayload keeps the session marked active.
type HeartbeatPayload struct {
	DeviceID string `json:"device_id"`
}

// DownloadStatusPayload reports device-side download progress.
type DownloadStatusPayload struct {
	DeviceID         string `json:"device_id"`
	AdvertisementID  string `json:"advertisement_id"`
	Status           string `json:"status"` // downloading, completed, failed or paused.
	Progress         int    `json:"progress"`
	DownloadedChunks []int  `json:"downloaded_chunks,omitempty"`
	TotalChunks      int    `json:"total_chunks,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

// DownloadRequestPayload asks the server for a download command.
type DownloadRequestPayload struct {
	DeviceID        string `json:"device_id"`
	AdvertisementID string `json:"advertisement_id"`
	DownloadMode    string `json:"download_mode,omitempty"`
}

// ackPayload is the generic body of ack and error replies.
type ackPayload struct {
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	DeviceID      string `json:"device_id,omitempty"`
	VideoFilename string `json:"video_filename,omitempty"`
	Timestamp     string `json:"timestamp"`
}

func validDownloadStatus(status string) bool {
	switch status {
	case "downloading", "completed", "failed", "paused":
		return true
	}

	return false
}
