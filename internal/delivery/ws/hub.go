package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"taxiads/internal/domain/service"
	"taxiads/internal/infra/realtime"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HubParams holds dependencies for the Hub, injected by Fx.
type HubParams struct {
	fx.In

	Stats  *realtime.Stats
	Logger *slog.Logger
}

// Hub tracks live clients by connection id and pushes envelopes to them. It is
// the realtime implementation of service.PushSender: Send never blocks on a
// slow device, it fails the one target instead.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	stats  *realtime.Stats
	logger *slog.Logger
}

// NewHub is the constructor for the Hub
func NewHub(params HubParams) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		stats:   params.Stats,
		logger:  params.Logger,
	}
}

// NewPushSender exposes the Hub as the usecase-facing push port.
func NewPushSender(hub *Hub) service.PushSender {
	return hub
}

// Add tracks a freshly upgraded client.
func (h *Hub) Add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ConnID()] = client
}

// Remove drops the client from the dispatch table. Idempotent.
func (h *Hub) Remove(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, connID)
}

// Send marshals the payload into the wire envelope and queues it on the
// target's outbound channel. Returns service.ErrConnectionGone when the
// connection is unknown or its queue is full.
func (h *Hub) Send(connID string, event string, payload any) error {
	h.mu.RLock()
	client, ok := h.clients[connID]
	h.mu.RUnlock()

	if !ok {
		return errors.WithStack(service.ErrConnectionGone)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s payload", event)
	}

	frame, err := json.Marshal(&Message{Event: event, Data: data})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s envelope", event)
	}

	select {
	case client.send <- frame:
		h.stats.MessageSent()
		return nil
	default:
		h.logger.Warn("Dropping push for saturated connection",
			slog.String("conn_id", connID),
			slog.String("event", event))
		return errors.WithStack(service.ErrConnectionGone)
	}
}
