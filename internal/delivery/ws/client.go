package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	sendBufferSize = 256
)

// Client is one upgraded device connection. The read pump dispatches inbound
// events in arrival order; pushes go through the buffered send channel so a
// slow device never stalls another.
type Client struct {
	connID  string
	conn    *websocket.Conn
	send    chan []byte
	handler *Handler
	logger  *slog.Logger

	// deviceID is set by a successful register and only ever touched from the
	// read pump goroutine.
	deviceID string
}

func newClient(connID string, conn *websocket.Conn, handler *Handler, logger *slog.Logger) *Client {
	return &Client{
		connID:  connID,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		handler: handler,
		logger:  logger.With(slog.String("conn_id", connID)),
	}
}

// ConnID returns the server-assigned connection identifier.
func (c *Client) ConnID() string {
	return c.connID
}

// start begins the read and write pumps.
func (c *Client) start() {
	go c.writePump()
	go c.readPump()
}

// readPump reads envelopes off the socket and hands them to the handler. It
// owns the connection's inbound side; when it returns the connection is torn
// down and unregistered synchronously.
func (c *Client) readPump() {
	defer func() {
		c.handler.disconnect(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error("Failed to set read deadline", slog.Any("error", err))
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("Unexpected websocket close", slog.Any("error", err))
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.logger.Warn("Discarding malformed frame", slog.Any("error", err))
			continue
		}

		c.handler.dispatch(c, &msg)
	}
}

// writePump drains the send channel onto the socket and keeps the connection
// alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error("Failed to set write deadline", slog.Any("error", err))
				return
			}

			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Warn("Failed to write frame", slog.Any("error", err))
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
