package service

import (
	"github.com/pkg/errors"
)

// ErrConnectionGone is returned by Send when the connection id no longer maps
// to a live connection, or its outbound queue is unavailable.
var ErrConnectionGone = errors.New("connection is gone")

// PushSender delivers a named event with a JSON payload to one live
// connection. Implemented by the realtime delivery layer; Send must never
// block on a slow receiver (drop or fail instead).
type PushSender interface {
	Send(connID string, event string, payload any) error
}
