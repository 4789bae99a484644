// Package delivery defines the contract every transport server implements.
package delivery

import (
	"context"
)

// Delivery is a long-running transport server (HTTP, websocket, worker).
// Implementations are collected into the fx "deliveries" group and served
// concurrently from main.
type Delivery interface {
	Serve(ctx context.Context) error
}
