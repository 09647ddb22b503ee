// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker loop) started by main.
type Delivery interface {
	// Serve blocks serving requests until the surface is shut down.
	Serve(ctx context.Context) error
}
