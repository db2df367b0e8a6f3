// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardCache defines the interface for caching rendered dashboard payloads.
type DashboardCache interface {
	// Get returns the cached payload for a key, with found=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)

	// Set stores a payload under a key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// InvalidateHotel drops every cached payload belonging to a hotel.
	InvalidateHotel(ctx context.Context, hotelID uuid.UUID) error
}
