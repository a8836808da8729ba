// Package cache provides byte-level caching for rendered artifacts.
//
// Rendering a sheet is cheap until rsvg-convert gets involved; converting
// a full-page SVG with embedded artwork to PNG or PDF takes long enough
// that repeated renders of the same placement are worth skipping. Keys are
// content-addressed: they hash the layout inputs and render options, so
// any change to the placement, paper, calibration, or format misses
// cleanly.
package cache

import (
	"context"
	"errors"
	"time"
)

// Default TTLs per cached value type.
const (
	// TTLArtifact is how long rendered artifacts stay valid. Keys are
	// content-addressed, so entries never go stale; the TTL only bounds
	// disk growth.
	TTLArtifact = 30 * 24 * time.Hour
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss is returned when an item is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (0 means no expiration).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
