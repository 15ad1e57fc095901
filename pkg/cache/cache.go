// Package cache stores rendering artifacts so repeated invocations against
// an unchanged graph skip the layout engine. Two backends are provided: a
// file cache for local CLI usage and a Redis cache for the preview server.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	// Expired entries count as absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the rendering pipeline.
type Keyer interface {
	// ArtifactKey identifies a rendered artifact: the hash of the graph
	// input plus everything that influences the output bytes.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Provider string `json:"provider"`
	Format   string `json:"format"`
	Engine   string `json:"engine"`
}

// DefaultKeyer hashes the option structs into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}
