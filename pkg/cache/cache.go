// Package cache provides pluggable byte caches for layout results.
//
// Computing a layout is deterministic: the same graph with the same
// settings always produces the same coordinates. That makes layout
// results ideal cache material, keyed by a hash of the input graph plus
// the layout options. Three backends are provided:
//
//   - FileCache: on-disk cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disabled caching
//
// Keys are built by a Keyer so that callers never concatenate key
// strings by hand. ScopedKeyer adds a namespace prefix on top of any
// Keyer for multi-tenant isolation.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached value type. Layouts are pure functions of
// their key, so the TTLs exist to bound cache growth, not to limit
// staleness.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts captures the layout settings that affect computed
// coordinates. Two layouts with the same graph hash and the same opts
// are byte-identical.
type LayoutKeyOpts struct {
	Ranker  string
	Align   string
	NodeSep float64
	EdgeSep float64
	RankSep float64
}

// ArtifactKeyOpts captures the render settings that affect an exported
// artifact derived from a layout.
type ArtifactKeyOpts struct {
	Format string
}

// Keyer generates cache keys for the different cached value types.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hash-based keys with type prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
