// Package cache provides response caching for generated boards.
//
// Generating a heavily constrained board can take thousands of solver runs,
// but the result for a fixed request (dice set, dimensions, constraints,
// seed) never changes. The server and CLI therefore cache finished results
// keyed by a hash of the request.
//
// Backends:
//   - FileCache: directory of JSON entries for CLI usage
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the cacheable operations.
type Keyer interface {
	// BoardKey identifies a constrained generation request.
	BoardKey(opts BoardKeyOpts) string

	// ReplayKey identifies a replay of an exact board.
	ReplayKey(cells string, width, height int) string
}

// BoardKeyOpts are the request fields that determine a generation result.
type BoardKeyOpts struct {
	DiceSet    string
	Width      int
	Height     int
	MinWords   int
	MaxWords   int
	MinScore   int
	MaxScore   int
	MinLongest int
	MaxLongest int
	MinLength  int
	MaxTries   int
	Seed       uint64
}

// DefaultKeyer hashes request parameters into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// BoardKey generates a key for a generation request.
func (k *DefaultKeyer) BoardKey(opts BoardKeyOpts) string {
	return hashKey("board", opts)
}

// ReplayKey generates a key for a replay request.
func (k *DefaultKeyer) ReplayKey(cells string, width, height int) string {
	return hashKey("replay", cells, width, height)
}

// ScopedKeyer wraps a Keyer with a prefix, giving separate namespaces to
// different deployments sharing one backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer whose keys all carry prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// BoardKey generates a prefixed generation key.
func (k *ScopedKeyer) BoardKey(opts BoardKeyOpts) string {
	return k.prefix + k.inner.BoardKey(opts)
}

// ReplayKey generates a prefixed replay key.
func (k *ScopedKeyer) ReplayKey(cells string, width, height int) string {
	return k.prefix + k.inner.ReplayKey(cells, width, height)
}
