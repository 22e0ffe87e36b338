// Package cache stores rendered figures keyed by everything that affects them.
//
// # Overview
//
// A render is a pure function of the graph, the highlight selection, the style
// options, the layout engine and the output format. [Keyer.FigureKey] hashes
// those inputs into a key, and a [Cache] backend stores the image bytes under
// it:
//
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// # Keys
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.FigureKey(cache.Hash(graphJSON), cache.FigureKeyOpts{
//	    Nodes:  []string{"0"},
//	    Format: "svg",
//	    Style:  opts,
//	})
//
// [ScopedKeyer] prefixes every key, so several deployments can share one Redis
// without seeing each other's entries.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. A ttl of zero or less means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
