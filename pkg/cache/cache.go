// Package cache provides the report result cache.
//
// Computed report tables are cached under a report+range key for a short
// TTL so repeated dashboard renders do not re-run the same aggregation
// against the database. The repository layer stays cache-free; the cache
// sits in front of it at the service layer.
//
// Two drivers ship: an in-process memory store (default) and Redis for
// multi-instance deployments. "off" disables caching entirely.
package cache

import (
	"time"

	"github.com/Gurpreet0022/sales-dashboard/config"
	"github.com/Gurpreet0022/sales-dashboard/pkg/logger"
	"github.com/Gurpreet0022/sales-dashboard/pkg/metrics"
)

// Store is the cache contract used by the report service.
type Store interface {
	// Get unmarshals the cached value for key into dest.
	// Returns true on a hit, false on miss or error.
	Get(key string, dest interface{}) bool

	// Set stores value under key for the given TTL.
	Set(key string, value interface{}, ttl time.Duration) error

	// Flush drops every cached entry.
	Flush() error

	// Driver names the backend, for metrics labels.
	Driver() string
}

// FromConfig builds the Store selected by CACHE_DRIVER. A Redis store that
// cannot be reached degrades to the memory driver with a warning; the
// dashboard must keep working without infrastructure around it.
func FromConfig() Store {
	switch config.CacheDriver() {
	case "off":
		return nopStore{}
	case "redis":
		s, err := newRedisStore(config.RedisAddr(), config.RedisPassword())
		if err != nil {
			logger.Warn("cache: redis unavailable, using memory driver", "error", err)
			return newMemoryStore()
		}
		return s
	default:
		return newMemoryStore()
	}
}

// observe records hit/miss counters for a Get result.
func observe(driver string, hit bool) {
	if hit {
		metrics.CacheHits.WithLabelValues(driver).Inc()
		return
	}
	metrics.CacheMisses.WithLabelValues(driver).Inc()
}

// Memory returns a fresh in-process Store, independent of configuration.
func Memory() Store { return newMemoryStore() }

// Nop returns a Store that never caches. Used by one-shot CLI commands
// where a warm cache has no next request to serve.
func Nop() Store { return nopStore{} }

// nopStore disables caching: every Get is a miss, every Set a no-op.
type nopStore struct{}

func (nopStore) Get(string, interface{}) bool                 { return false }
func (nopStore) Set(string, interface{}, time.Duration) error { return nil }
func (nopStore) Flush() error                                 { return nil }
func (nopStore) Driver() string                               { return "off" }
