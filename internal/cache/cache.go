package cache

import "time"

// Cache is a key-value store with an optional TTL per entry
type Cache[K comparable, V any] interface {
	// Get returns the value and whether it was present and not expired.
	Get(key K) (V, bool)

	// Set stores the value. A ttl <= 0 means the entry never expires.
	Set(key K, value V, ttl time.Duration)

	// GetOrLoad returns the cached value, or calls load and caches its result on a miss.
	// Errors from load are returned and nothing is cached.
	GetOrLoad(key K, ttl time.Duration, load func() (V, error)) (V, error)

	Delete(key K)

	// PurgeExpired removes expired entries.
	PurgeExpired()
}
