package cache

import "sync"

// MemoryCache keeps entries in a sync.Map for the lifetime of the
// process. No TTL, no eviction, nothing written to disk. This is the
// default backend.
type MemoryCache struct {
	entries sync.Map
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

// Get retrieves a value from the cache.
func (mc *MemoryCache) Get(key string) (string, bool) {
	value, ok := mc.entries.Load(key)
	if !ok {
		return "", false
	}
	return value.(string), true
}

// Set stores a value in the cache.
func (mc *MemoryCache) Set(key, value string) error {
	mc.entries.Store(key, value)
	return nil
}

// Delete removes a key from the cache.
func (mc *MemoryCache) Delete(key string) error {
	mc.entries.Delete(key)
	return nil
}

// Clear removes all entries from the cache.
func (mc *MemoryCache) Clear() error {
	mc.entries.Range(func(key, value interface{}) bool {
		mc.entries.Delete(key)
		return true
	})
	return nil
}

// Range iterates over all cache entries.
func (mc *MemoryCache) Range(fn func(key, value string) bool) {
	mc.entries.Range(func(k, v interface{}) bool {
		return fn(k.(string), v.(string))
	})
}

// Stats returns cache statistics.
func (mc *MemoryCache) Stats() (numKeys int, sizeInKB int) {
	mc.entries.Range(func(k, v interface{}) bool {
		numKeys++
		sizeInKB += len(k.(string)) + len(v.(string))
		return true
	})
	sizeInKB = sizeInKB / 1024
	return
}

// Close is a no-op for the in-memory backend.
func (mc *MemoryCache) Close() error {
	return nil
}
