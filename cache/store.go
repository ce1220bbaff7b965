package cache

// Store is the contract the lyrics cache backends implement. Get and Set
// are the hot path used by the resolver; the other methods back the admin
// endpoints. The backend is chosen once at startup and injected into the
// components that need it.
type Store interface {
	// Get returns the cached value for key, if present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes a single key.
	Delete(key string) error

	// Clear removes every entry.
	Clear() error

	// Range iterates over all entries until fn returns false.
	Range(fn func(key, value string) bool)

	// Stats returns the number of keys and the approximate stored size.
	Stats() (numKeys int, sizeInKB int)

	// Close releases any resources held by the backend.
	Close() error
}
