package cache

import (
	"path/filepath"
	"testing"
)

// setupTestCache creates a temporary cache for testing
func setupTestCache(t *testing.T, compression bool) (*PersistentCache, func()) {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_cache.db")

	cache, err := NewPersistentCache(dbPath, compression)
	if err != nil {
		t.Fatalf("Failed to create test cache: %v", err)
	}

	cleanup := func() {
		cache.Close()
	}

	return cache, cleanup
}

func TestNewPersistentCache(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "cache.db")

	cache, err := NewPersistentCache(dbPath, true)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	if cache.db == nil {
		t.Error("Expected database to be initialized")
	}
	if cache.dbPath != dbPath {
		t.Errorf("Expected dbPath %q, got %q", dbPath, cache.dbPath)
	}
	if !cache.compressionEnabled {
		t.Error("Expected compression to be enabled")
	}
}

func TestPersistentSetAndGet(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	key := "drake-hotline bling"
	value := "some lyrics"

	// Set a value
	err := cache.Set(key, value)
	if err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	// Get the value
	retrieved, found := cache.Get(key)
	if !found {
		t.Error("Expected to find the key, but it was not found")
	}
	if retrieved != value {
		t.Errorf("Expected value %q, got %q", value, retrieved)
	}
}

func TestPersistentSetAndGetWithCompression(t *testing.T) {
	cache, cleanup := setupTestCache(t, true)
	defer cleanup()

	key := "compressed_key"
	value := "This is a longer lyrics body that should be compressed using gzip compression"

	// Set a value
	err := cache.Set(key, value)
	if err != nil {
		t.Fatalf("Failed to set compressed value: %v", err)
	}

	// Get the value (should be automatically decompressed)
	retrieved, found := cache.Get(key)
	if !found {
		t.Error("Expected to find the compressed key")
	}
	if retrieved != value {
		t.Errorf("Expected decompressed value %q, got %q", value, retrieved)
	}
}

func TestPersistentGetNonExistentKey(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	_, found := cache.Get("nonexistent_key")
	if found {
		t.Error("Expected not to find non-existent key")
	}
}

func TestPersistentDelete(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	key := "delete_test"
	value := "to_be_deleted"

	// Set a value
	cache.Set(key, value)

	// Verify it exists
	_, found := cache.Get(key)
	if !found {
		t.Error("Expected key to exist before deletion")
	}

	// Delete the key
	err := cache.Delete(key)
	if err != nil {
		t.Fatalf("Failed to delete key: %v", err)
	}

	// Verify it's gone
	_, found = cache.Get(key)
	if found {
		t.Error("Expected key to be deleted")
	}
}

func TestPersistentClear(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	// Add multiple entries
	cache.Set("key1", "value1")
	cache.Set("key2", "value2")
	cache.Set("key3", "value3")

	// Verify they exist
	numKeys, _ := cache.Stats()
	if numKeys != 3 {
		t.Errorf("Expected 3 keys before clear, got %d", numKeys)
	}

	// Clear the cache
	err := cache.Clear()
	if err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}

	// Verify cache is empty
	numKeys, _ = cache.Stats()
	if numKeys != 0 {
		t.Errorf("Expected 0 keys after clear, got %d", numKeys)
	}

	// Verify keys are not retrievable
	_, found := cache.Get("key1")
	if found {
		t.Error("Expected key1 to be cleared")
	}
}

func TestPersistentStats(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	// Empty cache
	numKeys, _ := cache.Stats()
	if numKeys != 0 {
		t.Errorf("Expected 0 keys in empty cache, got %d", numKeys)
	}

	// Add some entries
	cache.Set("key1", "value1")
	cache.Set("key2", "value2")
	cache.Set("key3", "value3")

	numKeys, sizeInKB := cache.Stats()
	if numKeys != 3 {
		t.Errorf("Expected 3 keys, got %d", numKeys)
	}
	if sizeInKB < 0 {
		t.Errorf("Expected non-negative size, got %d KB", sizeInKB)
	}
}

func TestPersistentRange(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	// Add entries
	entries := map[string]string{
		"key1": "value1",
		"key2": "value2",
		"key3": "value3",
	}

	for k, v := range entries {
		cache.Set(k, v)
	}

	// Range over all entries
	found := make(map[string]string)
	cache.Range(func(key, value string) bool {
		found[key] = value
		return true
	})

	if len(found) != len(entries) {
		t.Errorf("Expected %d entries, found %d", len(entries), len(found))
	}

	for key, value := range entries {
		if found[key] != value {
			t.Errorf("Expected value %q for key %q in Range iteration, got %q", value, key, found[key])
		}
	}
}

func TestPersistentRangeWithCompression(t *testing.T) {
	cache, cleanup := setupTestCache(t, true)
	defer cleanup()

	cache.Set("key1", "the stored lyrics text")

	var got string
	cache.Range(func(key, value string) bool {
		got = value
		return true
	})

	// Range should yield the decoded value, not the stored envelope
	if got != "the stored lyrics text" {
		t.Errorf("Expected decoded value from Range, got %q", got)
	}
}

func TestPersistentLoadToMemory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "persistent.db")

	// Create cache and add data
	cache1, err := NewPersistentCache(dbPath, false)
	if err != nil {
		t.Fatalf("Failed to create first cache: %v", err)
	}

	cache1.Set("persistent_key", "persistent_value")
	cache1.Close()

	// Create new cache instance with same db path
	cache2, err := NewPersistentCache(dbPath, false)
	if err != nil {
		t.Fatalf("Failed to create second cache: %v", err)
	}
	defer cache2.Close()

	// Verify data was loaded from disk to memory
	value, found := cache2.Get("persistent_key")
	if !found {
		t.Error("Expected to find key loaded from disk")
	}
	if value != "persistent_value" {
		t.Errorf("Expected value %q, got %q", "persistent_value", value)
	}
}

func TestPersistentMemoryCacheFallback(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	key := "memory_test"
	value := "memory_value"

	// Set value (goes to both memory and disk)
	cache.Set(key, value)

	// Clear memory cache only (not touching disk)
	cache.memCache.Delete(key)

	// Get should still work (falls back to disk)
	retrieved, found := cache.Get(key)
	if !found {
		t.Error("Expected to find value in disk cache")
	}
	if retrieved != value {
		t.Errorf("Expected value %q from disk, got %q", value, retrieved)
	}
}

func TestPersistentCacheWithEmptyValue(t *testing.T) {
	cache, cleanup := setupTestCache(t, false)
	defer cleanup()

	key := "empty_key"
	value := ""

	err := cache.Set(key, value)
	if err != nil {
		t.Fatalf("Failed to set empty value: %v", err)
	}

	retrieved, found := cache.Get(key)
	if !found {
		t.Error("Expected to find key with empty value")
	}
	if retrieved != value {
		t.Errorf("Expected empty string, got %q", retrieved)
	}
}
