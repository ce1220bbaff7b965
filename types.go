package main

// songRequest is the POST body for the commentary endpoints.
type songRequest struct {
	Artist string `json:"artist"`
	Song   string `json:"song"`
}

// CachePerformance contains cache hit/miss statistics
type CachePerformance struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate_percent"`
}

// CacheDumpResponse is the response format for the /cache endpoint.
// Cache maps each key to the size of its stored value in bytes.
type CacheDumpResponse struct {
	NumberOfKeys int              `json:"number_of_keys"`
	SizeInKB     int              `json:"size_kb"`
	SizeInMB     float64          `json:"size_mb"`
	Performance  CachePerformance `json:"performance"`
	Cache        map[string]int   `json:"cache"`
}
