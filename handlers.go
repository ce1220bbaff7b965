package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/snypenet/rate-my-music/logcolors"
	"github.com/snypenet/rate-my-music/sentry"
	"github.com/snypenet/rate-my-music/services/commentary"
	"github.com/snypenet/rate-my-music/services/genius"
	"github.com/snypenet/rate-my-music/services/lyrics"
	"github.com/snypenet/rate-my-music/songkey"
	"github.com/snypenet/rate-my-music/stats"
)

func (a *app) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		Respond(w, r).Error(http.StatusBadRequest, "Missing search query")
		return
	}

	results, err := a.search.Search(r.Context(), query)
	if err != nil {
		sentry.ReportError(err)
		var upstreamErr *genius.UpstreamError
		if errors.As(err, &upstreamErr) {
			Respond(w, r).Error(upstreamErr.StatusCode, "Failed to fetch data from Genius API")
			return
		}
		log.Errorf("%s Search failed: %v", logcolors.LogSearch, err)
		Respond(w, r).Error(http.StatusInternalServerError, "Failed to fetch data from Genius API")
		return
	}

	Respond(w, r).JSON(results)
}

func (a *app) lyricsHandler(w http.ResponseWriter, r *http.Request) {
	artist := r.URL.Query().Get("artist")
	song := r.URL.Query().Get("song")
	if artist == "" || song == "" {
		Respond(w, r).Error(http.StatusBadRequest, "Missing artist or song")
		return
	}

	cacheStatus := "MISS"
	if _, found := a.store.Get(songkey.CacheKey(artist, song)); found {
		cacheStatus = "HIT"
		stats.Get().RecordCacheHit()
	} else {
		stats.Get().RecordCacheMiss()
	}

	text, err := a.resolver.Resolve(r.Context(), artist, song)
	if err != nil {
		if errors.Is(err, lyrics.ErrNotFound) {
			Respond(w, r).SetCacheStatus(cacheStatus).Error(http.StatusNotFound, "Lyrics not found")
			return
		}
		sentry.ReportError(err)
		log.Errorf("%s Resolve failed for %s / %s: %v", logcolors.LogResolve, artist, song, err)
		Respond(w, r).SetCacheStatus(cacheStatus).Error(http.StatusInternalServerError, err.Error())
		return
	}

	Respond(w, r).SetCacheStatus(cacheStatus).JSON(map[string]string{"lyrics": text})
}

func (a *app) songSummaryHandler(w http.ResponseWriter, r *http.Request) {
	a.generateCommentary(w, r, commentary.KindSummary, "summary")
}

func (a *app) songRatingHandler(w http.ResponseWriter, r *http.Request) {
	a.generateCommentary(w, r, commentary.KindRating, "rating")
}

// generateCommentary handles both commentary endpoints; field names the
// JSON key the completion is returned under.
func (a *app) generateCommentary(w http.ResponseWriter, r *http.Request, kind commentary.Kind, field string) {
	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Respond(w, r).Error(http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Artist == "" || req.Song == "" {
		Respond(w, r).Error(http.StatusBadRequest, "Missing artist or song")
		return
	}

	key := songkey.CacheKey(req.Artist, req.Song)
	text, err := a.commentary.Generate(r.Context(), key, kind)
	if err != nil {
		if errors.Is(err, commentary.ErrCacheMiss) {
			Respond(w, r).Error(http.StatusNotFound, "Lyrics not found in cache")
			return
		}
		sentry.ReportError(err)
		Respond(w, r).Error(http.StatusInternalServerError, err.Error())
		return
	}

	Respond(w, r).SetProvider(a.commentary.Provider()).JSON(map[string]string{field: text})
}

func (a *app) healthHandler(w http.ResponseWriter, r *http.Request) {
	numKeys, sizeInKB := a.store.Stats()
	Respond(w, r).JSON(map[string]interface{}{
		"status": "ok",
		"uptime": stats.Get().Uptime().String(),
		"cache": map[string]interface{}{
			"keys":    numKeys,
			"size_kb": sizeInKB,
		},
	})
}

func (a *app) statsHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := stats.Get().Snapshot()

	numKeys, sizeInKB := a.store.Stats()
	snapshot["cache_storage"] = map[string]interface{}{
		"keys":    numKeys,
		"size_kb": sizeInKB,
		"size_mb": float64(sizeInKB) / 1024,
	}

	Respond(w, r).JSON(snapshot)
}

func (a *app) cacheDumpHandler(w http.ResponseWriter, r *http.Request) {
	entries := map[string]int{}
	a.store.Range(func(key, value string) bool {
		entries[key] = len(value)
		return true
	})

	numKeys, sizeInKB := a.store.Stats()
	s := stats.Get()

	Respond(w, r).JSON(CacheDumpResponse{
		NumberOfKeys: numKeys,
		SizeInKB:     sizeInKB,
		SizeInMB:     float64(sizeInKB) / 1024,
		Performance: CachePerformance{
			Hits:    s.CacheHits.Load(),
			Misses:  s.CacheMisses.Load(),
			HitRate: s.CacheHitRate(),
		},
		Cache: entries,
	})
}

func (a *app) cacheDeleteHandler(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		Respond(w, r).Error(http.StatusBadRequest, "Missing 'key' query parameter")
		return
	}

	if _, found := a.store.Get(key); !found {
		Respond(w, r).Error(http.StatusNotFound, "Cache key not found")
		return
	}

	if err := a.store.Delete(key); err != nil {
		log.Errorf("%s Failed to delete %q: %v", logcolors.LogCache, key, err)
		Respond(w, r).Error(http.StatusInternalServerError, fmt.Sprintf("Failed to delete cache entry: %v", err))
		return
	}

	log.Infof("%s Deleted entry %q", logcolors.LogCache, key)
	Respond(w, r).JSON(map[string]string{
		"message": "Cache entry deleted",
		"key":     key,
	})
}

func (a *app) cacheClearHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Clear(); err != nil {
		log.Errorf("%s Failed to clear cache: %v", logcolors.LogCacheClear, err)
		Respond(w, r).Error(http.StatusInternalServerError, fmt.Sprintf("Failed to clear cache: %v", err))
		return
	}

	log.Infof("%s Cache cleared", logcolors.LogCacheClear)
	Respond(w, r).JSON(map[string]string{"message": "Cache cleared successfully"})
}

func helpHandler(w http.ResponseWriter, r *http.Request) {
	Respond(w, r).JSON(map[string]interface{}{
		"service": "rate-my-music",
		"endpoints": map[string]string{
			"GET /search?q=":                    "Search songs on Genius",
			"GET /lyrics?artist=&song=":         "Fetch lyrics, cached after the first hit",
			"POST /song-summary {artist, song}": "Summarize cached lyrics",
			"POST /song-rating {artist, song}":  "ESRB-style rating of cached lyrics",
			"GET /health":                       "Service health",
			"GET /stats":                        "Runtime stats (admin)",
			"GET /cache":                        "Cache overview (admin)",
			"DELETE /cache?key=":                "Evict one cache entry (admin)",
			"POST /cache/clear":                 "Clear the cache (admin)",
		},
	})
}
