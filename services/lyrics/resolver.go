package lyrics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/snypenet/rate-my-music/cache"
	"github.com/snypenet/rate-my-music/logcolors"
	"github.com/snypenet/rate-my-music/songkey"
)

// ErrNotFound reports that no lyrics exist for the requested song.
var ErrNotFound = errors.New("lyrics not found")

// Source fetches lyrics for a page URL. Absence is reported with
// ok=false, never an error.
type Source interface {
	Scrape(ctx context.Context, url string) (string, bool)
}

// Resolver answers lyrics lookups from the cache and falls back to a
// single scrape per song on a miss.
type Resolver struct {
	store   cache.Store
	source  Source
	baseURL string
	group   singleflight.Group
}

// NewResolver wires a resolver to its backing store and scrape source.
func NewResolver(store cache.Store, source Source, baseURL string) *Resolver {
	return &Resolver{
		store:   store,
		source:  source,
		baseURL: baseURL,
	}
}

// Resolve returns the lyrics for a song, scraping on a cache miss.
// Concurrent misses for the same song share one scrape. Each miss makes
// at most one scrape attempt; absence surfaces as ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, artist, song string) (string, error) {
	key := songkey.CacheKey(artist, song)

	if lyrics, found := r.store.Get(key); found {
		log.Infof("%s Cache hit for %q", logcolors.LogResolve, key)
		return lyrics, nil
	}

	result, err, _ := r.group.Do(key, func() (interface{}, error) {
		// A concurrent resolve may have filled the cache while this
		// call waited its turn.
		if lyrics, found := r.store.Get(key); found {
			return lyrics, nil
		}

		url := fmt.Sprintf("%s/%s-%s-lyrics", r.baseURL, songkey.Slug(artist), songkey.Slug(song))
		lyrics, found := r.source.Scrape(ctx, url)
		if !found {
			return nil, ErrNotFound
		}
		lyrics = strings.TrimSpace(lyrics)

		if err := r.store.Set(key, lyrics); err != nil {
			log.Warnf("%s Failed to cache lyrics for %q: %v", logcolors.LogResolve, key, err)
		} else {
			log.Infof("%s Cached lyrics for %q", logcolors.LogResolve, key)
		}
		return lyrics, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
