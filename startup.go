package main

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/snypenet/rate-my-music/cache"
	"github.com/snypenet/rate-my-music/config"
	"github.com/snypenet/rate-my-music/logcolors"
	"github.com/snypenet/rate-my-music/services/commentary"
	"github.com/snypenet/rate-my-music/services/genius"
	"github.com/snypenet/rate-my-music/services/llm"
	"github.com/snypenet/rate-my-music/services/lyrics"
)

// app holds the wired request pipeline. The composition root owns the
// cache; everything else receives its dependencies.
type app struct {
	store      cache.Store
	search     *genius.Client
	resolver   *lyrics.Resolver
	commentary *commentary.Generator
}

// newApp wires the pipeline from configuration.
func newApp(conf config.Config) (*app, error) {
	timeout := time.Duration(conf.Configuration.UpstreamTimeoutInSeconds) * time.Second

	store, err := newStore(conf)
	if err != nil {
		return nil, err
	}

	search := genius.NewClient(conf.Configuration.GeniusAccessToken, conf.Configuration.GeniusAPIURL, timeout)
	scraper := lyrics.NewScraper(timeout)
	resolver := lyrics.NewResolver(store, scraper, conf.Configuration.LyricsBaseURL)

	completer, err := llm.New(conf.Configuration.ModelProvider, llm.Options{
		OpenAIKey:     conf.Configuration.OpenAIAPIKey,
		OpenAIBaseURL: conf.Configuration.OpenAIAPIURL,
		OpenAIModel:   conf.Configuration.OpenAIModel,
		GeminiKey:     conf.Configuration.GeminiAPIKey,
		GeminiModel:   conf.Configuration.GeminiModel,
		Timeout:       timeout,
	})
	if err != nil {
		return nil, err
	}
	log.Infof("%s Model provider: %s", logcolors.LogModel, completer.Name())

	return &app{
		store:      store,
		search:     search,
		resolver:   resolver,
		commentary: commentary.NewGenerator(store, completer),
	}, nil
}

// newStore picks the cache backend: in-memory by default, bolt-backed
// when a cache path is configured.
func newStore(conf config.Config) (cache.Store, error) {
	if path := conf.Configuration.LyricsCachePath; path != "" {
		return cache.NewPersistentCache(path, conf.FeatureFlags.CacheCompression)
	}
	log.Infof("%s Using in-memory cache", logcolors.LogCacheInit)
	return cache.NewMemoryCache(), nil
}
