// Package commentary produces model commentary over cached lyrics.
package commentary

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/snypenet/rate-my-music/cache"
	"github.com/snypenet/rate-my-music/logcolors"
	"github.com/snypenet/rate-my-music/services/llm"
	"github.com/snypenet/rate-my-music/stats"
)

// ErrCacheMiss reports that the requested song has no cached lyrics.
var ErrCacheMiss = errors.New("lyrics not found in cache")

// ErrUnknownKind reports a kind with no prompt template.
var ErrUnknownKind = errors.New("unknown commentary kind")

// UpstreamError wraps a provider failure with the provider name.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Generator runs prompt templates over lyrics that are already cached.
// It never scrapes; a song that was never resolved stays a miss.
type Generator struct {
	store     cache.Store
	completer llm.Completer
}

// NewGenerator wires a generator to its lyrics store and model provider.
func NewGenerator(store cache.Store, completer llm.Completer) *Generator {
	return &Generator{
		store:     store,
		completer: completer,
	}
}

// Provider names the model provider behind this generator.
func (g *Generator) Provider() string {
	return g.completer.Name()
}

// Generate fills the template for kind with the cached lyrics under key
// and returns the completion verbatim. A song without cached lyrics
// surfaces as ErrCacheMiss.
func (g *Generator) Generate(ctx context.Context, key string, kind Kind) (string, error) {
	template, ok := promptTemplates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	lyrics, found := g.store.Get(key)
	if !found {
		log.Infof("%s No cached lyrics for %q", logcolors.LogCommentary, key)
		return "", ErrCacheMiss
	}

	log.Infof("%s Generating %s for %q via %s", logcolors.LogCommentary, kind, key, g.completer.Name())

	text, err := g.completer.Complete(ctx, llm.Request{
		System: template.system,
		User:   fmt.Sprintf(template.user, lyrics),
	})
	if err != nil {
		stats.Get().RecordCommentaryFailure()
		log.Warnf("%s %s failed for %q: %v", logcolors.LogModel, kind, key, err)
		return "", &UpstreamError{Provider: g.completer.Name(), Err: err}
	}

	return text, nil
}
